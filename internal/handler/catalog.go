package handler

import (
	"net/http"
	"strconv"

	"github.com/campuslib/library-service/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	book, err := h.svc.CreateBook(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.svc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ListBooks(c echo.Context) error {
	includeArchived, _ := strconv.ParseBool(c.QueryParam("includeArchived"))
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	books, err := h.svc.ListBooks(c.Request().Context(), includeArchived, page, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) ArchiveBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.ArchiveBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AddCopies(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.AddCopiesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	copies, err := h.svc.AddCopies(c.Request().Context(), id, req.Count)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, copies)
}

func (h *Handler) GetCopyByBarcode(c echo.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty barcode")
	}
	bookCopy, err := h.svc.GetCopyByBarcode(c.Request().Context(), barcode)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookCopy)
}

func (h *Handler) MarkCopyDamaged(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	type req struct {
		Notes string `json:"notes" validate:"required"`
	}
	var r req
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(r); err != nil {
		return err
	}
	if err := h.svc.MarkCopyDamaged(c.Request().Context(), id, r.Notes); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
