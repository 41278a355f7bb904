package handler

import (
	"net/http"
	"strconv"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListFines(c echo.Context) error {
	studentID, _ := strconv.Atoi(c.QueryParam("studentId"))
	fines, err := h.svc.ListFines(c.Request().Context(), studentID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) AttachFine(c echo.Context) error {
	var req model.AttachFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	fine, err := h.svc.AttachFine(c.Request().Context(), req.LoanID, req.Type)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, fine)
}

func (h *Handler) PayFine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.PayFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.svc.PayFine(c.Request().Context(), id, req.Method); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) WaiveFine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	var req model.WaiveFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	if err := h.svc.WaiveFine(c.Request().Context(), id, actor, req.Reason); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
