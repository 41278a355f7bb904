package handler

import (
	"net/http"
	"strconv"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Issue(c echo.Context) error {
	var req model.IssueRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	receipt, err := h.svc.Issue(c.Request().Context(), req.StudentID, req.BookCopyID, actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, receipt)
}

func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	receipt, err := h.svc.Return(c.Request().Context(), req.BookCopyID, actor, req.Notes)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (h *Handler) MarkLoanLost(c echo.Context) error {
	type req struct {
		BookCopyID int `json:"bookCopyId" validate:"required,min=1"`
	}
	var r req
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(r); err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	receipt, err := h.svc.MarkLoanLost(c.Request().Context(), r.BookCopyID, actor)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, receipt)
}

func (h *Handler) ListLoans(c echo.Context) error {
	studentID, _ := strconv.Atoi(c.QueryParam("studentId"))
	status := model.LoanStatus(c.QueryParam("status"))
	loans, err := h.svc.ListLoans(c.Request().Context(), studentID, status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}
