package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) LoanTrend(c echo.Context) error {
	days, err := strconv.Atoi(c.QueryParam("days"))
	if err != nil || days < 1 {
		days = 30
	}
	points, err := h.svc.LoanTrend(c.Request().Context(), days)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, points)
}

func (h *Handler) ExportLoans(c echo.Context) error {
	data, err := h.svc.ExportLoansCSV(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="loans.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
