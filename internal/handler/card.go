package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) IssueCard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	card, err := h.svc.IssueCard(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, card)
}

func (h *Handler) ReportCardLost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.ReportCardLost(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) GetCardByBarcode(c echo.Context) error {
	barcode := c.Param("barcode")
	if barcode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "empty barcode")
	}
	card, err := h.svc.GetCardByBarcode(c.Request().Context(), barcode)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, card)
}
