package handler

import (
	"net/http"
	"strconv"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/auth"
	"github.com/labstack/echo/v4"
)

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	st, err := h.svc.Register(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, st)
}

func (h *Handler) GetStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	st, err := h.svc.GetStudent(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) ListStudents(c echo.Context) error {
	status := model.StudentStatus(c.QueryParam("status"))
	students, err := h.svc.ListStudents(c.Request().Context(), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, students)
}

func (h *Handler) ApproveStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	if err := h.svc.ApproveStudent(c.Request().Context(), id, actor); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) RejectStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	actor, err := auth.Actor(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	type req struct {
		Reason string `json:"reason" validate:"required"`
	}
	var r req
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(r); err != nil {
		return err
	}
	if err := h.svc.RejectStudent(c.Request().Context(), id, r.Reason, actor); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) BlockStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.BlockStudent(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) UnblockStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.UnblockStudent(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
