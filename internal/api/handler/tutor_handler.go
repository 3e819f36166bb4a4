package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campulse/campulse-api/internal/core/ports"
)

type TutorHandler struct {
	service ports.TutorService
}

func NewTutorHandler(service ports.TutorService) *TutorHandler {
	return &TutorHandler{service: service}
}

// List handles GET /v1/tutors.
//
// @Summary      List tutors
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Param        course_code  query     string  false  "Case-insensitive course code fragment, e.g. csc"
// @Success      200          {array}   domain.Tutor
// @Router       /v1/tutors [get]
func (h *TutorHandler) List(c echo.Context) error {
	tutors, err := h.service.List(c.Request().Context(), c.QueryParam("course_code"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutors)
}

// Get handles GET /v1/tutors/:id.
//
// @Summary      Get a tutor
// @Tags         tutors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Tutor id"
// @Success      200  {object}  domain.Tutor
// @Failure      404  {object}  errorResponse
// @Router       /v1/tutors/{id} [get]
func (h *TutorHandler) Get(c echo.Context) error {
	tutor, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutor)
}
