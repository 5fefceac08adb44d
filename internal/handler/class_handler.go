package handler

import (
	"net/http"

	"github.com/fitclass/booking-service/internal/dto"
	"github.com/fitclass/booking-service/internal/service"
	"github.com/fitclass/booking-service/internal/timezone"
	"github.com/labstack/echo/v4"
)

type ClassHandler struct {
	svc service.CatalogService
}

func NewClassHandler(svc service.CatalogService) *ClassHandler {
	return &ClassHandler{svc: svc}
}

func (h *ClassHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/classes", h.ListClasses)
}

func (h *ClassHandler) ListClasses(c echo.Context) error {
	tz := c.QueryParam("timezone")
	if tz == "" {
		tz = timezone.BaseZone
	}
	loc, err := timezone.LoadZone(tz)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	classes, err := h.svc.ListClasses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ClassResponse, len(classes))
	for i, class := range classes {
		converted, err := timezone.ConvertIn(class.DateTime, loc)
		if err != nil {
			// Stored rows are written by this service only; failing to parse
			// one means corrupted data, not caller error.
			return echo.NewHTTPError(http.StatusInternalServerError, "corrupted class schedule")
		}
		resp[i] = dto.ToClassResponse(&class, converted)
	}

	return c.JSON(http.StatusOK, resp)
}
