package handler

import (
	"errors"
	"net/http"

	"github.com/fitclass/booking-service/internal/dto"
	"github.com/fitclass/booking-service/internal/service"
	"github.com/fitclass/booking-service/internal/timezone"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/book", h.BookClass)
	e.GET("/bookings", h.ListBookings)
}

func (h *BookingHandler) BookClass(c echo.Context) error {
	var req dto.BookClassRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	// Resolve the display zone before touching storage so a bad zone can
	// never leave a committed booking without a renderable response.
	tz := req.Timezone
	if tz == "" {
		tz = timezone.BaseZone
	}
	loc, err := timezone.LoadZone(tz)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.BookClass(c.Request().Context(), req.ClassID, req.ClientName, req.ClientEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNoSlotsAvailable):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	bookedAt, err := timezone.ConvertIn(booking.BookedAt, loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking, bookedAt))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	var q dto.ListBookingsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	tz := q.Timezone
	if tz == "" {
		tz = timezone.BaseZone
	}
	loc, err := timezone.LoadZone(tz)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), q.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		bookedAt, err := timezone.ConvertIn(b.BookedAt, loc)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "corrupted booking record")
		}
		resp[i] = dto.ToBookingResponse(&b, bookedAt)
	}

	return c.JSON(http.StatusOK, resp)
}
