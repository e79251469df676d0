package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atypikhouse/atypikhouse-api/internal/api/metrics"
	"github.com/atypikhouse/atypikhouse-api/internal/core/ports"
)

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

type createBookingRequest struct {
	PropertyID string    `json:"property_id" validate:"required"`
	CheckIn    time.Time `json:"check_in"    validate:"required"`
	CheckOut   time.Time `json:"check_out"   validate:"required"`
	Guests     int       `json:"guests"      validate:"required,min=1"`
}

// Create places a pending booking for the caller.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Create(c.Request().Context(), claims, ports.CreateBookingInput{
		PropertyID: req.PropertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// ListMine returns the caller's bookings, newest first.
//
// @Summary      List my bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Booking
// @Router       /bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	bookings, err := h.service.ListMine(c.Request().Context(), claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bookings)
}

// Confirm moves a pending booking to confirmed; the booked property's owner
// or an admin only.
//
// @Summary      Confirm a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Booking id"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	booking, err := h.service.Confirm(c.Request().Context(), claims, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
