package controller

import (
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/middleware"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type BookingController struct {
	service service.BookingService
}

// CreateBookingController expects withRole to resolve the caller's role, which
// scopes the booking reads.
func CreateBookingController(g *echo.Group, service service.BookingService, isLoggedIn echo.MiddlewareFunc, withRole echo.MiddlewareFunc) {
	bc := BookingController{
		service: service,
	}

	g.POST("/products/bookings", bc.AddBooking, isLoggedIn)
	g.GET("/bookings", bc.GetBookings, isLoggedIn, withRole)
	g.GET("/bookings/:id", bc.GetBookingByID, isLoggedIn, withRole)
	g.DELETE("/bookings/:productId", bc.DeleteBooking, isLoggedIn)
}

func (bc *BookingController) AddBooking(e echo.Context) error {
	payload := dto.BookingRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "AddBooking")
	}

	resp, err := bc.service.AddBooking(e.Request().Context(), middleware.Actor(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (bc *BookingController) GetBookings(e echo.Context) error {
	bookings, err := bc.service.GetBookings(e.Request().Context(), middleware.Actor(e), ownerQuery(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, bookings)
}

func (bc *BookingController) GetBookingByID(e echo.Context) error {
	booking, err := bc.service.GetBookingByID(e.Request().Context(), middleware.Actor(e), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, booking)
}

func (bc *BookingController) DeleteBooking(e echo.Context) error {
	resp, err := bc.service.DeleteBooking(e.Request().Context(), middleware.Actor(e), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}
