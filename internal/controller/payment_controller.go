package controller

import (
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/middleware"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type PaymentController struct {
	service service.PaymentService
}

func CreatePaymentController(g *echo.Group, service service.PaymentService, isLoggedIn echo.MiddlewareFunc) {
	pc := PaymentController{
		service: service,
	}

	g.POST("/create-payment-intent", pc.CreatePaymentIntent, isLoggedIn)
	g.POST("/payment", pc.RecordPayment, isLoggedIn)
}

func (pc *PaymentController) CreatePaymentIntent(e echo.Context) error {
	payload := dto.PaymentIntentRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "CreatePaymentIntent")
	}

	resp, err := pc.service.CreatePaymentIntent(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (pc *PaymentController) RecordPayment(e echo.Context) error {
	payload := dto.PaymentRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "RecordPayment")
	}

	resp, err := pc.service.RecordPayment(e.Request().Context(), middleware.Actor(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}
