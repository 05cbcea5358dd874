package controller

import (
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(g *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	uc := UserController{
		service: service,
	}

	g.POST("/createJwtToken", uc.CreateToken, isLoggedIn)
	g.POST("/users", uc.AddUser)
	g.GET("/users", uc.GetUsers, isLoggedIn, isAdmin)
	g.DELETE("/users", uc.DeleteUser, isLoggedIn, isAdmin)
	g.GET("/users/admin/:email", uc.CheckAdmin, isLoggedIn)
	g.GET("/users/seller/:email", uc.CheckSeller, isLoggedIn)
	g.GET("/users/seller", uc.GetSellerVerification, isLoggedIn)
	g.PATCH("/users/seller/:id", uc.VerifySeller, isLoggedIn, isAdmin)
	g.GET("/users/buyers/:email", uc.CheckBuyer, isLoggedIn)
}

func (uc *UserController) CreateToken(e echo.Context) error {
	payload := map[string]interface{}{}
	if err := e.Bind(&payload); err != nil {
		return writeRequestError(e, errs.ErrClient, "CreateToken")
	}

	resp, err := uc.service.CreateToken(e.Request().Context(), utils.ExtractTokenEmail(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "AddUser")
	}

	resp, err := uc.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) GetUsers(e echo.Context) error {
	users, err := uc.service.GetUsers(e.Request().Context(), e.QueryParam("role"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, users)
}

func (uc *UserController) DeleteUser(e echo.Context) error {
	resp, err := uc.service.DeleteUser(e.Request().Context(), e.QueryParam("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) CheckAdmin(e echo.Context) error {
	resp, err := uc.service.CheckAdmin(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) CheckSeller(e echo.Context) error {
	resp, err := uc.service.CheckSeller(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) CheckBuyer(e echo.Context) error {
	resp, err := uc.service.CheckBuyer(e.Request().Context(), e.Param("email"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) GetSellerVerification(e echo.Context) error {
	resp, err := uc.service.GetSellerVerification(e.Request().Context(), e.QueryParam("sellerId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (uc *UserController) VerifySeller(e echo.Context) error {
	payload := dto.SellerVerificationRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "VerifySeller")
	}

	resp, err := uc.service.VerifySeller(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}
