package controller

import (
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(g *echo.Group, service service.CategoryService, isLoggedIn echo.MiddlewareFunc, isAdmin echo.MiddlewareFunc) {
	cc := CategoryController{
		service: service,
	}

	g.GET("/categories", cc.GetCategories)
	g.POST("/categories", cc.AddCategory, isLoggedIn, isAdmin)
	g.PATCH("/categories/:id", cc.UpdateCategory, isLoggedIn, isAdmin)
	g.DELETE("/categories/:id", cc.DeleteCategory, isLoggedIn, isAdmin)
}

func (cc *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "AddCategory")
	}

	resp, err := cc.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (cc *CategoryController) GetCategories(e echo.Context) error {
	categories, err := cc.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, categories)
}

func (cc *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryUpdateRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "UpdateCategory")
	}

	resp, err := cc.service.UpdateCategory(e.Request().Context(), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (cc *CategoryController) DeleteCategory(e echo.Context) error {
	resp, err := cc.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}
