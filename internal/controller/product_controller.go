package controller

import (
	"strconv"

	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/middleware"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type ProductController struct {
	service service.ProductService
}

// CreateProductController registers the catalogue routes. isSeller must admit
// both sellers and admins; ownership is checked by the service.
func CreateProductController(g *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc, isSeller echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}

	g.GET("/products", pc.GetProducts)
	g.GET("/products/topOffer", pc.GetTopOffers)
	g.GET("/products/advertise/:bool", pc.GetAdvertisedProduct)
	g.GET("/products/:id", pc.GetProductByID)
	g.POST("/products", pc.AddProduct, isLoggedIn, isSeller)
	g.PATCH("/products/:id", pc.UpdateProduct, isLoggedIn, isSeller)
	g.DELETE("/products/:id", pc.DeleteProduct, isLoggedIn, isSeller)
}

func (pc *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "AddProduct")
	}

	resp, err := pc.service.AddProduct(e.Request().Context(), middleware.Actor(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (pc *ProductController) GetProducts(e echo.Context) error {
	filter, err := parseFilter(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := pc.service.GetProducts(e.Request().Context(), e.QueryParam("categoryName"), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (pc *ProductController) GetTopOffers(e echo.Context) error {
	filter, err := parseFilter(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := pc.service.GetTopOffers(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (pc *ProductController) GetProductByID(e echo.Context) error {
	product, err := pc.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, product)
}

func (pc *ProductController) GetAdvertisedProduct(e echo.Context) error {
	advertised, err := strconv.ParseBool(e.Param("bool"))
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	product, err := pc.service.GetAdvertisedProduct(e.Request().Context(), advertised)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, product)
}

func (pc *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductUpdateRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "UpdateProduct")
	}

	resp, err := pc.service.UpdateProduct(e.Request().Context(), middleware.Actor(e), e.Param("id"), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (pc *ProductController) DeleteProduct(e echo.Context) error {
	resp, err := pc.service.DeleteProduct(e.Request().Context(), middleware.Actor(e), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}
