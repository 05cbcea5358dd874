package controller

import (
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/middleware"
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type WishListController struct {
	service service.WishListService
}

func CreateWishListController(g *echo.Group, service service.WishListService, isLoggedIn echo.MiddlewareFunc) {
	wc := WishListController{
		service: service,
	}

	g.POST("/products/wishLists", wc.AddWishList, isLoggedIn)
	g.GET("/wishLists", wc.GetWishLists, isLoggedIn)
	g.DELETE("/wishLists/:productId", wc.DeleteWishList, isLoggedIn)
}

func (wc *WishListController) AddWishList(e echo.Context) error {
	payload := dto.WishListRequest{}
	if err := bindAndValidate(e, &payload); err != nil {
		return writeRequestError(e, err, "AddWishList")
	}

	resp, err := wc.service.AddWishList(e.Request().Context(), middleware.Actor(e), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (wc *WishListController) GetWishLists(e echo.Context) error {
	wishLists, err := wc.service.GetWishLists(e.Request().Context(), ownerQuery(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, wishLists)
}

func (wc *WishListController) DeleteWishList(e echo.Context) error {
	resp, err := wc.service.DeleteWishList(e.Request().Context(), middleware.Actor(e), e.Param("productId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, resp)
}

func ownerQuery(e echo.Context) dto.OwnerQuery {
	return dto.OwnerQuery{
		UserName:  e.QueryParam("userName"),
		UserEmail: e.QueryParam("userEmail"),
	}
}
