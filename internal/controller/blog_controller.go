package controller

import (
	"github.com/alimikegami/bdseller-service/internal/service"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
)

type BlogController struct {
	service service.BlogService
}

func CreateBlogController(g *echo.Group, service service.BlogService) {
	bc := BlogController{
		service: service,
	}

	g.GET("/blogs", bc.GetBlogs)
	g.GET("/blogs/:id", bc.GetBlogByID)
}

func (bc *BlogController) GetBlogs(e echo.Context) error {
	filter, err := parseFilter(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	blogs, err := bc.service.GetBlogs(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, blogs)
}

func (bc *BlogController) GetBlogByID(e echo.Context) error {
	blog, err := bc.service.GetBlogByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, blog)
}
