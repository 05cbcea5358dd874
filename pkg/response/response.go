package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// WriteSuccessResponse writes data as the bare response body.
func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	// store failures carry driver text, which is only shown outside production
	if !c.Echo().Debug && !errs.IsKnown(err) {
		resp.Message = errs.ErrInternalServer.Error()
	}

	return c.JSON(statusCode, resp)
}

func ValidationErrors(err error) []ValidationError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		result = append(result, ValidationError{
			Field: fieldErr.Field(),
			Tag:   fieldErr.Tag(),
		})
	}

	return result
}
