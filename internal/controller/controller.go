package controller

import (
	"fmt"

	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// bindAndValidate reports malformed bodies as errs.ErrClient and otherwise
// returns whatever the validator rejected.
func bindAndValidate(e echo.Context, payload interface{}) error {
	if err := e.Bind(payload); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrClient, err)
	}

	return e.Validate(payload)
}

func writeRequestError(e echo.Context, err error, component string) error {
	log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", component).Msg("")

	if validationErrs := response.ValidationErrors(err); validationErrs != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validationErrs)
	}

	return response.WriteErrorResponse(e, err, nil)
}

func parseFilter(e echo.Context) (pkgdto.Filter, error) {
	return pkgdto.ParseFilter(e.QueryParam("page"), e.QueryParam("size"))
}
