package middleware

import (
	"context"
	"errors"

	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/response"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

const roleContextKey = "role"

type RoleResolver interface {
	GetRole(ctx context.Context, email string) (role string, err error)
}

// IsLoggedIn verifies the bearer token. A missing or malformed header is 401,
// a token that fails verification is 403.
func IsLoggedIn(secret string) echo.MiddlewareFunc {
	return echomiddleware.JWTWithConfig(echomiddleware.JWTConfig{
		SigningKey: []byte(secret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			if errors.Is(err, echomiddleware.ErrJWTMissing) {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			log.Ctx(c.Request().Context()).Warn().Err(err).Str("component", "IsLoggedIn").Msg("")
			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		},
	})
}

// RequireRole must run after IsLoggedIn. It resolves the role of the token's
// email claim and rejects callers whose role is not listed.
func RequireRole(resolver RoleResolver, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := utils.ExtractTokenEmail(c)
			if email == "" {
				return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
			}

			role, err := resolver.GetRole(c.Request().Context(), email)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			for _, allowed := range roles {
				if role == allowed {
					c.Set(roleContextKey, role)
					return next(c)
				}
			}

			return response.WriteErrorResponse(c, errs.ErrForbidden, nil)
		}
	}
}

// ResolveRole must run after IsLoggedIn. It records the caller's role for
// handlers that scope their results by it, letting unknown emails through
// with no role.
func ResolveRole(resolver RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := utils.ExtractTokenEmail(c)
			if email == "" {
				return next(c)
			}

			role, err := resolver.GetRole(c.Request().Context(), email)
			if err != nil {
				return response.WriteErrorResponse(c, err, nil)
			}

			if role != "" {
				c.Set(roleContextKey, role)
			}
			return next(c)
		}
	}
}

// Actor describes the caller of an authenticated route. Role is only set on
// routes guarded by RequireRole or ResolveRole.
func Actor(c echo.Context) dto.Actor {
	role, _ := c.Get(roleContextKey).(string)
	return dto.Actor{
		Email: utils.ExtractTokenEmail(c),
		Role:  role,
	}
}
