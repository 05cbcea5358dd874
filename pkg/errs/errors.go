package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer    = errors.New("Internal server error")
	ErrClient            = errors.New("Bad request")
	ErrInvalidID         = errors.New("Invalid id")
	ErrMissingQueryParam = errors.New("Missing required query parameter")
	ErrInvalidPagination = errors.New("page and size must be integers with page >= 0 and size > 0")
	ErrEmptyUpdate       = errors.New("No updatable field supplied")
	ErrNotLoggedIn       = errors.New("unauthorize access")
	ErrForbidden         = errors.New("Forbidden Access")
	ErrNotFound          = errors.New("Resource not found")
	ErrEmailAlreadyUsed  = errors.New("Email has already been used")
	ErrPaymentGateway    = errors.New("Payment gateway unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:    ErrStatusInternalServer,
	ErrClient:            ErrStatusClient,
	ErrInvalidID:         ErrStatusClient,
	ErrMissingQueryParam: ErrStatusClient,
	ErrInvalidPagination: ErrStatusClient,
	ErrEmptyUpdate:       ErrStatusClient,
	ErrNotLoggedIn:       ErrStatusNotLoggedIn,
	ErrForbidden:         ErrStatusNoPermission,
	ErrNotFound:          ErrStatusNotFound,
	ErrEmailAlreadyUsed:  ErrStatusConflict,
	ErrPaymentGateway:    ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for knownErr, errStatusCode := range errorMap {
		if errors.Is(err, knownErr) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// IsKnown reports whether err is, or wraps, one of the errors declared above.
func IsKnown(err error) bool {
	for knownErr := range errorMap {
		if errors.Is(err, knownErr) {
			return true
		}
	}
	return false
}
