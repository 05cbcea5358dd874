package dto

import "github.com/alimikegami/bdseller-service/internal/domain"

// Actor is the authenticated caller, resolved from the token's email claim.
type Actor struct {
	Email string
	Role  string
}

func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}
