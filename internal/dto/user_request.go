package dto

type UserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Image string `json:"image" validate:"omitempty,url"`
	Role  string `json:"role" validate:"omitempty,oneof=user seller"`
}

type SellerVerificationRequest struct {
	IsVerified *bool `json:"isVerified" validate:"required"`
}
