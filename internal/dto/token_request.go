package dto

type TokenResponse struct {
	Token string `json:"token"`
}

// RegistrationResponse hands a new user the first token for their email.
type RegistrationResponse struct {
	InsertResponse
	Token string `json:"token"`
}
