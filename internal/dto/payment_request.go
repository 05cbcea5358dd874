package dto

type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentRequest struct {
	Price         float64 `json:"price" validate:"gt=0"`
	TransactionID string  `json:"transactionId"`
	BookingID     string  `json:"bookingId"`
	ProductID     string  `json:"productId"`
	UserEmail     string  `json:"userEmail" validate:"omitempty,email"`
}
