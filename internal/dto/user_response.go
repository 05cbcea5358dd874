package dto

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type SellerStatusResponse struct {
	IsSeller bool   `json:"isSeller"`
	SellerID string `json:"sellerId"`
}

type SellerVerificationResponse struct {
	IsVerified bool `json:"isVerified"`
}

type BuyerStatusResponse struct {
	IsBuyer bool `json:"isBuyer"`
}
