package dto

type BookingRequest struct {
	ProductID       string  `json:"productId" validate:"required"`
	ProductName     string  `json:"productName"`
	ProductImage    string  `json:"productImage"`
	Price           float64 `json:"price" validate:"gte=0"`
	UserName        string  `json:"userName"`
	UserEmail       string  `json:"userEmail" validate:"omitempty,email"`
	Phone           string  `json:"phone"`
	MeetingLocation string  `json:"meetingLocation"`
	SellerEmail     string  `json:"sellerEmail" validate:"omitempty,email"`
}
