package dto

type WishListRequest struct {
	ProductID    string  `json:"productId" validate:"required"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
	Price        float64 `json:"price" validate:"gte=0"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail" validate:"omitempty,email"`
}

// OwnerQuery identifies whose wish lists or bookings to list.
type OwnerQuery struct {
	UserName  string
	UserEmail string
}

func (q OwnerQuery) IsEmpty() bool {
	return q.UserName == "" && q.UserEmail == ""
}
