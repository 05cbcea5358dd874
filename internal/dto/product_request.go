package dto

type ProductRequest struct {
	ProductName        string   `json:"productName" validate:"required"`
	ProductCategory    string   `json:"productCategory" validate:"required"`
	ProductImage       string   `json:"productImage"`
	ProductDescription string   `json:"productDescription"`
	Condition          string   `json:"condition"`
	Location           string   `json:"location"`
	OriginalPrice      float64  `json:"originalPrice" validate:"gte=0"`
	Price              float64  `json:"price" validate:"gte=0"`
	SaveAmount         *float64 `json:"saveAmount" validate:"omitempty,gte=0"`
	YearsOfUse         float64  `json:"yearsOfUse" validate:"gte=0"`
	SellerName         string   `json:"sellerName"`
	SellerPhone        string   `json:"sellerPhone"`
	IsAdvertised       bool     `json:"isAdvertised"`
}

// ProductUpdateRequest only carries the fields present in the PATCH body.
type ProductUpdateRequest struct {
	ProductName        *string  `json:"productName" validate:"omitempty,min=1"`
	ProductCategory    *string  `json:"productCategory" validate:"omitempty,min=1"`
	ProductImage       *string  `json:"productImage"`
	ProductDescription *string  `json:"productDescription"`
	Condition          *string  `json:"condition"`
	Location           *string  `json:"location"`
	OriginalPrice      *float64 `json:"originalPrice" validate:"omitempty,gte=0"`
	Price              *float64 `json:"price" validate:"omitempty,gte=0"`
	SaveAmount         *float64 `json:"saveAmount" validate:"omitempty,gte=0"`
	YearsOfUse         *float64 `json:"yearsOfUse" validate:"omitempty,gte=0"`
	SellerName         *string  `json:"sellerName"`
	SellerPhone        *string  `json:"sellerPhone"`
	IsAdvertised       *bool    `json:"isAdvertised"`
}

type ProductQuery struct {
	CategoryName string
	TopOffer     bool
}
