package dto

type CategoryRequest struct {
	CategoryName  string `json:"categoryName" validate:"required"`
	CategoryImage string `json:"categoryImage"`
}

type CategoryUpdateRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}
