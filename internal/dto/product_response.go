package dto

import "github.com/alimikegami/bdseller-service/internal/domain"

type ProductListResponse struct {
	TotalProduct int64            `json:"totalProduct"`
	Products     []domain.Product `json:"products"`
}
