package service

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/utils"
)

type WishListServiceImpl struct {
	repo repository.WishListRepository
	now  func() int64
}

func CreateWishListService(repo repository.WishListRepository) WishListService {
	return &WishListServiceImpl{repo: repo, now: utils.NowMillis}
}

func (s *WishListServiceImpl) AddWishList(ctx context.Context, actor dto.Actor, req dto.WishListRequest) (resp dto.InsertResponse, err error) {
	userEmail := ownerEmail(actor, req.UserEmail)
	if userEmail == "" {
		return resp, errs.ErrClient
	}

	id, err := s.repo.AddWishList(ctx, domain.WishList{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		Price:           req.Price,
		UserName:        req.UserName,
		UserEmail:       userEmail,
		WishListCreated: s.now(),
	})
	if err != nil {
		return
	}

	return insertResponse(id), nil
}

func (s *WishListServiceImpl) GetWishLists(ctx context.Context, owner dto.OwnerQuery) (wishLists []domain.WishList, err error) {
	if owner.IsEmpty() {
		return nil, errs.ErrMissingQueryParam
	}

	return s.repo.GetWishLists(ctx, owner)
}

func (s *WishListServiceImpl) DeleteWishList(ctx context.Context, actor dto.Actor, productID string) (resp dto.DeleteResponse, err error) {
	if actor.Email == "" {
		return resp, errs.ErrForbidden
	}

	return s.repo.DeleteWishListByProductID(ctx, productID, actor.Email)
}

// ownerEmail prefers the authenticated email over the one in the body.
func ownerEmail(actor dto.Actor, requested string) string {
	if actor.Email != "" {
		return actor.Email
	}
	return requested
}
