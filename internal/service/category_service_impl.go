package service

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/pkg/utils"
)

type CategoryServiceImpl struct {
	repo repository.CategoryRepository
	now  func() int64
}

func CreateCategoryService(repo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{repo: repo, now: utils.NowMillis}
}

func (s *CategoryServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.InsertResponse, err error) {
	id, err := s.repo.AddCategory(ctx, domain.Category{
		CategoryName:    req.CategoryName,
		CategoryImage:   req.CategoryImage,
		CategoryCreated: s.now(),
	})
	if err != nil {
		return
	}

	return insertResponse(id), nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (categories []domain.Category, err error) {
	return s.repo.GetCategories(ctx)
}

// UpdateCategory only ever renames; other fields in the body are ignored.
func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (resp dto.UpdateResponse, err error) {
	return s.repo.UpdateCategoryName(ctx, id, req.CategoryName)
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (resp dto.DeleteResponse, err error) {
	return s.repo.DeleteCategory(ctx, id)
}
