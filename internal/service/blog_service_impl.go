package service

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/repository"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
)

type BlogServiceImpl struct {
	repo repository.BlogRepository
}

func CreateBlogService(repo repository.BlogRepository) BlogService {
	return &BlogServiceImpl{repo: repo}
}

func (s *BlogServiceImpl) GetBlogs(ctx context.Context, filter pkgdto.Filter) (blogs []domain.Blog, err error) {
	return s.repo.GetBlogs(ctx, filter)
}

func (s *BlogServiceImpl) GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error) {
	return s.repo.GetBlogByID(ctx, id)
}
