package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBBlogRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBBlogRepository(db *mongo.Database) BlogRepository {
	return &MongoDBBlogRepositoryImpl{db: db}
}

func (r *MongoDBBlogRepositoryImpl) GetBlogs(ctx context.Context, param pkgdto.Filter) (data []domain.Blog, err error) {
	cursor, err := r.db.Collection(blogsCollection).Find(ctx, bson.D{}, paginate(options.Find(), param))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBlogs").Msg("")
		return
	}

	data = []domain.Blog{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBlogs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBBlogRepositoryImpl) GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error) {
	err = findByID(ctx, r.db.Collection(blogsCollection), id, &blog, "GetBlogByID")
	return
}
