package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(categoriesCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		return
	}

	return insertedID(result), nil
}

func (r *MongoDBCategoryRepositoryImpl) GetCategories(ctx context.Context) (data []domain.Category, err error) {
	cursor, err := r.db.Collection(categoriesCollection).Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	data = []domain.Category{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategories").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCategoryRepositoryImpl) UpdateCategoryName(ctx context.Context, id string, name string) (result dto.UpdateResponse, err error) {
	return updateOne(ctx, r.db.Collection(categoriesCollection), id, bson.M{"categoryName": name}, "UpdateCategoryName")
}

func (r *MongoDBCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (result dto.DeleteResponse, err error) {
	return deleteByID(ctx, r.db.Collection(categoriesCollection), id, "DeleteCategory")
}
