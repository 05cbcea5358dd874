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

type MongoDBWishListRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBWishListRepository(db *mongo.Database) WishListRepository {
	return &MongoDBWishListRepositoryImpl{db: db}
}

func (r *MongoDBWishListRepositoryImpl) AddWishList(ctx context.Context, data domain.WishList) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(wishListsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddWishList").Msg("")
		return
	}

	return insertedID(result), nil
}

func (r *MongoDBWishListRepositoryImpl) GetWishLists(ctx context.Context, owner dto.OwnerQuery) (data []domain.WishList, err error) {
	cursor, err := r.db.Collection(wishListsCollection).Find(ctx, ownerFilter(owner))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishLists").Msg("")
		return
	}

	data = []domain.WishList{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetWishLists").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBWishListRepositoryImpl) DeleteWishListByProductID(ctx context.Context, productID string, userEmail string) (result dto.DeleteResponse, err error) {
	filter := bson.D{
		{Key: "productId", Value: productID},
		{Key: "userEmail", Value: userEmail},
	}

	return deleteOne(ctx, r.db.Collection(wishListsCollection), filter, "DeleteWishListByProductID")
}
