package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(usersCollection).InsertOne(ctx, data)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return id, errs.ErrEmailAlreadyUsed
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return insertedID(result), nil
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context, role string) (data []domain.User, err error) {
	filter := bson.D{}
	if role != "" {
		filter = append(filter, bson.E{Key: "role", Value: role})
	}

	cursor, err := r.db.Collection(usersCollection).Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	data = []domain.User{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (user domain.User, err error) {
	filter := bson.D{{Key: "email", Value: email}}

	err = r.db.Collection(usersCollection).FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	err = findByID(ctx, r.db.Collection(usersCollection), id, &user, "GetUserByID")
	return
}

func (r *MongoDBUserRepositoryImpl) UpdateUser(ctx context.Context, id string, fields bson.M) (result dto.UpdateResponse, err error) {
	return updateOne(ctx, r.db.Collection(usersCollection), id, fields, "UpdateUser")
}

func (r *MongoDBUserRepositoryImpl) DeleteUserByEmail(ctx context.Context, email string) (result dto.DeleteResponse, err error) {
	filter := bson.D{{Key: "email", Value: email}}
	return deleteOne(ctx, r.db.Collection(usersCollection), filter, "DeleteUserByEmail")
}
