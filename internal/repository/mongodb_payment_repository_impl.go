package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBPaymentRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBPaymentRepository(db *mongo.Database) PaymentRepository {
	return &MongoDBPaymentRepositoryImpl{db: db}
}

func (r *MongoDBPaymentRepositoryImpl) AddPayment(ctx context.Context, data domain.Payment) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(paymentsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddPayment").Msg("")
		return
	}

	return insertedID(result), nil
}
