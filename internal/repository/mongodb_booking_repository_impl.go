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

type MongoDBBookingRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoDBBookingRepositoryImpl{db: db}
}

func (r *MongoDBBookingRepositoryImpl) AddBooking(ctx context.Context, data domain.Booking) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(bookingsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddBooking").Msg("")
		return
	}

	return insertedID(result), nil
}

func (r *MongoDBBookingRepositoryImpl) GetBookings(ctx context.Context, owner dto.OwnerQuery) (data []domain.Booking, err error) {
	cursor, err := r.db.Collection(bookingsCollection).Find(ctx, ownerFilter(owner))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBookings").Msg("")
		return
	}

	data = []domain.Booking{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetBookings").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBBookingRepositoryImpl) GetBookingByID(ctx context.Context, id string) (booking domain.Booking, err error) {
	err = findByID(ctx, r.db.Collection(bookingsCollection), id, &booking, "GetBookingByID")
	return
}

func (r *MongoDBBookingRepositoryImpl) DeleteBookingByProductID(ctx context.Context, productID string, userEmail string) (result dto.DeleteResponse, err error) {
	filter := bson.D{
		{Key: "productId", Value: productID},
		{Key: "userEmail", Value: userEmail},
	}

	return deleteOne(ctx, r.db.Collection(bookingsCollection), filter, "DeleteBookingByProductID")
}
