package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func parseObjectID(ctx context.Context, id string, component string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return objectID, errs.ErrInvalidID
	}

	return objectID, nil
}

func insertedID(result *mongo.InsertOneResult) primitive.ObjectID {
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id
}

func paginate(opts *options.FindOptions, param pkgdto.Filter) *options.FindOptions {
	if param.Paginate {
		opts.SetSkip(param.Skip()).SetLimit(param.Limit())
	}
	return opts
}

// ownerFilter matches on whichever of userName and userEmail is set.
func ownerFilter(owner dto.OwnerQuery) bson.D {
	filter := bson.D{}
	if owner.UserName != "" {
		filter = append(filter, bson.E{Key: "userName", Value: owner.UserName})
	}
	if owner.UserEmail != "" {
		filter = append(filter, bson.E{Key: "userEmail", Value: owner.UserEmail})
	}
	return filter
}

func updateOne(ctx context.Context, collection *mongo.Collection, id string, fields bson.M, component string) (result dto.UpdateResponse, err error) {
	objectID, err := parseObjectID(ctx, id, component)
	if err != nil {
		return
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	update := bson.D{{Key: "$set", Value: fields}}

	res, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return dto.UpdateResponse{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

func deleteOne(ctx context.Context, collection *mongo.Collection, filter bson.D, component string) (result dto.DeleteResponse, err error) {
	res, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	return dto.DeleteResponse{
		Acknowledged: true,
		DeletedCount: res.DeletedCount,
	}, nil
}

func deleteByID(ctx context.Context, collection *mongo.Collection, id string, component string) (result dto.DeleteResponse, err error) {
	objectID, err := parseObjectID(ctx, id, component)
	if err != nil {
		return
	}

	return deleteOne(ctx, collection, bson.D{{Key: "_id", Value: objectID}}, component)
}

func findByID(ctx context.Context, collection *mongo.Collection, id string, out interface{}, component string) error {
	objectID, err := parseObjectID(ctx, id, component)
	if err != nil {
		return err
	}

	filter := bson.D{{Key: "_id", Value: objectID}}
	err = collection.FindOne(ctx, filter).Decode(out)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		if err == mongo.ErrNoDocuments {
			return errs.ErrNotFound
		}

		return err
	}

	return nil
}
