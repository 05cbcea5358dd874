package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return insertedID(result), nil
}

// GetProducts sorts on the server before skip/limit are applied, so a top
// offer page is a slice of the globally sorted list.
func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, query dto.ProductQuery, param pkgdto.Filter) (data []domain.Product, err error) {
	filter := bson.D{}
	if query.CategoryName != "" {
		filter = append(filter, bson.E{Key: "productCategory", Value: query.CategoryName})
	}

	opts := options.Find()
	if query.TopOffer {
		// _id breaks ties so skip/limit windows never overlap
		opts.SetSort(bson.D{{Key: "saveAmount", Value: -1}, {Key: "_id", Value: 1}})
	}
	opts = paginate(opts, param)

	cursor, err := r.db.Collection(productsCollection).Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection(productsCollection).EstimatedDocumentCount(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	err = findByID(ctx, r.db.Collection(productsCollection), id, &product, "GetProductByID")
	return
}

func (r *MongoDBProductRepositoryImpl) GetLatestAdvertisedProduct(ctx context.Context) (product domain.Product, err error) {
	filter := bson.D{{Key: "isAdvertised", Value: true}}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAdvertised", Value: -1}})

	err = r.db.Collection(productsCollection).FindOne(ctx, filter, opts).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetLatestAdvertisedProduct").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, id string, fields bson.M) (result dto.UpdateResponse, err error) {
	return updateOne(ctx, r.db.Collection(productsCollection), id, fields, "UpdateProduct")
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (result dto.DeleteResponse, err error) {
	return deleteByID(ctx, r.db.Collection(productsCollection), id, "DeleteProduct")
}
