package service

import (
	"context"
	"errors"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"go.mongodb.org/mongo-driver/bson"
)

// noCategory is what the storefront sends when no category is selected.
const noCategory = "undefined"

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	publisher EventPublisher
	now       func() int64
}

func CreateProductService(repo repository.ProductRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, publisher: publisher, now: utils.NowMillis}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, actor dto.Actor, req dto.ProductRequest) (resp dto.InsertResponse, err error) {
	now := s.now()
	product := domain.Product{
		ProductName:        req.ProductName,
		ProductCategory:    req.ProductCategory,
		ProductImage:       req.ProductImage,
		ProductDescription: req.ProductDescription,
		Condition:          req.Condition,
		Location:           req.Location,
		OriginalPrice:      req.OriginalPrice,
		Price:              req.Price,
		YearsOfUse:         req.YearsOfUse,
		SellerName:         req.SellerName,
		SellerEmail:        actor.Email,
		SellerPhone:        req.SellerPhone,
		IsAdvertised:       req.IsAdvertised,
		ProductCreated:     now,
	}

	if req.SaveAmount != nil {
		product.SaveAmount = *req.SaveAmount
	} else {
		product.SaveAmount = derivedSaveAmount(req.OriginalPrice, req.Price)
	}

	if req.IsAdvertised {
		product.CreatedAdvertised = now
	}

	id, err := s.repo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = id
	publishEvent(ctx, s.publisher, id.Hex(), EventProductCreated, product)

	return insertResponse(id), nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, categoryName string, filter pkgdto.Filter) (resp dto.ProductListResponse, err error) {
	if categoryName == noCategory {
		categoryName = ""
	}

	return s.listProducts(ctx, dto.ProductQuery{CategoryName: categoryName}, filter)
}

func (s *ProductServiceImpl) GetTopOffers(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error) {
	return s.listProducts(ctx, dto.ProductQuery{TopOffer: true}, filter)
}

// listProducts pairs the page with the estimated size of the whole
// collection, which ignores any category filter.
func (s *ProductServiceImpl) listProducts(ctx context.Context, query dto.ProductQuery, filter pkgdto.Filter) (resp dto.ProductListResponse, err error) {
	products, err := s.repo.GetProducts(ctx, query, filter)
	if err != nil {
		return
	}

	total, err := s.repo.CountProducts(ctx)
	if err != nil {
		return
	}

	if products == nil {
		products = []domain.Product{}
	}

	return dto.ProductListResponse{TotalProduct: total, Products: products}, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *ProductServiceImpl) GetAdvertisedProduct(ctx context.Context, advertised bool) (product *domain.Product, err error) {
	if !advertised {
		return nil, nil
	}

	latest, err := s.repo.GetLatestAdvertisedProduct(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &latest, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, actor dto.Actor, id string, req dto.ProductUpdateRequest) (resp dto.UpdateResponse, err error) {
	fields := s.productUpdateFields(req)
	if len(fields) == 0 {
		return resp, errs.ErrEmptyUpdate
	}

	current, err := s.authorizeOwner(ctx, actor, id)
	if err != nil {
		return
	}

	// a price change without an explicit saveAmount keeps the top offer
	// ranking in step with the new prices
	if req.SaveAmount == nil && (req.Price != nil || req.OriginalPrice != nil) {
		if current == nil {
			if current, err = s.findProduct(ctx, id); err != nil {
				return
			}
		}
		if current != nil {
			originalPrice, price := current.OriginalPrice, current.Price
			if req.OriginalPrice != nil {
				originalPrice = *req.OriginalPrice
			}
			if req.Price != nil {
				price = *req.Price
			}
			fields["saveAmount"] = derivedSaveAmount(originalPrice, price)
		}
	}

	resp, err = s.repo.UpdateProduct(ctx, id, fields)
	if err != nil {
		return
	}

	if resp.MatchedCount > 0 {
		publishEvent(ctx, s.publisher, id, EventProductUpdated, bson.M{"_id": id, "fields": fields})
	}

	return resp, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, actor dto.Actor, id string) (resp dto.DeleteResponse, err error) {
	if _, err = s.authorizeOwner(ctx, actor, id); err != nil {
		return
	}

	resp, err = s.repo.DeleteProduct(ctx, id)
	if err != nil {
		return
	}

	if resp.DeletedCount > 0 {
		publishEvent(ctx, s.publisher, id, EventProductDeleted, bson.M{"_id": id})
	}

	return resp, nil
}

// authorizeOwner lets admins through and restricts sellers to their own
// listings. Missing products are left to the write, which reports a zero count.
// The stored product is returned whenever it had to be loaded.
func (s *ProductServiceImpl) authorizeOwner(ctx context.Context, actor dto.Actor, id string) (*domain.Product, error) {
	if actor.IsAdmin() {
		return nil, nil
	}

	product, err := s.findProduct(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}

	if actor.Email == "" || product.SellerEmail != actor.Email {
		return nil, errs.ErrForbidden
	}

	return product, nil
}

// findProduct returns nil, not an error, when no product has the id.
func (s *ProductServiceImpl) findProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func derivedSaveAmount(originalPrice, price float64) float64 {
	if originalPrice > price {
		return originalPrice - price
	}
	return 0
}

func (s *ProductServiceImpl) productUpdateFields(req dto.ProductUpdateRequest) bson.M {
	fields := bson.M{}
	setString := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}
	setFloat := func(key string, value *float64) {
		if value != nil {
			fields[key] = *value
		}
	}

	setString("productName", req.ProductName)
	setString("productCategory", req.ProductCategory)
	setString("productImage", req.ProductImage)
	setString("productDescription", req.ProductDescription)
	setString("condition", req.Condition)
	setString("location", req.Location)
	setString("sellerName", req.SellerName)
	setString("sellerPhone", req.SellerPhone)
	setFloat("originalPrice", req.OriginalPrice)
	setFloat("price", req.Price)
	setFloat("saveAmount", req.SaveAmount)
	setFloat("yearsOfUse", req.YearsOfUse)

	if req.IsAdvertised != nil {
		fields["isAdvertised"] = *req.IsAdvertised
		if *req.IsAdvertised {
			fields["createdAdvertised"] = s.now()
		}
	}

	return fields
}
