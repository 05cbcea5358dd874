package controller

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return objectID, errs.ErrInvalidID
	}
	return objectID, nil
}

type fakeUserRepository struct {
	users []domain.User
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.users = append(r.users, data)
	return data.ID, nil
}

func (r *fakeUserRepository) GetUsers(ctx context.Context, role string) ([]domain.User, error) {
	result := []domain.User{}
	for _, user := range r.users {
		if role == "" || user.Role == role {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	objectID, err := parseID(id)
	if err != nil {
		return domain.User{}, err
	}
	for _, user := range r.users {
		if user.ID == objectID {
			return user, nil
		}
	}
	return domain.User{}, errs.ErrNotFound
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, id string, fields bson.M) (dto.UpdateResponse, error) {
	objectID, err := parseID(id)
	if err != nil {
		return dto.UpdateResponse{}, err
	}
	for i, user := range r.users {
		if user.ID == objectID {
			if verified, ok := fields["isVerified"].(bool); ok {
				r.users[i].IsVerified = verified
			}
			return dto.UpdateResponse{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return dto.UpdateResponse{Acknowledged: true}, nil
}

func (r *fakeUserRepository) DeleteUserByEmail(ctx context.Context, email string) (dto.DeleteResponse, error) {
	for i, user := range r.users {
		if user.Email == email {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return dto.DeleteResponse{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return dto.DeleteResponse{Acknowledged: true}, nil
}

type fakeCategoryRepository struct {
	categories []domain.Category
}

func (r *fakeCategoryRepository) AddCategory(ctx context.Context, data domain.Category) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.categories = append(r.categories, data)
	return data.ID, nil
}

func (r *fakeCategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return append([]domain.Category{}, r.categories...), nil
}

func (r *fakeCategoryRepository) UpdateCategoryName(ctx context.Context, id string, name string) (dto.UpdateResponse, error) {
	objectID, err := parseID(id)
	if err != nil {
		return dto.UpdateResponse{}, err
	}
	for i, category := range r.categories {
		if category.ID == objectID {
			r.categories[i].CategoryName = name
			return dto.UpdateResponse{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return dto.UpdateResponse{Acknowledged: true}, nil
}

func (r *fakeCategoryRepository) DeleteCategory(ctx context.Context, id string) (dto.DeleteResponse, error) {
	objectID, err := parseID(id)
	if err != nil {
		return dto.DeleteResponse{}, err
	}
	for i, category := range r.categories {
		if category.ID == objectID {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return dto.DeleteResponse{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return dto.DeleteResponse{Acknowledged: true}, nil
}

type fakeWishListRepository struct {
	wishLists []domain.WishList
}

func (r *fakeWishListRepository) AddWishList(ctx context.Context, data domain.WishList) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.wishLists = append(r.wishLists, data)
	return data.ID, nil
}

func (r *fakeWishListRepository) GetWishLists(ctx context.Context, owner dto.OwnerQuery) ([]domain.WishList, error) {
	result := []domain.WishList{}
	for _, wishList := range r.wishLists {
		if (owner.UserEmail == "" || owner.UserEmail == wishList.UserEmail) &&
			(owner.UserName == "" || owner.UserName == wishList.UserName) {
			result = append(result, wishList)
		}
	}
	return result, nil
}

func (r *fakeWishListRepository) DeleteWishListByProductID(ctx context.Context, productID string, userEmail string) (dto.DeleteResponse, error) {
	for i, wishList := range r.wishLists {
		if wishList.ProductID == productID && wishList.UserEmail == userEmail {
			r.wishLists = append(r.wishLists[:i], r.wishLists[i+1:]...)
			return dto.DeleteResponse{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return dto.DeleteResponse{Acknowledged: true}, nil
}

// stubProductService records the caller of each write and answers with err.
type stubProductService struct {
	actor dto.Actor
	err   error
}

func (s *stubProductService) AddProduct(ctx context.Context, actor dto.Actor, req dto.ProductRequest) (dto.InsertResponse, error) {
	s.actor = actor
	if s.err != nil {
		return dto.InsertResponse{}, s.err
	}
	return dto.InsertResponse{Acknowledged: true, InsertedID: primitive.NewObjectID().Hex()}, nil
}

func (s *stubProductService) GetProducts(ctx context.Context, categoryName string, filter pkgdto.Filter) (dto.ProductListResponse, error) {
	return dto.ProductListResponse{Products: []domain.Product{}}, s.err
}

func (s *stubProductService) GetTopOffers(ctx context.Context, filter pkgdto.Filter) (dto.ProductListResponse, error) {
	return dto.ProductListResponse{Products: []domain.Product{}}, s.err
}

func (s *stubProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if _, err := parseID(id); err != nil {
		return domain.Product{}, err
	}
	return domain.Product{}, errs.ErrNotFound
}

func (s *stubProductService) GetAdvertisedProduct(ctx context.Context, advertised bool) (*domain.Product, error) {
	if !advertised {
		return nil, nil
	}
	return &domain.Product{ProductName: "Advertised"}, nil
}

func (s *stubProductService) UpdateProduct(ctx context.Context, actor dto.Actor, id string, req dto.ProductUpdateRequest) (dto.UpdateResponse, error) {
	s.actor = actor
	return dto.UpdateResponse{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, s.err
}

func (s *stubProductService) DeleteProduct(ctx context.Context, actor dto.Actor, id string) (dto.DeleteResponse, error) {
	s.actor = actor
	return dto.DeleteResponse{Acknowledged: true}, s.err
}

type fakeBookingRepository struct {
	bookings []domain.Booking
}

func (r *fakeBookingRepository) AddBooking(ctx context.Context, data domain.Booking) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, data)
	return data.ID, nil
}

func (r *fakeBookingRepository) GetBookings(ctx context.Context, owner dto.OwnerQuery) ([]domain.Booking, error) {
	result := []domain.Booking{}
	for _, booking := range r.bookings {
		if (owner.UserEmail == "" || owner.UserEmail == booking.UserEmail) &&
			(owner.UserName == "" || owner.UserName == booking.UserName) {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (r *fakeBookingRepository) GetBookingByID(ctx context.Context, id string) (domain.Booking, error) {
	objectID, err := parseID(id)
	if err != nil {
		return domain.Booking{}, err
	}
	for _, booking := range r.bookings {
		if booking.ID == objectID {
			return booking, nil
		}
	}
	return domain.Booking{}, errs.ErrNotFound
}

func (r *fakeBookingRepository) DeleteBookingByProductID(ctx context.Context, productID string, userEmail string) (dto.DeleteResponse, error) {
	for i, booking := range r.bookings {
		if booking.ProductID == productID && booking.UserEmail == userEmail {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return dto.DeleteResponse{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return dto.DeleteResponse{Acknowledged: true}, nil
}

type fakePaymentRepository struct {
	payments []domain.Payment
}

func (r *fakePaymentRepository) AddPayment(ctx context.Context, data domain.Payment) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.payments = append(r.payments, data)
	return data.ID, nil
}

type fakeBlogRepository struct {
	blogs []domain.Blog
}

func (r *fakeBlogRepository) GetBlogs(ctx context.Context, filter pkgdto.Filter) ([]domain.Blog, error) {
	return r.blogs, nil
}

func (r *fakeBlogRepository) GetBlogByID(ctx context.Context, id string) (domain.Blog, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, blog := range r.blogs {
		if blog["_id"] == objectID {
			return blog, nil
		}
	}
	return nil, errs.ErrNotFound
}

type noopPublisher struct{}

func (noopPublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	return nil
}

type noopNotifier struct{}

func (noopNotifier) SendBookingConfirmation(ctx context.Context, booking domain.Booking) error {
	return nil
}

type fakeGateway struct {
	err error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, orderID string, amount int64) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return "secret-" + orderID, nil
}
