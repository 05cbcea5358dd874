package repository

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	usersCollection      = "users"
	productsCollection   = "products"
	categoriesCollection = "categories"
	wishListsCollection  = "wishLists"
	bookingsCollection   = "bookings"
	paymentsCollection   = "payments"
	blogsCollection      = "blogs"
)

type UserRepository interface {
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
	GetUsers(ctx context.Context, role string) (data []domain.User, err error)
	GetUserByEmail(ctx context.Context, email string) (user domain.User, err error)
	GetUserByID(ctx context.Context, id string) (user domain.User, err error)
	UpdateUser(ctx context.Context, id string, fields bson.M) (result dto.UpdateResponse, err error)
	DeleteUserByEmail(ctx context.Context, email string) (result dto.DeleteResponse, err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, query dto.ProductQuery, param pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context) (count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetLatestAdvertisedProduct(ctx context.Context) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, id string, fields bson.M) (result dto.UpdateResponse, err error)
	DeleteProduct(ctx context.Context, id string) (result dto.DeleteResponse, err error)
}

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetCategories(ctx context.Context) (data []domain.Category, err error)
	UpdateCategoryName(ctx context.Context, id string, name string) (result dto.UpdateResponse, err error)
	DeleteCategory(ctx context.Context, id string) (result dto.DeleteResponse, err error)
}

type WishListRepository interface {
	AddWishList(ctx context.Context, data domain.WishList) (id primitive.ObjectID, err error)
	GetWishLists(ctx context.Context, owner dto.OwnerQuery) (data []domain.WishList, err error)
	DeleteWishListByProductID(ctx context.Context, productID string, userEmail string) (result dto.DeleteResponse, err error)
}

type BookingRepository interface {
	AddBooking(ctx context.Context, data domain.Booking) (id primitive.ObjectID, err error)
	GetBookings(ctx context.Context, owner dto.OwnerQuery) (data []domain.Booking, err error)
	GetBookingByID(ctx context.Context, id string) (booking domain.Booking, err error)
	DeleteBookingByProductID(ctx context.Context, productID string, userEmail string) (result dto.DeleteResponse, err error)
}

type PaymentRepository interface {
	AddPayment(ctx context.Context, data domain.Payment) (id primitive.ObjectID, err error)
}

type BlogRepository interface {
	GetBlogs(ctx context.Context, param pkgdto.Filter) (data []domain.Blog, err error)
	GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error)
}
