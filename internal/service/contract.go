package service

import (
	"context"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
)

const (
	EventProductCreated  = "product_created"
	EventProductUpdated  = "product_updated"
	EventProductDeleted  = "product_deleted"
	EventBookingCreated  = "booking_created"
	EventPaymentRecorded = "payment_recorded"
)

type UserService interface {
	CreateToken(ctx context.Context, email string, payload map[string]interface{}) (resp dto.TokenResponse, err error)
	AddUser(ctx context.Context, req dto.UserRequest) (resp dto.RegistrationResponse, err error)
	GetUsers(ctx context.Context, role string) (users []domain.User, err error)
	DeleteUser(ctx context.Context, email string) (resp dto.DeleteResponse, err error)
	CheckAdmin(ctx context.Context, email string) (resp dto.AdminStatusResponse, err error)
	CheckSeller(ctx context.Context, email string) (resp dto.SellerStatusResponse, err error)
	CheckBuyer(ctx context.Context, email string) (resp dto.BuyerStatusResponse, err error)
	GetSellerVerification(ctx context.Context, sellerID string) (resp dto.SellerVerificationResponse, err error)
	VerifySeller(ctx context.Context, id string, req dto.SellerVerificationRequest) (resp dto.UpdateResponse, err error)
	GetRole(ctx context.Context, email string) (role string, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, actor dto.Actor, req dto.ProductRequest) (resp dto.InsertResponse, err error)
	GetProducts(ctx context.Context, categoryName string, filter pkgdto.Filter) (resp dto.ProductListResponse, err error)
	GetTopOffers(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	GetAdvertisedProduct(ctx context.Context, advertised bool) (product *domain.Product, err error)
	UpdateProduct(ctx context.Context, actor dto.Actor, id string, req dto.ProductUpdateRequest) (resp dto.UpdateResponse, err error)
	DeleteProduct(ctx context.Context, actor dto.Actor, id string) (resp dto.DeleteResponse, err error)
}

type CategoryService interface {
	AddCategory(ctx context.Context, req dto.CategoryRequest) (resp dto.InsertResponse, err error)
	GetCategories(ctx context.Context) (categories []domain.Category, err error)
	UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (resp dto.UpdateResponse, err error)
	DeleteCategory(ctx context.Context, id string) (resp dto.DeleteResponse, err error)
}

type WishListService interface {
	AddWishList(ctx context.Context, actor dto.Actor, req dto.WishListRequest) (resp dto.InsertResponse, err error)
	GetWishLists(ctx context.Context, owner dto.OwnerQuery) (wishLists []domain.WishList, err error)
	DeleteWishList(ctx context.Context, actor dto.Actor, productID string) (resp dto.DeleteResponse, err error)
}

type BookingService interface {
	AddBooking(ctx context.Context, actor dto.Actor, req dto.BookingRequest) (resp dto.InsertResponse, err error)
	GetBookings(ctx context.Context, actor dto.Actor, owner dto.OwnerQuery) (bookings []domain.Booking, err error)
	GetBookingByID(ctx context.Context, actor dto.Actor, id string) (booking domain.Booking, err error)
	DeleteBooking(ctx context.Context, actor dto.Actor, productID string) (resp dto.DeleteResponse, err error)
	WaitForNotifications(ctx context.Context) error
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, req dto.PaymentIntentRequest) (resp dto.PaymentIntentResponse, err error)
	RecordPayment(ctx context.Context, actor dto.Actor, req dto.PaymentRequest) (resp dto.InsertResponse, err error)
}

type BlogService interface {
	GetBlogs(ctx context.Context, filter pkgdto.Filter) (blogs []domain.Blog, err error)
	GetBlogByID(ctx context.Context, id string) (blog domain.Blog, err error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type BookingNotifier interface {
	SendBookingConfirmation(ctx context.Context, booking domain.Booking) error
}

type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, orderID string, amount int64) (clientSecret string, err error)
}
