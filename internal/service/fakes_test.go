package service

import (
	"context"
	"sort"
	"sync"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	pkgdto "github.com/alimikegami/bdseller-service/pkg/dto"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// applySet mimics a $set by round-tripping the document through BSON.
func applySet[T any](doc T, fields bson.M) T {
	raw, err := bson.Marshal(doc)
	if err != nil {
		panic(err)
	}

	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	for key, value := range fields {
		m[key] = value
	}

	raw, err = bson.Marshal(m)
	if err != nil {
		panic(err)
	}

	var out T
	if err := bson.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return out
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return objectID, errs.ErrInvalidID
	}
	return objectID, nil
}

func window[T any](items []T, filter pkgdto.Filter) []T {
	if !filter.Paginate {
		return items
	}

	start := filter.Skip()
	if start >= int64(len(items)) {
		return []T{}
	}
	end := start + filter.Limit()
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[start:end]
}

type fakeUserRepository struct {
	users []domain.User
	err   error
	// addErr fails only the insert, as a concurrent registration would
	addErr error
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	if r.addErr != nil {
		return primitive.NilObjectID, r.addErr
	}
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
	return result, r.err
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.err != nil {
		return domain.User{}, r.err
	}
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
			r.users[i] = applySet(user, fields)
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

type fakeProductRepository struct {
	products []domain.Product
	err      error
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	if r.err != nil {
		return primitive.NilObjectID, r.err
	}
	data.ID = primitive.NewObjectID()
	r.products = append(r.products, data)
	return data.ID, nil
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, query dto.ProductQuery, filter pkgdto.Filter) ([]domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}

	matched := []domain.Product{}
	for _, product := range r.products {
		if query.CategoryName == "" || product.ProductCategory == query.CategoryName {
			matched = append(matched, product)
		}
	}

	if query.TopOffer {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].SaveAmount > matched[j].SaveAmount
		})
	}

	return window(matched, filter), nil
}

func (r *fakeProductRepository) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(r.products)), r.err
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return domain.Product{}, err
	}
	for _, product := range r.products {
		if product.ID == objectID {
			return product, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (r *fakeProductRepository) GetLatestAdvertisedProduct(ctx context.Context) (domain.Product, error) {
	var latest *domain.Product
	for i, product := range r.products {
		if product.IsAdvertised && (latest == nil || product.CreatedAdvertised > latest.CreatedAdvertised) {
			latest = &r.products[i]
		}
	}
	if latest == nil {
		return domain.Product{}, errs.ErrNotFound
	}
	return *latest, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, id string, fields bson.M) (dto.UpdateResponse, error) {
	objectID, err := parseID(id)
	if err != nil {
		return dto.UpdateResponse{}, err
	}
	for i, product := range r.products {
		if product.ID == objectID {
			r.products[i] = applySet(product, fields)
			return dto.UpdateResponse{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return dto.UpdateResponse{Acknowledged: true}, nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id string) (dto.DeleteResponse, error) {
	objectID, err := parseID(id)
	if err != nil {
		return dto.DeleteResponse{}, err
	}
	for i, product := range r.products {
		if product.ID == objectID {
			r.products = append(r.products[:i], r.products[i+1:]...)
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

func matchesOwner(owner dto.OwnerQuery, userName, userEmail string) bool {
	return (owner.UserName == "" || owner.UserName == userName) &&
		(owner.UserEmail == "" || owner.UserEmail == userEmail)
}

func (r *fakeWishListRepository) AddWishList(ctx context.Context, data domain.WishList) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	r.wishLists = append(r.wishLists, data)
	return data.ID, nil
}

func (r *fakeWishListRepository) GetWishLists(ctx context.Context, owner dto.OwnerQuery) ([]domain.WishList, error) {
	result := []domain.WishList{}
	for _, wishList := range r.wishLists {
		if matchesOwner(owner, wishList.UserName, wishList.UserEmail) {
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
		if matchesOwner(owner, booking.UserName, booking.UserEmail) {
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

type fakePublisher struct {
	mu       sync.Mutex
	messages []dto.KafkaMessage
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := []string{}
	for _, msg := range p.messages {
		types = append(types, msg.EventType)
	}
	return types
}

type fakeNotifier struct {
	sent chan domain.Booking
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, booking domain.Booking) error {
	n.sent <- booking
	return nil
}

type fakeGateway struct {
	orderID string
	amount  int64
	err     error
}

func (g *fakeGateway) CreatePaymentIntent(ctx context.Context, orderID string, amount int64) (string, error) {
	g.orderID = orderID
	g.amount = amount
	if g.err != nil {
		return "", g.err
	}
	return "secret-" + orderID, nil
}

func fixedClock(millis int64) func() int64 {
	return func() int64 { return millis }
}
