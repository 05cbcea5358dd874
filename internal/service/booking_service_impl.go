package service

import (
	"context"
	"sync"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type BookingServiceImpl struct {
	repo      repository.BookingRepository
	publisher EventPublisher
	notifier  BookingNotifier
	now       func() int64

	// confirmations still being sent
	pending sync.WaitGroup
}

func CreateBookingService(repo repository.BookingRepository, publisher EventPublisher, notifier BookingNotifier) BookingService {
	return &BookingServiceImpl{repo: repo, publisher: publisher, notifier: notifier, now: utils.NowMillis}
}

func (s *BookingServiceImpl) AddBooking(ctx context.Context, actor dto.Actor, req dto.BookingRequest) (resp dto.InsertResponse, err error) {
	userEmail := ownerEmail(actor, req.UserEmail)
	if userEmail == "" {
		return resp, errs.ErrClient
	}

	booking := domain.Booking{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		ProductImage:    req.ProductImage,
		Price:           req.Price,
		UserName:        req.UserName,
		UserEmail:       userEmail,
		Phone:           req.Phone,
		MeetingLocation: req.MeetingLocation,
		SellerEmail:     req.SellerEmail,
		BookingCreated:  s.now(),
	}

	id, err := s.repo.AddBooking(ctx, booking)
	if err != nil {
		return
	}

	booking.ID = id
	publishEvent(ctx, s.publisher, id.Hex(), EventBookingCreated, booking)

	// sent detached from the request; failures are only logged
	s.pending.Add(1)
	go func(ctx context.Context) {
		defer s.pending.Done()
		if err := s.notifier.SendBookingConfirmation(ctx, booking); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "AddBooking").Msg("failed to send booking confirmation")
		}
	}(context.WithoutCancel(ctx))

	return insertResponse(id), nil
}

// GetBookings lists only the caller's own bookings unless the caller is an
// admin. A userEmail naming someone else is refused.
func (s *BookingServiceImpl) GetBookings(ctx context.Context, actor dto.Actor, owner dto.OwnerQuery) (bookings []domain.Booking, err error) {
	if owner.IsEmpty() {
		return nil, errs.ErrMissingQueryParam
	}

	if !actor.IsAdmin() {
		if actor.Email == "" || (owner.UserEmail != "" && owner.UserEmail != actor.Email) {
			return nil, errs.ErrForbidden
		}
		owner.UserEmail = actor.Email
	}

	return s.repo.GetBookings(ctx, owner)
}

// GetBookingByID is visible to the buyer who made the booking, the seller it
// was made with, and admins.
func (s *BookingServiceImpl) GetBookingByID(ctx context.Context, actor dto.Actor, id string) (booking domain.Booking, err error) {
	booking, err = s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return
	}

	if actor.IsAdmin() || (actor.Email != "" && (booking.UserEmail == actor.Email || booking.SellerEmail == actor.Email)) {
		return booking, nil
	}

	return domain.Booking{}, errs.ErrForbidden
}

func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, actor dto.Actor, productID string) (resp dto.DeleteResponse, err error) {
	if actor.Email == "" {
		return resp, errs.ErrForbidden
	}

	return s.repo.DeleteBookingByProductID(ctx, productID, actor.Email)
}

// WaitForNotifications blocks until every confirmation e-mail started so far
// has been handed off, or ctx ends.
func (s *BookingServiceImpl) WaitForNotifications(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
