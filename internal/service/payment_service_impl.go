package service

import (
	"context"
	"math"

	"github.com/alimikegami/bdseller-service/internal/domain"
	"github.com/alimikegami/bdseller-service/internal/dto"
	"github.com/alimikegami/bdseller-service/internal/repository"
	"github.com/alimikegami/bdseller-service/pkg/utils"
	"github.com/oklog/ulid/v2"
)

type PaymentServiceImpl struct {
	repo      repository.PaymentRepository
	gateway   PaymentGateway
	publisher EventPublisher
	now       func() int64
}

func CreatePaymentService(repo repository.PaymentRepository, gateway PaymentGateway, publisher EventPublisher) PaymentService {
	return &PaymentServiceImpl{repo: repo, gateway: gateway, publisher: publisher, now: utils.NowMillis}
}

// CreatePaymentIntent charges the price in minor currency units.
func (s *PaymentServiceImpl) CreatePaymentIntent(ctx context.Context, req dto.PaymentIntentRequest) (resp dto.PaymentIntentResponse, err error) {
	amount := int64(math.Round(req.Price * 100))

	clientSecret, err := s.gateway.CreatePaymentIntent(ctx, ulid.Make().String(), amount)
	if err != nil {
		return
	}

	resp.ClientSecret = clientSecret
	return
}

func (s *PaymentServiceImpl) RecordPayment(ctx context.Context, actor dto.Actor, req dto.PaymentRequest) (resp dto.InsertResponse, err error) {
	payment := domain.Payment{
		Price:          req.Price,
		TransactionID:  req.TransactionID,
		BookingID:      req.BookingID,
		ProductID:      req.ProductID,
		UserEmail:      ownerEmail(actor, req.UserEmail),
		PaymentCreated: s.now(),
	}

	id, err := s.repo.AddPayment(ctx, payment)
	if err != nil {
		return
	}

	payment.ID = id
	publishEvent(ctx, s.publisher, id.Hex(), EventPaymentRecorded, payment)

	return insertResponse(id), nil
}
