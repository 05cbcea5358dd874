package paymentgateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/bdseller-service/config"
	circuitbreaker "github.com/alimikegami/bdseller-service/internal/infrastructure/circuit-breaker"
	"github.com/alimikegami/bdseller-service/pkg/errs"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type SnapClient interface {
	CreateTransaction(req *snap.Request) (*snap.Response, *midtrans.Error)
}

// MidtransGateway creates Snap transactions behind a circuit breaker. The
// Snap token is what the storefront uses as the payment client secret.
type MidtransGateway struct {
	client  SnapClient
	breaker *gobreaker.CircuitBreaker[string]
}

func CreateMidtransClient(config *config.Config) *snap.Client {
	environment := midtrans.Sandbox
	if config.MidtransConfig.Environment == "production" {
		environment = midtrans.Production
	}

	midtrans.ServerKey = config.MidtransConfig.ServerKey
	midtrans.Environment = environment

	client := &snap.Client{}
	client.New(config.MidtransConfig.ServerKey, environment)

	return client
}

func CreateMidtransGateway(client SnapClient) *MidtransGateway {
	return &MidtransGateway{
		client:  client,
		breaker: circuitbreaker.CreateCircuitBreaker[string]("midtrans"),
	}
}

func (g *MidtransGateway) CreatePaymentIntent(ctx context.Context, orderID string, amount int64) (string, error) {
	token, err := g.breaker.Execute(func() (string, error) {
		resp, merr := g.client.CreateTransaction(&snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  orderID,
				GrossAmt: amount,
			},
		})
		if merr != nil {
			return "", fmt.Errorf("%w: %s", errs.ErrPaymentGateway, merr.Message)
		}

		if resp == nil || resp.Token == "" {
			return "", fmt.Errorf("%w: empty token", errs.ErrPaymentGateway)
		}

		return resp.Token, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreatePaymentIntent").Str("order_id", orderID).Msg("")
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", errs.ErrPaymentGateway
		}

		return "", err
	}

	return token, nil
}
