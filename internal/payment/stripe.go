// Package payment wraps the external payment processor. The provider
// is slow and can fail; callers see domain.ErrPayment or
// domain.ErrRefundFailed with detail kept in the logs.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/wb-go/wbf/logger"
	"github.com/zachsplat/tournament-backend-new/internal/domain"
)

type StripeProvider struct {
	api    *client.API
	logger logger.Logger
}

func NewStripeProvider(apiKey string, log logger.Logger) *StripeProvider {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &StripeProvider{api: api, logger: log}
}

// Charge creates and immediately confirms a payment intent. Amount is
// in minor currency units.
func (p *StripeProvider) Charge(ctx context.Context, amount int64, currency, paymentMethod string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amount),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(paymentMethod),
		Confirm:       stripe.Bool(true),
	}

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		p.logger.Error("stripe charge failed",
			logger.Int64("amount", amount),
			logger.String("currency", currency),
			logger.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: create payment intent: %v", domain.ErrPayment, err)
	}

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		p.logger.Error("stripe charge not captured",
			logger.String("payment_intent_id", pi.ID),
			logger.String("status", string(pi.Status)),
		)
		return "", fmt.Errorf("%w: payment intent status %s", domain.ErrPayment, pi.Status)
	}

	return pi.ID, nil
}

func (p *StripeProvider) Refund(ctx context.Context, paymentRef string) error {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(paymentRef),
	}

	ref, err := p.api.Refunds.New(params)
	if err != nil {
		p.logger.Error("stripe refund failed",
			logger.String("payment_intent_id", paymentRef),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: create refund: %v", domain.ErrRefundFailed, err)
	}

	if ref.Status != stripe.RefundStatusSucceeded {
		p.logger.Error("stripe refund not succeeded",
			logger.String("payment_intent_id", paymentRef),
			logger.String("status", string(ref.Status)),
		)
		return fmt.Errorf("%w: refund status %s", domain.ErrRefundFailed, ref.Status)
	}

	return nil
}
