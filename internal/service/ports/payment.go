package ports

import "context"

// PaymentProvider is the external payment processor. Amounts are in
// minor currency units. Failures from the provider are expected and
// must wrap domain.ErrPayment / domain.ErrRefundFailed.
type PaymentProvider interface {
	Charge(ctx context.Context, amount int64, currency, paymentMethod string) (string, error)
	Refund(ctx context.Context, paymentRef string) error
}
