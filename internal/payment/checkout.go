package payment

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrProviderAuth means the provider rejected our credentials.
	ErrProviderAuth = errors.New("payment provider authentication failed")
	// ErrProviderUnavailable covers timeouts and network failures.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)

// SessionRequest describes a hosted checkout for a single line item.
type SessionRequest struct {
	AmountMinor int64
	Currency    string
	Description string
	Metadata    map[string]string
	SuccessURL  string
	CancelURL   string
}

type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	Metadata      map[string]string
}

const SessionStatusPaid = "paid"

// Checkout is the external hosted-checkout provider.
type Checkout interface {
	// Configured reports whether real credentials are present.
	Configured() bool
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	RetrieveSession(ctx context.Context, id string) (*Session, error)
}

// MinorUnits converts an amount to integer cents, rounding half away from zero.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
