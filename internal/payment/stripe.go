package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var (
	publicKeyPrefixes = []string{"pk_test_", "pk_live_"}
	secretKeyPrefixes = []string{"sk_test_", "sk_live_", "rk_test_", "rk_live_"}

	// Real key bodies are alphanumeric, so a body like "your_key" or "xxxx" is a template value.
	placeholderBody = regexp.MustCompile(`^(?i:x+|\.+|\*+|changeme|placeholder|your[_-]\w*|replace[_-]?me)$`)
)

// StripeCheckout creates hosted checkout sessions through Stripe.
type StripeCheckout struct {
	api        *client.API
	configured bool
}

func NewStripeCheckout(publicKey, secretKey string, timeout time.Duration) *StripeCheckout {
	sc := &client.API{}
	sc.Init(secretKey, stripe.NewBackends(&http.Client{Timeout: timeout}))

	return &StripeCheckout{
		api:        sc,
		configured: KeysConfigured(publicKey, secretKey),
	}
}

// KeysConfigured requires both keys to carry a Stripe prefix followed by a non-placeholder body.
func KeysConfigured(publicKey, secretKey string) bool {
	return keyConfigured(publicKey, publicKeyPrefixes) && keyConfigured(secretKey, secretKeyPrefixes)
}

func keyConfigured(key string, prefixes []string) bool {
	key = strings.TrimSpace(key)
	for _, prefix := range prefixes {
		if body, ok := strings.CutPrefix(key, prefix); ok {
			return body != "" && !placeholderBody.MatchString(body)
		}
	}
	return false
}

func (s *StripeCheckout) Configured() bool {
	return s.configured
}

func (s *StripeCheckout) CreateSession(ctx context.Context, req SessionRequest) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	cs, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, classifyStripeError(err)
	}

	return &Session{
		ID:            cs.ID,
		URL:           cs.URL,
		PaymentStatus: string(cs.PaymentStatus),
		Metadata:      cs.Metadata,
	}, nil
}

func (s *StripeCheckout) RetrieveSession(ctx context.Context, id string) (*Session, error) {
	cs, err := s.api.CheckoutSessions.Get(id, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, classifyStripeError(err)
	}

	return &Session{
		ID:            cs.ID,
		URL:           cs.URL,
		PaymentStatus: string(cs.PaymentStatus),
		Metadata:      cs.Metadata,
	}, nil
}

func classifyStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", ErrProviderAuth, stripeErr.Msg)
		}
		return fmt.Errorf("stripe: %w", err)
	}
	// Anything that never produced a Stripe response is a transport failure.
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}
