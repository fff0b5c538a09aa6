package service

import (
	"context"
	"net/http"

	"awei/pkg/timer"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// maxNetworkRetries bounds gateway retries. Retried requests carry the
// same idempotency key, so a retry can never double-create an intent.
const maxNetworkRetries = 2

// IIntentClient creates a pending charge at the payment gateway and
// returns its client secret.
type IIntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64, idempotencyKey string) (string, error)
}

// StripeIntentClient implements IIntentClient against Stripe
type StripeIntentClient struct {
	api      *client.API
	currency string
}

func NewStripeIntentClient(secretKey, currency string, httpClient *http.Client) *StripeIntentClient {
	cfg := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(maxNetworkRetries),
	}
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	})
	return &StripeIntentClient{api: api, currency: currency}
}

func (c *StripeIntentClient) CreateIntent(ctx context.Context, amountCents int64, idempotencyKey string) (string, error) {
	defer timer.Track("CreateIntent")()

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(c.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(idempotencyKey)

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
