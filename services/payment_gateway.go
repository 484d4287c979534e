package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentIntent is what the gateway hands back for the client to complete
// payment with.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentGateway is the opaque boundary to the payment provider. The backend
// only cares that an intent can be created; capture and validation live on
// the provider side.
type PaymentGateway interface {
	CreateIntent(amount decimal.Decimal, currency string) (*PaymentIntent, error)
}

type stubGateway struct {
	apiKey string
}

// NewStubGateway returns a gateway that issues locally generated intents.
// The key is injected from config at startup; nothing here reads globals.
func NewStubGateway(apiKey string) PaymentGateway {
	return &stubGateway{apiKey: apiKey}
}

func (g *stubGateway) CreateIntent(amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	id := "pi_" + uuid.NewString()
	return &PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.NewString(),
	}, nil
}
