package interfaces

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"edu_boletos/internal/domain/entities"
)

// PaymentLink is the external redemption artifact created for a boleto.
// Raw keeps the original provider response (JSON) for traceability.
type PaymentLink struct {
	ID  string
	URL string
	Raw json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado
// Pago). The service uses it to create a payment link for a boleto's
// payable amount; settlement effects come back separately as external
// events.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, b entities.Boleto, payable decimal.Decimal) (PaymentLink, error)
}
