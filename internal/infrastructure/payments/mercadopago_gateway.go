package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"edu_boletos/internal/domain/entities"
	"edu_boletos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway issues hosted checkout links for open boletos. The
// boleto number travels as the preference external reference so webhook
// events can be routed back to the right boleto.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, b entities.Boleto, payable decimal.Decimal) (interfaces.PaymentLink, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		raw, err := json.Marshal(map[string]any{
			"id":                 id,
			"external_reference": b.Number,
			"init_point":         fmt.Sprintf("https://mock.mercadopago.local/checkout/%s", id),
			"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return interfaces.PaymentLink{}, err
		}
		log.Printf("[payment][gateway] mock link created preference_id=%s number=%s payable=%s", id, b.Number, payable.StringFixed(2))
		return interfaces.PaymentLink{
			ID:  id,
			URL: fmt.Sprintf("https://mock.mercadopago.local/checkout/%s", id),
			Raw: raw,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PaymentLink{}, ErrMercadoPagoGatewayNotConfigured
	}

	unitPrice, _ := payable.Float64()
	req := preference.Request{
		ExternalReference: b.Number,
		Items: []preference.ItemRequest{
			{
				ID:          b.Number,
				Title:       fmt.Sprintf("Boleto %s", b.Number),
				Description: fmt.Sprintf("Mensalidade %s", b.CourseRef),
				Quantity:    1,
				UnitPrice:   unitPrice,
				CurrencyID:  "BRL",
			},
		},
	}

	log.Printf("[payment][gateway] link create start number=%s payable=%s", b.Number, payable.StringFixed(2))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.PaymentLink{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.PaymentLink{}, err
	}
	log.Printf("[payment][gateway] link create success preference_id=%s", resp.ID)

	return interfaces.PaymentLink{ID: resp.ID, URL: resp.InitPoint, Raw: raw}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
