package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted checkout sessions through the Mercado
// Pago preference API. In mock mode (PAYMENT_GATEWAY_MOCK) it fabricates
// session ids locally so the flow can run without provider credentials.
type MercadoPagoGateway struct {
	client   preference.Client
	sandbox  bool
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, sandbox bool) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, sandbox: sandbox}, nil
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
	log.Printf("[payment][gateway] Mercado Pago client initialized sandbox=%v", sandbox)

	return &MercadoPagoGateway{client: preference.NewClient(cfg), sandbox: sandbox}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, job entities.Job, quote entities.Quote) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-" + uuid.New().String()
		log.Printf("[payment][gateway] mock session created job_id=%s external_id=%s amount_cents=%d",
			job.ID, id, quote.TotalPriceCents)
		return interfaces.CheckoutSession{
			ExternalID:  id,
			CheckoutURL: "https://checkout.local/mock/" + id,
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] session create start job_id=%s quote_id=%s amount_cents=%d",
		job.ID, quote.ID, quote.TotalPriceCents)

	req := preference.Request{
		ExternalReference: job.ID,
		Items: []preference.ItemRequest{
			{
				ID:          quote.ID,
				Title:       job.Title,
				Description: fmt.Sprintf("Quote v%d for job %s", quote.Version, job.ID),
				Quantity:    1,
				UnitPrice:   float64(quote.TotalPriceCents) / 100,
			},
		},
		Metadata: map[string]any{
			"job_id":   job.ID,
			"quote_id": quote.ID,
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed job_id=%s err=%v", job.ID, err)
		return interfaces.CheckoutSession{}, err
	}

	url := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] session created job_id=%s external_id=%s", job.ID, resp.ID)

	return interfaces.CheckoutSession{ExternalID: resp.ID, CheckoutURL: url}, nil
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
