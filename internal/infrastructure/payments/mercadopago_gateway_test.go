package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"probridge/internal/domain/entities"
	"probridge/internal/usecase/interfaces"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token without mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		gw, err := NewMercadoPagoGateway("", false)
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
		if gw != nil {
			t.Fatalf("expected nil gateway, got %+v", gw)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		gw, err := NewMercadoPagoGateway("", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw == nil || !gw.mockMode {
			t.Fatalf("expected mock-mode gateway, got %+v", gw)
		}
	})
}

func TestCreateCheckoutSession(t *testing.T) {
	job := entities.Job{ID: "job-1", Title: "Fix leaking sink"}
	quote := entities.Quote{ID: "quote-1", Version: 1, TotalPriceCents: 12000}

	t.Run("unconfigured gateway fails without panicking", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		// A nil *MercadoPagoGateway stored in the interface is what callers
		// end up holding when the token is absent at startup; checkout must
		// surface the not-configured error instead of dereferencing nil.
		var gateway interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

		_, err := gateway.CreateCheckoutSession(context.Background(), job, quote)
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("mock session carries local checkout url", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

		gw, err := NewMercadoPagoGateway("", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		session, err := gw.CreateCheckoutSession(context.Background(), job, quote)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(session.ExternalID, "mock-") {
			t.Fatalf("expected mock external id, got %q", session.ExternalID)
		}
		if !strings.HasPrefix(session.CheckoutURL, "https://checkout.local/mock/") {
			t.Fatalf("unexpected checkout url %q", session.CheckoutURL)
		}
	})
}
