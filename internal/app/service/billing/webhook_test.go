package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renascerfit/coach/pkg/types"
)

func TestParseProviderEvent(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *ProviderEvent
		wantErr bool
	}{
		{
			name: "invoice event with line price",
			raw: `{
				"type": "invoice.paid",
				"data": {"object": {
					"customer": "cus_123",
					"customer_email": "ana@example.com",
					"lines": {"data": [{"price": {"id": "price_1QmensalBR"}}]}
				}}
			}`,
			want: &ProviderEvent{
				Type:       "invoice.paid",
				CustomerID: "cus_123",
				Email:      "ana@example.com",
				PriceID:    "price_1QmensalBR",
			},
		},
		{
			name: "checkout session uses customer_details email and metadata price",
			raw: `{
				"type": "checkout.session.completed",
				"data": {"object": {
					"customer": "cus_456",
					"customer_details": {"email": "bia@example.com"},
					"metadata": {"price_id": "price_1QanualBR"}
				}}
			}`,
			want: &ProviderEvent{
				Type:       "checkout.session.completed",
				CustomerID: "cus_456",
				Email:      "bia@example.com",
				PriceID:    "price_1QanualBR",
			},
		},
		{
			name:    "malformed json",
			raw:     `{"type": `,
			wantErr: true,
		},
		{
			name:    "missing event type",
			raw:     `{"data": {"object": {"customer": "cus_1"}}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProviderEvent([]byte(tt.raw))
			if tt.wantErr {
				// Malformed bodies carry the validation sentinel so the
				// webhook handler can answer 4xx instead of 5xx.
				require.ErrorIs(t, err, ErrInvalidPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTransition(t *testing.T) {
	tests := []struct {
		eventType  string
		wantStatus types.SubscriptionStatus
		wantReason types.SubscriptionChangeReason
		wantErr    bool
	}{
		{eventType: "checkout.session.completed", wantStatus: types.SubscriptionStatusActive, wantReason: types.SubscriptionChangeReasonPurchase},
		{eventType: "invoice.paid", wantStatus: types.SubscriptionStatusActive, wantReason: types.SubscriptionChangeReasonRenewal},
		{eventType: "invoice.payment_failed", wantStatus: types.SubscriptionStatusPendingPayment, wantReason: types.SubscriptionChangeReasonPaymentFailed},
		{eventType: "customer.subscription.deleted", wantStatus: types.SubscriptionStatusCanceled, wantReason: types.SubscriptionChangeReasonCancel},
		{eventType: "charge.succeeded", wantErr: true},
		{eventType: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			status, reason, err := eventTransition(tt.eventType)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIgnoredEvent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
