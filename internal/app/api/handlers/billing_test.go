package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renascerfit/coach/internal/app/service/billing"
)

func TestWebhookStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "invalid payload is a client error, provider must not retry",
			err:  billing.ErrInvalidPayload,
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped invalid payload still maps to 400",
			err:  fmt.Errorf("%w: missing event type", billing.ErrInvalidPayload),
			want: http.StatusBadRequest,
		},
		{
			name: "handling failure is a server error, provider retries",
			err:  fmt.Errorf("webhook: no user for customer %q", "cus_1"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, webhookStatus(tt.err))
		})
	}
}
