package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renascerfit/coach/pkg/types"
)

func testConfig() *Config {
	return &Config{
		PlanPrices: []*types.PlanPrice{
			{PriceID: "price_m", ProviderID: types.PaymentProviderStripe, PlanType: types.PlanTypeMensal, DisplayName: "Plano Mensal", MonthlyValueCents: 9700},
			{PriceID: "price_t", ProviderID: types.PaymentProviderStripe, PlanType: types.PlanTypeTrimestral, DisplayName: "Plano Trimestral", MonthlyValueCents: 8233},
			{PriceID: "br.com.metodorenascer.mensal", ProviderID: types.PaymentProviderApple, PlanType: types.PlanTypeMensal, DisplayName: "Plano Mensal (App Store)", MonthlyValueCents: 9700},
		},
	}
}

func TestGetPlanByPriceID(t *testing.T) {
	cfg := testConfig()

	// every configured id resolves to a non-nil plan
	for _, p := range cfg.PlanPrices {
		got := cfg.GetPlanByPriceID(p.PriceID)
		require.NotNil(t, got, "price %s", p.PriceID)
		assert.Equal(t, p.PlanType, got.PlanType)
		assert.NotEmpty(t, got.DisplayName)
	}

	// unknown ids return nil, never panic
	assert.Nil(t, cfg.GetPlanByPriceID("price_unknown"))
	assert.Nil(t, cfg.GetPlanByPriceID(""))
}

func TestGetPlanByProviderPriceID(t *testing.T) {
	cfg := testConfig()

	got := cfg.GetPlanByProviderPriceID(types.PaymentProviderApple, "br.com.metodorenascer.mensal")
	require.NotNil(t, got)
	assert.Equal(t, types.PlanTypeMensal, got.PlanType)

	// same id under the wrong provider does not match
	assert.Nil(t, cfg.GetPlanByProviderPriceID(types.PaymentProviderStripe, "br.com.metodorenascer.mensal"))
}
