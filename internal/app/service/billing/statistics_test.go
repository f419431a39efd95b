package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/config"
	"github.com/renascerfit/coach/pkg/types"
)

func statsConfig() *config.Config {
	return &config.Config{
		PlanPrices: []*types.PlanPrice{
			{PriceID: "price_m", ProviderID: types.PaymentProviderStripe, PlanType: types.PlanTypeMensal, DisplayName: "Plano Mensal", MonthlyValueCents: 9700},
			{PriceID: "price_a", ProviderID: types.PaymentProviderStripe, PlanType: types.PlanTypeAnual, DisplayName: "Plano Anual", MonthlyValueCents: 6475},
		},
	}
}

func TestAggregatePlanStats(t *testing.T) {
	now := time.Now()
	// rows ordered newest first, as loaded
	rows := []*models.Subscription{
		{UserID: "u1", Status: types.SubscriptionStatusActive, PlanType: types.PlanTypeMensal, CreatedAt: now},
		{UserID: "u1", Status: types.SubscriptionStatusPendingPayment, PlanType: types.PlanTypeMensal, CreatedAt: now.Add(-time.Hour)},
		{UserID: "u2", Status: types.SubscriptionStatusActive, PlanType: types.PlanTypeMensal, CreatedAt: now},
		{UserID: "u3", Status: types.SubscriptionStatusActive, PlanType: types.PlanTypeMensal, AccessBlocked: true, CreatedAt: now},
		{UserID: "u4", Status: types.SubscriptionStatusActive, PlanType: types.PlanTypeAnual, CreatedAt: now},
		{UserID: "u5", Status: types.SubscriptionStatusCanceled, PlanType: types.PlanTypeAnual, CreatedAt: now},
	}

	stats := aggregatePlanStats(rows, statsConfig())
	require.Len(t, stats, 2)

	byPlan := map[types.PlanType]*PlanStatistic{}
	for _, s := range stats {
		byPlan[s.PlanType] = s
	}

	mensal := byPlan[types.PlanTypeMensal]
	require.NotNil(t, mensal)
	// u1 counts once from its newest row; u3 is blocked
	assert.Equal(t, 2, mensal.ActiveSubscribers)
	assert.Equal(t, 1, mensal.BlockedSubscribers)
	assert.Equal(t, int64(2*9700), mensal.MonthlyRevenueCents)
	assert.Equal(t, "Plano Mensal", mensal.DisplayName)

	anual := byPlan[types.PlanTypeAnual]
	require.NotNil(t, anual)
	assert.Equal(t, 1, anual.ActiveSubscribers)
	assert.Equal(t, 0, anual.BlockedSubscribers)
	assert.Equal(t, int64(6475), anual.MonthlyRevenueCents)
}

func TestAggregatePlanStats_Empty(t *testing.T) {
	assert.Empty(t, aggregatePlanStats(nil, statsConfig()))
}

func TestAggregatePlanStats_RowsWithoutPlanAreSkipped(t *testing.T) {
	rows := []*models.Subscription{
		{UserID: "u1", Status: types.SubscriptionStatusInactive, CreatedAt: time.Now()},
	}
	assert.Empty(t, aggregatePlanStats(rows, statsConfig()))
}
