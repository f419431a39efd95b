package billing

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/config"
	"github.com/renascerfit/coach/pkg/types"
)

// PlanStatistic is one plan's share of the active subscriber base.
type PlanStatistic struct {
	PlanType            types.PlanType `json:"plan_type"`
	DisplayName         string         `json:"display_name"`
	ActiveSubscribers   int            `json:"active_subscribers"`
	BlockedSubscribers  int            `json:"blocked_subscribers"`
	MonthlyRevenueCents int64          `json:"monthly_revenue_cents"`
}

// PlanStatistics aggregates the latest row per user into per-plan
// subscriber counts and normalized monthly revenue.
func (s *Service) PlanStatistics(ctx context.Context) ([]*PlanStatistic, error) {
	var rows []*models.Subscription
	if err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscription rows: %w", err)
	}
	return aggregatePlanStats(rows, s.cfg), nil
}

// aggregatePlanStats reduces rows (newest first) to the authoritative row
// per user, then groups by plan. Courtesy grants count as subscribers but
// contribute no revenue unless the plan has a configured monthly value.
func aggregatePlanStats(rows []*models.Subscription, cfg *config.Config) []*PlanStatistic {
	latestByUser := map[string]*models.Subscription{}
	for _, r := range rows {
		if _, seen := latestByUser[r.UserID]; !seen {
			latestByUser[r.UserID] = r
		}
	}

	monthlyByPlan := map[types.PlanType]int64{}
	nameByPlan := map[types.PlanType]string{}
	for _, p := range cfg.PlanPrices {
		monthlyByPlan[p.PlanType] = p.MonthlyValueCents
		nameByPlan[p.PlanType] = p.DisplayName
	}

	byPlan := lo.GroupBy(lo.Values(latestByUser), func(r *models.Subscription) types.PlanType {
		return r.PlanType
	})

	stats := make([]*PlanStatistic, 0, len(byPlan))
	for plan, subs := range byPlan {
		if plan == "" {
			continue
		}
		st := &PlanStatistic{PlanType: plan, DisplayName: nameByPlan[plan]}
		for _, sub := range subs {
			switch {
			case sub.AccessBlocked:
				st.BlockedSubscribers++
			case sub.Status == types.SubscriptionStatusActive:
				st.ActiveSubscribers++
			}
		}
		st.MonthlyRevenueCents = int64(st.ActiveSubscribers) * monthlyByPlan[plan]
		stats = append(stats, st)
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].PlanType < stats[j].PlanType })
	return stats
}
