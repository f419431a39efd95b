package billing

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/types"
)

// SetUserBlocked appends a row toggling the admin access block. Blocking a
// user who never subscribed creates an inactive blocked row.
func (s *Service) SetUserBlocked(ctx context.Context, userID, operatorID string, blocked bool) error {
	if userID == "" {
		return fmt.Errorf("invalid params: userID required")
	}

	before, err := s.latestSubscription(ctx, userID)
	if err != nil {
		return err
	}

	sub := &models.Subscription{
		UserID: userID,
		Status: types.SubscriptionStatusInactive,
	}
	if before != nil {
		sub.Status = before.Status
		sub.PlanType = before.PlanType
		sub.ProviderID = before.ProviderID
		sub.ProviderCustomerID = before.ProviderCustomerID
	}
	sub.AccessBlocked = blocked

	reason := types.SubscriptionChangeReasonAdminBlock
	if !blocked {
		reason = types.SubscriptionChangeReasonAdminUnblock
	}
	return s.appendSubscription(ctx, sub, reason, datatypes.JSONMap{"operator_id": operatorID})
}

// GrantPlan grants a plan period without payment (courtesy access).
func (s *Service) GrantPlan(ctx context.Context, userID string, planType types.PlanType, operatorID string) error {
	if userID == "" || planType == "" {
		return fmt.Errorf("invalid params: userID and planType required")
	}

	sub := &models.Subscription{
		UserID:     userID,
		Status:     types.SubscriptionStatusActive,
		PlanType:   planType,
		ProviderID: types.PaymentProviderInner,
	}
	return s.appendSubscription(ctx, sub, types.SubscriptionChangeReasonAdminGrant,
		datatypes.JSONMap{"operator_id": operatorID})
}

type ScanSubscriptionsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanSubscriptionsResult struct {
	Items []*models.Subscription `json:"items"`
	Total int64                  `json:"total"`
}

// filtersAnd combines multiple CommonFilter into a single expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	wrote := false
	for _, f := range w.filters {
		if len(f.Values) == 0 {
			continue
		}
		if wrote {
			builder.WriteString(" AND ")
		}
		f.Build(builder)
		wrote = true
	}
	if !wrote {
		builder.WriteString("1=1")
	}
}

// ScanSubscriptions lists subscription rows with filters, pagination and
// sorting, for the admin panel.
func (s *Service) ScanSubscriptions(ctx context.Context, req *ScanSubscriptionsRequest) (*ScanSubscriptionsResult, error) {
	size := req.Size
	if size <= 0 || size > 500 {
		size = 100
	}
	sortBy := "created_at"
	switch req.SortBy {
	case "", "created_at":
	case "user_id", "status", "plan_type", "provider_id":
		sortBy = req.SortBy
	default:
		return nil, fmt.Errorf("invalid sort_by: %s", req.SortBy)
	}
	order := "desc"
	if req.SortOrder == "asc" {
		order = "asc"
	}

	q := s.db.WithContext(ctx).Model(&models.Subscription{}).
		Clauses(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var items []*models.Subscription
	if err := q.Order(fmt.Sprintf("%s %s", sortBy, order)).
		Offset(req.From).Limit(size).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to scan subscriptions: %w", err)
	}
	return &ScanSubscriptionsResult{Items: items, Total: total}, nil
}
