package billing

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/config"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/tool"
	"github.com/renascerfit/coach/pkg/types"
)

// Service owns all writes to the Subscription table. Guards and the
// entitlement resolver only ever read the rows this service appends.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

// resolveUser finds the profile a billing event belongs to, by provider
// customer id first, then by email. The customer id is linked to the
// profile the first time it is seen.
func (s *Service) resolveUser(ctx context.Context, customerID, email string) (*models.AppUser, error) {
	var u models.AppUser
	if customerID != "" {
		err := s.db.WithContext(ctx).Where("provider_customer_id = ?", customerID).First(&u).Error
		if err == nil {
			return &u, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load user by customer id: %w", err)
		}
	}
	if email == "" {
		return nil, fmt.Errorf("no user for customer %q", customerID)
	}
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no user for email %q", email)
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}
	if customerID != "" && u.ProviderCustomerID == "" {
		if err := s.db.WithContext(ctx).Model(&u).Update("provider_customer_id", customerID).Error; err != nil {
			return nil, fmt.Errorf("failed to link customer id: %w", err)
		}
	}
	return &u, nil
}

// latestSubscription returns the newest row for a user, nil if none.
func (s *Service) latestSubscription(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest subscription: %w", err)
	}
	return &sub, nil
}

// appendSubscription appends a new authoritative row and writes a change
// log. The admin block flag is carried forward from the previous row
// unless the change itself is a block or unblock.
func (s *Service) appendSubscription(ctx context.Context, sub *models.Subscription, reason types.SubscriptionChangeReason, extra datatypes.JSONMap) error {
	before, err := s.latestSubscription(ctx, sub.UserID)
	if err != nil {
		return err
	}

	switch reason {
	case types.SubscriptionChangeReasonAdminBlock, types.SubscriptionChangeReasonAdminUnblock:
		// AccessBlocked is set by the caller.
	default:
		if before != nil {
			sub.AccessBlocked = before.AccessBlocked
		}
	}

	if sub.ID == "" {
		sub.ID = tool.GenerateUUIDV7()
	}
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("failed to append subscription row: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("subscription_appended",
		"user_id", sub.UserID, "status", sub.Status, "reason", reason)

	// Write the change log asynchronously; errors are logged, not returned.
	go func(b, a *models.Subscription) {
		if extra == nil {
			extra = datatypes.JSONMap{}
		}
		entry := &models.SubscriptionLog{
			ID:     tool.GenerateUUIDV7(),
			UserID: a.UserID,
			Reason: reason,
			Before: datatypes.NewJSONType(b),
			After:  datatypes.NewJSONType(a),
			Extra:  extra,
		}
		if err := s.db.Save(entry).Error; err != nil {
			s.log.Errorf("failed to save subscription log: %v", err)
		}
	}(before, sub)

	return nil
}
