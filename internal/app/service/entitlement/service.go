package entitlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/config"
)

type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

// GetUserProfile loads the profile row for a user, nil if none exists yet.
func (s *Service) GetUserProfile(ctx context.Context, userID string) (*models.AppUser, error) {
	var u models.AppUser
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}
	return &u, nil
}

// GetSubscriptionRows returns the user's subscription history, newest first.
func (s *Service) GetSubscriptionRows(ctx context.Context, userID string) ([]*models.Subscription, error) {
	var rows []*models.Subscription
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscription rows: %w", err)
	}
	return rows, nil
}

// ResolveUser loads the user's role and subscription history and resolves
// the effective access level. Lookup errors propagate so callers fail
// closed; no access level is ever defaulted on error.
func (s *Service) ResolveUser(ctx context.Context, userID string) (*Resolution, error) {
	user, err := s.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.GetSubscriptionRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := s.ResolveFromSnapshot(user, rows, time.Now())
	return &res, nil
}

// ResolveFromSnapshot resolves access from already-loaded records.
func (s *Service) ResolveFromSnapshot(user *models.AppUser, rows []*models.Subscription, now time.Time) Resolution {
	state := StateFromRows(rows)
	return Resolve(ResolveInput{
		IsAdmin:       user.IsAdmin(),
		Subscribed:    state.Kind == StateActive,
		State:         state,
		TrialDaysLeft: TrialDaysLeft(s.trialAnchor(user, rows), s.cfg.Trial.Days, now),
	})
}

// trialAnchor is the moment the trial window opened: the user's oldest
// subscription row if one exists, else the profile creation time.
func (s *Service) trialAnchor(user *models.AppUser, rows []*models.Subscription) time.Time {
	if len(rows) > 0 {
		return rows[len(rows)-1].CreatedAt
	}
	if user != nil {
		return user.CreatedAt
	}
	return time.Time{}
}
