package guard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/renascerfit/coach/internal/app/service/entitlement"
	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/types"
)

// Area is a protected surface of the app. Each area has its own decision
// table; all tables share the redirect precedence of the resolver.
type Area string

const (
	// AreaApp requires only an authenticated session.
	AreaApp Area = "app"
	// AreaAdmin requires an authenticated admin.
	AreaAdmin Area = "admin"
	// AreaMember requires an entitled subscriber (full or trial).
	AreaMember Area = "member"
)

func ParseArea(s string) (Area, error) {
	switch Area(s) {
	case AreaApp, AreaAdmin, AreaMember:
		return Area(s), nil
	}
	return "", fmt.Errorf("unknown area: %q", s)
}

// Session is the authenticated caller extracted from the session token.
// Nil means no session.
type Session struct {
	UserID string
	Email  string
}

// Decision is the terminal guard outcome for one evaluation. Exactly one of
// Allowed or a non-empty Redirect holds.
type Decision struct {
	Allowed  bool                 `json:"allowed"`
	Redirect types.RedirectTarget `json:"redirect"`
	// Resolution is attached for member-area decisions so the frontend can
	// scope trial features without a second round trip.
	Resolution *entitlement.Resolution `json:"resolution,omitempty"`
}

type Service struct {
	ent *entitlement.Service
	log *zap.SugaredLogger
}

func NewService(ent *entitlement.Service, log *zap.SugaredLogger) *Service {
	return &Service{ent: ent, log: log}
}

// Evaluate runs the lookups an area needs concurrently, joins them, and
// only then applies the decision table. No redirect is ever decided on
// partial information: if any lookup fails the whole evaluation fails and
// the caller keeps the client in its loading state.
func (s *Service) Evaluate(ctx context.Context, sess *Session, area Area) (*Decision, error) {
	if sess == nil || sess.UserID == "" {
		return &Decision{Redirect: types.RedirectAuth}, nil
	}
	if area == AreaApp {
		// Session is the only requirement; skip the snapshot lookups.
		return &Decision{Allowed: true}, nil
	}

	var (
		user *models.AppUser
		rows []*models.Subscription
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.ent.GetUserProfile(gctx, sess.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.ent.GetSubscriptionRows(gctx, sess.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Errorw("guard lookup failed", "user_id", sess.UserID, "area", area, "error", err)
		return nil, fmt.Errorf("guard lookup failed: %w", err)
	}

	res := s.ent.ResolveFromSnapshot(user, rows, time.Now())
	return decide(area, user.IsAdmin(), &res), nil
}

// decide applies the per-area decision table. Checks run in precedence
// order; the first match wins and later checks are not evaluated.
func decide(area Area, isAdmin bool, res *entitlement.Resolution) *Decision {
	switch area {
	case AreaAdmin:
		if !isAdmin {
			return &Decision{Redirect: types.RedirectBlocked}
		}
		return &Decision{Allowed: true}
	case AreaMember:
		switch {
		case isAdmin:
			// Admins are routed to their own panel, away from member areas.
			return &Decision{Redirect: types.RedirectAdmin}
		case res.Redirect != types.RedirectNone:
			return &Decision{Redirect: res.Redirect, Resolution: res}
		case !res.HasAccess:
			return &Decision{Redirect: types.RedirectNeutral, Resolution: res}
		default:
			return &Decision{Allowed: true, Resolution: res}
		}
	default:
		return &Decision{Allowed: true}
	}
}
