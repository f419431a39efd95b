package entitlement

import (
	"time"

	"github.com/renascerfit/coach/pkg/types"
)

// ResolveInput is everything the resolver needs to decide an access level.
// All fields are plain values so Resolve stays pure and testable without a
// database or clock.
type ResolveInput struct {
	IsAdmin bool
	// Subscribed is the independently-reported active-subscription signal.
	// Kept separate from State because a stale pending_payment row may
	// coexist with a currently valid subscription; subscribed wins.
	Subscribed    bool
	State         State
	TrialDaysLeft int
}

// Resolution is the resolved access tier plus the derived booleans the
// guards consume. HasFullAccess implies HasAccess; IsTrial implies not
// HasFullAccess.
type Resolution struct {
	EffectiveLevel types.AccessLevel    `json:"effective_level"`
	HasAccess      bool                 `json:"has_access"`
	HasFullAccess  bool                 `json:"has_full_access"`
	IsTrial        bool                 `json:"is_trial"`
	TrialDaysLeft  int                  `json:"trial_days_left"`
	Redirect       types.RedirectTarget `json:"redirect"`
}

// Resolve computes the effective access level. Precedence, highest first:
// admin, blocked, pending-payment-without-subscription, subscribed, trial
// window, none. The first matching rule wins.
func Resolve(in ResolveInput) Resolution {
	switch {
	case in.IsAdmin:
		// Admins bypass all subscription checks, including blocks.
		return Resolution{
			EffectiveLevel: types.AccessLevelFull,
			HasAccess:      true,
			HasFullAccess:  true,
		}
	case in.State.Kind == StateBlocked:
		return Resolution{
			EffectiveLevel: types.AccessLevelNone,
			Redirect:       types.RedirectBlocked,
		}
	case in.State.Kind == StatePendingPayment && !in.Subscribed:
		// Still setting up payment: neutral surface, not the blocked page.
		return Resolution{
			EffectiveLevel: types.AccessLevelNone,
			Redirect:       types.RedirectNeutral,
		}
	case in.Subscribed:
		return Resolution{
			EffectiveLevel: types.AccessLevelFull,
			HasAccess:      true,
			HasFullAccess:  true,
		}
	case in.TrialDaysLeft > 0:
		return Resolution{
			EffectiveLevel: types.AccessLevelTrialLimited,
			HasAccess:      true,
			IsTrial:        true,
			TrialDaysLeft:  in.TrialDaysLeft,
		}
	default:
		return Resolution{
			EffectiveLevel: types.AccessLevelNone,
			Redirect:       types.RedirectNeutral,
		}
	}
}

// TrialDaysLeft returns the whole days remaining in the trial window that
// opened at anchor. Never negative.
func TrialDaysLeft(anchor time.Time, trialDays int, now time.Time) int {
	if anchor.IsZero() || trialDays <= 0 {
		return 0
	}
	elapsed := int(now.Sub(anchor).Hours() / 24)
	left := trialDays - elapsed
	if left < 0 {
		return 0
	}
	return left
}
