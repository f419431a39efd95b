package entitlement

import (
	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/types"
)

// StateKind is the tagged classification of a user's latest subscription
// row. It is built once from the raw row and matched exhaustively in
// Resolve, so string fields are never re-checked downstream.
type StateKind string

const (
	StateNone           StateKind = "none"
	StateActive         StateKind = "active"
	StatePendingPayment StateKind = "pending_payment"
	StateBlocked        StateKind = "blocked"
	StateLapsed         StateKind = "lapsed"
)

type State struct {
	Kind StateKind
	// Row is the authoritative subscription row, nil for StateNone.
	Row *models.Subscription
}

// StateFromRows classifies the newest subscription row. Rows must be
// ordered newest-first; only the first row is considered.
func StateFromRows(rows []*models.Subscription) State {
	if len(rows) == 0 {
		return State{Kind: StateNone}
	}
	latest := rows[0]
	switch {
	case latest.AccessBlocked:
		return State{Kind: StateBlocked, Row: latest}
	case latest.Status == types.SubscriptionStatusPendingPayment:
		return State{Kind: StatePendingPayment, Row: latest}
	case latest.Status == types.SubscriptionStatusActive:
		return State{Kind: StateActive, Row: latest}
	default:
		// canceled or inactive
		return State{Kind: StateLapsed, Row: latest}
	}
}
