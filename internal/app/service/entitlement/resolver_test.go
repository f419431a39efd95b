package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/types"
)

func TestResolve_Precedence(t *testing.T) {
	tests := []struct {
		name      string
		in        ResolveInput
		wantLevel types.AccessLevel
		wantFull  bool
		wantTrial bool
		wantRedir types.RedirectTarget
	}{
		{
			name:      "admin wins over blocked",
			in:        ResolveInput{IsAdmin: true, State: State{Kind: StateBlocked}},
			wantLevel: types.AccessLevelFull,
			wantFull:  true,
		},
		{
			name:      "blocked wins over subscribed",
			in:        ResolveInput{Subscribed: true, State: State{Kind: StateBlocked}},
			wantLevel: types.AccessLevelNone,
			wantRedir: types.RedirectBlocked,
		},
		{
			name:      "pending payment without subscription goes neutral, not blocked",
			in:        ResolveInput{State: State{Kind: StatePendingPayment}},
			wantLevel: types.AccessLevelNone,
			wantRedir: types.RedirectNeutral,
		},
		{
			name:      "subscribed wins over stale pending row",
			in:        ResolveInput{Subscribed: true, State: State{Kind: StatePendingPayment}},
			wantLevel: types.AccessLevelFull,
			wantFull:  true,
		},
		{
			name:      "active subscription",
			in:        ResolveInput{Subscribed: true, State: State{Kind: StateActive}},
			wantLevel: types.AccessLevelFull,
			wantFull:  true,
		},
		{
			name:      "trial window while days remain",
			in:        ResolveInput{State: State{Kind: StateNone}, TrialDaysLeft: 3},
			wantLevel: types.AccessLevelTrialLimited,
			wantTrial: true,
		},
		{
			name:      "no rows, no role, expired trial",
			in:        ResolveInput{State: State{Kind: StateNone}},
			wantLevel: types.AccessLevelNone,
			wantRedir: types.RedirectNeutral,
		},
		{
			name:      "lapsed subscription with expired trial",
			in:        ResolveInput{State: State{Kind: StateLapsed}},
			wantLevel: types.AccessLevelNone,
			wantRedir: types.RedirectNeutral,
		},
		{
			name:      "trial not granted while blocked",
			in:        ResolveInput{State: State{Kind: StateBlocked}, TrialDaysLeft: 5},
			wantLevel: types.AccessLevelNone,
			wantRedir: types.RedirectBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.in)
			assert.Equal(t, tt.wantLevel, got.EffectiveLevel)
			assert.Equal(t, tt.wantFull, got.HasFullAccess)
			assert.Equal(t, tt.wantTrial, got.IsTrial)
			assert.Equal(t, tt.wantRedir, got.Redirect)

			// Derived booleans stay mutually consistent in every case.
			if got.HasFullAccess {
				assert.True(t, got.HasAccess, "full access implies access")
			}
			if got.IsTrial {
				assert.False(t, got.HasFullAccess, "trial implies not full")
				assert.True(t, got.HasAccess, "trial implies access")
			}
			if got.EffectiveLevel == types.AccessLevelNone {
				assert.False(t, got.HasAccess)
			}
		})
	}
}

func TestStateFromRows(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		rows []*models.Subscription
		want StateKind
	}{
		{name: "no rows", rows: nil, want: StateNone},
		{
			name: "latest active",
			rows: []*models.Subscription{{Status: types.SubscriptionStatusActive, CreatedAt: now}},
			want: StateActive,
		},
		{
			name: "blocked overrides active status",
			rows: []*models.Subscription{{Status: types.SubscriptionStatusActive, AccessBlocked: true, CreatedAt: now}},
			want: StateBlocked,
		},
		{
			name: "pending payment",
			rows: []*models.Subscription{{Status: types.SubscriptionStatusPendingPayment, CreatedAt: now}},
			want: StatePendingPayment,
		},
		{
			name: "canceled is lapsed",
			rows: []*models.Subscription{{Status: types.SubscriptionStatusCanceled, CreatedAt: now}},
			want: StateLapsed,
		},
		{
			name: "only the newest row counts",
			rows: []*models.Subscription{
				{Status: types.SubscriptionStatusCanceled, CreatedAt: now},
				{Status: types.SubscriptionStatusActive, CreatedAt: now.Add(-24 * time.Hour)},
			},
			want: StateLapsed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StateFromRows(tt.rows)
			assert.Equal(t, tt.want, got.Kind)
			if tt.want != StateNone {
				require.NotNil(t, got.Row)
				assert.Same(t, tt.rows[0], got.Row)
			}
		})
	}
}

func TestTrialDaysLeft(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		anchor    time.Time
		trialDays int
		want      int
	}{
		{name: "fresh anchor", anchor: now, trialDays: 7, want: 7},
		{name: "mid window", anchor: now.AddDate(0, 0, -3), trialDays: 7, want: 4},
		{name: "last day", anchor: now.AddDate(0, 0, -6), trialDays: 7, want: 1},
		{name: "expired", anchor: now.AddDate(0, 0, -7), trialDays: 7, want: 0},
		{name: "long expired never negative", anchor: now.AddDate(0, -2, 0), trialDays: 7, want: 0},
		{name: "zero anchor", anchor: time.Time{}, trialDays: 7, want: 0},
		{name: "zero trial length", anchor: now, trialDays: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrialDaysLeft(tt.anchor, tt.trialDays, now))
		})
	}
}
