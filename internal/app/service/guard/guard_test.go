package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renascerfit/coach/internal/app/service/entitlement"
	"github.com/renascerfit/coach/pkg/types"
)

func res(level types.AccessLevel, redirect types.RedirectTarget) *entitlement.Resolution {
	return &entitlement.Resolution{
		EffectiveLevel: level,
		HasAccess:      level != types.AccessLevelNone,
		HasFullAccess:  level == types.AccessLevelFull,
		IsTrial:        level == types.AccessLevelTrialLimited,
		Redirect:       redirect,
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		area      Area
		isAdmin   bool
		res       *entitlement.Resolution
		wantAllow bool
		wantRedir types.RedirectTarget
	}{
		// admin area
		{
			name: "admin area allows admins",
			area: AreaAdmin, isAdmin: true,
			res:       res(types.AccessLevelFull, types.RedirectNone),
			wantAllow: true,
		},
		{
			name: "admin area blocks members even with full access",
			area: AreaAdmin, isAdmin: false,
			res:       res(types.AccessLevelFull, types.RedirectNone),
			wantRedir: types.RedirectBlocked,
		},
		// member area
		{
			name: "member area routes admins to their panel",
			area: AreaMember, isAdmin: true,
			res:       res(types.AccessLevelFull, types.RedirectNone),
			wantRedir: types.RedirectAdmin,
		},
		{
			name: "member area admin redirect wins over blocked",
			area: AreaMember, isAdmin: true,
			res:       res(types.AccessLevelNone, types.RedirectBlocked),
			wantRedir: types.RedirectAdmin,
		},
		{
			name: "member area blocked user",
			area: AreaMember, isAdmin: false,
			res:       res(types.AccessLevelNone, types.RedirectBlocked),
			wantRedir: types.RedirectBlocked,
		},
		{
			name: "member area pending payment goes neutral",
			area: AreaMember, isAdmin: false,
			res:       res(types.AccessLevelNone, types.RedirectNeutral),
			wantRedir: types.RedirectNeutral,
		},
		{
			name: "member area full subscriber",
			area: AreaMember, isAdmin: false,
			res:       res(types.AccessLevelFull, types.RedirectNone),
			wantAllow: true,
		},
		{
			name: "member area trial user allowed",
			area: AreaMember, isAdmin: false,
			res:       res(types.AccessLevelTrialLimited, types.RedirectNone),
			wantAllow: true,
		},
		// app area
		{
			name: "app area needs only a session",
			area: AreaApp, isAdmin: false,
			res:       res(types.AccessLevelNone, types.RedirectNeutral),
			wantAllow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decide(tt.area, tt.isAdmin, tt.res)
			assert.Equal(t, tt.wantAllow, got.Allowed)
			assert.Equal(t, tt.wantRedir, got.Redirect)
			// exactly one of allow / redirect holds
			assert.NotEqual(t, got.Allowed, got.Redirect != types.RedirectNone)
		})
	}
}

func TestDecide_MemberAreaAttachesResolution(t *testing.T) {
	r := res(types.AccessLevelTrialLimited, types.RedirectNone)
	got := decide(AreaMember, false, r)
	require.True(t, got.Allowed)
	assert.Same(t, r, got.Resolution)
}

func TestEvaluate_NoSessionRedirectsToAuth(t *testing.T) {
	s := &Service{}
	for _, area := range []Area{AreaApp, AreaAdmin, AreaMember} {
		got, err := s.Evaluate(t.Context(), nil, area)
		require.NoError(t, err)
		assert.Equal(t, types.RedirectAuth, got.Redirect)
		assert.False(t, got.Allowed)
	}
}

func TestParseArea(t *testing.T) {
	for _, valid := range []string{"app", "admin", "member"} {
		got, err := ParseArea(valid)
		require.NoError(t, err)
		assert.Equal(t, Area(valid), got)
	}
	_, err := ParseArea("dashboard")
	assert.Error(t, err)
}
