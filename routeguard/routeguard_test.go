package routeguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smart-condominium/condo-console/routeguard"
	"github.com/smart-condominium/condo-console/session"
	"github.com/smart-condominium/condo-console/users"
)

type fakeState struct {
	initializing bool
	session      *session.Session
}

func (f *fakeState) Initializing() bool { return f.initializing }

func (f *fakeState) Current() (session.Session, bool) {
	if f.session == nil {
		return session.Session{}, false
	}
	return *f.session, true
}

func sessionFor(role users.UserType) *session.Session {
	s := &session.Session{User: users.Profile{ID: 1, Username: "alice", UserType: role, Role: role}}
	s.Token.AccessToken = "t1"
	return s
}

func TestEvaluate(t *testing.T) {
	adminOnly := routeguard.Policy{Path: "/manage-users", RequiredRoles: []users.UserType{users.TypeAdmin}}
	securityOrAdmin := routeguard.Policy{Path: "/security-events", RequiredRoles: []users.UserType{users.TypeAdmin, users.TypeSecurity}}
	anyAuthenticated := routeguard.Policy{Path: "/dashboard"}

	tests := []struct {
		name   string
		state  *fakeState
		policy routeguard.Policy
		want   routeguard.Decision
	}{
		{
			name:   "initializing renders placeholder, never redirects",
			state:  &fakeState{initializing: true},
			policy: adminOnly,
			want:   routeguard.DecisionLoading,
		},
		{
			name:   "no session redirects to login",
			state:  &fakeState{},
			policy: anyAuthenticated,
			want:   routeguard.DecisionRedirectLogin,
		},
		{
			name:   "resident denied admin route",
			state:  &fakeState{session: sessionFor(users.TypeResident)},
			policy: adminOnly,
			want:   routeguard.DecisionRedirectDashboard,
		},
		{
			name:   "admin allowed on admin route",
			state:  &fakeState{session: sessionFor(users.TypeAdmin)},
			policy: adminOnly,
			want:   routeguard.DecisionAllow,
		},
		{
			name:   "security allowed on multi-role route",
			state:  &fakeState{session: sessionFor(users.TypeSecurity)},
			policy: securityOrAdmin,
			want:   routeguard.DecisionAllow,
		},
		{
			name:   "maintenance denied multi-role route",
			state:  &fakeState{session: sessionFor(users.TypeMaintenance)},
			policy: securityOrAdmin,
			want:   routeguard.DecisionRedirectDashboard,
		},
		{
			name:   "empty role set admits any authenticated session",
			state:  &fakeState{session: sessionFor(users.TypeMaintenance)},
			policy: anyAuthenticated,
			want:   routeguard.DecisionAllow,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, routeguard.Evaluate(tc.state, tc.policy))
		})
	}
}

func TestEvaluateLegacyRoleFallback(t *testing.T) {
	// A session whose profile only carries the legacy role field is still
	// authorized; EffectiveType falls back to it.
	s := &session.Session{User: users.Profile{ID: 1, Username: "bob", Role: users.TypeAdmin}}
	s.Token.AccessToken = "t1"
	state := &fakeState{session: s}

	policy := routeguard.Policy{Path: "/roles", RequiredRoles: []users.UserType{users.TypeAdmin}}
	assert.Equal(t, routeguard.DecisionAllow, routeguard.Evaluate(state, policy))
}
