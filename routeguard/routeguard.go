// Package routeguard decides, per navigation, whether the current session
// may view a screen. The decision is a pure function of session state and
// route policy: it is re-evaluated on every navigation and never cached.
package routeguard

import (
	"github.com/smart-condominium/condo-console/session"
	"github.com/smart-condominium/condo-console/users"
)

// Policy is the declarative authorization attached to a navigable screen.
// Policies are assembled at startup and never mutated afterwards.
type Policy struct {
	Path string

	// RequiredRoles lists the user types admitted to the screen. Empty
	// means any authenticated session.
	RequiredRoles []users.UserType
}

// Decision is the outcome of evaluating one navigation.
type Decision int

const (
	// DecisionLoading: hydration has not finished; render a placeholder,
	// neither the screen nor a redirect. Prevents the flicker where a
	// not-yet-hydrated empty state is mistaken for "logged out".
	DecisionLoading Decision = iota

	// DecisionRedirectLogin: no session; the requested destination is
	// discarded, not preserved for after login.
	DecisionRedirectLogin

	// DecisionAllow: render the screen.
	DecisionAllow

	// DecisionRedirectDashboard: authenticated but the role is not in the
	// policy's set; silently redirect to the default landing screen.
	DecisionRedirectDashboard
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectDashboard:
		return "redirect-dashboard"
	}
	return "unknown"
}

// SessionState is the read-only slice of the session manager the guard
// consults.
type SessionState interface {
	Initializing() bool
	Current() (session.Session, bool)
}

// Evaluate runs the guard algorithm for one navigation.
func Evaluate(state SessionState, policy Policy) Decision {
	if state.Initializing() {
		return DecisionLoading
	}

	current, ok := state.Current()
	if !ok {
		return DecisionRedirectLogin
	}

	if len(policy.RequiredRoles) == 0 {
		return DecisionAllow
	}

	role := current.User.EffectiveType()
	for _, required := range policy.RequiredRoles {
		if role == required {
			return DecisionAllow
		}
	}
	return DecisionRedirectDashboard
}
