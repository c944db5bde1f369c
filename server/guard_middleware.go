package server

import (
	"net/http"

	"github.com/smart-condominium/condo-console/routeguard"
)

// GuardMiddleware evaluates the screen's policy against the live session on
// every request. Denials for authenticated users are silent: a redirect to
// the dashboard with no error surfaced to the page.
func (s *Server) GuardMiddleware(policy routeguard.Policy) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			switch decision := routeguard.Evaluate(s.sessions, policy); decision {
			case routeguard.DecisionLoading:
				s.LoadingHandler()(w, r)
			case routeguard.DecisionRedirectLogin:
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			case routeguard.DecisionRedirectDashboard:
				s.log.Warn().
					Str("path", policy.Path).
					Str("decision", decision.String()).
					Msg("session role not admitted to screen")
				http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
			case routeguard.DecisionAllow:
				next(w, r)
			}
		}
	}
}
