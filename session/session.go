// Package session holds the authenticated context for one console process:
// the access/refresh token pair and the last-known user profile, backed by a
// durable key-value store that survives restarts.
package session

import (
	"golang.org/x/oauth2"

	"github.com/smart-condominium/condo-console/users"
)

// Store keys. The three entries form the persisted session triple; a session
// exists if and only if all three are present and the profile parses.
const (
	KeyAccess  = "access"
	KeyRefresh = "refresh"
	KeyUser    = "user"
)

// Session is the authenticated credential plus profile for this process.
type Session struct {
	// Token carries the bearer credential pair. The refresh token is stored
	// but never exchanged; the backend invalidates by returning 401.
	Token oauth2.Token

	// User is the authenticated principal, normalized so that UserType and
	// the legacy Role alias always agree.
	User users.Profile
}

// AccessToken returns the opaque bearer string.
func (s *Session) AccessToken() string {
	return s.Token.AccessToken
}
