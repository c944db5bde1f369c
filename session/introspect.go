package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the exp claim of an access token without verifying the
// signature. It exists purely so the profile screen can show when the
// credential runs out; tokens stay opaque everywhere else and a token that
// does not decode is simply reported as having no known expiry. Never use
// this to accept or reject a token; only the backend's 401 does that.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
