package users

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UserType represents the principal category driving every authorization
// decision in the console.
type UserType string

const (
	TypeAdmin       UserType = "admin"       // Full administrative access
	TypeResident    UserType = "resident"    // Unit resident
	TypeSecurity    UserType = "security"    // Security staff
	TypeMaintenance UserType = "maintenance" // Maintenance staff
)

// ParseUserType normalizes a raw role string from the backend.
// Unknown values are returned as-is so that a new backend role degrades to
// "no gated route matches" rather than a hard failure.
func ParseUserType(s string) UserType {
	return UserType(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether t is one of the four backend user types.
func (t UserType) Known() bool {
	switch t {
	case TypeAdmin, TypeResident, TypeSecurity, TypeMaintenance:
		return true
	}
	return false
}

// Profile is the authenticated principal as returned by the backend.
//
// Older backend shapes carried the user type under "role" instead of
// "user_type". Both fields are kept and always hold the same value after
// Normalize runs, so consumers can read either without a fallback chain.
type Profile struct {
	ID        int64    `json:"id,omitempty"`
	Username  string   `json:"username,omitempty"`
	Email     string   `json:"email,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
	DNI       string   `json:"dni,omitempty"`
	Phone     string   `json:"phone_number,omitempty"`
	BirthDate string   `json:"birth_date,omitempty"`
	UserType  UserType `json:"user_type,omitempty"`
	Role      UserType `json:"role,omitempty"` // legacy alias of UserType

	// IsActive is a pointer so partial profile documents can omit the flag
	// without it reading as "deactivated".
	IsActive *bool `json:"is_active,omitempty"`
}

// Normalize synchronizes the user_type/role aliasing. Whichever field is
// populated wins; user_type takes precedence when both are set. This runs
// once at every ingestion boundary (login response, store hydration, profile
// update) so the rest of the console never performs fallback reads.
func (p *Profile) Normalize() {
	userType := ParseUserType(string(p.UserType))
	role := ParseUserType(string(p.Role))

	effective := userType
	if effective == "" {
		effective = role
	}
	p.UserType = effective
	p.Role = effective
}

// EffectiveType returns the normalized user type.
func (p *Profile) EffectiveType() UserType {
	if p.UserType != "" {
		return p.UserType
	}
	return p.Role // defensive fallback, both are equal after Normalize
}

// Active reports the account flag; an absent flag counts as active.
func (p *Profile) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// FullName returns "First Last", falling back to the username.
func (p *Profile) FullName() string {
	name := strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
	if name == "" {
		return p.Username
	}
	return name
}

// MarshalStored serializes the profile for the persisted session store.
func (p Profile) MarshalStored() ([]byte, error) {
	return json.Marshal(p)
}

// ParseProfile decodes a stored profile JSON document and normalizes the
// role aliasing. An empty or unparsable document is an error; the caller
// treats it as "no session".
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("users.ParseProfile: %w", err)
	}
	p.Normalize()
	return p, nil
}
