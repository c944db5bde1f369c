package users_test

import (
	"testing"

	"github.com/smart-condominium/condo-console/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAliasing(t *testing.T) {
	tests := []struct {
		name     string
		userType string
		role     string
		want     users.UserType
	}{
		{name: "user_type only", userType: "resident", role: "", want: users.TypeResident},
		{name: "legacy role only", userType: "", role: "security", want: users.TypeSecurity},
		{name: "both set user_type wins", userType: "admin", role: "resident", want: users.TypeAdmin},
		{name: "case and whitespace", userType: " Admin ", role: "", want: users.TypeAdmin},
		{name: "both empty", userType: "", role: "", want: users.UserType("")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := users.Profile{
				UserType: users.UserType(tc.userType),
				Role:     users.UserType(tc.role),
			}
			p.Normalize()
			assert.Equal(t, tc.want, p.UserType)
			assert.Equal(t, tc.want, p.Role, "both fields must carry the same value after normalization")
			assert.Equal(t, tc.want, p.EffectiveType())
		})
	}
}

func TestParseProfile(t *testing.T) {
	t.Run("legacy role field populates user_type", func(t *testing.T) {
		p, err := users.ParseProfile([]byte(`{"id":1,"username":"alice","role":"maintenance"}`))
		require.NoError(t, err)
		assert.Equal(t, users.TypeMaintenance, p.UserType)
		assert.Equal(t, users.TypeMaintenance, p.Role)
	})

	t.Run("invalid json is an error", func(t *testing.T) {
		_, err := users.ParseProfile([]byte(`{not json`))
		require.Error(t, err)
	})
}

func TestUserTypeKnown(t *testing.T) {
	assert.True(t, users.TypeAdmin.Known())
	assert.True(t, users.TypeResident.Known())
	assert.True(t, users.TypeSecurity.Known())
	assert.True(t, users.TypeMaintenance.Known())
	assert.False(t, users.ParseUserType("superuser").Known())
}

func TestFullName(t *testing.T) {
	p := users.Profile{Username: "alice", FirstName: "Alice", LastName: "Aguilar"}
	assert.Equal(t, "Alice Aguilar", p.FullName())

	p = users.Profile{Username: "alice"}
	assert.Equal(t, "alice", p.FullName())
}
