package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/users"
)

type AuthService struct {
	gw *gateway.Gateway
}

// LoginResponse is the backend's login payload: the token pair plus the
// authenticated profile. The profile is normalized here, at the ingestion
// boundary, so consumers never see the user_type/role fields disagree.
type LoginResponse struct {
	Access  string        `json:"access"`
	Refresh string        `json:"refresh"`
	User    users.Profile `json:"user"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := s.gw.Post(ctx, "/auth/login/", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return LoginResponse{}, err
	}
	resp.User.Normalize()
	return resp, nil
}

// RegistrationRequest carries the self-registration field set. The admin
// type is not selectable here; the backend rejects it.
type RegistrationRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	DNI       string `json:"dni"`
	Phone     string `json:"phone_number,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	UserType  string `json:"user_type"`
}

func (s *AuthService) Register(ctx context.Context, req RegistrationRequest) (users.Profile, error) {
	var created users.Profile
	if err := s.gw.Post(ctx, "/auth/register/", req, &created); err != nil {
		return users.Profile{}, err
	}
	created.Normalize()
	return created, nil
}
