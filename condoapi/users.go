package condoapi

import (
	"context"
	"fmt"

	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/users"
)

type UsersService struct {
	gw *gateway.Gateway
}

func (s *UsersService) List(ctx context.Context) ([]users.Profile, error) {
	var list []users.Profile
	if err := s.gw.Get(ctx, "/users/", &list); err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

func (s *UsersService) Update(ctx context.Context, id int64, update users.Profile) (users.Profile, error) {
	var updated users.Profile
	if err := s.gw.Patch(ctx, fmt.Sprintf("/users/%d/", id), update, &updated); err != nil {
		return users.Profile{}, err
	}
	updated.Normalize()
	return updated, nil
}

type roleUpdate struct {
	UserType string `json:"user_type"`
}

// UpdateRole changes a user's type via the dedicated role endpoint.
func (s *UsersService) UpdateRole(ctx context.Context, id int64, role users.UserType) error {
	return s.gw.Patch(ctx, fmt.Sprintf("/users/%d/role/", id), roleUpdate{UserType: string(role)}, nil)
}
