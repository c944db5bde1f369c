package condoapi

import (
	"context"
	"fmt"

	"github.com/smart-condominium/condo-console/gateway"
)

type AreasService struct {
	gw *gateway.Gateway
}

func (s *AreasService) List(ctx context.Context) ([]CommonArea, error) {
	var list []CommonArea
	if err := s.gw.Get(ctx, "/common-areas/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *AreasService) Create(ctx context.Context, area CommonArea) (CommonArea, error) {
	var created CommonArea
	if err := s.gw.Post(ctx, "/common-areas/", area, &created); err != nil {
		return CommonArea{}, err
	}
	return created, nil
}

type activeToggle struct {
	IsActive bool `json:"is_active"`
}

// SetActive toggles whether an area can be reserved.
func (s *AreasService) SetActive(ctx context.Context, id int64, active bool) error {
	return s.gw.Patch(ctx, fmt.Sprintf("/common-areas/%d/", id), activeToggle{IsActive: active}, nil)
}
