package condoapi

import (
	"context"
	"fmt"

	"github.com/smart-condominium/condo-console/gateway"
)

type UnitsService struct {
	gw *gateway.Gateway
}

func (s *UnitsService) List(ctx context.Context) ([]Unit, error) {
	var list []Unit
	if err := s.gw.Get(ctx, "/units/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *UnitsService) Create(ctx context.Context, unit Unit) (Unit, error) {
	var created Unit
	if err := s.gw.Post(ctx, "/units/", unit, &created); err != nil {
		return Unit{}, err
	}
	return created, nil
}

func (s *UnitsService) Update(ctx context.Context, id int64, unit Unit) (Unit, error) {
	var updated Unit
	if err := s.gw.Put(ctx, fmt.Sprintf("/units/%d/", id), unit, &updated); err != nil {
		return Unit{}, err
	}
	return updated, nil
}

func (s *UnitsService) Delete(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/units/%d/", id))
}

type assignResident struct {
	UserID int64 `json:"user_id"`
}

// AssignResident links a resident to a unit.
func (s *UnitsService) AssignResident(ctx context.Context, unitID, userID int64) error {
	return s.gw.Patch(ctx, fmt.Sprintf("/units/%d/assign-resident/", unitID), assignResident{UserID: userID}, nil)
}
