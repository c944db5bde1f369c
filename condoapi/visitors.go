package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
)

type VisitorsService struct {
	gw *gateway.Gateway
}

func (s *VisitorsService) List(ctx context.Context) ([]Visitor, error) {
	var list []Visitor
	if err := s.gw.Get(ctx, "/visitors/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *VisitorsService) Create(ctx context.Context, visitor Visitor) (Visitor, error) {
	var created Visitor
	if err := s.gw.Post(ctx, "/visitors/", visitor, &created); err != nil {
		return Visitor{}, err
	}
	return created, nil
}
