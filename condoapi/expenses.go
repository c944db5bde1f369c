package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
)

type ExpensesService struct {
	gw *gateway.Gateway
}

func (s *ExpensesService) List(ctx context.Context) ([]Expense, error) {
	var list []Expense
	if err := s.gw.Get(ctx, "/expenses/", &list); err != nil {
		return nil, err
	}
	return list, nil
}
