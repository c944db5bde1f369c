package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
)

type SecurityService struct {
	gw *gateway.Gateway
}

func (s *SecurityService) ListEvents(ctx context.Context) ([]SecurityEvent, error) {
	var list []SecurityEvent
	if err := s.gw.Get(ctx, "/security/events/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *SecurityService) CreateEvent(ctx context.Context, event SecurityEvent) (SecurityEvent, error) {
	var created SecurityEvent
	if err := s.gw.Post(ctx, "/security/events/", event, &created); err != nil {
		return SecurityEvent{}, err
	}
	return created, nil
}
