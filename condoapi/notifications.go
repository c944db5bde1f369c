package condoapi

import (
	"context"
	"fmt"

	"github.com/smart-condominium/condo-console/gateway"
)

type NotificationsService struct {
	gw *gateway.Gateway
}

func (s *NotificationsService) List(ctx context.Context) ([]Notification, error) {
	var list []Notification
	if err := s.gw.Get(ctx, "/notifications/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return s.gw.Patch(ctx, fmt.Sprintf("/notifications/%d/read/", id), nil, nil)
}
