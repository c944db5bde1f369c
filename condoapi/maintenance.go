package condoapi

import (
	"context"
	"strconv"

	"github.com/smart-condominium/condo-console/gateway"
)

type MaintenanceService struct {
	gw *gateway.Gateway
}

func (s *MaintenanceService) List(ctx context.Context) ([]MaintenanceRequest, error) {
	var list []MaintenanceRequest
	if err := s.gw.Get(ctx, "/maintenance/requests/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Create files a maintenance request. When an image is attached the request
// goes out as multipart/form-data, otherwise as JSON.
func (s *MaintenanceService) Create(ctx context.Context, unitID int64, description string, image []byte, imageName string) (MaintenanceRequest, error) {
	var created MaintenanceRequest

	if len(image) > 0 {
		fields := map[string]string{
			"unit":        strconv.FormatInt(unitID, 10),
			"description": description,
		}
		if err := s.gw.PostMultipart(ctx, "/maintenance/requests/", fields, "image", imageName, image, &created); err != nil {
			return MaintenanceRequest{}, err
		}
		return created, nil
	}

	req := MaintenanceRequest{Unit: unitID, Description: description}
	if err := s.gw.Post(ctx, "/maintenance/requests/", req, &created); err != nil {
		return MaintenanceRequest{}, err
	}
	return created, nil
}
