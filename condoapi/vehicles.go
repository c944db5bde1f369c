package condoapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/smart-condominium/condo-console/gateway"
)

type VehiclesService struct {
	gw *gateway.Gateway
}

func (s *VehiclesService) List(ctx context.Context) ([]Vehicle, error) {
	var list []Vehicle
	if err := s.gw.Get(ctx, "/vehicles/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *VehiclesService) ListPlates(ctx context.Context) ([]VehiclePlate, error) {
	var list []VehiclePlate
	if err := s.gw.Get(ctx, "/vehicle-plates/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *VehiclesService) CreatePlate(ctx context.Context, plate VehiclePlate) (VehiclePlate, error) {
	var created VehiclePlate
	if err := s.gw.Post(ctx, "/vehicle-plates/", plate, &created); err != nil {
		return VehiclePlate{}, err
	}
	return created, nil
}

func (s *VehiclesService) UpdatePlate(ctx context.Context, id int64, plate VehiclePlate) (VehiclePlate, error) {
	var updated VehiclePlate
	if err := s.gw.Put(ctx, fmt.Sprintf("/vehicle-plates/%d/", id), plate, &updated); err != nil {
		return VehiclePlate{}, err
	}
	return updated, nil
}

func (s *VehiclesService) DeletePlate(ctx context.Context, id int64) error {
	return s.gw.Delete(ctx, fmt.Sprintf("/vehicle-plates/%d/", id))
}

type plateRecognitionRequest struct {
	Image    string `json:"image"`
	CameraID string `json:"camera_id"`
}

// PlateRecognition is the OCR service's verdict for one captured frame.
type PlateRecognition struct {
	PlateNumber   string  `json:"plate_number"`
	Confidence    float64 `json:"confidence_score"`
	IsAuthorized  bool    `json:"is_authorized"`
	AccessGranted bool    `json:"access_granted"`
	Message       string  `json:"message,omitempty"`
}

// RecognizePlate posts a base64-encoded JPEG to the OCR endpoint. The
// recognition itself is entirely backend-side; no retry policy is applied.
func (s *VehiclesService) RecognizePlate(ctx context.Context, imageBase64, cameraID string) (PlateRecognition, error) {
	var result PlateRecognition
	req := plateRecognitionRequest{Image: imageBase64, CameraID: cameraID}
	if err := s.gw.Post(ctx, "/ocr/recognize-plate/", req, &result); err != nil {
		return PlateRecognition{}, err
	}
	return result, nil
}

// AccessLogFilter narrows the access log listing. Zero values are omitted.
type AccessLogFilter struct {
	Plate      string
	StartDate  string
	EndDate    string
	AccessType string
}

func (s *VehiclesService) AccessLogs(ctx context.Context, filter AccessLogFilter) ([]VehicleAccessLog, error) {
	query := url.Values{}
	if filter.Plate != "" {
		query.Set("plate", filter.Plate)
	}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	if filter.AccessType != "" {
		query.Set("access_type", filter.AccessType)
	}

	var list []VehicleAccessLog
	if err := s.gw.GetQuery(ctx, "/vehicle-access-logs/", query, &list); err != nil {
		return nil, err
	}
	return list, nil
}
