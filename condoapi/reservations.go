package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
)

type ReservationsService struct {
	gw *gateway.Gateway
}

func (s *ReservationsService) List(ctx context.Context) ([]Reservation, error) {
	var list []Reservation
	if err := s.gw.Get(ctx, "/reservations/", &list); err != nil {
		return nil, err
	}
	return list, nil
}

type reservationRequest struct {
	Area      int64  `json:"area"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (s *ReservationsService) Create(ctx context.Context, areaID int64, date, startTime, endTime string) (Reservation, error) {
	var created Reservation
	req := reservationRequest{Area: areaID, Date: date, StartTime: startTime, EndTime: endTime}
	if err := s.gw.Post(ctx, "/reservations/", req, &created); err != nil {
		return Reservation{}, err
	}
	return created, nil
}
