// Package condoapi provides typed clients for the Smart Condominium REST
// backend. Every call goes through the gateway, which owns credential
// attachment and 401 handling; the services here are thin request/response
// bindings with no policy of their own.
package condoapi

import (
	"github.com/smart-condominium/condo-console/gateway"
)

type Client struct {
	Auth          *AuthService
	Users         *UsersService
	Units         *UnitsService
	Areas         *AreasService
	Reservations  *ReservationsService
	Expenses      *ExpensesService
	Visitors      *VisitorsService
	Security      *SecurityService
	Maintenance   *MaintenanceService
	Notifications *NotificationsService
	Vehicles      *VehiclesService
	Face          *FaceService
	Reports       *ReportsService
}

func New(gw *gateway.Gateway) *Client {
	return &Client{
		Auth:          &AuthService{gw: gw},
		Users:         &UsersService{gw: gw},
		Units:         &UnitsService{gw: gw},
		Areas:         &AreasService{gw: gw},
		Reservations:  &ReservationsService{gw: gw},
		Expenses:      &ExpensesService{gw: gw},
		Visitors:      &VisitorsService{gw: gw},
		Security:      &SecurityService{gw: gw},
		Maintenance:   &MaintenanceService{gw: gw},
		Notifications: &NotificationsService{gw: gw},
		Vehicles:      &VehiclesService{gw: gw},
		Face:          &FaceService{gw: gw},
		Reports:       &ReportsService{gw: gw},
	}
}
