package server

import (
	"net/http"
	"strings"

	"github.com/smart-condominium/condo-console/routeguard"
	"github.com/smart-condominium/condo-console/users"
)

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET /{$}", s.IndexHandler())
	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), s.HTMLMiddleware()...))

	// LOGIN / REGISTER (public)
	s.RegisterRouteFunc("GET "+RouteLogin, s.LoginPageHandler())
	s.RegisterRouteFunc("POST "+RouteAuthLogin, s.LoginSubmissionHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())
	s.RegisterRouteFunc("GET "+RouteRegister, s.RegisterPageHandler())
	s.RegisterRouteFunc("POST "+RouteAuthRegister, s.RegisterSubmissionHandler())

	// Any authenticated user
	s.gated("GET "+RouteDashboard, s.DashboardHandler())
	s.gated("GET "+RouteNotifications, s.NotificationsHandler())
	s.gated("POST "+RouteNotificationsRead, s.NotificationReadHandler())
	s.gated("GET "+RouteProfile, s.ProfilePageHandler())
	s.gated("POST "+RouteProfile, s.ProfileUpdateHandler())

	// Admin screens
	s.gated("GET "+RouteAdminDashboard, s.AdminDashboardHandler(), users.TypeAdmin)
	s.gated("GET "+RouteRoles, s.RolesPageHandler(), users.TypeAdmin)
	s.gated("POST "+RouteRoles, s.RoleUpdateHandler(), users.TypeAdmin)
	s.gated("GET "+RouteManageUsers, s.ManageUsersHandler(), users.TypeAdmin)
	s.gated("GET "+RouteManageUnits, s.ManageUnitsHandler(), users.TypeAdmin)
	s.gated("POST "+RouteUnits, s.UnitCreateHandler(), users.TypeAdmin)
	s.gated("POST "+RouteUnitDelete, s.UnitDeleteHandler(), users.TypeAdmin)
	s.gated("POST "+RouteUnitAssign, s.UnitAssignHandler(), users.TypeAdmin)
	s.gated("GET "+RouteManageAreas, s.ManageAreasHandler(), users.TypeAdmin)
	s.gated("POST "+RouteAreas, s.AreaCreateHandler(), users.TypeAdmin)
	s.gated("POST "+RouteAreaToggle, s.AreaToggleHandler(), users.TypeAdmin)
	s.gated("GET "+RouteViewReports, s.ViewReportsHandler(), users.TypeAdmin)
	s.gated("GET "+RouteReportDownload, s.ReportDownloadHandler(), users.TypeAdmin)

	// Resident screens
	s.gated("GET "+RouteReserveArea, s.ReserveAreaHandler(), users.TypeResident)
	s.gated("POST "+RouteReservations, s.ReservationCreateHandler(), users.TypeResident)
	s.gated("GET "+RouteViewBills, s.ViewBillsHandler(), users.TypeResident)
	s.gated("GET "+RouteRequestMaintenance, s.RequestMaintenanceHandler(), users.TypeResident)
	s.gated("POST "+RouteMaintenance, s.MaintenanceCreateHandler(), users.TypeResident)
	s.gated("GET "+RouteMaintenanceStatus, s.MaintenanceStatusHandler(), users.TypeResident)

	// Security screens (shared with admin)
	s.gated("GET "+RouteViewVisitors, s.ViewVisitorsHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RouteVisitors, s.VisitorCreateHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RouteFaceRegister, s.FaceRegisterPageHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RouteFaceRegisterPost, s.FaceRegisterSubmitHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RouteFaceRecognize, s.FaceRecognizePageHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RouteFaceRecognizePost, s.FaceRecognizeSubmitHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RouteSecurityEvents, s.SecurityEventsHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RouteSecurityEventPost, s.SecurityEventCreateHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RoutePlates, s.PlatesHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RoutePlates, s.PlateCreateHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RoutePlateDelete, s.PlateDeleteHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RoutePlateRecognition, s.PlateRecognitionPageHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("POST "+RoutePlateOCR, s.PlateRecognizeSubmitHandler(), users.TypeAdmin, users.TypeSecurity)
	s.gated("GET "+RouteAccessLogs, s.AccessLogsHandler(), users.TypeAdmin, users.TypeSecurity)
}

// gated registers a handler behind the route guard with the screen's
// required-roles policy and the standard HTML middleware chain.
func (s *Server) gated(pattern string, handler http.HandlerFunc, roles ...users.UserType) {
	parts := strings.SplitN(pattern, " ", 2)
	path := parts[len(parts)-1]
	policy := routeguard.Policy{Path: path, RequiredRoles: roles}
	s.RegisterRouteHandler(pattern, ChainMiddleware(handler, s.HTMLMiddleware(s.GuardMiddleware(policy))...))
}
