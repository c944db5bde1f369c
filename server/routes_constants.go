package server

// Route path constants
// All console routes are defined here to ensure consistency and prevent typos
const (
	// Static assets
	RouteStaticCSS = "/css/{file}"

	// Public routes
	RouteLogin        = "/login"
	RouteRegister     = "/register"
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"
	RouteAuthRegister = "/auth/register"

	// Routes for any authenticated user
	RouteDashboard         = "/dashboard"
	RouteNotifications     = "/notifications"
	RouteNotificationsRead = "/notifications/{id}/read"
	RouteProfile           = "/profile"

	// Admin routes
	RouteAdminDashboard = "/admin-dashboard"
	RouteRoles          = "/roles"
	RouteManageUsers    = "/manage-users"
	RouteManageUnits    = "/manage-units"
	RouteUnits          = "/units"
	RouteUnitDelete     = "/units/{id}/delete"
	RouteUnitAssign     = "/units/{id}/assign"
	RouteManageAreas    = "/manage-areas"
	RouteAreas          = "/areas"
	RouteAreaToggle     = "/areas/{id}/toggle"
	RouteViewReports    = "/view-reports"
	RouteReportDownload = "/reports/financial/download"

	// Resident routes
	RouteReserveArea        = "/reserve-area"
	RouteReservations       = "/reservations"
	RouteViewBills          = "/view-bills"
	RouteRequestMaintenance = "/request-maintenance"
	RouteMaintenanceStatus  = "/maintenance-status"
	RouteMaintenance        = "/maintenance"

	// Security staff routes (shared with admin)
	RouteViewVisitors      = "/view-visitors"
	RouteVisitors          = "/visitors"
	RouteFaceRegister      = "/face-register"
	RouteFaceRegisterPost  = "/face/register"
	RouteFaceRecognize     = "/face-recognize"
	RouteFaceRecognizePost = "/face/recognize"
	RouteSecurityEvents    = "/security-events"
	RouteSecurityEventPost = "/security/events"
	RoutePlates            = "/vehicle-plates"
	RoutePlateDelete       = "/vehicle-plates/{id}/delete"
	RoutePlateRecognition  = "/plate-recognition"
	RoutePlateOCR          = "/ocr/recognize-plate"
	RouteAccessLogs        = "/vehicle-access-logs"
)
