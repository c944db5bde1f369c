package condoapi

import (
	"github.com/smart-condominium/condo-console/users"
)

// Backend representations. Dates, times and decimal amounts stay strings:
// the console renders them, it does not compute with them.

type Unit struct {
	ID        int64           `json:"id,omitempty"`
	Number    string          `json:"number"`
	Floor     int             `json:"floor"`
	Residents []users.Profile `json:"residents,omitempty"`
}

type CommonArea struct {
	ID            int64  `json:"id,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	AvailableFrom string `json:"available_from"`
	AvailableTo   string `json:"available_to"`
	Capacity      int    `json:"capacity"`
	IsActive      bool   `json:"is_active"`
}

type Reservation struct {
	ID        int64          `json:"id,omitempty"`
	User      *users.Profile `json:"user,omitempty"`
	Area      *CommonArea    `json:"area,omitempty"`
	AreaID    int64          `json:"area_id,omitempty"`
	Date      string         `json:"date"`
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	CreatedAt string         `json:"created_at,omitempty"`
}

// Expense statuses as the backend stores them.
const (
	ExpensePending = "PENDIENTE"
	ExpensePaid    = "PAGADA"
	ExpenseOverdue = "VENCIDA"
)

type Expense struct {
	ID          int64  `json:"id,omitempty"`
	Unit        *Unit  `json:"unit,omitempty"`
	Period      string `json:"period"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type Visitor struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	DNI         string `json:"dni"`
	Phone       string `json:"phone_number,omitempty"`
	VisitedUnit int64  `json:"visited_unit"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	EntryTime   string `json:"entry_time,omitempty"`
	ExitTime    string `json:"exit_time,omitempty"`
	Status      string `json:"status,omitempty"`
	QRCode      string `json:"qr_code,omitempty"`
	Purpose     string `json:"purpose"`
}

// Security event types.
const (
	EventFaceRecognition    = "face_recognition"
	EventPlateRecognition   = "plate_recognition"
	EventUnauthorizedAccess = "unauthorized_access"
	EventSuspiciousActivity = "suspicious_activity"
)

type SecurityEvent struct {
	ID          int64          `json:"id,omitempty"`
	EventType   string         `json:"event_type"`
	Description string         `json:"description"`
	Timestamp   string         `json:"timestamp,omitempty"`
	User        *users.Profile `json:"user,omitempty"`
}

type MaintenanceRequest struct {
	ID          int64  `json:"id,omitempty"`
	Unit        int64  `json:"unit"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	ImageURL    string `json:"image,omitempty"`
}

type Notification struct {
	ID      int64          `json:"id,omitempty"`
	User    *users.Profile `json:"user,omitempty"`
	Type    string         `json:"notification_type"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	SentAt  string         `json:"sent_at,omitempty"`
	Status  string         `json:"status,omitempty"`
}

type Vehicle struct {
	ID          int64          `json:"id,omitempty"`
	Owner       *users.Profile `json:"owner,omitempty"`
	PlateNumber string         `json:"plate_number"`
	Brand       string         `json:"brand"`
	Model       string         `json:"model"`
}

// Plate statuses.
const (
	PlateAuthorized = "AUTHORIZED"
	PlatePending    = "PENDING"
	PlateRevoked    = "REVOKED"
)

type VehiclePlate struct {
	ID          int64  `json:"id,omitempty"`
	PlateNumber string `json:"plate_number"`
	Vehicle     int64  `json:"vehicle,omitempty"`
	Unit        int64  `json:"unit,omitempty"`
	OwnerID     int64  `json:"owner,omitempty"`
	IsActive    bool   `json:"is_active"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Access log decisions.
const (
	AccessGranted = "GRANTED"
	AccessDenied  = "DENIED"
	AccessPending = "PENDING"
)

type VehicleAccessLog struct {
	ID             int64   `json:"id,omitempty"`
	PlateNumber    string  `json:"plate_number"`
	Confidence     float64 `json:"confidence_score"`
	IsAuthorized   bool    `json:"is_authorized"`
	AccessGranted  bool    `json:"access_granted"`
	AccessType     string  `json:"access_type"`
	Timestamp      string  `json:"timestamp,omitempty"`
	CameraLocation string  `json:"camera_location,omitempty"`
	Notes          string  `json:"notes,omitempty"`
}

type FaceRecord struct {
	ID        int64          `json:"id,omitempty"`
	User      *users.Profile `json:"user,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
}
