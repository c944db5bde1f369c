package server

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/smart-condominium/condo-console/condoapi"
)

type VisitorsPageData struct {
	PageData
	Visitors []condoapi.Visitor
	Units    []condoapi.Unit
}

// ViewVisitorsHandler renders the visitor log and the check-in form.
func (s *Server) ViewVisitorsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("view_visitors.html")
	if err != nil {
		panic("Failed to parse visitors template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := VisitorsPageData{PageData: s.pageData(r)}

		visitors, err := s.api.Visitors.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Visitors = visitors

		if units, err := s.api.Units.List(r.Context()); err == nil {
			data.Units = units
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) VisitorCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		unitID, err := formInt64(r, "visited_unit")
		if err != nil {
			redirectWithError(w, r, RouteViewVisitors, "Pick the visited unit")
			return
		}

		visitor := condoapi.Visitor{
			Name:        r.FormValue("name"),
			DNI:         r.FormValue("dni"),
			Phone:       r.FormValue("phone_number"),
			VisitedUnit: unitID,
			ScheduledAt: r.FormValue("scheduled_at"),
			Purpose:     r.FormValue("purpose"),
		}
		if visitor.Name == "" || visitor.DNI == "" {
			redirectWithError(w, r, RouteViewVisitors, "Name and DNI are required")
			return
		}

		if _, err := s.api.Visitors.Create(r.Context(), visitor); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteViewVisitors, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteViewVisitors, "Visitor registered")
	}
}

type FacePageData struct {
	PageData
	Records []condoapi.FaceRecord
	Match   *condoapi.FaceMatch
}

// FaceRegisterPageHandler renders face enrollment with the current records.
func (s *Server) FaceRegisterPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("face_register.html")
	if err != nil {
		panic("Failed to parse face register template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := FacePageData{PageData: s.pageData(r)}

		records, err := s.api.Face.Records(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Records = records

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) FaceRegisterSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		image, errMsg := uploadedImageBase64(r, "image")
		if errMsg != "" {
			redirectWithError(w, r, RouteFaceRegister, errMsg)
			return
		}

		if err := s.api.Face.Register(r.Context(), image); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteFaceRegister, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteFaceRegister, "Face enrolled")
	}
}

// FaceRecognizePageHandler renders the recognition screen. The match result
// from a previous submission arrives via the session-free query flow, so
// this page only shows the capture form.
func (s *Server) FaceRecognizePageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("face_recognize.html")
	if err != nil {
		panic("Failed to parse face recognize template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, FacePageData{PageData: s.pageData(r)})
	}
}

// FaceRecognizeSubmitHandler submits a capture and renders the verdict
// inline.
func (s *Server) FaceRecognizeSubmitHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("face_recognize.html")
	if err != nil {
		panic("Failed to parse face recognize template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		image, errMsg := uploadedImageBase64(r, "image")
		if errMsg != "" {
			redirectWithError(w, r, RouteFaceRecognize, errMsg)
			return
		}

		match, err := s.api.Face.Recognize(r.Context(), image)
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteFaceRecognize, errorMessage(err))
			return
		}

		data := FacePageData{PageData: s.pageData(r), Match: &match}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type SecurityEventsPageData struct {
	PageData
	Events []condoapi.SecurityEvent
	Types  []string
}

// SecurityEventsHandler lists recorded security events.
func (s *Server) SecurityEventsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("security_events.html")
	if err != nil {
		panic("Failed to parse security events template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := SecurityEventsPageData{
			PageData: s.pageData(r),
			Types: []string{
				condoapi.EventFaceRecognition,
				condoapi.EventPlateRecognition,
				condoapi.EventUnauthorizedAccess,
				condoapi.EventSuspiciousActivity,
			},
		}

		events, err := s.api.Security.ListEvents(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Events = events

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) SecurityEventCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		event := condoapi.SecurityEvent{
			EventType:   r.FormValue("event_type"),
			Description: r.FormValue("description"),
		}
		if event.EventType == "" {
			redirectWithError(w, r, RouteSecurityEvents, "Pick an event type")
			return
		}

		if _, err := s.api.Security.CreateEvent(r.Context(), event); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteSecurityEvents, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteSecurityEvents, "Event recorded")
	}
}

type PlatesPageData struct {
	PageData
	Plates   []condoapi.VehiclePlate
	Vehicles []condoapi.Vehicle
}

// PlatesHandler renders the authorized plate registry.
func (s *Server) PlatesHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("vehicle_plates.html")
	if err != nil {
		panic("Failed to parse plates template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := PlatesPageData{PageData: s.pageData(r)}

		plates, err := s.api.Vehicles.ListPlates(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Plates = plates

		if vehicles, err := s.api.Vehicles.List(r.Context()); err == nil {
			data.Vehicles = vehicles
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) PlateCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		plate := condoapi.VehiclePlate{
			PlateNumber: r.FormValue("plate_number"),
			IsActive:    true,
		}
		if plate.PlateNumber == "" {
			redirectWithError(w, r, RoutePlates, "Plate number is required")
			return
		}
		if vehicleID, err := formInt64(r, "vehicle"); err == nil {
			plate.Vehicle = vehicleID
		}

		if _, err := s.api.Vehicles.CreatePlate(r.Context(), plate); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RoutePlates, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RoutePlates, "Plate registered")
	}
}

func (s *Server) PlateDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid plate id", http.StatusBadRequest)
			return
		}
		if err := s.api.Vehicles.DeletePlate(r.Context(), id); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RoutePlates, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RoutePlates, "Plate removed")
	}
}

type PlateRecognitionPageData struct {
	PageData
	Result *condoapi.PlateRecognition
}

// PlateRecognitionPageHandler renders the plate capture form.
func (s *Server) PlateRecognitionPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("plate_recognition.html")
	if err != nil {
		panic("Failed to parse plate recognition template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, PlateRecognitionPageData{PageData: s.pageData(r)})
	}
}

// PlateRecognizeSubmitHandler posts a capture to the OCR endpoint and
// renders the verdict inline.
func (s *Server) PlateRecognizeSubmitHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("plate_recognition.html")
	if err != nil {
		panic("Failed to parse plate recognition template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		image, errMsg := uploadedImageBase64(r, "image")
		if errMsg != "" {
			redirectWithError(w, r, RoutePlateRecognition, errMsg)
			return
		}
		cameraID := r.FormValue("camera_id")

		result, err := s.api.Vehicles.RecognizePlate(r.Context(), image, cameraID)
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RoutePlateRecognition, errorMessage(err))
			return
		}

		data := PlateRecognitionPageData{PageData: s.pageData(r), Result: &result}
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type AccessLogsPageData struct {
	PageData
	Logs   []condoapi.VehicleAccessLog
	Filter condoapi.AccessLogFilter
}

// AccessLogsHandler lists vehicle access decisions, filtered by the query
// string.
func (s *Server) AccessLogsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("access_logs.html")
	if err != nil {
		panic("Failed to parse access logs template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		filter := condoapi.AccessLogFilter{
			Plate:      r.URL.Query().Get("plate"),
			StartDate:  r.URL.Query().Get("start_date"),
			EndDate:    r.URL.Query().Get("end_date"),
			AccessType: r.URL.Query().Get("access_type"),
		}
		data := AccessLogsPageData{PageData: s.pageData(r), Filter: filter}

		logs, err := s.api.Vehicles.AccessLogs(r.Context(), filter)
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Logs = logs

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// maxCaptureImage caps uploaded captures at 8 MiB.
const maxCaptureImage = 8 << 20

// uploadedImageBase64 reads a multipart file field and returns it base64
// encoded, the format the recognition endpoints expect. The second return
// is a user-facing error message, empty on success.
func uploadedImageBase64(r *http.Request, field string) (string, string) {
	if err := r.ParseMultipartForm(maxCaptureImage); err != nil {
		return "", "Invalid form data"
	}
	file, _, err := r.FormFile(field)
	if err != nil {
		return "", "Attach an image first"
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxCaptureImage))
	if err != nil {
		return "", "Could not read the attached image"
	}
	if len(raw) == 0 {
		return "", "The attached image is empty"
	}
	return base64.StdEncoding.EncodeToString(raw), ""
}
