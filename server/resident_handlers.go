package server

import (
	"io"
	"net/http"

	"github.com/smart-condominium/condo-console/condoapi"
)

type ReservePageData struct {
	PageData
	Areas        []condoapi.CommonArea
	Reservations []condoapi.Reservation
}

// ReserveAreaHandler renders the reservation screen: active areas plus the
// resident's existing reservations.
func (s *Server) ReserveAreaHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("reserve_area.html")
	if err != nil {
		panic("Failed to parse reserve area template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := ReservePageData{PageData: s.pageData(r)}

		areas, err := s.api.Areas.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		for _, area := range areas {
			if area.IsActive {
				data.Areas = append(data.Areas, area)
			}
		}

		if reservations, err := s.api.Reservations.List(r.Context()); err == nil {
			data.Reservations = reservations
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) ReservationCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		areaID, err := formInt64(r, "area")
		if err != nil {
			redirectWithError(w, r, RouteReserveArea, "Pick an area first")
			return
		}
		date := r.FormValue("date")
		startTime := r.FormValue("start_time")
		endTime := r.FormValue("end_time")
		if date == "" || startTime == "" || endTime == "" {
			redirectWithError(w, r, RouteReserveArea, "Date, start and end time are required")
			return
		}

		if _, err := s.api.Reservations.Create(r.Context(), areaID, date, startTime, endTime); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteReserveArea, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteReserveArea, "Reservation confirmed")
	}
}

type BillsPageData struct {
	PageData
	Expenses []condoapi.Expense
}

// ViewBillsHandler lists the resident's expenses with their payment status.
func (s *Server) ViewBillsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("view_bills.html")
	if err != nil {
		panic("Failed to parse bills template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := BillsPageData{PageData: s.pageData(r)}

		expenses, err := s.api.Expenses.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Expenses = expenses

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type MaintenancePageData struct {
	PageData
	Units    []condoapi.Unit
	Requests []condoapi.MaintenanceRequest
}

// RequestMaintenanceHandler renders the maintenance request form.
func (s *Server) RequestMaintenanceHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("request_maintenance.html")
	if err != nil {
		panic("Failed to parse maintenance template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := MaintenancePageData{PageData: s.pageData(r)}

		if units, err := s.api.Units.List(r.Context()); err == nil {
			data.Units = units
		} else if s.handledExpiry(w, r, err) {
			return
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// maxMaintenanceImage caps uploaded photo size at 8 MiB.
const maxMaintenanceImage = 8 << 20

// MaintenanceCreateHandler files the request, with the photo forwarded as a
// multipart upload when one was attached.
func (s *Server) MaintenanceCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxMaintenanceImage); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		unitID, err := formInt64(r, "unit")
		if err != nil {
			redirectWithError(w, r, RouteRequestMaintenance, "Pick a unit first")
			return
		}
		description := r.FormValue("description")
		if description == "" {
			redirectWithError(w, r, RouteRequestMaintenance, "Describe the problem")
			return
		}

		var image []byte
		var imageName string
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			image, err = io.ReadAll(io.LimitReader(file, maxMaintenanceImage))
			if err != nil {
				redirectWithError(w, r, RouteRequestMaintenance, "Could not read the attached photo")
				return
			}
			imageName = header.Filename
		}

		if _, err := s.api.Maintenance.Create(r.Context(), unitID, description, image, imageName); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteRequestMaintenance, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteMaintenanceStatus, "Request filed")
	}
}

// MaintenanceStatusHandler lists the resident's maintenance requests.
func (s *Server) MaintenanceStatusHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("maintenance_status.html")
	if err != nil {
		panic("Failed to parse maintenance status template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := MaintenancePageData{PageData: s.pageData(r)}

		requests, err := s.api.Maintenance.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Requests = requests

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}
