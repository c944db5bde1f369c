package server

import (
	"net/http"
	"strconv"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/users"
)

type UserListPageData struct {
	PageData
	Users []users.Profile
	Types []users.UserType
}

// RolesPageHandler renders the role assignment screen.
func (s *Server) RolesPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("roles.html")
	if err != nil {
		panic("Failed to parse roles template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := UserListPageData{
			PageData: s.pageData(r),
			Types: []users.UserType{
				users.TypeAdmin,
				users.TypeResident,
				users.TypeSecurity,
				users.TypeMaintenance,
			},
		}

		list, err := s.api.Users.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Users = list

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// RoleUpdateHandler assigns a new type to a user.
func (s *Server) RoleUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		userID, err := formInt64(r, "user_id")
		if err != nil {
			redirectWithError(w, r, RouteRoles, "Select a user first")
			return
		}

		role := users.ParseUserType(r.FormValue("user_type"))
		if !role.Known() {
			redirectWithError(w, r, RouteRoles, "Unknown role")
			return
		}

		if err := s.api.Users.UpdateRole(r.Context(), userID, role); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteRoles, errorMessage(err))
			return
		}

		s.log.Info().Int64("user_id", userID).Str("role", string(role)).Msg("role updated")
		redirectWithNotice(w, r, RouteRoles, "Role updated")
	}
}

// ManageUsersHandler lists all accounts.
func (s *Server) ManageUsersHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("manage_users.html")
	if err != nil {
		panic("Failed to parse manage users template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := UserListPageData{PageData: s.pageData(r)}

		list, err := s.api.Users.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Users = list

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type UnitsPageData struct {
	PageData
	Units     []condoapi.Unit
	Residents []users.Profile
}

// ManageUnitsHandler renders the housing unit administration screen.
func (s *Server) ManageUnitsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("manage_units.html")
	if err != nil {
		panic("Failed to parse manage units template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := UnitsPageData{PageData: s.pageData(r)}

		units, err := s.api.Units.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Units = units

		// Residents populate the assignment dropdown
		if all, err := s.api.Users.List(r.Context()); err == nil {
			for _, u := range all {
				if u.EffectiveType() == users.TypeResident {
					data.Residents = append(data.Residents, u)
				}
			}
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) UnitCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		floor, _ := strconv.Atoi(r.FormValue("floor"))
		unit := condoapi.Unit{Number: r.FormValue("number"), Floor: floor}
		if unit.Number == "" {
			redirectWithError(w, r, RouteManageUnits, "Unit number is required")
			return
		}

		if _, err := s.api.Units.Create(r.Context(), unit); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteManageUnits, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteManageUnits, "Unit created")
	}
}

func (s *Server) UnitDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid unit id", http.StatusBadRequest)
			return
		}
		if err := s.api.Units.Delete(r.Context(), id); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteManageUnits, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteManageUnits, "Unit deleted")
	}
}

func (s *Server) UnitAssignHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unitID, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid unit id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		userID, err := formInt64(r, "user_id")
		if err != nil {
			redirectWithError(w, r, RouteManageUnits, "Select a resident first")
			return
		}

		if err := s.api.Units.AssignResident(r.Context(), unitID, userID); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteManageUnits, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteManageUnits, "Resident assigned")
	}
}

type AreasPageData struct {
	PageData
	Areas []condoapi.CommonArea
}

// ManageAreasHandler renders the common area administration screen.
func (s *Server) ManageAreasHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("manage_areas.html")
	if err != nil {
		panic("Failed to parse manage areas template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := AreasPageData{PageData: s.pageData(r)}

		areas, err := s.api.Areas.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Areas = areas

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

func (s *Server) AreaCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		capacity, _ := strconv.Atoi(r.FormValue("capacity"))
		area := condoapi.CommonArea{
			Name:          r.FormValue("name"),
			Description:   r.FormValue("description"),
			AvailableFrom: r.FormValue("available_from"),
			AvailableTo:   r.FormValue("available_to"),
			Capacity:      capacity,
			IsActive:      true,
		}
		if area.Name == "" {
			redirectWithError(w, r, RouteManageAreas, "Area name is required")
			return
		}

		if _, err := s.api.Areas.Create(r.Context(), area); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteManageAreas, errorMessage(err))
			return
		}
		redirectWithNotice(w, r, RouteManageAreas, "Area created")
	}
}

// AreaToggleHandler flips whether an area accepts reservations.
func (s *Server) AreaToggleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid area id", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		active := r.FormValue("is_active") == "true"

		if err := s.api.Areas.SetActive(r.Context(), id, active); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteManageAreas, errorMessage(err))
			return
		}
		http.Redirect(w, r, RouteManageAreas, http.StatusSeeOther)
	}
}

// ViewReportsHandler renders the financial report request form.
func (s *Server) ViewReportsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("view_reports.html")
	if err != nil {
		panic("Failed to parse reports template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// ReportDownloadHandler streams the financial report PDF for the requested
// date range.
func (s *Server) ReportDownloadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("start_date")
		endDate := r.URL.Query().Get("end_date")
		if startDate == "" || endDate == "" {
			redirectWithError(w, r, RouteViewReports, "Pick a start and end date")
			return
		}

		payload, contentType, err := s.api.Reports.Financial(r.Context(), startDate, endDate)
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteViewReports, errorMessage(err))
			return
		}

		if contentType == "" {
			contentType = "application/pdf"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="financial-report-`+startDate+`-`+endDate+`.pdf"`)
		_, _ = w.Write(payload)
	}
}
