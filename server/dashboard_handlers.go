package server

import (
	"net/http"
	"time"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/session"
	"github.com/smart-condominium/condo-console/users"
)

type DashboardPageData struct {
	PageData
	Role          users.UserType
	Notifications []condoapi.Notification
}

// DashboardHandler renders the default landing screen for any
// authenticated user.
func (s *Server) DashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("dashboard.html")
	if err != nil {
		panic("Failed to parse dashboard template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := DashboardPageData{PageData: s.pageData(r)}
		data.Role = data.User.EffectiveType()

		// Recent notifications are a nicety; the dashboard still renders
		// when the listing fails.
		notifications, err := s.api.Notifications.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			s.log.Warn().Err(err).Msg("notifications unavailable for dashboard")
		}
		if len(notifications) > 5 {
			notifications = notifications[:5]
		}
		data.Notifications = notifications

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type AdminDashboardPageData struct {
	PageData
	UserCount int
	UnitCount int
	AreaCount int
	Events    []condoapi.SecurityEvent
}

// AdminDashboardHandler renders the administrator overview.
func (s *Server) AdminDashboardHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("admin_dashboard.html")
	if err != nil {
		panic("Failed to parse admin dashboard template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := AdminDashboardPageData{PageData: s.pageData(r)}

		residents, err := s.api.Users.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.UserCount = len(residents)

		if units, err := s.api.Units.List(r.Context()); err == nil {
			data.UnitCount = len(units)
		}
		if areas, err := s.api.Areas.List(r.Context()); err == nil {
			data.AreaCount = len(areas)
		}
		if events, err := s.api.Security.ListEvents(r.Context()); err == nil {
			if len(events) > 10 {
				events = events[:10]
			}
			data.Events = events
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

type NotificationsPageData struct {
	PageData
	Notifications []condoapi.Notification
}

func (s *Server) NotificationsHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("notifications.html")
	if err != nil {
		panic("Failed to parse notifications template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := NotificationsPageData{PageData: s.pageData(r)}

		notifications, err := s.api.Notifications.List(r.Context())
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			data.Error = errorMessage(err)
		}
		data.Notifications = notifications

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// NotificationReadHandler marks one notification as read and returns to the
// listing.
func (s *Server) NotificationReadHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Error(w, "Invalid notification id", http.StatusBadRequest)
			return
		}
		if err := s.api.Notifications.MarkRead(r.Context(), id); err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteNotifications, errorMessage(err))
			return
		}
		http.Redirect(w, r, RouteNotifications, http.StatusSeeOther)
	}
}

type ProfilePageData struct {
	PageData
	TokenExpiry   string
	TokenReadable bool
}

// ProfilePageHandler renders the signed-in user's profile. The access
// token's expiry is decoded locally for display only; it is never used to
// decide whether the session is valid.
func (s *Server) ProfilePageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("profile.html")
	if err != nil {
		panic("Failed to parse profile template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		data := ProfilePageData{PageData: s.pageData(r)}

		if expiry, ok := session.TokenExpiry(s.sessions.AccessToken()); ok {
			data.TokenExpiry = expiry.Local().Format(time.RFC1123)
			data.TokenReadable = true
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}

// ProfileUpdateHandler saves profile edits to the backend, then refreshes
// the stored session copy so the header reflects the change immediately.
func (s *Server) ProfileUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		current, ok := s.sessions.Current()
		if !ok {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}

		update := users.Profile{
			Email:     r.FormValue("email"),
			FirstName: r.FormValue("first_name"),
			LastName:  r.FormValue("last_name"),
			Phone:     r.FormValue("phone_number"),
			BirthDate: r.FormValue("birth_date"),
		}

		saved, err := s.api.Users.Update(r.Context(), current.User.ID, update)
		if err != nil {
			if s.handledExpiry(w, r, err) {
				return
			}
			redirectWithError(w, r, RouteProfile, errorMessage(err))
			return
		}

		if err := s.sessions.UpdateUser(saved); err != nil {
			s.log.Err(err).Msg("profile saved but session copy not refreshed")
		}

		redirectWithNotice(w, r, RouteProfile, "Profile updated")
	}
}
