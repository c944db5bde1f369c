package server

import (
	"net/http"
	"net/url"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/users"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	PageData
	Username string // Preserve username on error
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	loginTmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// An authenticated session has no business on the login screen
		if current, ok := s.sessions.Current(); ok {
			http.Redirect(w, r, landingRoute(current.User), http.StatusSeeOther)
			return
		}

		data := LoginPageData{
			PageData: s.pageData(r),
			Username: r.URL.Query().Get("username"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := loginTmpl.Execute(w, data); err != nil {
			s.log.Err(err).Msg("Failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmissionHandler processes the login form submission
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		if username == "" || password == "" {
			s.renderLoginError(w, r, "Username and password are required", username)
			return
		}

		resp, err := s.api.Auth.Login(r.Context(), username, password)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login rejected")
			s.renderLoginError(w, r, errorMessage(err), username)
			return
		}

		if err := s.sessions.Login(resp.Access, resp.Refresh, resp.User); err != nil {
			s.log.Err(err).Msg("failed to persist session")
			s.renderLoginError(w, r, "Could not save your session. Try again.", username)
			return
		}

		http.Redirect(w, r, landingRoute(resp.User), http.StatusSeeOther)
	}
}

// LogoutHandler ends the session. Safe to call without one.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.sessions.Logout()
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// RegisterPageHandler renders the self-registration page
func (s *Server) RegisterPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("register.html")
	if err != nil {
		panic("Failed to parse register template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// RegisterSubmissionHandler handles registration form submission. The
// account type is restricted here; the backend enforces the same rule.
func (s *Server) RegisterSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		userType := users.ParseUserType(r.FormValue("user_type"))
		if userType == "" {
			userType = users.TypeResident
		}
		if userType == users.TypeAdmin || !userType.Known() {
			redirectWithError(w, r, RouteRegister, "That account type cannot be self-registered")
			return
		}

		req := condoapi.RegistrationRequest{
			Username:  r.FormValue("username"),
			Email:     r.FormValue("email"),
			Password:  r.FormValue("password"),
			FirstName: r.FormValue("first_name"),
			LastName:  r.FormValue("last_name"),
			DNI:       r.FormValue("dni"),
			Phone:     r.FormValue("phone_number"),
			BirthDate: r.FormValue("birth_date"),
			UserType:  string(userType),
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			redirectWithError(w, r, RouteRegister, "Username, email and password are required")
			return
		}

		created, err := s.api.Auth.Register(r.Context(), req)
		if err != nil {
			redirectWithError(w, r, RouteRegister, errorMessage(err))
			return
		}

		s.log.Info().Str("username", created.Username).Msg("account registered")
		redirectWithNotice(w, r, RouteLogin, "Account created. You can sign in now.")
	}
}

func (s *Server) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username string) {
	redirect := RouteLogin + "?error=" + url.QueryEscape(errorMsg)
	if username != "" {
		redirect += "&username=" + url.QueryEscape(username)
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// landingRoute picks the post-login destination for a profile.
func landingRoute(profile users.Profile) string {
	if profile.EffectiveType() == users.TypeAdmin {
		return RouteAdminDashboard
	}
	return RouteDashboard
}
