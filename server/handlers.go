package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/smart-condominium/condo-console/gateway"
	apperrors "github.com/smart-condominium/condo-console/internal/errors"
	"github.com/smart-condominium/condo-console/users"
)

const contentTypeHTML = "text/html; charset=utf-8"

// PageData is the base template model shared by every screen. Screens embed
// it and add their own listings.
type PageData struct {
	AppName string
	User    users.Profile
	Error   string
	Notice  string
}

func (s *Server) pageData(r *http.Request) PageData {
	data := PageData{
		AppName: s.config.GetAppName(),
		Error:   r.URL.Query().Get("error"),
		Notice:  r.URL.Query().Get("notice"),
	}
	if current, ok := s.sessions.Current(); ok {
		data.User = current.User
	}
	return data
}

// IndexHandler sends the browser to the right place for its session state.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessions.Current(); ok {
			http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

// LoadingHandler renders the placeholder shown while session hydration is
// still in flight. It never redirects; the page refreshes itself.
func (s *Server) LoadingHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("loading.html")
	if err != nil {
		panic("Failed to parse loading template: " + err.Error())
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, s.pageData(r))
	}
}

// handledExpiry redirects to the login screen when the backend rejected the
// credentials. The gateway has already invalidated the session by the time
// this error surfaces, so the only job left is the hard navigation.
func (s *Server) handledExpiry(w http.ResponseWriter, r *http.Request, err error) bool {
	if apperrors.Is(err, apperrors.ErrAuthenticationExpired) {
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		return true
	}
	return false
}

// errorMessage maps an API error to the message shown on the page.
func errorMessage(err error) string {
	var validationErr *gateway.ValidationError
	switch {
	case apperrors.As(err, &validationErr):
		return validationErr.Message()
	case apperrors.Is(err, apperrors.ErrConnectivity):
		return "Could not reach the server. Check your connection and try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// redirectWithError sends the browser back to a screen with the error in the
// query string, where pageData picks it up.
func redirectWithError(w http.ResponseWriter, r *http.Request, path, errorMsg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(errorMsg), http.StatusSeeOther)
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	http.Redirect(w, r, path+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func formInt64(r *http.Request, field string) (int64, error) {
	return strconv.ParseInt(r.FormValue(field), 10, 64)
}
