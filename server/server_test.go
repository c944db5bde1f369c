package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/internal/config"
	"github.com/smart-condominium/condo-console/session"
	"github.com/smart-condominium/condo-console/session/storefakes"
	"github.com/smart-condominium/condo-console/users"
)

type testConsole struct {
	server   *Server
	sessions *session.Manager
	store    *storefakes.FakeStore
}

func newTestConsole(t *testing.T, backendURL string) *testConsole {
	t.Helper()
	t.Setenv("ENV", "TEST")

	store := storefakes.NewFakeStore()
	sessions := session.NewManager(store, zerolog.Nop())
	gw := gateway.New(backendURL, sessions)
	api := condoapi.New(gw)

	return &testConsole{
		server:   New(config.New(), sessions, api, zerolog.Nop()),
		sessions: sessions,
		store:    store,
	}
}

func (c *testConsole) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (c *testConsole) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.server.ServeHTTP(rec, req)
	return rec
}

func residentProfile() users.Profile {
	return users.Profile{ID: 7, Username: "bob", UserType: users.TypeResident}
}

func TestAnonymousNavigationRedirectsToLogin(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()

	for _, path := range []string{RouteDashboard, RouteProfile, RouteRoles, RouteViewBills} {
		rec := console.get(path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, RouteLogin, rec.Header().Get("Location"), path)
	}
}

func TestHydrationInFlightShowsPlaceholder(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	// No Hydrate call: the manager is still initializing

	rec := console.get(RouteDashboard)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Restoring your session")
}

func TestLoginFlowEstablishesSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"access": "access-token",
			"refresh": "refresh-token",
			"user": {"id": 1, "username": "alice", "user_type": "admin"}
		}`))
	}))
	defer backend.Close()

	console := newTestConsole(t, backend.URL)
	console.sessions.Hydrate()

	rec := console.postForm(RouteAuthLogin, url.Values{
		"username": {"alice"},
		"password": {"secret"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, RouteAdminDashboard, rec.Header().Get("Location"))
	assert.Equal(t, 3, console.store.Len())

	current, ok := console.sessions.Current()
	require.True(t, ok)
	assert.Equal(t, users.TypeAdmin, current.User.EffectiveType())
}

func TestLoginFailureStaysOnLoginPage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Invalid credentials"}`))
	}))
	defer backend.Close()

	console := newTestConsole(t, backend.URL)
	console.sessions.Hydrate()

	rec := console.postForm(RouteAuthLogin, url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	})

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), RouteLogin+"?error="))
	assert.Equal(t, 0, console.store.Len())
}

func TestRoleDenialSilentlyRedirectsToDashboard(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()
	require.NoError(t, console.sessions.Login("access", "refresh", residentProfile()))

	for _, path := range []string{RouteRoles, RouteManageUnits, RouteViewReports, RouteAccessLogs} {
		rec := console.get(path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Equal(t, RouteDashboard, rec.Header().Get("Location"), path)
	}
}

func TestSharedScreenAdmitsBothRoles(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	for _, role := range []users.UserType{users.TypeAdmin, users.TypeSecurity} {
		console := newTestConsole(t, backend.URL)
		console.sessions.Hydrate()
		profile := users.Profile{ID: 2, Username: "sam", UserType: role}
		require.NoError(t, console.sessions.Login("access", "refresh", profile))

		rec := console.get(RouteSecurityEvents)
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}
}

func TestProfileRendersForAnyAuthenticatedRole(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()
	require.NoError(t, console.sessions.Login("access", "refresh", residentProfile()))

	rec := console.get(RouteProfile)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob")
}

func TestRejectedCredentialsForceLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	console := newTestConsole(t, backend.URL)
	console.sessions.Hydrate()
	require.NoError(t, console.sessions.Login("stale", "stale", residentProfile()))

	rec := console.get(RouteNotifications)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, RouteLogin, rec.Header().Get("Location"))

	// The session is gone, so the next navigation also lands on login
	assert.Equal(t, 0, console.store.Len())
	_, ok := console.sessions.Current()
	assert.False(t, ok)
}

func TestNetworkFailureKeepsSession(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()
	require.NoError(t, console.sessions.Login("access", "refresh", residentProfile()))

	rec := console.get(RouteNotifications)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not reach the server")

	assert.Equal(t, 3, console.store.Len())
	_, ok := console.sessions.Current()
	assert.True(t, ok)
}

func TestLogoutClearsSessionAndIsIdempotent(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()
	require.NoError(t, console.sessions.Login("access", "refresh", residentProfile()))

	rec := console.get(RouteAuthLogout)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, RouteLogin, rec.Header().Get("Location"))
	assert.Equal(t, 0, console.store.Len())

	// Logging out again without a session behaves the same
	rec = console.get(RouteAuthLogout)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, RouteLogin, rec.Header().Get("Location"))
}

func TestIndexRedirectsBySessionState(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()

	rec := console.get("/")
	assert.Equal(t, RouteLogin, rec.Header().Get("Location"))

	require.NoError(t, console.sessions.Login("access", "refresh", residentProfile()))
	rec = console.get("/")
	assert.Equal(t, RouteDashboard, rec.Header().Get("Location"))
}

func TestStylesheetIsServed(t *testing.T) {
	console := newTestConsole(t, "http://127.0.0.1:1")
	console.sessions.Hydrate()

	rec := console.get("/css/console.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
}
