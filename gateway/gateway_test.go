package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-condominium/condo-console/gateway"
	apperrors "github.com/smart-condominium/condo-console/internal/errors"
)

// fakeCredentials stands in for the session manager.
type fakeCredentials struct {
	mu          sync.Mutex
	token       string
	invalidated int
}

func (f *fakeCredentials) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeCredentials) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.invalidated++
}

func (f *fakeCredentials) invalidations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.invalidated
}

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth, gotRequestID, gotContentType string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer backend.Close()

	creds := &fakeCredentials{token: "t1"}
	g := gateway.New(backend.URL, creds)

	var out map[string]bool
	require.NoError(t, g.Get(context.Background(), "/units/", &out))
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "application/json", gotContentType)
	assert.True(t, out["ok"])
}

func TestUnauthenticatedRequestHasNoHeader(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	g := gateway.New(backend.URL, &fakeCredentials{})
	var out map[string]any
	require.NoError(t, g.Post(context.Background(), "/auth/login/", map[string]string{"username": "alice"}, &out))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedInvalidatesSession(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer backend.Close()

	creds := &fakeCredentials{token: "stale"}
	g := gateway.New(backend.URL, creds)

	err := g.Get(context.Background(), "/expenses/", nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrAuthenticationExpired))
	assert.Equal(t, 1, creds.invalidations())
	assert.Equal(t, "", creds.AccessToken())
}

func TestNetworkFailureLeavesSessionUntouched(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	creds := &fakeCredentials{token: "t1"}
	g := gateway.New(backend.URL, creds)

	err := g.Get(context.Background(), "/units/", nil)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConnectivity))
	assert.Equal(t, 0, creds.invalidations())
	assert.Equal(t, "t1", creds.AccessToken())
}

func TestValidationErrorFields(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"username":["already taken"],"dni":["required"]}`))
	}))
	defer backend.Close()

	g := gateway.New(backend.URL, &fakeCredentials{token: "t1"})
	err := g.Post(context.Background(), "/auth/register/", map[string]string{}, nil)
	require.Error(t, err)

	var verr *gateway.ValidationError
	require.True(t, apperrors.As(err, &verr))
	assert.Equal(t, http.StatusBadRequest, verr.Status)
	assert.Equal(t, []string{"already taken"}, verr.Fields["username"])
	assert.Contains(t, verr.Message(), "dni: required")
}

func TestValidationErrorDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"You do not have permission to perform this action."}`))
	}))
	defer backend.Close()

	g := gateway.New(backend.URL, &fakeCredentials{token: "t1"})
	err := g.Get(context.Background(), "/users/", nil)

	var verr *gateway.ValidationError
	require.True(t, apperrors.As(err, &verr))
	assert.Equal(t, "You do not have permission to perform this action.", verr.Message())
}

func TestServerErrorIsBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	creds := &fakeCredentials{token: "t1"}
	g := gateway.New(backend.URL, creds)

	err := g.Get(context.Background(), "/units/", nil)
	assert.True(t, apperrors.Is(err, apperrors.ErrBackend))
	assert.Equal(t, 0, creds.invalidations(), "only 401 clears the session")
}

func TestPostMultipart(t *testing.T) {
	var gotContentType, gotDescription string
	var gotFile []byte
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotDescription = r.FormValue("description")
		file, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		buf := make([]byte, 4)
		n, _ := file.Read(buf)
		gotFile = buf[:n]
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":7}`))
	}))
	defer backend.Close()

	g := gateway.New(backend.URL, &fakeCredentials{token: "t1"})
	var out map[string]int
	err := g.PostMultipart(context.Background(), "/maintenance/requests/",
		map[string]string{"description": "leaking pipe"}, "image", "photo.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, &out)
	require.NoError(t, err)

	assert.Contains(t, gotContentType, "multipart/form-data")
	assert.Equal(t, "leaking pipe", gotDescription)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, gotFile)
	assert.Equal(t, 7, out["id"])
}

func TestGetBinary(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025-01-01", r.URL.Query().Get("start_date"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 report"))
	}))
	defer backend.Close()

	g := gateway.New(backend.URL, &fakeCredentials{token: "t1"})
	query := url.Values{"start_date": {"2025-01-01"}, "end_date": {"2025-01-31"}}
	data, contentType, err := g.GetBinary(context.Background(), "/reports/financial/", query)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF-1.4 report", string(data))
}
