package condoapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/users"
)

type staticCredentials struct{ token string }

func (s *staticCredentials) AccessToken() string { return s.token }
func (s *staticCredentials) Invalidate()         { s.token = "" }

func newClient(t *testing.T, handler http.Handler) (*condoapi.Client, *httptest.Server) {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	gw := gateway.New(backend.URL, &staticCredentials{token: "t1"})
	return condoapi.New(gw), backend
}

func TestLoginParsesAndNormalizes(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "x", body["password"])

		// Legacy shape: role instead of user_type.
		w.Write([]byte(`{"access":"t1","refresh":"r1","user":{"id":1,"username":"alice","role":"resident"}}`))
	}))

	resp, err := client.Auth.Login(context.Background(), "alice", "x")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Access)
	assert.Equal(t, "r1", resp.Refresh)
	assert.Equal(t, users.TypeResident, resp.User.UserType)
	assert.Equal(t, users.TypeResident, resp.User.Role)
}

func TestUpdateRole(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.Users.UpdateRole(context.Background(), 42, users.TypeSecurity))
	assert.Equal(t, "PATCH /users/42/role/", gotPath)
	assert.Equal(t, "security", gotBody["user_type"])
}

func TestUnitsCRUDPaths(t *testing.T) {
	var paths []string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Write([]byte(`{"id":3,"number":"4B","floor":4}`))
		}
	}))

	ctx := context.Background()
	_, err := client.Units.Create(ctx, condoapi.Unit{Number: "4B", Floor: 4})
	require.NoError(t, err)
	_, err = client.Units.Update(ctx, 3, condoapi.Unit{Number: "4B", Floor: 4})
	require.NoError(t, err)
	require.NoError(t, client.Units.AssignResident(ctx, 3, 9))
	require.NoError(t, client.Units.Delete(ctx, 3))

	assert.Equal(t, []string{
		"POST /units/",
		"PUT /units/3/",
		"PATCH /units/3/assign-resident/",
		"DELETE /units/3/",
	}, paths)
}

func TestFaceRecognize(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "aGVsbG8=", body["image"])
		w.Write([]byte(`{"user":{"id":5,"username":"guard","user_type":"security"}}`))
	}))

	match, err := client.Face.Recognize(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	require.True(t, match.Matched())
	assert.Equal(t, "guard", match.User.Username)
}

func TestFaceRecognizeNoMatch(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"no match found"}`))
	}))

	match, err := client.Face.Recognize(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.False(t, match.Matched())
	assert.Equal(t, "no match found", match.Message)
}

func TestRecognizePlateSendsCameraID(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gate-1", body["camera_id"])
		w.Write([]byte(`{"plate_number":"ABC123","confidence_score":0.97,"is_authorized":true,"access_granted":true}`))
	}))

	result, err := client.Vehicles.RecognizePlate(context.Background(), "aGVsbG8=", "gate-1")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", result.PlateNumber)
	assert.True(t, result.AccessGranted)
}

func TestAccessLogsFilter(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "ABC123", q.Get("plate"))
		assert.Equal(t, "2025-01-01", q.Get("start_date"))
		assert.Empty(t, q.Get("access_type"), "zero filter values are omitted")
		w.Write([]byte(`[{"plate_number":"ABC123","access_type":"GRANTED"}]`))
	}))

	logs, err := client.Vehicles.AccessLogs(context.Background(), condoapi.AccessLogFilter{
		Plate:     "ABC123",
		StartDate: "2025-01-01",
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, condoapi.AccessGranted, logs[0].AccessType)
}

func TestMaintenanceCreateJSONWithoutImage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"unit":2,"description":"broken light","status":"PENDIENTE"}`))
	}))

	created, err := client.Maintenance.Create(context.Background(), 2, "broken light", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "PENDIENTE", created.Status)
}

func TestMaintenanceCreateMultipartWithImage(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2", r.FormValue("unit"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1,"unit":2,"description":"leak","status":"PENDIENTE"}`))
	}))

	_, err := client.Maintenance.Create(context.Background(), 2, "leak", []byte{0xFF, 0xD8}, "leak.jpg")
	require.NoError(t, err)
}

func TestFinancialReport(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/financial/", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))

	data, contentType, err := client.Reports.Financial(context.Background(), "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF-1.4", string(data))
}
