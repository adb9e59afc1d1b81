package clockodo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		APIUser:            "bot@example.com",
		APIKey:             "secret-key",
		UserAgent:          "clockodo-bridge-test/1.0",
		ExternalAppContact: "ops@example.com",
		BaseURL:            srv.URL,
	}, zap.NewNop())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://my.clockodo.com/api/", "https://my.clockodo.com/api/"},
		{"https://my.clockodo.com/api", "https://my.clockodo.com/api/"},
		{"https://my.clockodo.com", "https://my.clockodo.com/api/"},
		{"https://my.clockodo.com/api/v2", "https://my.clockodo.com/api/"},
		{"https://my.clockodo.com/api/v2/", "https://my.clockodo.com/api/"},
		{"https://my.clockodo.com/api/v4/", "https://my.clockodo.com/api/"},
	}

	for _, tt := range tests {
		client := NewClient(Config{BaseURL: tt.raw}, zap.NewNop())
		assert.Equal(t, tt.want, client.BaseURL(), "raw %q", tt.raw)
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient(Config{}, zap.NewNop())
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}

func TestRequest_SendsAuthHeaders(t *testing.T) {
	var got http.Header
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"users": []}`))
	})

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "bot@example.com", got.Get("X-ClockodoApiUser"))
	assert.Equal(t, "secret-key", got.Get("X-ClockodoApiKey"))
	assert.Equal(t, "clockodo-bridge-test/1.0;ops@example.com", got.Get("X-Clockodo-External-Application"))
	assert.Equal(t, "clockodo-bridge-test/1.0", got.Get("User-Agent"))
}

func TestRequest_HeaderFallbacks(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"users": []}`))
	}))
	t.Cleanup(srv.Close)

	// No user agent and no contact: the app identifier falls back to
	// the bridge name and the contact to the API user.
	client := NewClient(Config{
		APIUser: "bot@example.com",
		APIKey:  "secret-key",
		BaseURL: srv.URL,
	}, zap.NewNop())

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "clockodo-bridge;bot@example.com", got.Get("X-Clockodo-External-Application"))
	assert.Equal(t, "clockodo-bridge/unknown", got.Get("User-Agent"))
}

func TestListUsers_EntityKeyAndDataKey(t *testing.T) {
	payloads := map[string]string{
		"entity key": `{"users": [{"id": 1, "name": "Ada", "email": "ada@example.com"}]}`,
		"data key":   `{"data": [{"id": 1, "name": "Ada", "email": "ada@example.com"}]}`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v3/users", r.URL.Path)
				w.Write([]byte(payload))
			})

			users, err := client.ListUsers(context.Background())
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, "ada@example.com", users[0].Email)
		})
	}
}

func TestRequest_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "missing permission"}`))
	})

	_, err := client.ListAbsences(context.Background(), 2025)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, http.MethodGet, apiErr.Method)
	assert.Equal(t, "v4/absences", apiErr.Endpoint)
	assert.Contains(t, apiErr.Body, "missing permission")
	assert.Contains(t, apiErr.Error(), "403")
}

func TestGetUserReports_LegacyEndpointAndParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/userreports", r.URL.Path)
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		assert.Equal(t, "0", r.URL.Query().Get("type"))
		assert.Equal(t, "42", r.URL.Query().Get("users_id"))
		w.Write([]byte(`{"userreports": [{"users_id": 42, "users_name": "Ada", "diff": 3600}]}`))
	})

	reports, err := client.GetUserReports(context.Background(), 2025, 42, ReportYear)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 42, reports[0].UsersID)
	assert.Equal(t, int64(3600), reports[0].Diff)
}

func TestGetUserReports_AllUsersOmitsFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("users_id"))
		w.Write([]byte(`{"userreports": []}`))
	})

	_, err := client.GetUserReports(context.Background(), 2025, 0, ReportYear)
	require.NoError(t, err)
}

func TestGetClock_NoRunningEntry(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/clock", r.URL.Path)
		w.Write([]byte(`{"running": null}`))
	})

	entry, err := client.GetClock(context.Background())
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestClockStop(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/clock/77", r.URL.Path)
		w.Write([]byte(`{"stopped": {"id": 77, "duration": 1800}, "running": null}`))
	})

	entry, err := client.ClockStop(context.Background(), 77)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 77, entry.ID)
}

func TestListEntries_UserFilter(t *testing.T) {
	t.Run("filtered", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/entries", r.URL.Path)
			assert.Equal(t, "2025-01-01T00:00:00Z", r.URL.Query().Get("time_since"))
			assert.Equal(t, "9", r.URL.Query().Get("filter[users_id]"))
			w.Write([]byte(`{"entries": []}`))
		})

		_, err := client.ListEntries(context.Background(), "2025-01-01T00:00:00Z", "2025-01-31T23:59:59Z", 9)
		require.NoError(t, err)
	})

	t.Run("unfiltered", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("filter[users_id]"))
			w.Write([]byte(`{"entries": []}`))
		})

		_, err := client.ListEntries(context.Background(), "2025-01-01T00:00:00Z", "2025-01-31T23:59:59Z", 0)
		require.NoError(t, err)
	})
}

func TestEditAbsence_SendsOnlyGivenFields(t *testing.T) {
	var sent map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v4/absences/31", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"data": {"id": 31, "status": 1}}`))
	})

	record, err := client.EditAbsence(context.Background(), 31, map[string]any{"status": 1})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"status": float64(1)}, sent)
	require.NotNil(t, record)
	assert.Equal(t, 1, record.Status)
}

func TestCreateAbsence_EntityKeyEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var params AbsenceParams
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "2025-08-01", params.DateSince)
		w.Write([]byte(`{"absence": {"id": 5, "status": 0, "type": 1}}`))
	})

	record, err := client.CreateAbsence(context.Background(), AbsenceParams{
		DateSince: "2025-08-01",
		DateUntil: "2025-08-05",
		Type:      1,
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 5, record.ID)
}

func TestDeleteEntry(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v2/entries/12", r.URL.Path)
		w.Write([]byte(`{"success": true}`))
	})

	require.NoError(t, client.DeleteEntry(context.Background(), 12))
	assert.True(t, called)
}
