package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rimedu/resultats-portal-api/pkg/config"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, nil)
	return client, srv
}

func TestSearchResultsDecodesPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/results/search", r.URL.Path)
		assert.Equal(t, "1234567890", r.URL.Query().Get("nni"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{"id": 7, "nni": "1234567890", "decision": "Admis"}],
			"total": 1, "page": 1, "size": 10, "total_pages": 1,
			"has_next": false, "has_prev": false
		}`))
	})

	params := url.Values{}
	params.Set("nni", "1234567890")
	page, err := client.SearchResults(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 7, page.Results[0].ID)
	assert.Equal(t, 1, page.Total)
	assert.False(t, page.HasNext)
}

func TestGetResultNotFoundIsDistinct(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "result not found"}`))
	})

	_, err := client.GetResult(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, "result not found", appErrors.FromError(err).Message)
}

func TestServerErrorClassifiedAsUpstream(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetResult(context.Background(), 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
	assert.False(t, appErrors.IsNotFound(err))
}

func TestNetworkFailureClassifiedAsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := client.Wilayas(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErrors.FromError(err).Code)
}

func TestLoginSendsFormEncodedCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))
		_, _ = w.Write([]byte(`{"access_token": "tok-1", "token_type": "bearer"}`))
	})

	token, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token.AccessToken)
}

func TestLoginInvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "incorrect username or password"}`))
	})

	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
	assert.Equal(t, "incorrect username or password", appErr.Message)
}

func TestUploadResultsSendsMultipart(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/upload/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "42", r.FormValue("session_id"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		assert.Equal(t, "bac_2024.csv", header.Filename)

		_, _ = w.Write([]byte(`{"task_id": "task-9", "total_rows": 1500}`))
	})

	task, err := client.UploadResults(context.Background(), "tok-1", 42, "bac_2024.csv", strings.NewReader("nni,nom\n"))
	require.NoError(t, err)
	assert.Equal(t, "task-9", task.TaskID)
	assert.Equal(t, 1500, task.TotalRows)
}

func TestUploadStatusFillsTaskID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/upload/task-9/status/", r.URL.Path)
		_, _ = w.Write([]byte(`{"status": "processing", "progress": 40.0, "total_rows": 1500, "processed_rows": 600}`))
	})

	status, err := client.UploadStatus(context.Background(), "tok-1", "task-9")
	require.NoError(t, err)
	assert.Equal(t, "task-9", status.TaskID)
	assert.False(t, status.Terminal())
}

func TestPublishSessionSendsPatchForm(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/admin/sessions/3/publish", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "true", r.PostForm.Get("is_published"))
		_, _ = w.Write([]byte(`{"id": 3, "is_published": true}`))
	})

	session, err := client.PublishSession(context.Background(), "tok-1", 3, true)
	require.NoError(t, err)
	assert.True(t, session.IsPublished)
}

func TestObserverReceivesMeasurements(t *testing.T) {
	var gotEndpoint string
	var gotStatus int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(config.UpstreamConfig{BaseURL: srv.URL, Timeout: time.Second}, nil,
		WithObserver(func(endpoint string, status int, duration time.Duration) {
			gotEndpoint = endpoint
			gotStatus = status
		}))

	_, err := client.Wilayas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GET /references/wilayas", gotEndpoint)
	assert.Equal(t, http.StatusOK, gotStatus)
}
