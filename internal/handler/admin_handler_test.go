package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rimedu/resultats-portal-api/internal/auth"
	"github.com/rimedu/resultats-portal-api/internal/middleware"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/service"
	"github.com/rimedu/resultats-portal-api/pkg/config"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

type adminGatewayStub struct {
	loginResp   *models.AuthToken
	loginErr    error
	uploadResp  *models.UploadTask
	statusResp  *models.UploadStatus
	sessionResp *models.Session
	lastToken   string
}

func (s *adminGatewayStub) Login(ctx context.Context, username, password string) (*models.AuthToken, error) {
	return s.loginResp, s.loginErr
}

func (s *adminGatewayStub) UploadResults(ctx context.Context, token string, sessionID int, filename string, file io.Reader) (*models.UploadTask, error) {
	s.lastToken = token
	return s.uploadResp, nil
}

func (s *adminGatewayStub) UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error) {
	s.lastToken = token
	return s.statusResp, nil
}

func (s *adminGatewayStub) CreateSession(ctx context.Context, token string, year int, examType, sessionName string) (*models.Session, error) {
	s.lastToken = token
	return s.sessionResp, nil
}

func (s *adminGatewayStub) PublishSession(ctx context.Context, token string, sessionID int, isPublished bool) (*models.Session, error) {
	s.lastToken = token
	return s.sessionResp, nil
}

func buildAdminRouter(gateway *adminGatewayStub) (*gin.Engine, *auth.TokenStore) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenStore()
	monitor := service.NewUploadMonitor(gateway, config.UploadsConfig{PollInterval: 5 * time.Millisecond, MaxDuration: time.Second}, nil)
	adminSvc := service.NewAdminService(gateway, tokens, monitor, nil, nil)
	h := NewAdminHandler(adminSvc, nil)

	router := gin.New()
	router.POST("/admin/login", h.Login)
	secured := router.Group("/admin", middleware.RequireAdmin(adminSvc))
	secured.POST("/logout", h.Logout)
	secured.POST("/sessions", h.CreateSession)
	secured.PATCH("/sessions/:id/publish", h.PublishSession)
	secured.POST("/uploads", h.Upload)
	secured.GET("/uploads/:task_id", h.UploadStatus)
	secured.DELETE("/uploads/:task_id", h.CancelUpload)
	return router, tokens
}

func TestAdminLoginSuccess(t *testing.T) {
	gateway := &adminGatewayStub{loginResp: &models.AuthToken{AccessToken: "tok-1", TokenType: "bearer"}}
	router, tokens := buildAdminRouter(gateway)

	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"username":"admin","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"logged_in":true`)
	stored, ok := tokens.Read()
	require.True(t, ok)
	require.Equal(t, "tok-1", stored)
}

func TestAdminLoginBadCredentials(t *testing.T) {
	gateway := &adminGatewayStub{loginErr: appErrors.Clone(appErrors.ErrUnauthorized, "bad credentials")}
	router, _ := buildAdminRouter(gateway)

	req, _ := http.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{"username":"admin","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
	require.Contains(t, resp.Body.String(), "INVALID_CREDENTIALS")
}

func TestAdminRoutesRequireSession(t *testing.T) {
	router, _ := buildAdminRouter(&adminGatewayStub{})

	req, _ := http.NewRequest(http.MethodPost, "/admin/sessions", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAdminUploadAcceptsMultipart(t *testing.T) {
	gateway := &adminGatewayStub{
		uploadResp: &models.UploadTask{TaskID: "task-1", TotalRows: 1200},
		statusResp: &models.UploadStatus{TaskID: "task-1", Status: models.UploadStatusCompleted},
	}
	router, tokens := buildAdminRouter(gateway)
	tokens.Init("tok-1")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("session_id", "5"))
	part, err := writer.CreateFormFile("file", "bac2024.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("nni,nom,moyenne\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/admin/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := performRequest(router, req)

	require.Equal(t, http.StatusAccepted, resp.Code)
	require.Contains(t, resp.Body.String(), `"task_id":"task-1"`)
	require.Contains(t, resp.Body.String(), `"monitoring":true`)
}

func TestAdminUploadRequiresFile(t *testing.T) {
	router, tokens := buildAdminRouter(&adminGatewayStub{})
	tokens.Init("tok-1")

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("session_id", "5"))
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, "/admin/uploads", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := performRequest(router, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAdminUploadStatusFallsBackToGateway(t *testing.T) {
	gateway := &adminGatewayStub{statusResp: &models.UploadStatus{TaskID: "task-x", Status: models.UploadStatusProcessing, ProcessedRows: 300}}
	router, tokens := buildAdminRouter(gateway)
	tokens.Init("tok-1")

	req, _ := http.NewRequest(http.MethodGet, "/admin/uploads/task-x", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"processed_rows":300`)
}

func TestAdminCancelUnknownUpload(t *testing.T) {
	router, tokens := buildAdminRouter(&adminGatewayStub{})
	tokens.Init("tok-1")

	req, _ := http.NewRequest(http.MethodDelete, "/admin/uploads/missing", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAdminLogoutTearsDownSession(t *testing.T) {
	router, tokens := buildAdminRouter(&adminGatewayStub{})
	tokens.Init("tok-1")

	req, _ := http.NewRequest(http.MethodPost, "/admin/logout", nil)
	resp := performRequest(router, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	_, ok := tokens.Read()
	require.False(t, ok)
}
