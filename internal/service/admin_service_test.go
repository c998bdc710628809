package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rimedu/resultats-portal-api/internal/auth"
	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/pkg/config"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

type adminGatewayMock struct {
	loginResp    *models.AuthToken
	loginErr     error
	uploadResp   *models.UploadTask
	uploadErr    error
	statusResp   *models.UploadStatus
	sessionResp  *models.Session
	sessionErr   error
	lastToken    string
	lastUsername string
	lastSession  int
	lastPublish  bool
}

func (m *adminGatewayMock) Login(ctx context.Context, username, password string) (*models.AuthToken, error) {
	m.lastUsername = username
	return m.loginResp, m.loginErr
}

func (m *adminGatewayMock) UploadResults(ctx context.Context, token string, sessionID int, filename string, file io.Reader) (*models.UploadTask, error) {
	m.lastToken = token
	m.lastSession = sessionID
	return m.uploadResp, m.uploadErr
}

func (m *adminGatewayMock) UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error) {
	m.lastToken = token
	return m.statusResp, nil
}

func (m *adminGatewayMock) CreateSession(ctx context.Context, token string, year int, examType, sessionName string) (*models.Session, error) {
	m.lastToken = token
	return m.sessionResp, m.sessionErr
}

func (m *adminGatewayMock) PublishSession(ctx context.Context, token string, sessionID int, isPublished bool) (*models.Session, error) {
	m.lastToken = token
	m.lastSession = sessionID
	m.lastPublish = isPublished
	return m.sessionResp, m.sessionErr
}

func expiringToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin", "exp": exp.Unix()})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)
	return signed
}

func newAdminService(gateway *adminGatewayMock) (*AdminService, *auth.TokenStore) {
	tokens := auth.NewTokenStore()
	monitor := NewUploadMonitor(gateway, config.UploadsConfig{PollInterval: 5 * time.Millisecond, MaxDuration: time.Second}, nil)
	return NewAdminService(gateway, tokens, monitor, nil, nil), tokens
}

func TestLoginStoresToken(t *testing.T) {
	gateway := &adminGatewayMock{loginResp: &models.AuthToken{AccessToken: "tok-1", TokenType: "bearer"}}
	svc, tokens := newAdminService(gateway)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, resp.LoggedIn)

	stored, ok := tokens.Read()
	assert.True(t, ok)
	assert.Equal(t, "tok-1", stored)
}

func TestLoginValidatesPayload(t *testing.T) {
	svc, _ := newAdminService(&adminGatewayMock{})
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLoginMapsUnauthorizedToCredentialError(t *testing.T) {
	gateway := &adminGatewayMock{loginErr: appErrors.Clone(appErrors.ErrUnauthorized, "bad credentials")}
	svc, _ := newAdminService(gateway)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestTokenRequiresLogin(t *testing.T) {
	svc, _ := newAdminService(&adminGatewayMock{})
	_, err := svc.Token()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestTokenDetectsExpiry(t *testing.T) {
	svc, tokens := newAdminService(&adminGatewayMock{})
	tokens.Init(expiringToken(t, time.Now().Add(-time.Hour)))

	_, err := svc.Token()
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSessionExpired.Code, appErrors.FromError(err).Code)

	// The expired token must be torn down so the next read fails fast.
	_, ok := tokens.Read()
	assert.False(t, ok)
}

func TestLogoutTearsDownToken(t *testing.T) {
	svc, tokens := newAdminService(&adminGatewayMock{})
	tokens.Init("tok-1")
	svc.Logout()
	_, ok := tokens.Read()
	assert.False(t, ok)
}

func TestUploadStartsMonitor(t *testing.T) {
	gateway := &adminGatewayMock{
		uploadResp: &models.UploadTask{TaskID: "task-1", TotalRows: 900},
		statusResp: &models.UploadStatus{TaskID: "task-1", Status: models.UploadStatusCompleted},
	}
	svc, tokens := newAdminService(gateway)
	tokens.Init("tok-1")

	resp, err := svc.Upload(context.Background(), 5, "bac.csv", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "task-1", resp.TaskID)
	assert.Equal(t, 900, resp.TotalRows)
	assert.True(t, resp.Monitoring)
	assert.Equal(t, "tok-1", gateway.lastToken)
	assert.Equal(t, 5, gateway.lastSession)
}

func TestUploadRequiresSession(t *testing.T) {
	svc, tokens := newAdminService(&adminGatewayMock{})
	tokens.Init("tok-1")

	_, err := svc.Upload(context.Background(), 0, "bac.csv", strings.NewReader("data"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestUploadStatusFallsBackToGateway(t *testing.T) {
	gateway := &adminGatewayMock{statusResp: &models.UploadStatus{TaskID: "task-x", Status: models.UploadStatusProcessing}}
	svc, tokens := newAdminService(gateway)
	tokens.Init("tok-1")

	status, err := svc.UploadStatus(context.Background(), "task-x")
	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusProcessing, status.Status)
}

func TestCreateSessionValidates(t *testing.T) {
	svc, tokens := newAdminService(&adminGatewayMock{sessionResp: &models.Session{ID: 1}})
	tokens.Init("tok-1")

	_, err := svc.CreateSession(context.Background(), dto.CreateSessionRequest{Year: 2024, ExamType: "doctorat", SessionName: "normale"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPublishSessionForwardsFlag(t *testing.T) {
	gateway := &adminGatewayMock{sessionResp: &models.Session{ID: 7, IsPublished: true}}
	svc, tokens := newAdminService(gateway)
	tokens.Init("tok-1")

	published := true
	session, err := svc.PublishSession(context.Background(), 7, dto.PublishSessionRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, session.IsPublished)
	assert.Equal(t, 7, gateway.lastSession)
	assert.True(t, gateway.lastPublish)
}
