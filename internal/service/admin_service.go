package service

import (
	"context"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/auth"
	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/models"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

type adminGateway interface {
	Login(ctx context.Context, username, password string) (*models.AuthToken, error)
	UploadResults(ctx context.Context, token string, sessionID int, filename string, file io.Reader) (*models.UploadTask, error)
	UploadStatus(ctx context.Context, token, taskID string) (*models.UploadStatus, error)
	CreateSession(ctx context.Context, token string, year int, examType, sessionName string) (*models.Session, error)
	PublishSession(ctx context.Context, token string, sessionID int, isPublished bool) (*models.Session, error)
}

// AdminService handles the privileged portal area: login, session
// lifecycle and bulk uploads. The bearer token lives in the TokenStore
// only; no silent refresh is attempted.
type AdminService struct {
	gateway   adminGateway
	tokens    *auth.TokenStore
	monitor   *UploadMonitor
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAdminService constructs the admin service.
func NewAdminService(gateway adminGateway, tokens *auth.TokenStore, monitor *UploadMonitor, validate *validator.Validate, logger *zap.Logger) *AdminService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminService{
		gateway:   gateway,
		tokens:    tokens,
		monitor:   monitor,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Login exchanges credentials upstream and initialises the token store.
func (s *AdminService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "username and password are required")
	}

	token, err := s.gateway.Login(ctx, req.Username, req.Password)
	if err != nil {
		if appErrors.FromError(err).Code == appErrors.ErrUnauthorized.Code {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, err
	}

	s.tokens.Init(token.AccessToken)
	s.logger.Info("admin logged in", zap.String("username", req.Username))

	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return &dto.LoginResponse{LoggedIn: true, TokenType: tokenType}, nil
}

// Logout tears the token down.
func (s *AdminService) Logout() {
	s.tokens.Teardown()
	s.logger.Info("admin logged out")
}

// Token returns the held bearer token, failing fast when none is held or
// the token is visibly expired.
func (s *AdminService) Token() (string, error) {
	token, ok := s.tokens.Read()
	if !ok {
		return "", appErrors.Clone(appErrors.ErrUnauthorized, "admin login required")
	}
	if auth.Expired(token, s.now()) {
		s.tokens.Teardown()
		return "", appErrors.Clone(appErrors.ErrSessionExpired, "")
	}
	return token, nil
}

// CreateSession creates an exam sitting upstream.
func (s *AdminService) CreateSession(ctx context.Context, req dto.CreateSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return s.gateway.CreateSession(ctx, token, req.Year, req.ExamType, req.SessionName)
}

// PublishSession toggles a session's publication flag.
func (s *AdminService) PublishSession(ctx context.Context, sessionID int, req dto.PublishSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "is_published is required")
	}
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return s.gateway.PublishSession(ctx, token, sessionID, *req.IsPublished)
}

// Upload submits a bulk result file and starts the progress monitor.
func (s *AdminService) Upload(ctx context.Context, sessionID int, filename string, file io.Reader) (*dto.UploadResponse, error) {
	if sessionID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "session_id is required")
	}
	token, err := s.Token()
	if err != nil {
		return nil, err
	}

	task, err := s.gateway.UploadResults(ctx, token, sessionID, filename, file)
	if err != nil {
		return nil, err
	}

	monitoring := false
	if s.monitor != nil {
		monitoring = s.monitor.Start(token, task.TaskID)
	}
	s.logger.Info("upload accepted",
		zap.String("task_id", task.TaskID),
		zap.Int("session_id", sessionID),
		zap.Int("total_rows", task.TotalRows))

	return &dto.UploadResponse{TaskID: task.TaskID, TotalRows: task.TotalRows, Monitoring: monitoring}, nil
}

// UploadStatus serves the freshest snapshot: the monitor's when one is
// running, a direct upstream poll otherwise.
func (s *AdminService) UploadStatus(ctx context.Context, taskID string) (*models.UploadStatus, error) {
	if s.monitor != nil {
		if status, _, tracked := s.monitor.Snapshot(taskID); tracked && status != nil {
			return status, nil
		}
	}

	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return s.gateway.UploadStatus(ctx, token, taskID)
}

// CancelUpload stops monitoring a task. The upstream processing itself is
// not interrupted.
func (s *AdminService) CancelUpload(taskID string) bool {
	if s.monitor == nil {
		return false
	}
	return s.monitor.Cancel(taskID)
}
