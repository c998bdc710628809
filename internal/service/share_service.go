package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/share"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

type shareGateway interface {
	GetResult(ctx context.Context, id int) (*models.ExamResult, error)
	CreateShare(ctx context.Context, resultID int, platform string, isAnonymous bool) (*models.ShareToken, error)
}

// ShareService mints share tokens upstream and composes the platform
// deep links locally.
type ShareService struct {
	gateway   shareGateway
	baseURL   string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewShareService constructs the share service.
func NewShareService(gateway shareGateway, baseURL string, validate *validator.Validate, logger *zap.Logger) *ShareService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShareService{gateway: gateway, baseURL: baseURL, validator: validate, logger: logger}
}

// Create mints a token for one result and returns the requested platform
// link plus the full link set.
func (s *ShareService) Create(ctx context.Context, resultID int, req dto.ShareRequest) (*dto.ShareResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid share payload")
	}

	token, err := s.gateway.CreateShare(ctx, resultID, req.Platform, req.IsAnonymous)
	if err != nil {
		return nil, err
	}

	shareURL := token.ShareURL
	if shareURL == "" {
		shareURL = s.baseURL + "/r/" + token.Token
	}

	text := req.Text
	if text == "" {
		text, err = s.defaultText(ctx, resultID, req.IsAnonymous)
		if err != nil {
			return nil, err
		}
	}

	link, err := share.Compose(share.Platform(req.Platform), shareURL, text)
	if err != nil {
		return nil, err
	}

	return &dto.ShareResponse{
		ShareURL:  shareURL,
		ExpiresAt: token.ExpiresAt,
		Link:      link,
		AllLinks:  share.ComposeAll(shareURL, text),
	}, nil
}

// defaultText builds the share message from the result itself; anonymous
// shares omit the candidate name.
func (s *ShareService) defaultText(ctx context.Context, resultID int, anonymous bool) (string, error) {
	result, err := s.gateway.GetResult(ctx, resultID)
	if err != nil {
		return "", err
	}

	label := examLabel(result.ExamType)
	if anonymous {
		return fmt.Sprintf("%s %d - %s", label, result.Year, result.Decision), nil
	}
	return fmt.Sprintf("%s %d - %s - %s", label, result.Year, result.NomCompletFr, result.Decision), nil
}

func examLabel(examType string) string {
	switch examType {
	case models.ExamTypeBac:
		return "Baccalauréat"
	case models.ExamTypeBEPC:
		return "BEPC"
	case models.ExamTypeConcours:
		return "Concours"
	default:
		return "Résultat"
	}
}
