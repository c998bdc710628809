package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/search"
	"github.com/rimedu/resultats-portal-api/pkg/export"
)

type slipGateway interface {
	GetResult(ctx context.Context, id int) (*models.ExamResult, error)
}

// SlipService renders a printable PDF slip for one result.
type SlipService struct {
	gateway  slipGateway
	renderer *export.SlipRenderer
	logger   *zap.Logger
}

// NewSlipService constructs the slip service.
func NewSlipService(gateway slipGateway, renderer *export.SlipRenderer, logger *zap.Logger) *SlipService {
	if renderer == nil {
		renderer = export.NewSlipRenderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlipService{gateway: gateway, renderer: renderer, logger: logger}
}

// Render fetches the result and produces the slip bytes plus a filename.
func (s *SlipService) Render(ctx context.Context, resultID int) ([]byte, string, error) {
	result, err := s.gateway.GetResult(ctx, resultID)
	if err != nil {
		return nil, "", err
	}

	fields := []export.SlipField{
		{Label: "NNI", Value: search.FormatDigits(result.NNI)},
		{Label: "Numéro de dossier", Value: search.FormatDigits(result.NumeroDossier)},
		{Label: "Nom complet", Value: result.NomCompletFr},
		{Label: "Wilaya", Value: result.WilayaName},
		{Label: "Établissement", Value: result.EtablissementName},
		{Label: "Série", Value: result.SerieName},
		{Label: "Moyenne générale", Value: fmt.Sprintf("%.2f", result.MoyenneGenerale)},
	}
	if result.Mention != "" {
		fields = append(fields, export.SlipField{Label: "Mention", Value: result.Mention})
	}
	if result.RangNational != nil {
		fields = append(fields, export.SlipField{Label: "Rang national", Value: fmt.Sprintf("%d", *result.RangNational)})
	}

	data := export.SlipData{
		Title:    fmt.Sprintf("%s %d", examLabel(result.ExamType), result.Year),
		Subtitle: "Relevé de résultat",
		Fields:   fields,
		Decision: result.Decision,
		Footer:   "Document généré par le portail officiel des résultats",
	}

	pdf, err := s.renderer.Render(data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("resultat_%s_%d_%d.pdf", result.ExamType, result.Year, result.ID)
	return pdf, filename, nil
}
