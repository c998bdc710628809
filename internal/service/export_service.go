package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/browse"
	"github.com/rimedu/resultats-portal-api/internal/search"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
	"github.com/rimedu/resultats-portal-api/pkg/export"
)

// ExportService renders one page of search results as CSV for the admin
// area.
type ExportService struct {
	gateway  resultsGateway
	exporter *export.CSVExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(gateway resultsGateway, exporter *export.CSVExporter, logger *zap.Logger) *ExportService {
	if exporter == nil {
		exporter = export.NewCSVExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{gateway: gateway, exporter: exporter, logger: logger}
}

var exportHeaders = []string{"NNI", "Dossier", "Nom", "Wilaya", "Etablissement", "Serie", "Moyenne", "Decision", "Mention"}

// ExportResults searches with the given filters and renders the page as
// CSV. The search criterion invariant applies here too.
func (s *ExportService) ExportResults(ctx context.Context, filters search.Filters, order browse.SortOrder) ([]byte, string, error) {
	if !filters.HasCriterion() {
		return nil, "", appErrors.ErrMissingCriterion
	}

	params := search.BuildParams(filters, 1, search.MaxPageSize)
	page, err := s.gateway.SearchResults(ctx, params)
	if err != nil {
		return nil, "", err
	}
	browse.ApplySort(page.Results, order)

	rows := make([]map[string]string, 0, len(page.Results))
	for _, r := range page.Results {
		rows = append(rows, map[string]string{
			"NNI":           r.NNI,
			"Dossier":       r.NumeroDossier,
			"Nom":           r.NomCompletFr,
			"Wilaya":        r.WilayaName,
			"Etablissement": r.EtablissementName,
			"Serie":         r.SerieCode,
			"Moyenne":       fmt.Sprintf("%.2f", r.MoyenneGenerale),
			"Decision":      r.Decision,
			"Mention":       r.Mention,
		})
	}

	csv, err := s.exporter.Render(export.Dataset{Headers: exportHeaders, Rows: rows})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("resultats_export_%s.csv", time.Now().Format("20060102_150405"))
	return csv, filename, nil
}
