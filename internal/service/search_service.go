package service

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/browse"
	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/search"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
)

type resultsGateway interface {
	SearchResults(ctx context.Context, params url.Values) (*models.ResultPage, error)
	GetResult(ctx context.Context, id int) (*models.ExamResult, error)
}

// SearchService orchestrates result searches and the classifier-driven
// lookup entry point.
type SearchService struct {
	gateway resultsGateway
	logger  *zap.Logger
}

// NewSearchService constructs the search service.
func NewSearchService(gateway resultsGateway, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{gateway: gateway, logger: logger}
}

// Search runs a multi-criteria search. The criterion invariant is
// enforced here: a filter set without nni, dossier or name never reaches
// the gateway. The local sort pass never alters server pagination
// metadata.
func (s *SearchService) Search(ctx context.Context, filters search.Filters, page, size int, order browse.SortOrder) (*models.ResultPage, []int, error) {
	if !filters.HasCriterion() {
		return nil, nil, appErrors.ErrMissingCriterion
	}

	params := search.BuildParams(filters, page, size)
	result, err := s.gateway.SearchResults(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	browse.ApplySort(result.Results, order)
	return result, browse.PageWindow(result.Page, result.TotalPages), nil
}

// Detail fetches a single result.
func (s *SearchService) Detail(ctx context.Context, id int) (*models.ExamResult, error) {
	return s.gateway.GetResult(ctx, id)
}

// Lookup classifies a free-text term, routes it to the matching
// criterion, and decides the outcome: exactly one hit redirects to the
// detail view, zero hits yields the not-found view with the term echoed
// back (digit terms formatted in groups of 4), anything else is a list.
func (s *SearchService) Lookup(ctx context.Context, term, year, examType string) (*dto.LookupResponse, error) {
	classification := search.Classify(term)
	if classification.Value == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search term is required")
	}

	filters := search.Filters{Year: year, ExamType: examType}
	switch classification.Kind {
	case search.KindNNI:
		filters.NNI = classification.Value
	case search.KindDossier:
		filters.NumeroDossier = classification.Value
	default:
		filters.Nom = classification.Value
	}

	query := dto.ClassifiedQuery{
		Kind:      string(classification.Kind),
		Value:     classification.Value,
		Formatted: classification.Value,
	}
	if classification.Kind != search.KindName {
		query.Formatted = search.FormatDigits(classification.Value)
	}

	params := search.BuildParams(filters, 1, search.DefaultPageSize)
	page, err := s.gateway.SearchResults(ctx, params)
	if err != nil {
		if appErrors.IsNotFound(err) {
			return &dto.LookupResponse{Outcome: dto.LookupNotFound, Query: query}, nil
		}
		return nil, err
	}

	switch {
	case page.Total == 0:
		return &dto.LookupResponse{Outcome: dto.LookupNotFound, Query: query}, nil
	case page.Total == 1 && len(page.Results) == 1:
		result := page.Results[0]
		return &dto.LookupResponse{
			Outcome:  dto.LookupRedirect,
			Query:    query,
			ResultID: result.ID,
			Result:   &result,
			Total:    1,
		}, nil
	default:
		return &dto.LookupResponse{
			Outcome: dto.LookupResults,
			Query:   query,
			Results: page.Results,
			Total:   page.Total,
		}, nil
	}
}
