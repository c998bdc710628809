package dto

import "github.com/rimedu/resultats-portal-api/internal/models"

// LookupOutcome tells the front-end what to render after a free-text
// lookup: jump straight to a detail view, show a list, or show the
// explicit not-found view.
type LookupOutcome string

const (
	LookupRedirect LookupOutcome = "redirect"
	LookupResults  LookupOutcome = "results"
	LookupNotFound LookupOutcome = "not_found"
)

// ClassifiedQuery echoes how the raw term was interpreted. Formatted
// carries the display form (digits grouped by 4) for nni/dossier terms.
type ClassifiedQuery struct {
	Kind      string `json:"kind"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// LookupResponse is the payload of the classifier-driven search entry.
type LookupResponse struct {
	Outcome  LookupOutcome       `json:"outcome"`
	Query    ClassifiedQuery     `json:"query"`
	ResultID int                 `json:"result_id,omitempty"`
	Result   *models.ExamResult  `json:"result,omitempty"`
	Results  []models.ExamResult `json:"results,omitempty"`
	Total    int                 `json:"total"`
}
