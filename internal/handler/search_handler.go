package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/browse"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/internal/search"
	"github.com/rimedu/resultats-portal-api/internal/service"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// SearchHandler exposes the public search endpoints.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler constructs SearchHandler.
func NewSearchHandler(searchSvc *service.SearchService) *SearchHandler {
	return &SearchHandler{search: searchSvc}
}

func filtersFromQuery(c *gin.Context) search.Filters {
	return search.Filters{
		NNI:             strings.TrimSpace(c.Query("nni")),
		NumeroDossier:   strings.TrimSpace(c.Query("numero_dossier")),
		Nom:             strings.TrimSpace(c.Query("nom")),
		WilayaID:        c.Query("wilaya_id"),
		EtablissementID: c.Query("etablissement_id"),
		SerieID:         c.Query("serie_id"),
		SerieCode:       c.Query("serie_code"),
		Decision:        c.Query("decision"),
		Year:            c.Query("year"),
		ExamType:        c.Query("exam_type"),
	}
}

// Search godoc
// @Summary Multi-criteria result search
// @Tags Results
// @Produce json
// @Param nni query string false "National ID (digits)"
// @Param numero_dossier query string false "Dossier number (digits)"
// @Param nom query string false "Candidate name"
// @Param wilaya_id query int false "Region filter"
// @Param etablissement_id query int false "School filter"
// @Param serie_id query int false "Serie filter"
// @Param decision query string false "Decision filter"
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Param page query int false "Page"
// @Param size query int false "Page size"
// @Param sort query string false "name_asc, average_desc or rank_asc"
// @Success 200 {object} response.Envelope
// @Router /results/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	filters := filtersFromQuery(c)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	order := browse.ParseSortOrder(c.Query("sort"))

	result, window, err := h.search.Search(c.Request.Context(), filters, page, size, order)
	if err != nil {
		response.Error(c, err)
		return
	}

	pagination := &models.Pagination{
		Page:       result.Page,
		PageSize:   result.Size,
		TotalCount: result.Total,
		TotalPages: result.TotalPages,
	}
	meta := map[string]interface{}{
		"window":   window,
		"has_next": result.HasNext,
		"has_prev": result.HasPrev,
	}
	response.JSON(c, http.StatusOK, result.Results, pagination, meta)
}

// Lookup godoc
// @Summary Classifier-driven search entry point
// @Tags Results
// @Produce json
// @Param q query string true "Free-text term: NNI, dossier number or name"
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /results/lookup [get]
func (h *SearchHandler) Lookup(c *gin.Context) {
	resp, err := h.search.Lookup(c.Request.Context(), c.Query("q"), c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
