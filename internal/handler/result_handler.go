package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/service"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// ResultHandler exposes single-result endpoints: detail, PDF slip and
// share-link creation.
type ResultHandler struct {
	search *service.SearchService
	slips  *service.SlipService
	shares *service.ShareService
}

// NewResultHandler constructs ResultHandler.
func NewResultHandler(searchSvc *service.SearchService, slips *service.SlipService, shares *service.ShareService) *ResultHandler {
	return &ResultHandler{search: searchSvc, slips: slips, shares: shares}
}

func resultID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "invalid result id")
	}
	return id, nil
}

// Get godoc
// @Summary Result detail
// @Tags Results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} response.Envelope
// @Router /results/{id} [get]
func (h *ResultHandler) Get(c *gin.Context) {
	id, err := resultID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.search.Detail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Slip godoc
// @Summary Download the result slip as PDF
// @Tags Results
// @Produce application/pdf
// @Param id path int true "Result ID"
// @Success 200 {file} binary
// @Router /results/{id}/slip [get]
func (h *ResultHandler) Slip(c *gin.Context) {
	id, err := resultID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	pdf, filename, err := h.slips.Render(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Share godoc
// @Summary Create a share link for a result
// @Tags Results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param payload body dto.ShareRequest true "Share payload"
// @Success 201 {object} response.Envelope
// @Router /results/{id}/share [post]
func (h *ResultHandler) Share(c *gin.Context) {
	id, err := resultID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	resp, err := h.shares.Create(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}
