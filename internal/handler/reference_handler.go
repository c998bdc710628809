package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/service"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// ReferenceHandler exposes the lookup dimensions and the bootstrap join.
type ReferenceHandler struct {
	references *service.ReferenceService
}

// NewReferenceHandler constructs ReferenceHandler.
func NewReferenceHandler(references *service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{references: references}
}

// Wilayas godoc
// @Summary List wilayas
// @Tags References
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /references/wilayas [get]
func (h *ReferenceHandler) Wilayas(c *gin.Context) {
	wilayas, err := h.references.Wilayas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, wilayas, nil)
}

// Etablissements godoc
// @Summary List establishments
// @Tags References
// @Produce json
// @Param wilaya_id query int false "Scope to one wilaya"
// @Success 200 {object} response.Envelope
// @Router /references/etablissements [get]
func (h *ReferenceHandler) Etablissements(c *gin.Context) {
	etablissements, err := h.references.Etablissements(c.Request.Context(), c.Query("wilaya_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, etablissements, nil)
}

// Series godoc
// @Summary List exam series
// @Tags References
// @Produce json
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /references/series [get]
func (h *ReferenceHandler) Series(c *gin.Context) {
	series, err := h.references.Series(c.Request.Context(), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Sessions godoc
// @Summary List published sessions
// @Tags References
// @Produce json
// @Param exam_type query string false "bac, bepc or concours"
// @Param year query int false "Exam year"
// @Success 200 {object} response.Envelope
// @Router /sessions [get]
func (h *ReferenceHandler) Sessions(c *gin.Context) {
	sessions, err := h.references.Sessions(c.Request.Context(), c.Query("exam_type"), c.Query("year"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Bootstrap godoc
// @Summary Joined reference fetch for page load
// @Tags References
// @Produce json
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /references/bootstrap [get]
func (h *ReferenceHandler) Bootstrap(c *gin.Context) {
	out, err := h.references.Bootstrap(c.Request.Context(), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out, nil)
}
