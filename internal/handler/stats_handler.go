package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/service"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// StatsHandler exposes the aggregate statistics endpoints.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Global godoc
// @Summary Session-wide aggregates
// @Tags Statistics
// @Produce json
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /stats/global [get]
func (h *StatsHandler) Global(c *gin.Context) {
	stats, err := h.stats.Global(c.Request.Context(), c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Wilaya godoc
// @Summary Aggregates for one wilaya
// @Tags Statistics
// @Produce json
// @Param id path int true "Wilaya ID"
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /stats/wilayas/{id} [get]
func (h *StatsHandler) Wilaya(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid wilaya id"))
		return
	}
	stats, err := h.stats.Wilaya(c.Request.Context(), id, c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Etablissement godoc
// @Summary Aggregates for one establishment
// @Tags Statistics
// @Produce json
// @Param id path int true "Establishment ID"
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /stats/etablissements/{id} [get]
func (h *StatsHandler) Etablissement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid etablissement id"))
		return
	}
	stats, err := h.stats.Etablissement(c.Request.Context(), id, c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// TopStudents godoc
// @Summary Student leaderboard
// @Tags Statistics
// @Produce json
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /stats/top-students [get]
func (h *StatsHandler) TopStudents(c *gin.Context) {
	top, err := h.stats.TopStudents(c.Request.Context(), c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, top, nil)
}

// TopSchools godoc
// @Summary School leaderboard
// @Tags Statistics
// @Produce json
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Success 200 {object} response.Envelope
// @Router /stats/top-schools [get]
func (h *StatsHandler) TopSchools(c *gin.Context) {
	top, err := h.stats.TopSchools(c.Request.Context(), c.Query("year"), c.Query("exam_type"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, top, nil)
}
