package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rimedu/resultats-portal-api/internal/browse"
	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/service"
	appErrors "github.com/rimedu/resultats-portal-api/pkg/errors"
	"github.com/rimedu/resultats-portal-api/pkg/response"
)

// AdminHandler exposes the privileged area: login, session lifecycle,
// bulk uploads and CSV export.
type AdminHandler struct {
	admin  *service.AdminService
	export *service.ExportService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService, exportSvc *service.ExportService) *AdminHandler {
	return &AdminHandler{admin: admin, export: exportSvc}
}

// Login godoc
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	resp, err := h.admin.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}

// Logout godoc
// @Summary Admin logout
// @Tags Admin
// @Success 204
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	h.admin.Logout()
	response.NoContent(c)
}

// CreateSession godoc
// @Summary Create an exam session
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body dto.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Router /admin/sessions [post]
func (h *AdminHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	session, err := h.admin.CreateSession(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// PublishSession godoc
// @Summary Toggle session publication
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Session ID"
// @Param payload body dto.PublishSessionRequest true "Publication flag"
// @Success 200 {object} response.Envelope
// @Router /admin/sessions/{id}/publish [patch]
func (h *AdminHandler) PublishSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid session id"))
		return
	}
	var req dto.PublishSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload"))
		return
	}
	session, err := h.admin.PublishSession(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Upload godoc
// @Summary Bulk result upload
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param session_id formData int true "Target session"
// @Param file formData file true "CSV or Excel file"
// @Success 202 {object} response.Envelope
// @Router /admin/uploads [post]
func (h *AdminHandler) Upload(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.PostForm("session_id"))
	if err != nil || sessionID <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "session_id is required"))
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unreadable file"))
		return
	}
	defer file.Close()

	resp, err := h.admin.Upload(c.Request.Context(), sessionID, fileHeader.Filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, resp, nil)
}

// UploadStatus godoc
// @Summary Upload progress snapshot
// @Tags Admin
// @Produce json
// @Param task_id path string true "Upload task ID"
// @Success 200 {object} response.Envelope
// @Router /admin/uploads/{task_id} [get]
func (h *AdminHandler) UploadStatus(c *gin.Context) {
	taskID := c.Param("task_id")
	if taskID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "task_id is required"))
		return
	}
	status, err := h.admin.UploadStatus(c.Request.Context(), taskID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// CancelUpload godoc
// @Summary Stop monitoring an upload task
// @Tags Admin
// @Param task_id path string true "Upload task ID"
// @Success 204
// @Router /admin/uploads/{task_id} [delete]
func (h *AdminHandler) CancelUpload(c *gin.Context) {
	if !h.admin.CancelUpload(c.Param("task_id")) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "no monitored task with this id"))
		return
	}
	response.NoContent(c)
}

// ExportResults godoc
// @Summary Export a result search as CSV
// @Tags Admin
// @Produce text/csv
// @Param nni query string false "National ID (digits)"
// @Param numero_dossier query string false "Dossier number (digits)"
// @Param nom query string false "Candidate name"
// @Param wilaya_id query int false "Region filter"
// @Param etablissement_id query int false "School filter"
// @Param serie_id query int false "Serie filter"
// @Param year query int false "Exam year"
// @Param exam_type query string false "bac, bepc or concours"
// @Param sort query string false "name_asc, average_desc or rank_asc"
// @Success 200 {file} binary
// @Router /admin/exports/results [get]
func (h *AdminHandler) ExportResults(c *gin.Context) {
	filters := filtersFromQuery(c)
	order := browse.ParseSortOrder(c.Query("sort"))

	csv, filename, err := h.export.ExportResults(c.Request.Context(), filters, order)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}
