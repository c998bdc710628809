package dto

import "github.com/rimedu/resultats-portal-api/internal/models"

// BootstrapResponse joins the independent reference fetches a landing
// page needs before rendering.
type BootstrapResponse struct {
	Wilayas  []models.Wilaya  `json:"wilayas"`
	Series   []models.Serie   `json:"series"`
	Sessions []models.Session `json:"sessions"`
}
