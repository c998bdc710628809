package upstream

import (
	"context"
	"net/url"

	"github.com/rimedu/resultats-portal-api/internal/models"
)

// Wilayas lists every region.
func (c *Client) Wilayas(ctx context.Context) ([]models.Wilaya, error) {
	var wilayas []models.Wilaya
	if err := c.get(ctx, "/references/wilayas", nil, "", &wilayas); err != nil {
		return nil, err
	}
	return wilayas, nil
}

// Etablissements lists schools, optionally scoped to a wilaya.
func (c *Client) Etablissements(ctx context.Context, wilayaID string) ([]models.Etablissement, error) {
	query := url.Values{}
	if wilayaID != "" {
		query.Set("wilaya_id", wilayaID)
	}
	var etablissements []models.Etablissement
	if err := c.get(ctx, "/references/etablissements", query, "", &etablissements); err != nil {
		return nil, err
	}
	return etablissements, nil
}

// Series lists exam tracks, optionally scoped to an exam type.
func (c *Client) Series(ctx context.Context, examType string) ([]models.Serie, error) {
	query := url.Values{}
	if examType != "" {
		query.Set("exam_type", examType)
	}
	var series []models.Serie
	if err := c.get(ctx, "/references/series", query, "", &series); err != nil {
		return nil, err
	}
	return series, nil
}

// Sessions lists published sessions, optionally filtered by type and year.
func (c *Client) Sessions(ctx context.Context, examType, year string) ([]models.Session, error) {
	query := url.Values{}
	if examType != "" {
		query.Set("exam_type", examType)
	}
	if year != "" {
		query.Set("year", year)
	}
	var sessions []models.Session
	if err := c.get(ctx, "/sessions/", query, "", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}
