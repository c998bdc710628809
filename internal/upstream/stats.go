package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rimedu/resultats-portal-api/internal/models"
)

func statsQuery(year, examType string) url.Values {
	query := url.Values{}
	if year != "" {
		query.Set("year", year)
	}
	if examType != "" {
		query.Set("exam_type", examType)
	}
	return query
}

// GlobalStats fetches session-wide aggregates.
func (c *Client) GlobalStats(ctx context.Context, year, examType string) (*models.GlobalStats, error) {
	var stats models.GlobalStats
	if err := c.get(ctx, "/stats/global", statsQuery(year, examType), "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WilayaStats fetches aggregates scoped to one region.
func (c *Client) WilayaStats(ctx context.Context, wilayaID int, year, examType string) (*models.WilayaStats, error) {
	var stats models.WilayaStats
	if err := c.get(ctx, "/stats/wilaya/"+strconv.Itoa(wilayaID), statsQuery(year, examType), "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// EtablissementStats fetches aggregates scoped to one school.
func (c *Client) EtablissementStats(ctx context.Context, etablissementID int, year, examType string) (*models.EtablissementStats, error) {
	var stats models.EtablissementStats
	if err := c.get(ctx, "/stats/etablissement/"+strconv.Itoa(etablissementID), statsQuery(year, examType), "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopStudents fetches the ranked student leaderboard.
func (c *Client) TopStudents(ctx context.Context, year, examType string) ([]models.TopStudent, error) {
	var top []models.TopStudent
	if err := c.get(ctx, "/stats/top-students", statsQuery(year, examType), "", &top); err != nil {
		return nil, err
	}
	return top, nil
}

// TopSchools fetches the ranked school leaderboard.
func (c *Client) TopSchools(ctx context.Context, year, examType string) ([]models.TopSchool, error) {
	var top []models.TopSchool
	if err := c.get(ctx, "/stats/top-schools", statsQuery(year, examType), "", &top); err != nil {
		return nil, err
	}
	return top, nil
}
