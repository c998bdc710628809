package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/rimedu/resultats-portal-api/internal/models"
)

// SearchResults runs a paginated multi-criteria search. Params must come
// from search.BuildParams; the gateway does not re-validate them.
func (c *Client) SearchResults(ctx context.Context, params url.Values) (*models.ResultPage, error) {
	var page models.ResultPage
	if err := c.get(ctx, "/results/search", params, "", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetResult fetches one result detail.
func (c *Client) GetResult(ctx context.Context, id int) (*models.ExamResult, error) {
	var result models.ExamResult
	if err := c.get(ctx, "/results/"+strconv.Itoa(id), nil, "", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type createShareRequest struct {
	ResultID    int    `json:"result_id"`
	Platform    string `json:"platform"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// CreateShare asks the upstream to mint a share token for a result.
func (c *Client) CreateShare(ctx context.Context, resultID int, platform string, isAnonymous bool) (*models.ShareToken, error) {
	body := createShareRequest{ResultID: resultID, Platform: platform, IsAnonymous: isAnonymous}
	var token models.ShareToken
	if err := c.postJSON(ctx, "/results/"+strconv.Itoa(resultID)+"/share", "", body, &token); err != nil {
		return nil, err
	}
	return &token, nil
}
