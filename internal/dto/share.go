package dto

import (
	"time"

	"github.com/rimedu/resultats-portal-api/internal/share"
)

// ShareRequest asks for a share link for one result.
type ShareRequest struct {
	Platform    string `json:"platform" validate:"required"`
	Text        string `json:"text"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// ShareResponse carries the minted token plus composed platform links.
type ShareResponse struct {
	ShareURL  string       `json:"share_url"`
	ExpiresAt time.Time    `json:"expires_at"`
	Link      share.Link   `json:"link"`
	AllLinks  []share.Link `json:"all_links"`
}
