package models

import "time"

// ShareToken is an upstream-generated shareable link for one result.
// Tokens expire 30 days after creation.
type ShareToken struct {
	Token       string    `json:"token"`
	ShareURL    string    `json:"share_url"`
	ResultID    int       `json:"result_id"`
	IsAnonymous bool      `json:"is_anonymous"`
	ExpiresAt   time.Time `json:"expires_at"`
}
