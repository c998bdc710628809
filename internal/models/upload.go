package models

// Upload task statuses reported by the upstream bulk-upload pipeline.
// completed and failed are terminal.
const (
	UploadStatusPending    = "pending"
	UploadStatusProcessing = "processing"
	UploadStatusCompleted  = "completed"
	UploadStatusFailed     = "failed"
)

// UploadTask is returned when a bulk result file is accepted.
type UploadTask struct {
	TaskID    string `json:"task_id"`
	TotalRows int    `json:"total_rows"`
}

// UploadStatus is one progress snapshot of a running upload.
type UploadStatus struct {
	TaskID        string           `json:"task_id"`
	Status        string           `json:"status"`
	Progress      float64          `json:"progress"`
	TotalRows     int              `json:"total_rows"`
	ProcessedRows int              `json:"processed_rows"`
	SuccessCount  int              `json:"success_count"`
	ErrorCount    int              `json:"error_count"`
	Errors        []UploadRowError `json:"errors"`
}

// UploadRowError pinpoints a rejected row.
type UploadRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Terminal reports whether the status ends the polling loop.
func (s *UploadStatus) Terminal() bool {
	return s.Status == UploadStatusCompleted || s.Status == UploadStatusFailed
}

// AuthToken is the upstream login response.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
