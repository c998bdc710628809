package dto

// LoginRequest carries admin credentials, forwarded form-encoded upstream.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse confirms a held session without leaking the token value.
type LoginResponse struct {
	LoggedIn  bool   `json:"logged_in"`
	TokenType string `json:"token_type"`
}

// CreateSessionRequest creates an exam sitting.
type CreateSessionRequest struct {
	Year        int    `json:"year" validate:"required,gte=2000,lte=2100"`
	ExamType    string `json:"exam_type" validate:"required,oneof=bac bepc concours"`
	SessionName string `json:"session_name" validate:"required"`
}

// PublishSessionRequest toggles publication.
type PublishSessionRequest struct {
	IsPublished *bool `json:"is_published" validate:"required"`
}

// UploadResponse acknowledges an accepted bulk file.
type UploadResponse struct {
	TaskID     string `json:"task_id"`
	TotalRows  int    `json:"total_rows"`
	Monitoring bool   `json:"monitoring"`
}
