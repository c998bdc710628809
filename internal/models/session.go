package models

// Exam types recognised by the portal.
const (
	ExamTypeBac      = "bac"
	ExamTypeBEPC     = "bepc"
	ExamTypeConcours = "concours"
)

// Session is one exam sitting (type x year).
type Session struct {
	ID           int     `json:"id"`
	Year         int     `json:"year"`
	ExamType     string  `json:"exam_type"`
	SessionName  string  `json:"session_name"`
	IsPublished  bool    `json:"is_published"`
	ResultsCount int     `json:"results_count"`
	PassCount    int     `json:"pass_count"`
	PassRate     float64 `json:"pass_rate"`
}
