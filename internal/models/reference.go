package models

// Wilaya is an administrative region.
type Wilaya struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	NameFr string `json:"name_fr"`
	NameAr string `json:"name_ar"`
}

// Etablissement is a school, scoped to a wilaya.
type Etablissement struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	NameFr   string `json:"name_fr"`
	NameAr   string `json:"name_ar"`
	WilayaID int    `json:"wilaya_id"`
}

// Serie is an exam track, scoped to an exam type.
type Serie struct {
	ID       int    `json:"id"`
	Code     string `json:"code"`
	NameFr   string `json:"name_fr"`
	NameAr   string `json:"name_ar"`
	ExamType string `json:"exam_type"`
}
