package models

// ExamResult is one candidate's outcome in a session, as served by the
// upstream results API. Read-only from the portal's perspective.
type ExamResult struct {
	ID               int      `json:"id"`
	NNI              string   `json:"nni"`
	NumeroDossier    string   `json:"numero_dossier"`
	NomCompletFr     string   `json:"nom_complet_fr"`
	NomCompletAr     string   `json:"nom_complet_ar"`
	MoyenneGenerale  float64  `json:"moyenne_generale"`
	Decision         string   `json:"decision"`
	Mention          string   `json:"mention"`
	RangNational     *int     `json:"rang_national"`
	RangWilaya       *int     `json:"rang_wilaya"`
	RangEtablissement *int    `json:"rang_etablissement"`
	SessionID        int      `json:"session_id"`
	Year             int      `json:"year"`
	ExamType         string   `json:"exam_type"`
	WilayaID         int      `json:"wilaya_id"`
	WilayaName       string   `json:"wilaya_name"`
	EtablissementID  int      `json:"etablissement_id"`
	EtablissementName string  `json:"etablissement_name"`
	SerieID          int      `json:"serie_id"`
	SerieCode        string   `json:"serie_code"`
	SerieName        string   `json:"serie_name"`
}

// ResultPage is the upstream search response. Pagination metadata is
// server-declared and must be carried verbatim.
type ResultPage struct {
	Results    []ExamResult `json:"results"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	Size       int          `json:"size"`
	TotalPages int          `json:"total_pages"`
	HasNext    bool         `json:"has_next"`
	HasPrev    bool         `json:"has_prev"`
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}
