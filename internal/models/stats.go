package models

// GlobalStats aggregates a whole session.
type GlobalStats struct {
	Year            int     `json:"year"`
	ExamType        string  `json:"exam_type"`
	TotalCandidates int     `json:"total_candidates"`
	AdmisCount      int     `json:"admis_count"`
	SessionnaireCount int   `json:"sessionnaire_count"`
	AjourneCount    int     `json:"ajourne_count"`
	PassRate        float64 `json:"pass_rate"`
	AverageMoyenne  float64 `json:"average_moyenne"`
}

// WilayaStats scopes aggregates to one region.
type WilayaStats struct {
	WilayaID        int     `json:"wilaya_id"`
	WilayaName      string  `json:"wilaya_name"`
	Year            int     `json:"year"`
	ExamType        string  `json:"exam_type"`
	TotalCandidates int     `json:"total_candidates"`
	AdmisCount      int     `json:"admis_count"`
	PassRate        float64 `json:"pass_rate"`
	NationalRank    int     `json:"national_rank"`
}

// EtablissementStats scopes aggregates to one school.
type EtablissementStats struct {
	EtablissementID   int     `json:"etablissement_id"`
	EtablissementName string  `json:"etablissement_name"`
	WilayaID          int     `json:"wilaya_id"`
	Year              int     `json:"year"`
	ExamType          string  `json:"exam_type"`
	TotalCandidates   int     `json:"total_candidates"`
	AdmisCount        int     `json:"admis_count"`
	PassRate          float64 `json:"pass_rate"`
}

// TopStudent is one leaderboard row.
type TopStudent struct {
	Rank              int     `json:"rank"`
	NomCompletFr      string  `json:"nom_complet_fr"`
	MoyenneGenerale   float64 `json:"moyenne_generale"`
	WilayaName        string  `json:"wilaya_name"`
	EtablissementName string  `json:"etablissement_name"`
	SerieCode         string  `json:"serie_code"`
}

// TopSchool is one school leaderboard row.
type TopSchool struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	WilayaName      string  `json:"wilaya_name"`
	TotalCandidates int     `json:"total_candidates"`
	PassRate        float64 `json:"pass_rate"`
}
