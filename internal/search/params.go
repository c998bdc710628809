package search

import (
	"net/url"
	"strconv"
)

// Filters is the sparse multi-criteria filter set a caller may supply.
// All fields arrive as raw strings (query-string shaped); numeric
// dimensions are coerced during building.
type Filters struct {
	NNI             string
	NumeroDossier   string
	Nom             string
	WilayaID        string
	EtablissementID string
	SerieID         string
	SerieCode       string
	Decision        string
	Year            string
	ExamType        string
}

// HasCriterion reports whether at least one discriminating criterion is
// present. Searches without one never reach the gateway.
func (f Filters) HasCriterion() bool {
	return f.NNI != "" || f.NumeroDossier != "" || f.Nom != ""
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// BuildParams assembles the canonical query parameters: empty values are
// omitted, numeric dimension fields are coerced (and dropped when not
// numeric), and encoding order is stable (url.Values encodes keys
// alphabetically). Building is idempotent and rejects nothing; filter
// combination legality is a caller concern.
func BuildParams(f Filters, page, size int) url.Values {
	params := url.Values{}

	setString(params, "nni", f.NNI)
	setString(params, "numero_dossier", f.NumeroDossier)
	setString(params, "nom", f.Nom)
	setString(params, "serie_code", f.SerieCode)
	setString(params, "decision", f.Decision)
	setString(params, "exam_type", f.ExamType)
	setNumeric(params, "wilaya_id", f.WilayaID)
	setNumeric(params, "etablissement_id", f.EtablissementID)
	setNumeric(params, "serie_id", f.SerieID)
	setNumeric(params, "year", f.Year)

	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	return params
}

func setString(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}

func setNumeric(params url.Values, key, value string) {
	if value == "" {
		return
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return
	}
	params.Set(key, strconv.Itoa(n))
}
