package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildParamsOmitsEmptyValues(t *testing.T) {
	params := BuildParams(Filters{Nom: "", WilayaID: "3"}, 1, 10)

	assert.False(t, params.Has("nom"))
	assert.Equal(t, "3", params.Get("wilaya_id"))
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "10", params.Get("size"))
}

func TestBuildParamsCoercesNumericDimensions(t *testing.T) {
	params := BuildParams(Filters{
		NNI:             "1234567890",
		WilayaID:        "07",
		EtablissementID: "42",
		SerieID:         "5",
		Year:            "2024",
	}, 2, 25)

	assert.Equal(t, "7", params.Get("wilaya_id"))
	assert.Equal(t, "42", params.Get("etablissement_id"))
	assert.Equal(t, "5", params.Get("serie_id"))
	assert.Equal(t, "2024", params.Get("year"))
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, "25", params.Get("size"))
}

func TestBuildParamsDropsNonNumericDimensions(t *testing.T) {
	params := BuildParams(Filters{Nom: "Vall", WilayaID: "nord"}, 1, 10)
	assert.False(t, params.Has("wilaya_id"))
	assert.Equal(t, "Vall", params.Get("nom"))
}

func TestBuildParamsClampsPagination(t *testing.T) {
	params := BuildParams(Filters{Nom: "Vall"}, 0, 0)
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "10", params.Get("size"))

	params = BuildParams(Filters{Nom: "Vall"}, 3, 9999)
	assert.Equal(t, "100", params.Get("size"))
}

func TestBuildParamsIdempotent(t *testing.T) {
	filters := Filters{NNI: "1234567890", Year: "2024", ExamType: "bac"}
	first := BuildParams(filters, 1, 10)
	second := BuildParams(filters, 1, 10)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestBuildParamsStableEncoding(t *testing.T) {
	params := BuildParams(Filters{NNI: "1234567890", ExamType: "bac", Year: "2024"}, 1, 10)
	assert.Equal(t, "exam_type=bac&nni=1234567890&page=1&size=10&year=2024", params.Encode())
}

func TestHasCriterion(t *testing.T) {
	assert.True(t, Filters{NNI: "1234567890"}.HasCriterion())
	assert.True(t, Filters{NumeroDossier: "1234"}.HasCriterion())
	assert.True(t, Filters{Nom: "Ahmed"}.HasCriterion())
	assert.False(t, Filters{WilayaID: "3", Year: "2024"}.HasCriterion())
}
