package search

import (
	"regexp"
	"strings"
)

// Kind discriminates what a free-text query is.
type Kind string

const (
	KindNNI     Kind = "nni"
	KindDossier Kind = "dossier"
	KindName    Kind = "name"
)

var (
	nniPattern     = regexp.MustCompile(`^\d{10,}$`)
	dossierPattern = regexp.MustCompile(`^\d{4,9}$`)
)

// Classification is the outcome of classifying a raw search term.
type Classification struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
}

// Classify decides whether a raw term is an NNI (10+ digits), a dossier
// number (4-9 digits) or a name. Total: every string yields exactly one
// classification. The NNI check must run first; a 10-digit term is always
// an NNI even though it would also satisfy a looser dossier rule.
func Classify(term string) Classification {
	trimmed := strings.TrimSpace(term)
	switch {
	case nniPattern.MatchString(trimmed):
		return Classification{Kind: KindNNI, Value: trimmed}
	case dossierPattern.MatchString(trimmed):
		return Classification{Kind: KindDossier, Value: trimmed}
	default:
		return Classification{Kind: KindName, Value: trimmed}
	}
}

// FormatDigits groups a digit string for display, a space every 4 digits:
// "1234567890" -> "1234 5678 90".
func FormatDigits(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
