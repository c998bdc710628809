package browse

import (
	"sort"
	"strings"

	"github.com/rimedu/resultats-portal-api/internal/models"
)

// SortOrder selects the local sort pass applied to a resolved page.
// Sorting is display-only: server pagination metadata is never touched.
type SortOrder string

const (
	SortNone        SortOrder = ""
	SortNameAsc     SortOrder = "name_asc"
	SortAverageDesc SortOrder = "average_desc"
	SortRankAsc     SortOrder = "rank_asc"
)

// ParseSortOrder maps a raw query value to a known order, defaulting to none.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(raw) {
	case SortNameAsc, SortAverageDesc, SortRankAsc:
		return SortOrder(raw)
	default:
		return SortNone
	}
}

// ApplySort sorts results in place. Unranked entries sort last under
// SortRankAsc.
func ApplySort(results []models.ExamResult, order SortOrder) {
	switch order {
	case SortNameAsc:
		sort.SliceStable(results, func(i, j int) bool {
			return strings.ToLower(results[i].NomCompletFr) < strings.ToLower(results[j].NomCompletFr)
		})
	case SortAverageDesc:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MoyenneGenerale > results[j].MoyenneGenerale
		})
	case SortRankAsc:
		sort.SliceStable(results, func(i, j int) bool {
			ri, rj := results[i].RangNational, results[j].RangNational
			switch {
			case ri == nil:
				return false
			case rj == nil:
				return true
			default:
				return *ri < *rj
			}
		})
	}
}
