package browse

// PageWindow derives the contiguous run of at most 5 page numbers shown
// around the current page. The window never starts below 1, never extends
// past totalPages, and centers on the current page when space allows:
// start = max(1, min(totalPages-4, current-2)).
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}

	start := current - 2
	if start > totalPages-4 {
		start = totalPages - 4
	}
	if start < 1 {
		start = 1
	}

	end := start + 4
	if end > totalPages {
		end = totalPages
	}

	window := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		window = append(window, p)
	}
	return window
}
