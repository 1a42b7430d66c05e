package catalog

import (
	"math"
	"strconv"
)

// DefaultPageSize is the per-session page size when the client omits one.
const DefaultPageSize = 20

// MaxPageSize caps page_size from the query string.
const MaxPageSize = 50

// controlWindow is how many numbered buttons surround the current page.
const controlWindow = 5

// Paginate slices the ordered list for requestedPage. The page is clamped
// into [1, totalPages] so a stale page number after filters shrink the list
// can never index out of range. An empty list yields totalPages 0 and an
// empty slice; the caller renders an explicit no-results state for it.
func Paginate(list []Product, pageSize, requestedPage int) (pageSlice []Product, totalPages, clampedPage int) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages = int(math.Ceil(float64(len(list)) / float64(pageSize)))
	clampedPage = ClampPage(requestedPage, totalPages)
	if totalPages == 0 {
		return []Product{}, 0, clampedPage
	}
	start := (clampedPage - 1) * pageSize
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end], totalPages, clampedPage
}

// ClampPage bounds a requested page into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Controls builds the page-control strip: prev/next only when a page exists
// in that direction, up to five numbered buttons centered on the current
// page, and the first/last page always reachable via an ellipsis when the
// window does not include them. Deterministic for a given (current, total).
func Controls(current, totalPages int) []PageControl {
	if totalPages <= 1 {
		return []PageControl{}
	}
	current = ClampPage(current, totalPages)

	start := current - controlWindow/2
	end := current + controlWindow/2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > totalPages {
		start -= end - totalPages
		end = totalPages
	}
	if start < 1 {
		start = 1
	}

	controls := make([]PageControl, 0, controlWindow+6)
	if current > 1 {
		controls = append(controls, PageControl{Label: "prev", Page: current - 1})
	}
	if start > 1 {
		controls = append(controls, PageControl{Label: "1", Page: 1})
		if start > 2 {
			controls = append(controls, PageControl{Label: "…"})
		}
	}
	for p := start; p <= end; p++ {
		controls = append(controls, numberControl(p, current))
	}
	if end < totalPages {
		if end < totalPages-1 {
			controls = append(controls, PageControl{Label: "…"})
		}
		controls = append(controls, numberControl(totalPages, current))
	}
	if current < totalPages {
		controls = append(controls, PageControl{Label: "next", Page: current + 1})
	}
	return controls
}

func numberControl(page, current int) PageControl {
	return PageControl{
		Label:  strconv.Itoa(page),
		Page:   page,
		Active: page == current,
	}
}
