package crud

import "slices"

// Page is one fetched, server-paginated slice of a collection plus
// pagination metadata. Invariants: CurrentPage <= LastPage and
// len(Data) <= PerPage.
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

// PageItem is one entry in a pagination window: either a clickable page
// number or a non-clickable ellipsis placeholder.
type PageItem struct {
	Page     int  `json:"page"`
	Ellipsis bool `json:"ellipsis"`
}

// windowThreshold is the page count at or below which every page number is
// shown without compaction.
const windowThreshold = 5

// Window compacts a long page range into a display window. All pages are
// shown when totalPages <= 5; otherwise the window is the set
// {1, current-1, current, current+1, totalPages} clipped to the valid range,
// deduplicated and sorted, with an ellipsis inserted wherever two adjacent
// entries differ by more than one page.
func Window(totalPages, current int) []PageItem {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	if totalPages <= windowThreshold {
		items := make([]PageItem, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			items = append(items, PageItem{Page: p})
		}
		return items
	}

	candidates := []int{1, current - 1, current, current + 1, totalPages}
	pages := make([]int, 0, len(candidates))
	for _, p := range candidates {
		if p < 1 || p > totalPages {
			continue
		}
		if !slices.Contains(pages, p) {
			pages = append(pages, p)
		}
	}
	slices.Sort(pages)

	items := make([]PageItem, 0, len(pages)+2)
	for i, p := range pages {
		if i > 0 && p-pages[i-1] > 1 {
			items = append(items, PageItem{Ellipsis: true})
		}
		items = append(items, PageItem{Page: p})
	}
	return items
}
