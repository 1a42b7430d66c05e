package catalog

import (
	"strings"
	"sync"
)

// Session is one page-view's worth of catalog state: the current filter,
// sort, and page, plus the derived product list. Every transition re-derives
// the view before it returns, so filteredProducts always equals
// sort(filter(allProducts, ...), sort). Mutations are serialized by a mutex;
// the state machine itself assumes a single logical caller.
type Session struct {
	mu       sync.Mutex
	store    *Store
	category string
	search   string
	maxPrice float64
	sortKey  SortKey
	page     int
	pageSize int
	lang     string
	filtered []Product
}

// NewSession starts a session with the documented defaults: category "all",
// empty search, price ceiling at the catalog's observed maximum (no limit),
// no sort, page 1.
func NewSession(store *Store, pageSize int, lang string) *Session {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	s := &Session{
		store:    store,
		category: CategoryAll,
		maxPrice: store.PriceBound(),
		sortKey:  SortNone,
		page:     1,
		pageSize: pageSize,
		lang:     lang,
	}
	s.applyFilters()
	return s
}

// Search normalizes the text, re-derives, and resets to page 1. An empty
// string fully relaxes the search axis.
func (s *Session) Search(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.ToLower(strings.TrimSpace(text))
	s.page = 1
	s.applyFilters()
}

// SetCategory switches the category tag, re-derives, and resets to page 1.
func (s *Session) SetCategory(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = tag
	s.page = 1
	s.applyFilters()
}

// SetMaxPrice moves the price ceiling, re-derives, and resets to page 1.
func (s *Session) SetMaxPrice(n float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxPrice = n
	s.page = 1
	s.applyFilters()
}

// SetSort changes the ordering and re-derives. The page is NOT reset; the
// user stays where they are in the re-ordered list.
func (s *Session) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
	s.applyFilters()
}

// GoToPage clamps n into the valid range for the current view. No re-filter.
func (s *Session) GoToPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, totalPages, _ := Paginate(s.filtered, s.pageSize, 1)
	s.page = ClampPage(n, totalPages)
}

// ClearFilters restores every filter field to its default and goes back to
// page 1, leaving the full catalog visible.
func (s *Session) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = CategoryAll
	s.search = ""
	s.maxPrice = s.store.PriceBound()
	s.sortKey = SortNone
	s.page = 1
	s.applyFilters()
}

// View snapshots the current page slice with pagination metadata and the
// control strip. The requested page is clamped, never faulting on a stale
// page number.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	slice, totalPages, page := Paginate(s.filtered, s.pageSize, s.page)
	s.page = page
	return View{
		Products:   slice,
		Total:      len(s.filtered),
		Page:       page,
		PageSize:   s.pageSize,
		TotalPages: totalPages,
		HasNext:    page*s.pageSize < len(s.filtered),
		HasPrev:    page > 1 && totalPages > 0,
		Controls:   Controls(page, totalPages),
		Category:   s.category,
		Search:     s.search,
		MaxPrice:   s.maxPrice,
		Sort:       s.sortKey,
	}
}

// Filtered exposes the full derived list, mainly for tests and the order
// flow.
func (s *Session) Filtered() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// applyFilters recomputes the derived list. Callers hold the mutex.
func (s *Session) applyFilters() {
	s.filtered = DeriveView(s.store.Products(), Filters{
		Category:   s.category,
		Search:     s.search,
		MaxPrice:   s.maxPrice,
		PriceBound: s.store.PriceBound(),
		Sort:       s.sortKey,
		Lang:       s.lang,
	})
}
