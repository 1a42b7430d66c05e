package catalog

import (
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Store holds the full product list for the running service. Products are
// set once per load and never mutated afterward; sessions derive their views
// from the shared slice.
type Store struct {
	mu       sync.RWMutex
	products []Product
	byURL    map[string]int
	bound    float64
	loadErr  error
	loadedAt time.Time
}

func NewStore() *Store {
	return &Store{byURL: map[string]int{}}
}

// SetProducts replaces the catalog with a freshly loaded document and
// recomputes the observed price bound used as the "no limit" sentinel.
func (s *Store) SetProducts(ps []Product) {
	byURL := make(map[string]int, len(ps))
	var bound float64
	for i, p := range ps {
		if _, dup := byURL[p.URL]; !dup {
			byURL[p.URL] = i
		}
		if p.Price > bound {
			bound = p.Price
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = ps
	s.byURL = byURL
	s.bound = bound
	s.loadErr = nil
	s.loadedAt = time.Now()
}

// SetLoadError records a failed load. Existing products, if any, are kept.
func (s *Store) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// Products returns the shared catalog slice. Callers must not mutate it.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// ByURL looks a product up by its routing key.
func (s *Store) ByURL(url string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byURL[url]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// PriceBound is the maximum observed price; a filter ceiling at or above it
// means "unlimited".
func (s *Store) PriceBound() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Degraded reports whether the last load attempt failed.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr != nil
}

// Categories merges the explicit tags found on products with the heuristic
// brand/type tokens, for the filter bar.
func (s *Store) Categories() []string {
	s.mu.RLock()
	seen := map[string]struct{}{}
	for _, p := range s.products {
		for _, c := range p.Categories {
			seen[c] = struct{}{}
		}
	}
	s.mu.RUnlock()

	known := KnownTags()
	for _, t := range known {
		delete(seen, t)
	}
	extra := make([]string, 0, len(seen))
	for c := range seen {
		extra = append(extra, c)
	}
	sort.Strings(extra)
	return append(known, extra...)
}

// Sample returns up to n random products for the home-page showcase.
func (s *Store) Sample(n int) []Product {
	s.mu.RLock()
	picks := make([]Product, len(s.products))
	copy(picks, s.products)
	s.mu.RUnlock()

	rand.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	if n > len(picks) {
		n = len(picks)
	}
	return picks[:n]
}
