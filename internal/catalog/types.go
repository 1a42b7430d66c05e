package catalog

// Product is one supplement record from the scraped catalog document.
// URL doubles as the product identity and the detail-page routing key.
type Product struct {
	URL              string   `json:"url" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	ShortDescription string   `json:"short_description,omitempty"`
	Price            float64  `json:"price" validate:"gte=0"`
	InStock          bool     `json:"in_stock"`
	Categories       []string `json:"categories,omitempty"`
	Images           []string `json:"images,omitempty"`
}

// ShortText returns the card blurb: the short description when present,
// otherwise the description truncated to 80 runes.
func (p Product) ShortText() string {
	if p.ShortDescription != "" {
		return p.ShortDescription
	}
	runes := []rune(p.Description)
	if len(runes) <= 80 {
		return p.Description
	}
	return string(runes[:80]) + "..."
}

// Document is the wire shape of the static catalog file.
type Document struct {
	Products []Product `json:"products" validate:"required,dive"`
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortNone      SortKey = "none"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
)

// ParseSortKey validates a raw sort value from the query string.
// The empty string maps to SortNone.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortNone, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return SortKey(s), true
	case "":
		return SortNone, true
	}
	return SortNone, false
}

// PageControl describes one element of the pagination control strip.
// Page is 0 for the ellipsis placeholder.
type PageControl struct {
	Label  string `json:"label"`
	Page   int    `json:"page,omitempty"`
	Active bool   `json:"active,omitempty"`
}

// View is the derived, paginated slice of the catalog plus the filter state
// that produced it. It is recomputed on every transition, never hand-edited.
type View struct {
	Products   []Product     `json:"products"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
	Controls   []PageControl `json:"controls"`
	Category   string        `json:"category"`
	Search     string        `json:"search"`
	MaxPrice   float64       `json:"max_price"`
	Sort       SortKey       `json:"sort"`
}
