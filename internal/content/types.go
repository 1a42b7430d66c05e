package content

import "grlla/internal/i18n"

// Feature is one line item inside a coaching package.
type Feature struct {
	Icon        string
	Title       i18n.Text
	Description i18n.Text
}

// Package is a coaching tier (SILVER/GOLD/VIP) with its checkout link.
type Package struct {
	Name     string
	Title    i18n.Text
	Duration i18n.Text
	Price    string
	Popular  bool
	Features []Feature
	Link     string
}

// FAQItem is one accordion entry.
type FAQItem struct {
	Question i18n.Text
	Answer   i18n.Text
}

// Slide is one success-story image with its bilingual overlay label.
type Slide struct {
	Image string
	Label i18n.Text
}

// FeatureView and the other *View types are the localized render of the data
// tables for one language; rendering reads the active language at render
// time, so a language toggle followed by a re-render swaps all text.
type FeatureView struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PackageView struct {
	Name     string        `json:"name"`
	Title    string        `json:"title"`
	Duration string        `json:"duration"`
	Price    string        `json:"price"`
	Popular  bool          `json:"popular"`
	Features []FeatureView `json:"features"`
	Link     string        `json:"link"`
}

type FAQView struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type SlideView struct {
	Image string `json:"image"`
	Label string `json:"label"`
}

// Breakpoint maps a viewport width to the number of visible slides.
type Breakpoint struct {
	MinWidth      int `json:"min_width"`
	SlidesPerView int `json:"slides_per_view"`
}

// CarouselView describes an opaque carousel: the slides plus the parameters
// the widget needs. The widget itself lives outside this service.
type CarouselView struct {
	Slides        []SlideView  `json:"slides,omitempty"`
	SlidesPerView int          `json:"slides_per_view"`
	SpaceBetween  int          `json:"space_between"`
	Loop          bool         `json:"loop"`
	AutoplayMs    int          `json:"autoplay_ms"`
	Navigation    bool         `json:"navigation"`
	Pagination    bool         `json:"pagination"`
	Breakpoints   []Breakpoint `json:"breakpoints,omitempty"`
}
