package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll disables the category axis.
const CategoryAll = "all"

// Brand and product-type tokens backfill the sparse `categories` tags by
// substring-matching the lower-cased product name. A product can land under
// several tags this way even with zero explicit categories; that is accepted
// legacy behavior, not a bug.
var brandTokens = map[string][]string{
	"Optimum Nutrition": {"optimum", "on "},
	"Limitless":         {"limitless"},
	"NOW":               {"now "},
	"Nutrex":            {"nutrex"},
}

var typeTokens = map[string][]string{
	"Whey Protein": {"whey"},
	"Creatine":     {"creatine"},
	"Pre-Workout":  {"pre-workout", "pre workout"},
	"Amino Acids":  {"amino", "bcaa", "eaa"},
}

// Filters bundles the three filter axes plus ordering for one derivation.
// Search must already be normalized (lower-cased, trimmed).
type Filters struct {
	Category string
	Search   string
	MaxPrice float64
	// PriceBound is the "no limit" sentinel. A ceiling at or above it turns
	// the price axis off entirely rather than leaving an always-true
	// comparison at the boundary.
	PriceBound float64
	Sort       SortKey
	// Lang picks the collation used by the name sorts.
	Lang string
}

// DeriveView maps the full product list to the ordered, filtered view.
// The three axes are conjoined; the category heuristics are a union.
// Filtering runs before sorting, and SortNone preserves input order.
func DeriveView(all []Product, f Filters) []Product {
	out := make([]Product, 0, len(all))
	for _, p := range all {
		if !matchesCategory(p, f.Category) {
			continue
		}
		if !matchesSearch(p, f.Search) {
			continue
		}
		if !withinPrice(p, f.MaxPrice, f.PriceBound) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f.Sort, f.Lang)
	return out
}

// KnownTags lists every category tag the filter bar can offer: the heuristic
// brand and type tokens, sorted, with "all" first.
func KnownTags() []string {
	tags := make([]string, 0, 1+len(brandTokens)+len(typeTokens))
	for tag := range brandTokens {
		tags = append(tags, tag)
	}
	for tag := range typeTokens {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return append([]string{CategoryAll}, tags...)
}

func matchesCategory(p Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	name := strings.ToLower(p.Name)
	if nameContainsAny(name, brandTokens[category]) {
		return true
	}
	return nameContainsAny(name, typeTokens[category])
}

func nameContainsAny(name string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

func matchesSearch(p Product, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), search) {
		return true
	}
	return p.Description != "" && strings.Contains(strings.ToLower(p.Description), search)
}

func withinPrice(p Product, maxPrice, bound float64) bool {
	// Without an observed bound there is no slider to set a ceiling with.
	if bound <= 0 {
		return true
	}
	// A ceiling at or above the bound is the slider's "no limit" position.
	// Anything below it is a real ceiling, zero included.
	if maxPrice >= bound {
		return true
	}
	return p.Price <= maxPrice
}

func sortProducts(list []Product, key SortKey, lang string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
	case SortPriceDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
	case SortNameAsc:
		c := collatorFor(lang)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) < 0
		})
	case SortNameDesc:
		c := collatorFor(lang)
		sort.SliceStable(list, func(i, j int) bool {
			return c.CompareString(list[i].Name, list[j].Name) > 0
		})
	}
}

// collatorFor builds a fresh collator per call; collate.Collator buffers
// internally and is not safe for concurrent use.
func collatorFor(lang string) *collate.Collator {
	tag := language.English
	if lang == "ar" {
		tag = language.Arabic
	}
	return collate.New(tag)
}
