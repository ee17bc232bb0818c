package entity

import "strings"

// Default price range bounds used when no price filter is active.
const (
	DefaultPriceMin = 0.0
	DefaultPriceMax = 1000.0
)

// Filter kinds accepted by FilterCriteria.Remove.
const (
	FilterKindAll         = "all"
	FilterKindProductType = "productType"
	FilterKindBrand       = "brand"
	FilterKindConsoleLine = "consoleLine"
	FilterKindCondition   = "condition"
	FilterKindPriceRange  = "priceRange"
	FilterKindRating      = "rating"
)

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterCriteria is the caller's current set of search and filter
// selections. An empty value set means "no restriction" for that field,
// a rating of 0 means no rating threshold.
type FilterCriteria struct {
	ProductType []string   `json:"product_type"`
	Brand       []string   `json:"brand"`
	ConsoleLine []string   `json:"console_line"`
	Condition   []string   `json:"condition"`
	PriceRange  PriceRange `json:"price_range"`
	Rating      float64    `json:"rating"`
	SearchQuery string     `json:"search_query"`
}

func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		ProductType: []string{},
		Brand:       []string{},
		ConsoleLine: []string{},
		Condition:   []string{},
		PriceRange:  PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax},
		Rating:      0,
		SearchQuery: "",
	}
}

// Matches reports whether a product passes every active restriction.
func (c FilterCriteria) Matches(p *Product) bool {
	if c.SearchQuery != "" {
		query := strings.ToLower(c.SearchQuery)
		if !strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) &&
			!strings.Contains(strings.ToLower(p.Type), query) &&
			!strings.Contains(strings.ToLower(p.ConsoleLine), query) {
			return false
		}
	}

	if len(c.ProductType) > 0 && !containsValue(c.ProductType, p.Type) {
		return false
	}
	if len(c.Brand) > 0 && !containsValue(c.Brand, p.Brand) {
		return false
	}
	if len(c.ConsoleLine) > 0 && !containsValue(c.ConsoleLine, p.ConsoleLine) {
		return false
	}
	if len(c.Condition) > 0 && !containsValue(c.Condition, p.Condition) {
		return false
	}

	if p.Price < c.PriceRange.Min || p.Price > c.PriceRange.Max {
		return false
	}

	if c.Rating > 0 && p.Rating < c.Rating {
		return false
	}

	return true
}

// FilterProducts returns the subsequence of products matching the
// criteria, preserving input order. No sorting is applied.
func FilterProducts(products []*Product, criteria FilterCriteria) []*Product {
	filtered := make([]*Product, 0, len(products))
	for _, p := range products {
		if criteria.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Remove clears a single active filter. For the set-valued kinds, value
// names the entry to drop; kinds "priceRange" and "rating" reset only
// that field; kind "all" resets everything except the search query.
func (c *FilterCriteria) Remove(kind, value string) {
	switch kind {
	case FilterKindAll:
		query := c.SearchQuery
		*c = DefaultFilterCriteria()
		c.SearchQuery = query
	case FilterKindPriceRange:
		c.PriceRange = PriceRange{Min: DefaultPriceMin, Max: DefaultPriceMax}
	case FilterKindRating:
		c.Rating = 0
	case FilterKindProductType:
		c.ProductType = removeValue(c.ProductType, value)
	case FilterKindBrand:
		c.Brand = removeValue(c.Brand, value)
	case FilterKindConsoleLine:
		c.ConsoleLine = removeValue(c.ConsoleLine, value)
	case FilterKindCondition:
		c.Condition = removeValue(c.Condition, value)
	}
}

func containsValue(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

func removeValue(values []string, v string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if value != v {
			kept = append(kept, value)
		}
	}
	return kept
}
