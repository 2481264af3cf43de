// Package catalog implements the client-facing product catalog engine:
// source aggregation, multi-facet filtering, facet counts and the
// infinite-scroll display window.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Source tags identify where a product entered the catalog.
const (
	SourceRemote      = "remote"
	SourceLocalImport = "local-import"
)

// Engine tuning constants. All of them can be overridden via Config.
const (
	// DefaultPageSize is the number of cards appended per scroll page.
	DefaultPageSize = 12
	// DefaultPriceCeilingSentinel marks "no price constraint": a ceiling at
	// or above this value disables the price facet entirely.
	DefaultPriceCeilingSentinel = 500_000
	// DefaultFreeShippingThreshold is the minimum price (COP, minor units)
	// qualifying an item for free shipping.
	DefaultFreeShippingThreshold = 50_000
	// ScrollBottomProximityPx triggers a page advance when the viewport is
	// within this distance of the document bottom.
	ScrollBottomProximityPx = 200
	// ScrollTopAffordancePx toggles the scroll-to-top affordance.
	ScrollTopAffordancePx = 400
)

// Availability facet flags.
const (
	AvailabilityInStock      = "in-stock"
	AvailabilityFreeShipping = "free-shipping"
)

// Product is a sellable catalog entry. Instances are immutable once the
// aggregator has produced them for a catalog session.
type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Price       int64          `json:"price"`
	Stock       int            `json:"stock"`
	Rating      float64        `json:"rating"`
	Description string         `json:"description,omitempty"`
	PetType     string         `json:"petType,omitempty"`
	ImageURL    string         `json:"imageUrl,omitempty"`
	Source      string         `json:"source"`
	Extra       map[string]any `json:"extra,omitempty"`
}

// FilterSet is the complete facet selection. Empty fields impose no
// constraint; callers replace the whole set on every interaction.
type FilterSet struct {
	Search       string    `json:"search"`
	PetTypes     []string  `json:"petTypes" validate:"dive,min=1"`
	ProductTypes []string  `json:"productTypes" validate:"dive,min=1"`
	SnackBrands  []string  `json:"snackBrands" validate:"dive,min=1"`
	FoodBrands   []string  `json:"foodBrands" validate:"dive,min=1"`
	MaxPrice     int64     `json:"maxPrice" validate:"min=0"`
	MinRatings   []float64 `json:"minRatings" validate:"dive,min=0,max=5"`
	Availability []string  `json:"availability"`
}

// Empty reports whether no facet is populated.
func (f FilterSet) Empty() bool {
	return f.Search == "" &&
		len(f.PetTypes) == 0 &&
		len(f.ProductTypes) == 0 &&
		len(f.SnackBrands) == 0 &&
		len(f.FoodBrands) == 0 &&
		f.MaxPrice == 0 &&
		len(f.MinRatings) == 0 &&
		len(f.Availability) == 0
}

// FacetCounts maps a facet value key to the number of products in the full
// aggregated set matching it. Computed independently of any active filter.
type FacetCounts map[string]int

// Config carries the tunable engine constants.
type Config struct {
	PageSize              int
	PriceCeilingSentinel  int64
	FreeShippingThreshold int64
}

// withDefaults fills zero values with the engine defaults.
func (c Config) withDefaults() Config {
	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.PriceCeilingSentinel <= 0 {
		c.PriceCeilingSentinel = DefaultPriceCeilingSentinel
	}
	if c.FreeShippingThreshold <= 0 {
		c.FreeShippingThreshold = DefaultFreeShippingThreshold
	}
	return c
}

// fold normalizes a string for case-insensitive matching. A fresh caser per
// call: cases.Caser is stateful and must not be shared across goroutines.
func fold(s string) string {
	return cases.Fold().String(s)
}

// foldContains reports whether haystack contains needle, case-insensitively.
func foldContains(haystack, needle string) bool {
	return strings.Contains(fold(haystack), fold(needle))
}

// brandKey normalizes a brand facet key for substring matching: keys use a
// hyphen separator ("royal-canin") while product copy uses spaces.
func brandKey(key string) string {
	return strings.ReplaceAll(key, "-", " ")
}
