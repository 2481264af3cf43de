package catalog

// FilterEngine applies a FilterSet to an aggregated product list. Facets
// combine with AND semantics; multiple values inside one facet combine with
// OR. Output preserves input order and missing product fields fail open
// (zero values simply never narrow the result).
type FilterEngine struct {
	cfg Config
}

// NewFilterEngine builds a FilterEngine with the given tuning constants.
func NewFilterEngine(cfg Config) *FilterEngine {
	return &FilterEngine{cfg: cfg.withDefaults()}
}

// ApplyFilters returns the subset of products matching every populated
// facet. It never fails; an unmatched facet value just narrows to nothing.
func (e *FilterEngine) ApplyFilters(products []Product, filters FilterSet) []Product {
	if filters.Empty() {
		out := make([]Product, len(products))
		copy(out, products)
		return out
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if e.matches(p, filters) {
			out = append(out, p)
		}
	}
	return out
}

func (e *FilterEngine) matches(p Product, f FilterSet) bool {
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if len(f.PetTypes) > 0 && !matchesPetType(p, f.PetTypes) {
		return false
	}
	if len(f.ProductTypes) > 0 && !matchesAnyTag(p, f.ProductTypes, false) {
		return false
	}
	if len(f.SnackBrands) > 0 && !matchesAnyTag(p, f.SnackBrands, true) {
		return false
	}
	if len(f.FoodBrands) > 0 && !matchesAnyTag(p, f.FoodBrands, true) {
		return false
	}
	if f.MaxPrice > 0 && f.MaxPrice < e.cfg.PriceCeilingSentinel && p.Price > f.MaxPrice {
		return false
	}
	if len(f.MinRatings) > 0 && !matchesRatingFloor(p, f.MinRatings) {
		return false
	}
	if len(f.Availability) > 0 && !e.matchesAvailability(p, f.Availability) {
		return false
	}
	return true
}

// matchesSearch checks the free-text term against name, description and
// category; any hit keeps the product.
func matchesSearch(p Product, term string) bool {
	return foldContains(p.Name, term) ||
		foldContains(p.Description, term) ||
		foldContains(p.Category, term)
}

// matchesPetType keeps products whose category mentions any selected tag.
func matchesPetType(p Product, tags []string) bool {
	for _, tag := range tags {
		if foldContains(p.Category, tag) {
			return true
		}
	}
	return false
}

// matchesAnyTag checks name or description for any selected tag. Brand keys
// use a hyphen separator and are space-normalized before matching.
func matchesAnyTag(p Product, tags []string, brand bool) bool {
	for _, tag := range tags {
		if brand {
			tag = brandKey(tag)
		}
		if foldContains(p.Name, tag) || foldContains(p.Description, tag) {
			return true
		}
	}
	return false
}

// matchesRatingFloor keeps the product when its rating clears any selected
// floor: selecting both 3 and 4 keeps everything rated 3 or better.
func matchesRatingFloor(p Product, floors []float64) bool {
	for _, min := range floors {
		if p.Rating >= min {
			return true
		}
	}
	return false
}

// matchesAvailability requires every recognized selected flag to hold.
// Unknown flags pass through. The upstream storefront effectively applied
// whichever flag it checked first; AND across flags is the documented
// replacement for that ambiguity.
func (e *FilterEngine) matchesAvailability(p Product, flags []string) bool {
	for _, flag := range flags {
		switch flag {
		case AvailabilityInStock:
			if p.Stock <= 0 {
				return false
			}
		case AvailabilityFreeShipping:
			if p.Price < e.cfg.FreeShippingThreshold {
				return false
			}
		}
	}
	return true
}
