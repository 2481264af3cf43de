package catalog

// Facet vocabulary for badge counts. Pet and product type keywords match
// against category or name; brand keys match name or description after
// hyphen-to-space normalization, mirroring the filter engine.
var (
	// PetTypeKeywords are the recognized pet-type facet values.
	PetTypeKeywords = []string{"gatos", "perros", "aves", "peces"}

	// ProductTypeKeywords are the recognized product-type facet values.
	ProductTypeKeywords = []string{"alimento", "snacks", "juguetes", "accesorios", "arena", "higiene"}

	// BrandKeys are the known brand facet keys.
	BrandKeys = []string{
		"royal-canin",
		"hills",
		"pro-plan",
		"br-for-cat",
		"br-for-dog",
		"chunky",
		"agility-gold",
	}
)

// FacetCounter computes "how many would match if you added this facet"
// badges over the full, unfiltered aggregated set.
type FacetCounter struct {
	cfg Config
}

// NewFacetCounter builds a FacetCounter.
func NewFacetCounter(cfg Config) *FacetCounter {
	return &FacetCounter{cfg: cfg.withDefaults()}
}

// CountFacets is a pure function of the aggregated set. It must be
// recomputed only when that set changes, never on filter changes: the
// badges deliberately ignore the active FilterSet.
func (c *FacetCounter) CountFacets(all []Product) FacetCounts {
	counts := make(FacetCounts)

	for _, kw := range PetTypeKeywords {
		n := 0
		for _, p := range all {
			if foldContains(p.Category, kw) || foldContains(p.Name, kw) {
				n++
			}
		}
		counts[kw] = n
	}

	for _, kw := range ProductTypeKeywords {
		n := 0
		for _, p := range all {
			if foldContains(p.Category, kw) || foldContains(p.Name, kw) {
				n++
			}
		}
		counts[kw] = n
	}

	for _, key := range BrandKeys {
		phrase := brandKey(key)
		n := 0
		for _, p := range all {
			if foldContains(p.Name, phrase) || foldContains(p.Description, phrase) {
				n++
			}
		}
		counts[key] = n
	}

	inStock := 0
	freeShipping := 0
	for _, p := range all {
		if p.Stock > 0 {
			inStock++
		}
		if p.Price >= c.cfg.FreeShippingThreshold {
			freeShipping++
		}
	}
	counts[AvailabilityInStock] = inStock
	counts[AvailabilityFreeShipping] = freeShipping

	return counts
}
