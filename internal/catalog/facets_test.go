package catalog

import (
	"reflect"
	"testing"
)

func TestCountFacetsAvailability(t *testing.T) {
	counter := NewFacetCounter(Config{})
	products := SampleProducts()

	counts := counter.CountFacets(products)

	wantInStock := 0
	wantFreeShipping := 0
	for _, p := range products {
		if p.Stock > 0 {
			wantInStock++
		}
		if p.Price >= DefaultFreeShippingThreshold {
			wantFreeShipping++
		}
	}
	if counts[AvailabilityInStock] != wantInStock {
		t.Fatalf("in-stock count: want %d, got %d", wantInStock, counts[AvailabilityInStock])
	}
	if counts[AvailabilityFreeShipping] != wantFreeShipping {
		t.Fatalf("free-shipping count: want %d, got %d", wantFreeShipping, counts[AvailabilityFreeShipping])
	}
}

func TestCountFacetsKeywordsAndBrands(t *testing.T) {
	counter := NewFacetCounter(Config{})
	counts := counter.CountFacets(SampleProducts())

	if counts["alimento"] != 10 {
		t.Fatalf("alimento facet: want 10, got %d", counts["alimento"])
	}
	if counts["royal-canin"] != 2 {
		t.Fatalf("royal-canin facet: want 2, got %d", counts["royal-canin"])
	}
	if counts["gatos"] == 0 || counts["perros"] == 0 {
		t.Fatalf("pet facets should be populated: %v", counts)
	}
}

func TestCountFacetsIgnoreActiveFilter(t *testing.T) {
	cfg := Config{}
	counter := NewFacetCounter(cfg)
	engine := NewFilterEngine(cfg)
	products := SampleProducts()

	before := counter.CountFacets(products)

	// Filtering the set any number of times must not change the badges
	// computed from the same aggregated set.
	_ = engine.ApplyFilters(products, FilterSet{Search: "alimento"})
	_ = engine.ApplyFilters(products, FilterSet{PetTypes: []string{"perros"}, MaxPrice: 30_000})

	after := counter.CountFacets(products)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("facet counts changed after filtering: %v != %v", before, after)
	}
}
