package catalog

import "testing"

func sampleSubset(t *testing.T, ids ...string) map[string]struct{} {
	t.Helper()
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return want
}

func TestApplyFiltersSearchMatchesNameDescriptionCategory(t *testing.T) {
	engine := NewFilterEngine(Config{})
	products := SampleProducts()

	got := engine.ApplyFilters(products, FilterSet{Search: "ALIMENTO"})
	want := sampleSubset(t, "1", "4", "7", "10", "12", "16", "19", "23", "26", "29")
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d", len(want), len(got))
	}
	for _, p := range got {
		if _, ok := want[p.ID]; !ok {
			t.Fatalf("unexpected product %s (%s) in search results", p.ID, p.Name)
		}
	}
}

func TestApplyFiltersPreservesInputOrder(t *testing.T) {
	engine := NewFilterEngine(Config{})
	products := SampleProducts()
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	got := engine.ApplyFilters(products, FilterSet{Search: "alimento"})
	prev := -1
	for _, p := range got {
		if index[p.ID] < prev {
			t.Fatalf("result order not stable around product %s", p.ID)
		}
		prev = index[p.ID]
	}
}

func TestApplyFiltersFacetTable(t *testing.T) {
	engine := NewFilterEngine(Config{})
	products := SampleProducts()

	cases := []struct {
		name    string
		filters FilterSet
		check   func(t *testing.T, got []Product)
	}{
		{
			name:    "pet type matches category substring",
			filters: FilterSet{PetTypes: []string{"gatos"}},
			check: func(t *testing.T, got []Product) {
				if len(got) == 0 {
					t.Fatal("expected gato matches")
				}
				for _, p := range got {
					if !foldContains(p.Category, "gatos") {
						t.Fatalf("product %s category %q does not mention gatos", p.ID, p.Category)
					}
				}
			},
		},
		{
			name:    "brand key separator normalizes to space",
			filters: FilterSet{FoodBrands: []string{"royal-canin"}},
			check: func(t *testing.T, got []Product) {
				want := sampleSubset(t, "4", "23")
				if len(got) != len(want) {
					t.Fatalf("expected %d royal canin products, got %d", len(want), len(got))
				}
				for _, p := range got {
					if _, ok := want[p.ID]; !ok {
						t.Fatalf("unexpected product %s", p.ID)
					}
				}
			},
		},
		{
			name:    "price ceiling below sentinel applies",
			filters: FilterSet{MaxPrice: 20_000},
			check: func(t *testing.T, got []Product) {
				for _, p := range got {
					if p.Price > 20_000 {
						t.Fatalf("product %s price %d exceeds ceiling", p.ID, p.Price)
					}
				}
			},
		},
		{
			name:    "price ceiling at sentinel disables the facet",
			filters: FilterSet{MaxPrice: DefaultPriceCeilingSentinel},
			check: func(t *testing.T, got []Product) {
				if len(got) != len(products) {
					t.Fatalf("sentinel ceiling must not filter, got %d of %d", len(got), len(products))
				}
			},
		},
		{
			name:    "rating floors use OR semantics",
			filters: FilterSet{MinRatings: []float64{4.8, 3}},
			check: func(t *testing.T, got []Product) {
				// Floor 3 keeps everything rated >= 3.
				if len(got) != len(products) {
					t.Fatalf("lowest selected floor governs, got %d of %d", len(got), len(products))
				}
			},
		},
		{
			name:    "availability flags combine with AND",
			filters: FilterSet{Availability: []string{AvailabilityInStock, AvailabilityFreeShipping}},
			check: func(t *testing.T, got []Product) {
				for _, p := range got {
					if p.Stock <= 0 {
						t.Fatalf("product %s out of stock slipped through", p.ID)
					}
					if p.Price < DefaultFreeShippingThreshold {
						t.Fatalf("product %s below free shipping threshold", p.ID)
					}
				}
			},
		},
		{
			name:    "unknown availability flag passes through",
			filters: FilterSet{Availability: []string{"same-day"}},
			check: func(t *testing.T, got []Product) {
				if len(got) != len(products) {
					t.Fatalf("unrecognized flag must not narrow, got %d of %d", len(got), len(products))
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, engine.ApplyFilters(products, tc.filters))
		})
	}
}

func TestApplyFiltersMonotonicity(t *testing.T) {
	engine := NewFilterEngine(Config{})
	products := SampleProducts()

	base := FilterSet{Search: "alimento"}
	narrower := FilterSet{
		Search:       "alimento",
		PetTypes:     []string{"gatos"},
		MaxPrice:     100_000,
		Availability: []string{AvailabilityInStock},
	}

	broad := engine.ApplyFilters(products, base)
	narrow := engine.ApplyFilters(products, narrower)
	if len(narrow) > len(broad) {
		t.Fatalf("adding constraints grew the result: %d > %d", len(narrow), len(broad))
	}
}

func TestApplyFiltersFailsOpenOnMissingFields(t *testing.T) {
	engine := NewFilterEngine(Config{})
	sparse := []Product{{ID: "x"}} // everything zero-valued

	got := engine.ApplyFilters(sparse, FilterSet{Search: "alimento"})
	if len(got) != 0 {
		t.Fatal("empty fields should compare as empty strings, not match")
	}

	got = engine.ApplyFilters(sparse, FilterSet{MaxPrice: 100})
	if len(got) != 1 {
		t.Fatal("zero price is within any ceiling")
	}

	got = engine.ApplyFilters(sparse, FilterSet{Availability: []string{AvailabilityInStock}})
	if len(got) != 0 {
		t.Fatal("zero stock fails the in-stock flag")
	}
}
