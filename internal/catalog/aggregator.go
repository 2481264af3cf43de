package catalog

import (
	"encoding/json"

	"github.com/google/uuid"
)

// RawRecord is an untyped locally-imported product record. Imported batches
// come from external tooling (PDF imports, scrapers) and carry no schema
// guarantees beyond "probably has a name".
type RawRecord map[string]any

// Aggregator merges the remote product list with locally imported records
// into the single deduplicated set a catalog session operates on.
type Aggregator struct {
	cfg Config
	// fallback supplies products when the remote source yields nothing.
	fallback []Product
	newID    func() string
}

// NewAggregator builds an Aggregator. The fallback list is returned (plus
// normalized local imports) when the remote set is empty; pass nil to
// surface an empty catalog instead.
func NewAggregator(cfg Config, fallback []Product) *Aggregator {
	return &Aggregator{
		cfg:      cfg.withDefaults(),
		fallback: fallback,
		newID:    func() string { return uuid.NewString() },
	}
}

// Aggregate merges remote products with locally imported raw records.
//
// Deduplication is keyed on the case-folded product *name*, not the ID:
// the same physical product imported locally under a different ID must not
// show up twice. Remote entries always win a name collision. Note this also
// merges two genuinely distinct products that happen to share a display
// name; kept as-is pending product-owner confirmation.
//
// Aggregate never fails: malformed local records are normalized
// field-by-field and an empty result simply means an empty catalog.
func (a *Aggregator) Aggregate(remote []Product, localRaw []RawRecord) []Product {
	base := remote
	if len(base) == 0 {
		base = a.fallback
	}

	merged := make([]Product, 0, len(base)+len(localRaw))
	seen := make(map[string]struct{}, len(base))
	for _, p := range base {
		merged = append(merged, p)
		seen[fold(p.Name)] = struct{}{}
	}

	for _, raw := range localRaw {
		p, ok := a.normalize(raw)
		if !ok {
			continue
		}
		if _, dup := seen[fold(p.Name)]; dup {
			continue
		}
		seen[fold(p.Name)] = struct{}{}
		merged = append(merged, p)
	}
	return merged
}

// normalize coerces a raw imported record into a Product, defaulting every
// missing field. Records without a usable name are skipped: the name is the
// dedup key and an unnamed card is unrenderable.
func (a *Aggregator) normalize(raw RawRecord) (Product, bool) {
	name := stringField(raw, "name", "Name", "NombreBase")
	if name == "" {
		return Product{}, false
	}

	p := Product{
		ID:          stringField(raw, "id", "Id", "ID", "IdProducto"),
		Name:        name,
		Category:    stringField(raw, "category", "Category", "NombreCategoria"),
		Price:       intField(raw, "price", "Price", "Precio"),
		Stock:       int(intField(raw, "stock", "Stock")),
		Rating:      floatField(raw, "rating", "Rating"),
		Description: stringField(raw, "description", "Description", "Descripcion"),
		PetType:     stringField(raw, "petType", "PetType", "TipoMascota"),
		ImageURL:    stringField(raw, "imageUrl", "ImageUrl", "URLImagen"),
		Source:      SourceLocalImport,
	}
	if p.ID == "" {
		p.ID = a.newID()
	}
	if p.Category == "" {
		p.Category = "Otros"
	}
	if p.PetType == "" {
		p.PetType = "General"
	}

	// Preserve everything else opaquely so downstream renderers keep
	// whatever the import tool attached (image variants, weights, ...).
	known := map[string]struct{}{
		"id": {}, "Id": {}, "ID": {}, "IdProducto": {},
		"name": {}, "Name": {}, "NombreBase": {},
		"category": {}, "Category": {}, "NombreCategoria": {},
		"price": {}, "Price": {}, "Precio": {},
		"stock": {}, "Stock": {},
		"rating": {}, "Rating": {},
		"description": {}, "Description": {}, "Descripcion": {},
		"petType": {}, "PetType": {}, "TipoMascota": {},
		"imageUrl": {}, "ImageUrl": {}, "URLImagen": {},
	}
	for k, v := range raw {
		if _, ok := known[k]; ok {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]any)
		}
		p.Extra[k] = v
	}
	return p, true
}

func stringField(raw RawRecord, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			switch s := v.(type) {
			case string:
				if s != "" {
					return s
				}
			case json.Number:
				return s.String()
			case float64:
				return jsonNumber(s)
			}
		}
	}
	return ""
}

func intField(raw RawRecord, keys ...string) int64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			switch n := v.(type) {
			case int:
				return int64(n)
			case int64:
				return n
			case float64:
				return int64(n)
			case json.Number:
				if i, err := n.Int64(); err == nil {
					return i
				}
			}
		}
	}
	return 0
}

func floatField(raw RawRecord, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			switch n := v.(type) {
			case int:
				return float64(n)
			case int64:
				return float64(n)
			case float64:
				return n
			case json.Number:
				if f, err := n.Float64(); err == nil {
					return f
				}
			}
		}
	}
	return 0
}

func jsonNumber(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
