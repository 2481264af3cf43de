package source

import (
	"context"

	"github.com/velykapet/catalog/internal/catalog"
)

// StaticImporter satisfies the external catalog importer port with a fixed
// product set. The default zero value imports nothing, leaving the fixture
// fallback in charge.
type StaticImporter struct {
	Products []catalog.Product
}

// ProcessForExternalCatalog returns the configured product set.
func (i *StaticImporter) ProcessForExternalCatalog(context.Context) ([]catalog.Product, error) {
	return i.Products, nil
}
