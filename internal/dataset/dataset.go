// Package dataset loads labeled product data from the formats retail
// exports actually arrive in: delimited CSV dumps and XML catalog feeds.
// It is a caller of the pipeline's public contract, not part of the core.
package dataset

import (
	"github.com/shopspring/decimal"

	"github.com/GHDaru/prodclass/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Product is one labeled product row.
type Product struct {
	Description string
	Category    string
	Price       decimal.Decimal
}

// Dataset is an ordered collection of labeled products. Order matters:
// the Corpus and Labels projections stay index-aligned.
type Dataset struct {
	Products []Product
}

// Len returns the number of products.
func (d *Dataset) Len() int {
	return len(d.Products)
}

// Corpus returns the descriptions, one per product.
func (d *Dataset) Corpus() []string {
	out := make([]string, len(d.Products))
	for i, p := range d.Products {
		out[i] = p.Description
	}
	return out
}

// Labels returns the categories, index-aligned with Corpus.
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.Products))
	for i, p := range d.Products {
		out[i] = p.Category
	}
	return out
}

// Options controls loading behavior for all supported formats.
type Options struct {
	// Delimiter is the CSV field separator. Retail exports in this
	// domain conventionally use ';'. Defaults to ';'.
	Delimiter rune
	// StripHTML removes markup from descriptions, which marketplace
	// feeds tend to carry.
	StripHTML bool
	// DropCategory removes rows labeled with this category entirely,
	// e.g. the conventional "ITENS COM PROBLEMA" marker for unusable rows.
	DropCategory string
}

func (o Options) normalized() Options {
	if o.Delimiter == 0 {
		o.Delimiter = ';'
	}
	return o
}
