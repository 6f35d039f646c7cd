package dataset

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/xmlpath.v2"

	"github.com/GHDaru/prodclass/internal/logging"
)

var (
	productPath     = xmlpath.MustCompile("//product")
	descriptionPath = xmlpath.MustCompile("description")
	categoryPath    = xmlpath.MustCompile("category")
	pricePath       = xmlpath.MustCompile("price")
)

// LoadXMLFeed reads a labeled product dataset from an XML catalog feed of
// the form <catalog><product><description>..</description>
// <category>..</category><price>..</price></product>..</catalog>.
// Price is optional per product.
func LoadXMLFeed(path string, opts Options) (*Dataset, error) {
	opts = opts.normalized()
	log.WithField(logging.FieldInputFile, path).Info("Reading product XML feed")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening feed file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close feed file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing feed file %s: %w", path, err)
	}

	ds := &Dataset{}
	dropped := 0
	iter := productPath.Iter(root)
	for iter.Next() {
		node := iter.Node()
		description, ok := descriptionPath.String(node)
		if !ok {
			return nil, fmt.Errorf("feed file %s: product without a description", path)
		}
		category, ok := categoryPath.String(node)
		if !ok {
			return nil, fmt.Errorf("feed file %s: product without a category", path)
		}
		if opts.DropCategory != "" && category == opts.DropCategory {
			dropped++
			continue
		}
		if opts.StripHTML {
			description = StripHTML(description)
		}
		product := Product{Description: description, Category: category}
		if priceText, ok := pricePath.String(node); ok && priceText != "" {
			price, err := decimal.NewFromString(priceText)
			if err != nil {
				return nil, fmt.Errorf("feed file %s: invalid price %q: %w", path, priceText, err)
			}
			product.Price = price
		}
		ds.Products = append(ds.Products, product)
	}

	log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: ds.Len()},
		logging.Field{Key: "dropped", Value: dropped},
	).Info("Product XML feed loaded")
	return ds, nil
}
