package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/GHDaru/prodclass/internal/logging"
)

// productRow maps the columns of a retail CSV export. Price is optional;
// exports without it leave the column out and the field stays zero.
type productRow struct {
	Description string          `csv:"nm_item"`
	Category    string          `csv:"nm_product"`
	Price       decimal.Decimal `csv:"vl_price,omitempty"`
}

// LoadCSV reads a labeled product dataset from a delimited CSV file.
func LoadCSV(path string, opts Options) (*Dataset, error) {
	opts = opts.normalized()
	log.WithField(logging.FieldInputFile, path).Info("Reading product CSV")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening dataset file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close dataset file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = opts.Delimiter
	reader.LazyQuotes = true

	var rows []*productRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing dataset file %s: %w", path, err)
	}

	ds := &Dataset{Products: make([]Product, 0, len(rows))}
	dropped := 0
	for _, row := range rows {
		if opts.DropCategory != "" && row.Category == opts.DropCategory {
			dropped++
			continue
		}
		description := row.Description
		if opts.StripHTML {
			description = StripHTML(description)
		}
		ds.Products = append(ds.Products, Product{
			Description: description,
			Category:    row.Category,
			Price:       row.Price,
		})
	}

	log.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: ds.Len()},
		logging.Field{Key: "dropped", Value: dropped},
	).Info("Product CSV loaded")
	return ds, nil
}
