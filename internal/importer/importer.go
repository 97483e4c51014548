package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront-api/internal/domain"
)

// ItemWriter is the slice of the item repository the importer needs.
type ItemWriter interface {
	Upsert(ctx context.Context, item domain.Item) (*domain.Item, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates items. Expected
// headers: name, description, price. Price accepts either a decimal amount
// ("2.99") or an integer cent amount ("299").
type CSVImporter struct {
	reader   *csv.Reader
	itemRepo ItemWriter
}

func NewCSVImporter(r io.Reader, repo ItemWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		itemRepo: repo,
	}
}

// Run parses CSV rows and upserts items, returning how many were imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing required header: name")
	}
	if _, ok := index["price"]; !ok {
		return 0, errors.New("missing required header: price")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := strings.TrimSpace(field(record, index, "name"))
		if name == "" {
			continue
		}
		cents, err := ParsePriceCents(field(record, index, "price"))
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+1, err)
		}

		if _, err := i.itemRepo.Upsert(ctx, domain.Item{
			Name:        name,
			Description: strings.TrimSpace(field(record, index, "description")),
			PriceCents:  cents,
		}); err != nil {
			return imported, fmt.Errorf("upsert %s: %w", name, err)
		}
		imported++
	}

	return imported, nil
}

// ParsePriceCents converts "2.99" or "299" style price strings to cents.
func ParsePriceCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.New("empty price")
	}

	whole, frac, hasFrac := strings.Cut(raw, ".")
	if !hasFrac {
		cents, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || cents < 0 {
			return 0, fmt.Errorf("invalid price %q", raw)
		}
		return cents, nil
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || dollars < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	if len(frac) == 1 {
		frac += "0"
	}
	if len(frac) != 2 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	centPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || centPart < 0 {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return dollars*100 + centPart, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
