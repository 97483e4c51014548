package importer

import (
	"context"
	"strings"
	"testing"

	"storefront-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	items []domain.Item
	err   error
}

func (m *memWriter) Upsert(_ context.Context, item domain.Item) (*domain.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.items = append(m.items, item)
	return &item, nil
}

func TestRun_ImportsRows(t *testing.T) {
	csv := strings.Join([]string{
		"name,description,price",
		"Round Widget,A widget that is round,2.99",
		"Square Widget,A widget that is square,199",
		",,0.50", // blank name rows are skipped
	}, "\n")

	repo := &memWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), repo)

	count, err := imp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, repo.items, 2)
	assert.Equal(t, int64(299), repo.items[0].PriceCents)
	assert.Equal(t, int64(199), repo.items[1].PriceCents)
}

func TestRun_MissingHeader(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("name,description\nWidget,A widget"), &memWriter{})

	_, err := imp.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price")
}

func TestParsePriceCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "2.99", want: 299},
		{in: "0.5", want: 50},
		{in: "299", want: 299},
		{in: "0", want: 0},
		{in: " 12.00 ", want: 1200},
		{in: "", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "2.999", wantErr: true},
		{in: "abc", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParsePriceCents(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
