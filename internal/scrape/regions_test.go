package scrape

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/restaurant-cli/internal/model"
)

func TestParseRegionText(t *testing.T) {
	tests := []struct {
		text      string
		wantName  string
		wantCount int
		wantOK    bool
	}{
		{"Auckland CBD (123 Restaurants", "Auckland CBD", 123, true},
		{"  Ponsonby\n\t (45 Restaurants)", "Ponsonby", 45, true},
		{"Mount Eden Road (7 Restaurants)", "Eden Road", 7, true},
		{"Ōrākei (25 Restaurants)", "Ōrākei", 25, true},
		{"Māngere Bridge (12 Restaurants)", "Māngere Bridge", 12, true},
		{"Ōtāhuhu (30 Restaurants)", "Ōtāhuhu", 30, true},
		{"Ro\u0304toiti (4 Restaurants)", "Ro\u0304toiti", 4, true}, // combining macron
		{"Auckland CBD", "", 0, false},
		{"See all localities", "", 0, false},
		{"", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			name, count, ok := ParseRegionText(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestParseRegions(t *testing.T) {
	doc, err := ParseDocument(cityPage)
	require.NoError(t, err)

	regions := ParseRegions(doc, "https://example.test/auckland", DefaultSelectors())

	require.Len(t, regions, 2)
	assert.Equal(t, model.Region{
		Name:            "Auckland CBD",
		ListingURL:      "https://example.test/auckland/cbd",
		AdvertisedCount: 123,
	}, regions[0])
	assert.Equal(t, model.Region{
		Name:            "Ponsonby",
		ListingURL:      "https://example.test/auckland/ponsonby",
		AdvertisedCount: 45,
	}, regions[1])
}

func TestParseRegions_MacronNames(t *testing.T) {
	doc, err := ParseDocument(`<html><body>
<h2 class="ui header">Localities</h2>
<div class="ui segment row">
<a href="/auckland/orakei">Ōrākei (25 Restaurants)</a>
<a href="/auckland/mangere-bridge">Māngere Bridge (12 Restaurants)</a>
</div></body></html>`)
	require.NoError(t, err)

	regions := ParseRegions(doc, "https://example.test/auckland", DefaultSelectors())

	require.Len(t, regions, 2)
	assert.Equal(t, "Ōrākei", regions[0].Name)
	assert.Equal(t, 25, regions[0].AdvertisedCount)
	assert.Equal(t, "Māngere Bridge", regions[1].Name)
	assert.Equal(t, "https://example.test/auckland/mangere-bridge", regions[1].ListingURL)
}

func TestParseRegions_NoMatches(t *testing.T) {
	doc, err := ParseDocument(`<html><body><a href="/x">Auckland CBD (1</a></body></html>`)
	require.NoError(t, err)

	assert.Empty(t, ParseRegions(doc, "https://example.test/auckland", DefaultSelectors()))
}

func TestScraperRegions(t *testing.T) {
	f := newFakeFetcher(map[string]string{
		"https://example.test/auckland": cityPage,
	})
	s := NewScraper(f)

	regions, err := s.Regions(context.Background(), "https://example.test/auckland")
	require.NoError(t, err)
	assert.Len(t, regions, 2)
	assert.Equal(t, []string{"https://example.test/auckland"}, f.calls)
}

func TestScraperRegions_FetchError(t *testing.T) {
	s := NewScraper(newFakeFetcher(nil))

	_, err := s.Regions(context.Background(), "https://example.test/auckland")
	assert.Error(t, err)
}
