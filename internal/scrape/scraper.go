// Package scrape extracts regions, listing links and restaurant details from
// the restaurant directory's HTML pages.
package scrape

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/restaurant-cli/internal/fetcher"
)

// Scraper walks the directory site: city page, region listings, detail pages.
type Scraper struct {
	fetcher fetcher.Fetcher
	sel     Selectors
}

// Option configures the scraper.
type Option func(*Scraper)

// WithSelectors overrides the default CSS selectors.
func WithSelectors(sel Selectors) Option {
	return func(s *Scraper) {
		s.sel = sel
	}
}

// NewScraper creates a Scraper that downloads pages through f.
func NewScraper(f fetcher.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{
		fetcher: f,
		sel:     DefaultSelectors(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// fetchDocument downloads a page and parses it.
func (s *Scraper) fetchDocument(ctx context.Context, rawURL string, params url.Values) (*goquery.Document, error) {
	body, err := s.fetcher.Fetch(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	doc, err := ParseDocument(body)
	if err != nil {
		return nil, eris.Wrapf(err, "scrape: %s", rawURL)
	}
	return doc, nil
}
