package main

import (
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/restaurant-cli/internal/config"
	"github.com/sells-group/restaurant-cli/internal/fetcher"
	"github.com/sells-group/restaurant-cli/internal/scrape"
)

// newScraper builds the directory scraper from site config.
func newScraper(site config.SiteConfig) (*scrape.Scraper, error) {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent: site.UserAgent,
		Timeout:   time.Duration(site.TimeoutSecs) * time.Second,
	})

	var opts []scrape.Option
	if site.SelectorsFile != "" {
		sel, err := scrape.LoadSelectors(site.SelectorsFile)
		if err != nil {
			return nil, eris.Wrap(err, "load selectors")
		}
		opts = append(opts, scrape.WithSelectors(sel))
	}
	return scrape.NewScraper(f, opts...), nil
}
