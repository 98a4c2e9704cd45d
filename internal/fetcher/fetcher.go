// Package fetcher retrieves web pages over HTTP for the scrapers.
package fetcher

import (
	"context"
	"net/url"
)

// Fetcher defines the interface for downloading a page.
type Fetcher interface {
	// Fetch issues a GET for rawURL with params merged into its query and
	// returns the response body decoded to UTF-8 text.
	Fetch(ctx context.Context, rawURL string, params url.Values) (string, error)
}
