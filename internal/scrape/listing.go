package scrape

import (
	"context"
	"net/url"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/restaurant-cli/internal/model"
)

var pageCountRe = regexp.MustCompile(`of (\d+)`)

// ParsePageCount extracts N from pagination text like "Page 1 of N".
func ParsePageCount(text string) (int, bool) {
	m := pageCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseRestaurantLinks returns the detail-page links on one listing page, in
// document order.
func ParseRestaurantLinks(doc *goquery.Document, pageURL string, sel Selectors) []string {
	var links []string
	doc.Find(sel.RestaurantLinks).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok && href != "" {
			links = append(links, resolveURL(pageURL, href))
		}
	})
	return links
}

// Listing collects the detail-page links of every listing page in a region.
// A region whose pagination indicator is missing or unreadable yields no
// links and no error.
func (s *Scraper) Listing(ctx context.Context, region model.Region) ([]string, error) {
	log := zap.L().With(zap.String("region", region.Name))
	log.Info("fetching region listing", zap.String("url", region.ListingURL))

	doc, err := s.fetchDocument(ctx, region.ListingURL, url.Values{
		"all":    {"1"},
		"nearby": {"0"},
	})
	if err != nil {
		return nil, err
	}

	pagination := doc.Find(s.sel.PageCount).First()
	pages, ok := ParsePageCount(pagination.Text())
	if !ok {
		log.Warn("no page count found, region yields no restaurants",
			zap.Bool("indicator_present", pagination.Length() > 0),
			zap.Int("advertised", region.AdvertisedCount),
		)
		return nil, nil
	}
	log.Info("region pages", zap.Int("pages", pages))

	links := ParseRestaurantLinks(doc, region.ListingURL, s.sel)

	for page := 2; page <= pages; page++ {
		log.Info("fetching listing page", zap.Int("page", page), zap.Int("pages", pages))
		pageDoc, err := s.fetchDocument(ctx, region.ListingURL, url.Values{
			"page": {strconv.Itoa(page)},
		})
		if err != nil {
			return nil, err
		}
		links = append(links, ParseRestaurantLinks(pageDoc, region.ListingURL, s.sel)...)
	}

	return links, nil
}
