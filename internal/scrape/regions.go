package scrape

import (
	"context"
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sells-group/restaurant-cli/internal/model"
)

// regionTextRe matches "Region Name (123" and captures a one or two word name
// and the advertised restaurant count. Word characters include any Unicode
// letter, mark or digit so macrons in names like Ōrākei survive.
var regionTextRe = regexp.MustCompile(`([\p{L}\p{M}\p{N}_]+\s?[\p{L}\p{M}\p{N}_]+)\s\((\d+)`)

// ParseRegionText extracts the region name and advertised count from a
// region link's text. ok is false when the text carries no parenthesized count.
func ParseRegionText(text string) (name string, count int, ok bool) {
	m := regionTextRe.FindStringSubmatch(collapseSpace(text))
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], n, true
}

// ParseRegions enumerates the regions linked from a city page, in document
// order. Links whose text does not match the region pattern are skipped.
func ParseRegions(doc *goquery.Document, cityURL string, sel Selectors) []model.Region {
	var regions []model.Region
	doc.Find(sel.RegionLinks).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		name, count, ok := ParseRegionText(a.Text())
		if !ok || href == "" {
			zap.L().Debug("skipping region link",
				zap.String("text", collapseSpace(a.Text())),
				zap.String("href", href),
			)
			return
		}
		regions = append(regions, model.Region{
			Name:            name,
			ListingURL:      resolveURL(cityURL, href),
			AdvertisedCount: count,
		})
	})
	return regions
}

// Regions fetches the city page and returns its regions.
func (s *Scraper) Regions(ctx context.Context, cityURL string) ([]model.Region, error) {
	doc, err := s.fetchDocument(ctx, cityURL, nil)
	if err != nil {
		return nil, err
	}
	regions := ParseRegions(doc, cityURL, s.sel)
	zap.L().Info("found regions", zap.String("city_url", cityURL), zap.Int("regions", len(regions)))
	return regions, nil
}
