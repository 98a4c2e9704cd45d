package scrape

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/sells-group/restaurant-cli/internal/model"
)

// ParseDetail extracts a restaurant from its detail page. Coordinates and
// name are required; cuisine and phone numbers may be empty. The rating fields
// are left for the enricher.
func ParseDetail(doc *goquery.Document, sel Selectors, region string) (*model.Restaurant, error) {
	lat, err := metaCoordinate(doc, sel.Latitude)
	if err != nil {
		return nil, eris.Wrap(err, "detail: latitude")
	}
	lon, err := metaCoordinate(doc, sel.Longitude)
	if err != nil {
		return nil, eris.Wrap(err, "detail: longitude")
	}

	name := strings.TrimSpace(doc.Find(sel.Name).First().Text())
	if name == "" {
		return nil, eris.New("detail: restaurant name not found")
	}

	return &model.Restaurant{
		Name:        name,
		Locality:    region,
		Latitude:    lat,
		Longitude:   lon,
		Cuisine:     joinTexts(doc.Find(sel.Cuisine)),
		PhoneNumber: joinTexts(doc.Find(sel.Phone)),
	}, nil
}

// metaCoordinate reads a coordinate from a meta tag's content attribute.
// The value is returned verbatim but must parse as a float.
func metaCoordinate(doc *goquery.Document, selector string) (string, error) {
	content, ok := doc.Find(selector).First().Attr("content")
	content = strings.TrimSpace(content)
	if !ok || content == "" {
		return "", eris.Errorf("meta %s not found", selector)
	}
	if _, err := strconv.ParseFloat(content, 64); err != nil {
		return "", eris.Wrapf(err, "meta %s is not a number", selector)
	}
	return content, nil
}

// Detail fetches a restaurant's detail page and extracts its fields.
func (s *Scraper) Detail(ctx context.Context, link, region string) (*model.Restaurant, error) {
	doc, err := s.fetchDocument(ctx, link, nil)
	if err != nil {
		return nil, err
	}
	r, err := ParseDetail(doc, s.sel, region)
	if err != nil {
		return nil, eris.Wrapf(err, "scrape: %s", link)
	}
	return r, nil
}
