package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/restaurant-cli/internal/model"
)

// --- Scraper Mock ---

type mockScraper struct {
	mock.Mock
}

func (m *mockScraper) Regions(ctx context.Context, cityURL string) ([]model.Region, error) {
	args := m.Called(ctx, cityURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Region), args.Error(1)
}

func (m *mockScraper) Listing(ctx context.Context, region model.Region) ([]string, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockScraper) Detail(ctx context.Context, link, region string) (*model.Restaurant, error) {
	args := m.Called(ctx, link, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Restaurant), args.Error(1)
}

// --- Enricher Mock ---

type mockEnricher struct {
	mock.Mock
}

func (m *mockEnricher) Enrich(ctx context.Context, r *model.Restaurant) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// rateAll makes the enricher mark every restaurant with the given rating.
func rateAll(e *mockEnricher, rating, count string) {
	e.On("Enrich", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		r := args.Get(1).(*model.Restaurant)
		r.GoogleRating = rating
		r.RatingCount = count
	}).Return(nil)
}

func restaurant(name, region string) *model.Restaurant {
	return &model.Restaurant{
		Name:      name,
		Locality:  region,
		Latitude:  "-36.8",
		Longitude: "174.7",
	}
}
