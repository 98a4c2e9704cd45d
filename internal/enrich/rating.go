// Package enrich cross-references scraped restaurants against Google Places
// to attach a rating and review count.
package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/restaurant-cli/internal/model"
	"github.com/sells-group/restaurant-cli/pkg/google"
)

// Enricher fills a restaurant's rating fields from the Places API.
type Enricher struct {
	client google.Client
}

// NewEnricher creates an Enricher backed by client.
func NewEnricher(client google.Client) *Enricher {
	return &Enricher{client: client}
}

// Request builds the Places lookup for r: "<name> <region>" biased to the
// restaurant's coordinates.
func Request(r *model.Restaurant) google.FindPlaceRequest {
	return google.FindPlaceRequest{
		Input:        r.Name + " " + r.Locality,
		LocationBias: r.Latitude + "," + r.Longitude,
	}
}

// Enrich looks r up and sets GoogleRating and RatingCount. API anomalies are
// recorded as rating sentinels; only transport-level failures are errors.
func (e *Enricher) Enrich(ctx context.Context, r *model.Restaurant) error {
	req := Request(r)
	resp, err := e.client.FindPlace(ctx, req)
	if err != nil {
		return eris.Wrapf(err, "enrich: lookup %q", req.Input)
	}

	r.GoogleRating, r.RatingCount = Decide(resp)

	if resp.Status != google.StatusOK {
		zap.L().Debug("places lookup not ok",
			zap.String("input", req.Input),
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage),
		)
	}
	return nil
}

// Decide maps a Places response to the rating and rating-count fields.
//
//	status != OK or no candidates field -> encountered error
//	0 candidates                        -> restaurant not found
//	1 candidate with rating and total   -> the numbers as the API wrote them
//	1 candidate missing either          -> no rating
//	2+ candidates                       -> multiple ratings
func Decide(resp *google.FindPlaceResponse) (rating, count string) {
	if resp == nil || resp.Status != google.StatusOK || resp.Candidates == nil {
		return model.RatingError, model.RatingError
	}

	switch len(resp.Candidates) {
	case 0:
		return model.RatingNotFound, model.RatingNotFound
	case 1:
		c := resp.Candidates[0]
		if c.Rating == nil || c.UserRatingsTotal == nil {
			return model.RatingNone, model.RatingNone
		}
		return c.Rating.String(), c.UserRatingsTotal.String()
	default:
		return model.RatingMultiple, model.RatingMultiple
	}
}
