package model

import (
	"strconv"

	"github.com/rotisserie/eris"
)

// Region is a sub-area of the target city with its own listing pages.
type Region struct {
	Name            string `json:"name"`
	ListingURL      string `json:"listing_url"`
	AdvertisedCount int    `json:"advertised_count"`
}

// Rating sentinels stand in for a numeric rating when none can be determined.
const (
	RatingNone     = "no rating"
	RatingMultiple = "multiple ratings"
	RatingNotFound = "restaurant not found"
	RatingError    = "encountered error"
)

// IsRatingSentinel reports whether v is one of the rating sentinels.
func IsRatingSentinel(v string) bool {
	switch v {
	case RatingNone, RatingMultiple, RatingNotFound, RatingError:
		return true
	}
	return false
}

// Restaurant is one scraped and enriched listing.
type Restaurant struct {
	Name         string `json:"name"`
	Locality     string `json:"locality"`
	Latitude     string `json:"latitude"`
	Longitude    string `json:"longitude"`
	Cuisine      string `json:"cuisine"`
	PhoneNumber  string `json:"phone_number"`
	GoogleRating string `json:"google_rating"`
	RatingCount  string `json:"rating_count"`
}

// CSVHeader is the fixed column order of the output file.
var CSVHeader = []string{
	"name",
	"locality",
	"phone number",
	"cuisine",
	"latitude",
	"longitude",
	"google rating",
	"number of ratings",
}

// Row returns the record's values in CSVHeader order.
func (r Restaurant) Row() []string {
	return []string{
		r.Name,
		r.Locality,
		r.PhoneNumber,
		r.Cuisine,
		r.Latitude,
		r.Longitude,
		r.GoogleRating,
		r.RatingCount,
	}
}

// SetRating fills both rating fields with the same sentinel.
func (r *Restaurant) SetRating(sentinel string) {
	r.GoogleRating = sentinel
	r.RatingCount = sentinel
}

// Validate checks that the record is complete: name and locality are set and
// the rating fields are either both numeric or both the same sentinel.
func (r Restaurant) Validate() error {
	if r.Name == "" {
		return eris.New("restaurant: name is empty")
	}
	if r.Locality == "" {
		return eris.Errorf("restaurant %q: locality is empty", r.Name)
	}
	if r.GoogleRating == "" || r.RatingCount == "" {
		return eris.Errorf("restaurant %q: rating fields not populated", r.Name)
	}

	ratingSentinel := IsRatingSentinel(r.GoogleRating)
	countSentinel := IsRatingSentinel(r.RatingCount)
	switch {
	case ratingSentinel || countSentinel:
		if r.GoogleRating != r.RatingCount {
			return eris.Errorf("restaurant %q: mixed rating values %q / %q", r.Name, r.GoogleRating, r.RatingCount)
		}
	default:
		if _, err := strconv.ParseFloat(r.GoogleRating, 64); err != nil {
			return eris.Errorf("restaurant %q: rating %q is not numeric", r.Name, r.GoogleRating)
		}
		if _, err := strconv.Atoi(r.RatingCount); err != nil {
			return eris.Errorf("restaurant %q: rating count %q is not numeric", r.Name, r.RatingCount)
		}
	}
	return nil
}
