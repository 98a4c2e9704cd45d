package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRestaurant() Restaurant {
	return Restaurant{
		Name:         "Cafe Hanoi",
		Locality:     "Britomart",
		Latitude:     "-36.8440",
		Longitude:    "174.7680",
		Cuisine:      "Vietnamese, Asian",
		PhoneNumber:  "09 302 3478",
		GoogleRating: "4.5",
		RatingCount:  "812",
	}
}

func TestRestaurantRow_ColumnOrder(t *testing.T) {
	t.Parallel()

	r := validRestaurant()
	row := r.Row()

	assert.Len(t, row, len(CSVHeader))
	assert.Equal(t, []string{
		"Cafe Hanoi", "Britomart", "09 302 3478", "Vietnamese, Asian",
		"-36.8440", "174.7680", "4.5", "812",
	}, row)
}

func TestIsRatingSentinel(t *testing.T) {
	t.Parallel()

	for _, s := range []string{RatingNone, RatingMultiple, RatingNotFound, RatingError} {
		assert.True(t, IsRatingSentinel(s), s)
	}
	assert.False(t, IsRatingSentinel("4.5"))
	assert.False(t, IsRatingSentinel(""))
}

func TestRestaurantValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(r *Restaurant)
		wantErr string
	}{
		{"numeric", func(_ *Restaurant) {}, ""},
		{"sentinel", func(r *Restaurant) { r.SetRating(RatingMultiple) }, ""},
		{"empty name", func(r *Restaurant) { r.Name = "" }, "name is empty"},
		{"empty locality", func(r *Restaurant) { r.Locality = "" }, "locality is empty"},
		{"blank rating", func(r *Restaurant) { r.GoogleRating = "" }, "not populated"},
		{"mixed", func(r *Restaurant) { r.RatingCount = RatingNone }, "mixed rating"},
		{"different sentinels", func(r *Restaurant) {
			r.GoogleRating = RatingNone
			r.RatingCount = RatingError
		}, "mixed rating"},
		{"non numeric rating", func(r *Restaurant) { r.GoogleRating = "great" }, "not numeric"},
		{"non numeric count", func(r *Restaurant) { r.RatingCount = "lots" }, "not numeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := validRestaurant()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
