// Package google provides a client for the Google Places "find place from
// text" API.
package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// StatusOK is the API status for a successful lookup.
const StatusOK = "OK"

// Client performs Google Places API operations.
type Client interface {
	FindPlace(ctx context.Context, req FindPlaceRequest) (*FindPlaceResponse, error)
}

// FindPlaceRequest is a text query biased towards a location.
type FindPlaceRequest struct {
	Input        string
	LocationBias string // "lat,lon"
}

// FindPlaceResponse is the response from Find Place.
// Candidates is nil when the field is absent from the response.
type FindPlaceResponse struct {
	Status       string      `json:"status"`
	Candidates   []Candidate `json:"candidates"`
	ErrorMessage string      `json:"error_message,omitempty"`
}

// Candidate is one place matching the query. Numbers keep the literal the API
// sent; fields the API omits stay nil.
type Candidate struct {
	Rating           *json.Number `json:"rating,omitempty"`
	UserRatingsTotal *json.Number `json:"user_ratings_total,omitempty"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Google Places API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) FindPlace(ctx context.Context, fp FindPlaceRequest) (*FindPlaceResponse, error) {
	params := url.Values{
		"key":          {c.apiKey},
		"inputtype":    {"textquery"},
		"fields":       {"rating,user_ratings_total"},
		"input":        {fp.Input},
		"locationbias": {fp.LocationBias},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/findplacefromtext/json?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "google: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "google: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "google: read response")
	}

	var result FindPlaceResponse
	if resp.StatusCode != http.StatusOK {
		// An error status with an API body still carries a status to report.
		if err := json.Unmarshal(respBody, &result); err == nil && result.Status != "" {
			return &result, nil
		}
		return nil, eris.Errorf("google: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, eris.Wrap(err, "google: unmarshal response")
	}

	return &result, nil
}
