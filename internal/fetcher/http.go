package fetcher

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultUserAgent mimics a desktop browser; directory sites serve stripped
// markup to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_14_3) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/72.0.3626.121 Safari/537.36"

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent string
	Timeout   time.Duration
}

// HTTPFetcher implements Fetcher using net/http. It never retries: a failed
// request is returned to the caller as is.
type HTTPFetcher struct {
	client *http.Client
	opts   HTTPOptions
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts: opts,
	}
}

// Fetch downloads rawURL and returns its body as text.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string, params url.Values) (string, error) {
	target, err := WithParams(rawURL, params)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", eris.Wrap(err, "fetch: create request")
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: get %s", target)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		if bt := DetectBlock(resp, snippet); bt != BlockNone {
			return "", eris.Errorf("fetch: blocked (%s) with status %d from %s", bt, resp.StatusCode, target)
		}
		return "", eris.Errorf("fetch: unexpected status %d from %s", resp.StatusCode, target)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: read %s", target)
	}

	zap.L().Debug("fetched page",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}

// WithParams merges params into the query string of rawURL. Values in params
// replace existing values for the same key.
func WithParams(rawURL string, params url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", eris.Wrapf(err, "fetch: parse url %q", rawURL)
	}
	if len(params) == 0 {
		return u.String(), nil
	}
	q := u.Query()
	for k, vs := range params {
		q[k] = vs
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// decodeBody reads the response body, transcoding it to UTF-8 when the
// Content-Type names another charset.
func decodeBody(resp *http.Response) (string, error) {
	var r io.Reader = resp.Body

	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		if cs := params["charset"]; cs != "" {
			enc, err := htmlindex.Get(cs)
			if err != nil {
				return "", eris.Wrapf(err, "unsupported charset %q", cs)
			}
			r = enc.NewDecoder().Reader(resp.Body)
		}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", eris.Wrap(err, "read body")
	}
	return string(data), nil
}
