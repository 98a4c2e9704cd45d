package scrape

import (
	"context"
	"net/url"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/sells-group/restaurant-cli/internal/fetcher"
)

// fakeFetcher serves canned pages keyed by full URL (query included).
type fakeFetcher struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
}

func newFakeFetcher(pages map[string]string) *fakeFetcher {
	return &fakeFetcher{pages: pages}
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string, params url.Values) (string, error) {
	target, err := fetcher.WithParams(rawURL, params)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, target)
	body, ok := f.pages[target]
	if !ok {
		return "", eris.Errorf("fetch: unexpected status 404 from %s", target)
	}
	return body, nil
}

const cityPage = `<html><body>
<h2 class="ui header">Popular localities in and around Auckland</h2>
<div class="ui segment row">
  <a href="https://example.test/auckland/cbd">
    Auckland CBD
    (123 Restaurants)
  </a>
  <a href="/auckland/ponsonby">Ponsonby (45 Restaurants)</a>
  <a href="/auckland/all">See all localities</a>
  <a>Orphan (3 Restaurants)</a>
</div>
<h2 class="ui header">Elsewhere</h2>
<p>not a segment</p>
<div class="ui segment row"><a href="/ignored">Ignored (9 Restaurants)</a></div>
</body></html>`

func listingPage(pagination string, hrefs ...string) string {
	s := `<html><body>`
	if pagination != "" {
		s += `<div class="col-l-4 mtop pagination-number"><div>` + pagination + `</div></div>`
	}
	for _, h := range hrefs {
		s += `<div class="card search-snippet-card search-card">` +
			`<div class="search_left_featured clearfix"><a href="` + h + `">img</a></div></div>`
	}
	return s + `</body></html>`
}

const detailPage = `<html><head>
<meta property="place:location:latitude" content="-36.84406">
<meta property="place:location:longitude" content="174.76800">
</head><body>
<h1 class="res-name left mb0"><a href="#">  Cafe Hanoi
</a></h1>
<div class="res-info-cuisines clearfix"><a> Vietnamese </a><a>Asian</a></div>
<div id="phoneNoString"><span><span><span> 09 302 3478 </span></span><span><span>021 555 0101</span></span></span></div>
</body></html>`
