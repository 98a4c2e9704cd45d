// Package pipeline runs the scrape: one aggregation task per region on a
// bounded worker pool, feeding a single CSV writer.
package pipeline

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/restaurant-cli/internal/model"
)

// RegionScraper extracts regions, listing links and restaurant details.
type RegionScraper interface {
	Regions(ctx context.Context, cityURL string) ([]model.Region, error)
	Listing(ctx context.Context, region model.Region) ([]string, error)
	Detail(ctx context.Context, link, region string) (*model.Restaurant, error)
}

// RatingEnricher fills in a restaurant's rating fields.
type RatingEnricher interface {
	Enrich(ctx context.Context, r *model.Restaurant) error
}

// Pipeline orchestrates region discovery, per-region aggregation and output.
type Pipeline struct {
	scraper  RegionScraper
	enricher RatingEnricher
	workers  int
	regions  []string
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithWorkers sets the worker pool size. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithRegions restricts the run to the named regions.
func WithRegions(names ...string) Option {
	return func(p *Pipeline) {
		p.regions = names
	}
}

// New creates a Pipeline. The worker pool defaults to the number of CPUs.
func New(s RegionScraper, e RatingEnricher, opts ...Option) *Pipeline {
	p := &Pipeline{
		scraper:  s,
		enricher: e,
		workers:  runtime.NumCPU(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Summary reports the outcome of a run.
type Summary struct {
	RunID     string
	Regions   int
	Succeeded int
	Failed    int
	Rows      int
	Elapsed   time.Duration
}

// RunRegion scrapes every restaurant in region, in listing order. The first
// detail or enrichment failure aborts the region.
func (p *Pipeline) RunRegion(ctx context.Context, region model.Region) ([]model.Restaurant, error) {
	log := zap.L().With(zap.String("region", region.Name))

	links, err := p.scraper.Listing(ctx, region)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: listing for %s", region.Name)
	}

	records := make([]model.Restaurant, 0, len(links))
	for i, link := range links {
		r, err := p.scraper.Detail(ctx, link, region.Name)
		if err != nil {
			return nil, eris.Wrapf(err, "pipeline: detail for %s", region.Name)
		}
		if err := p.enricher.Enrich(ctx, r); err != nil {
			return nil, eris.Wrapf(err, "pipeline: enrich for %s", region.Name)
		}
		if err := r.Validate(); err != nil {
			return nil, eris.Wrapf(err, "pipeline: %s", link)
		}
		records = append(records, *r)

		log.Debug("restaurant scraped",
			zap.String("name", r.Name),
			zap.String("rating", r.GoogleRating),
			zap.Int("n", i+1),
			zap.Int("of", len(links)),
		)
	}
	return records, nil
}

// Run scrapes every region of the city page at cityURL and writes the rows
// to out. Region failures do not stop other regions; they are returned
// joined once the output is complete.
func (p *Pipeline) Run(ctx context.Context, cityURL string, out io.Writer) (*Summary, error) {
	runID := uuid.NewString()
	log := zap.L().With(zap.String("run_id", runID))
	start := time.Now()

	regions, err := p.scraper.Regions(ctx, cityURL)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: regions")
	}
	regions = p.selectRegions(regions)

	log.Info("dispatching regions",
		zap.Int("regions", len(regions)),
		zap.Int("workers", p.workers),
	)

	w := StartCSVWriter(out)

	var (
		mu         sync.Mutex
		regionErrs []error
	)
	var succeeded, failed atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(p.workers)

	for _, region := range regions {
		g.Go(func() error {
			rLog := log.With(zap.String("region", region.Name))
			rStart := time.Now()

			records, err := p.RunRegion(ctx, region)
			if err != nil {
				rLog.Error("region failed", zap.Error(err), zap.Duration("elapsed", time.Since(rStart)))
				failed.Add(1)
				mu.Lock()
				regionErrs = append(regionErrs, err)
				mu.Unlock()
				return nil // don't abort other regions on individual failure
			}

			w.Send(records)
			succeeded.Add(1)
			rLog.Info("region complete",
				zap.Int("rows", len(records)),
				zap.Int("advertised", region.AdvertisedCount),
				zap.Duration("elapsed", time.Since(rStart)),
			)
			return nil
		})
	}
	_ = g.Wait()

	rows, writeErr := w.Close()

	summary := &Summary{
		RunID:     runID,
		Regions:   len(regions),
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
		Rows:      rows,
		Elapsed:   time.Since(start),
	}

	log.Info("run complete",
		zap.Int("regions", summary.Regions),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Int("rows", summary.Rows),
		zap.Duration("elapsed", summary.Elapsed),
	)

	if writeErr != nil {
		return summary, eris.Wrap(writeErr, "pipeline: write output")
	}
	if len(regionErrs) > 0 {
		return summary, errors.Join(regionErrs...)
	}
	return summary, nil
}

// RunToFile runs the pipeline writing to a newly created file at path.
func (p *Pipeline) RunToFile(ctx context.Context, cityURL, path string) (*Summary, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: create %s", path)
	}

	summary, runErr := p.Run(ctx, cityURL, f)
	if err := f.Close(); err != nil && runErr == nil {
		runErr = eris.Wrapf(err, "pipeline: close %s", path)
	}
	return summary, runErr
}

// selectRegions applies the region filter, keeping city-page order.
func (p *Pipeline) selectRegions(regions []model.Region) []model.Region {
	if len(p.regions) == 0 {
		return regions
	}
	var out []model.Region
	for _, r := range regions {
		if slices.Contains(p.regions, r.Name) {
			out = append(out, r)
		}
	}
	for _, name := range p.regions {
		if !slices.ContainsFunc(out, func(r model.Region) bool { return r.Name == name }) {
			zap.L().Warn("requested region not found on city page", zap.String("region", name))
		}
	}
	return out
}
