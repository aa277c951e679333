package facility

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/directory-cli/internal/model"
)

// Options bounds the synthesis run.
type Options struct {
	Concurrency int
	Now         func() time.Time
}

// DefaultOptions returns the standard synthesis bounds.
func DefaultOptions() Options {
	return Options{Concurrency: 8, Now: time.Now}
}

// Generate fetches facilities for every city via the provider, fanning out
// across a bounded worker pool. A per-city provider failure is isolated:
// that city gets an empty list and a warning, and the run still succeeds.
// Each city's facilities come out sorted descending by overall rating, and
// cities appear in slug order so the output is stable.
func Generate(ctx context.Context, provider Provider, cities map[string]model.City, opts Options) (model.FacilityData, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	slugs := make([]string, 0, len(cities))
	for slug := range cities {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	zap.L().Info("generating facilities",
		zap.String("provider", provider.Name()),
		zap.Int("cities", len(slugs)),
		zap.Int("concurrency", opts.Concurrency),
	)

	perCity := make([][]model.Facility, len(slugs))
	var degraded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, slug := range slugs {
		i, slug := i, slug
		city := cities[slug]
		g.Go(func() error {
			facilities, err := provider.FacilitiesFor(gctx, city)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err() // stop launching work on cancellation
				}
				degraded.Add(1)
				zap.L().Warn("facility fetch failed, city degraded to empty list",
					zap.String("city", slug),
					zap.Error(err),
				)
				facilities = nil
			}
			SortByRating(facilities)
			perCity[i] = facilities
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.FacilityData{}, err
	}

	var all []model.Facility
	covered := 0
	for _, facilities := range perCity {
		if len(facilities) > 0 {
			covered++
		}
		all = append(all, facilities...)
	}
	if all == nil {
		all = []model.Facility{}
	}

	if n := degraded.Load(); n > 0 {
		zap.L().Warn("some cities degraded", zap.Int64("count", n))
	}

	return model.FacilityData{
		Facilities: all,
		Meta: model.FacilityMeta{
			TotalCount:    len(all),
			CitiesCovered: covered,
			LastUpdated:   opts.Now().Format(time.RFC3339),
		},
	}, nil
}

// SortByRating orders facilities descending by overall rating, breaking
// ties on ID so repeated runs order identically.
func SortByRating(facilities []model.Facility) {
	sort.SliceStable(facilities, func(i, j int) bool {
		if facilities[i].Ratings.Overall != facilities[j].Ratings.Overall {
			return facilities[i].Ratings.Overall > facilities[j].Ratings.Overall
		}
		return facilities[i].ID < facilities[j].ID
	})
}
