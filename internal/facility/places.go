package facility

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/directory-cli/internal/model"
	"github.com/sells-group/directory-cli/pkg/places"
)

// searchTerm is the query prefix for facility lookups.
const searchTerm = "senior living facilities"

// PlacesProvider adapts the Places text search API to the Provider
// interface. Outbound calls are rate limited and retried with backoff;
// a city whose lookup keeps failing degrades to an empty list upstream.
type PlacesProvider struct {
	client  places.Client
	limiter *rate.Limiter
	retries int
	backoff time.Duration
}

// NewPlacesProvider creates a provider throttled to qps queries per second
// with the given retry count.
func NewPlacesProvider(client places.Client, qps float64, retries int) *PlacesProvider {
	if qps <= 0 {
		qps = 1
	}
	if retries < 0 {
		retries = 0
	}
	return &PlacesProvider{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(qps), 1),
		retries: retries,
		backoff: time.Second,
	}
}

// Name implements Provider.
func (p *PlacesProvider) Name() string { return "places" }

// FacilitiesFor implements Provider.
func (p *PlacesProvider) FacilitiesFor(ctx context.Context, city model.City) ([]model.Facility, error) {
	query := fmt.Sprintf("%s in %s, %s", searchTerm, city.Name, city.State)

	resp, err := p.search(ctx, query)
	if err != nil {
		return nil, err
	}

	facilities := make([]model.Facility, 0, len(resp.Places))
	for i, place := range resp.Places {
		facilities = append(facilities, p.toFacility(city, place, i+1))
	}
	return facilities, nil
}

func (p *PlacesProvider) search(ctx context.Context, query string) (*places.TextSearchResponse, error) {
	var lastErr error
	for attempt := 0; attempt <= p.retries; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		resp, err := p.client.TextSearch(ctx, query)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		zap.L().Warn("places search failed",
			zap.String("query", query),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.backoff << attempt):
		}
	}
	return nil, lastErr
}

func (p *PlacesProvider) toFacility(city model.City, place places.Place, seq int) model.Facility {
	// The API exposes a single rating; mirror it across the dimensions and
	// clamp into the range downstream consumers expect.
	r := clampRating(place.Rating)

	return model.Facility{
		ID:      fmt.Sprintf("fac_%s_%03d", city.Slug, seq),
		Name:    place.DisplayName.Text,
		Address: place.FormattedAddress,
		City:    city.Name,
		State:   city.State,
		Phone:   place.NationalPhone,
		Website: place.WebsiteURI,
		Coordinates: model.Coordinates{
			Lat: place.Location.Latitude,
			Lng: place.Location.Longitude,
		},
		FacilityType: []string{"Assisted Living"},
		Features:     []string{},
		Ratings: model.Ratings{
			Overall:     r,
			CareQuality: r,
			Facilities:  r,
			Staff:       r,
			Value:       r,
			ReviewCount: place.UserRatingCount,
		},
		CitySlug: city.Slug,
	}
}

func clampRating(r float64) float64 {
	if r < 3.5 {
		return 3.5
	}
	if r > 5.0 {
		return 5.0
	}
	return r
}
