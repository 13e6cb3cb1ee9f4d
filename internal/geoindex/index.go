package geoindex

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const indexKey = "providers:geo"

// Hit is a provider returned from a radius query.
type Hit struct {
	ProviderID string
	DistanceKm float64
}

// ProviderLocator maintains a Redis GEO set over active provider locations.
// The set mirrors the providers table and is rebuilt from it at startup, so
// a lost update here degrades search until the next rebuild, nothing more.
type ProviderLocator struct {
	rdb *redis.Client
}

// NewProviderLocator creates a new locator.
func NewProviderLocator(rdb *redis.Client) *ProviderLocator {
	return &ProviderLocator{rdb: rdb}
}

func memberName(providerID string) string {
	return "provider:" + providerID
}

func parseProviderMember(member string) (string, error) {
	id, ok := strings.CutPrefix(member, "provider:")
	if !ok || id == "" {
		return "", fmt.Errorf("invalid member %q", member)
	}
	return id, nil
}

// Add inserts or moves a provider in the index.
func (l *ProviderLocator) Add(ctx context.Context, providerID string, lon, lat float64) error {
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return fmt.Errorf("geoindex: invalid coords lon=%.8f lat=%.8f", lon, lat)
	}
	return l.rdb.GeoAdd(ctx, indexKey, &redis.GeoLocation{
		Name:      memberName(providerID),
		Longitude: lon,
		Latitude:  lat,
	}).Err()
}

// Remove deletes a provider from the index, e.g. on deactivation.
func (l *ProviderLocator) Remove(ctx context.Context, providerID string) error {
	return l.rdb.ZRem(ctx, indexKey, memberName(providerID)).Err()
}

// SearchWithin returns providers within radiusKm of the query point, sorted
// by distance ascending. Distances are raw kilometers; rounding for display
// is the caller's concern. Redis leaves the order of equidistant members
// unspecified, so callers needing a deterministic tie-break re-sort.
func (l *ProviderLocator) SearchWithin(ctx context.Context, lon, lat, radiusKm float64, count int) ([]Hit, error) {
	res, err := l.rdb.GeoSearchLocation(ctx, indexKey, &redis.GeoSearchLocationQuery{
		GeoSearchQuery: redis.GeoSearchQuery{
			Longitude:  lon,
			Latitude:   lat,
			Radius:     radiusKm,
			RadiusUnit: "km",
			Sort:       "ASC",
			Count:      count,
		},
		WithDist: true,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	hits := make([]Hit, 0, len(res))
	for _, item := range res {
		id, err := parseProviderMember(item.Name)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{ProviderID: id, DistanceKm: item.Dist})
	}
	return hits, nil
}
