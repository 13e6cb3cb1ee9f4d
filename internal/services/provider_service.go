package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"sevaBack/internal/geoindex"
	"sevaBack/internal/models"
)

const (
	// searchResultCap bounds the filtered result set, matching the listing cap.
	searchResultCap = 50
	// geoFetchCount over-fetches from the index because the active and
	// category filters run after the radius query.
	geoFetchCount = 500
	// DefaultSearchRadiusKm applies when the caller omits a radius.
	DefaultSearchRadiusKm = 25
)

// ProviderStore is the persistence surface the directory needs.
type ProviderStore interface {
	CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error)
	GetProviderByID(ctx context.Context, id string) (models.Provider, error)
	GetProviderByPhone(ctx context.Context, phone string) (models.Provider, error)
	GetProvidersByIDs(ctx context.Context, ids []string) (map[string]models.Provider, error)
	ListActiveProviders(ctx context.Context) ([]models.Provider, error)
	DeactivateProvider(ctx context.Context, id string) error
	RecomputeRating(ctx context.Context, providerID string) (models.Rating, error)
}

// GeoLocator is the spatial index over active provider locations.
type GeoLocator interface {
	Add(ctx context.Context, providerID string, lon, lat float64) error
	Remove(ctx context.Context, providerID string) error
	SearchWithin(ctx context.Context, lon, lat, radiusKm float64, count int) ([]geoindex.Hit, error)
}

type ProviderService struct {
	ProviderRepo ProviderStore
	Locator      GeoLocator
}

func (s *ProviderService) RegisterProvider(ctx context.Context, req models.RegisterProviderRequest) (models.Provider, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" {
		return models.Provider{}, models.ErrMissingFields
	}
	if len(req.Services) == 0 {
		return models.Provider{}, models.ErrEmptyCategories
	}
	for _, c := range req.Services {
		if !models.IsKnownCategory(c) {
			return models.Provider{}, models.ErrInvalidCategory
		}
	}
	if req.Price <= 0 {
		return models.Provider{}, models.ErrInvalidPrice
	}
	point := models.Point{Longitude: req.Longitude, Latitude: req.Latitude}
	if !point.Valid() {
		return models.Provider{}, models.ErrInvalidCoordinates
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		address = "Location captured via GPS"
	}

	provider, err := s.ProviderRepo.CreateProvider(ctx, models.Provider{
		Name:     name,
		Phone:    phone,
		Services: req.Services,
		Price:    req.Price,
		Address:  address,
		Location: point,
	})
	if err != nil {
		return models.Provider{}, err
	}

	// Best-effort: the startup rebuild mirrors the store, so a failed add
	// only delays searchability.
	if err := s.Locator.Add(ctx, provider.ID, point.Longitude, point.Latitude); err != nil {
		log.Printf("geo index add failed for provider %s: %v", provider.ID, err)
	}
	return provider, nil
}

func (s *ProviderService) GetProviderByID(ctx context.Context, id string) (models.Provider, error) {
	return s.ProviderRepo.GetProviderByID(ctx, id)
}

func (s *ProviderService) GetProviderByPhone(ctx context.Context, phone string) (models.Provider, error) {
	return s.ProviderRepo.GetProviderByPhone(ctx, phone)
}

func (s *ProviderService) DeactivateProvider(ctx context.Context, id string) error {
	if err := s.ProviderRepo.DeactivateProvider(ctx, id); err != nil {
		return err
	}
	if err := s.Locator.Remove(ctx, id); err != nil {
		log.Printf("geo index remove failed for provider %s: %v", id, err)
	}
	return nil
}

func (s *ProviderService) RecomputeRating(ctx context.Context, providerID string) (models.Rating, error) {
	return s.ProviderRepo.RecomputeRating(ctx, providerID)
}

func categoryMatches(p models.Provider, category string) bool {
	if category == "" || category == "all" {
		return true
	}
	for _, c := range p.Services {
		if c == category {
			return true
		}
	}
	return false
}

// SearchNearby returns active providers within radiusKm of the query point,
// optionally filtered by category, ordered by distance ascending with a
// stable insertion-order tie-break, capped at 50. Distances are rounded to
// 0.1 km on the results.
func (s *ProviderService) SearchNearby(ctx context.Context, lon, lat, radiusKm float64, category string) ([]models.NearbyProvider, error) {
	point := models.Point{Longitude: lon, Latitude: lat}
	if !point.Valid() {
		return nil, models.ErrInvalidCoordinates
	}
	if category != "" && category != "all" && !models.IsKnownCategory(category) {
		return nil, models.ErrInvalidCategory
	}
	if radiusKm <= 0 {
		return []models.NearbyProvider{}, nil
	}

	hits, err := s.Locator.SearchWithin(ctx, lon, lat, radiusKm, geoFetchCount)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []models.NearbyProvider{}, nil
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ProviderID)
	}
	providers, err := s.ProviderRepo.GetProvidersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		provider models.Provider
		rawKm    float64
	}
	candidates := make([]candidate, 0, len(hits))
	for _, h := range hits {
		p, ok := providers[h.ProviderID]
		if !ok || !p.IsActive {
			continue
		}
		if !categoryMatches(p, category) {
			continue
		}
		candidates = append(candidates, candidate{provider: p, rawKm: h.DistanceKm})
	}

	// Redis returns ascending distances but leaves equidistant order
	// unspecified; tie-break on registration order for a deterministic
	// listing across repeated identical queries.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].rawKm != candidates[j].rawKm {
			return candidates[i].rawKm < candidates[j].rawKm
		}
		if !candidates[i].provider.CreatedAt.Equal(candidates[j].provider.CreatedAt) {
			return candidates[i].provider.CreatedAt.Before(candidates[j].provider.CreatedAt)
		}
		return candidates[i].provider.ID < candidates[j].provider.ID
	})

	if len(candidates) > searchResultCap {
		candidates = candidates[:searchResultCap]
	}

	results := make([]models.NearbyProvider, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, models.NearbyProvider{
			Provider:   c.provider,
			DistanceKm: geoindex.RoundKm(c.rawKm),
		})
	}
	return results, nil
}

// RebuildGeoIndex repopulates the spatial index from the providers table,
// called at startup so the index mirrors the store.
func (s *ProviderService) RebuildGeoIndex(ctx context.Context) (int, error) {
	providers, err := s.ProviderRepo.ListActiveProviders(ctx)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, p := range providers {
		if err := s.Locator.Add(ctx, p.ID, p.Location.Longitude, p.Location.Latitude); err != nil {
			log.Printf("geo index rebuild: skip provider %s: %v", p.ID, err)
			continue
		}
		added++
	}
	return added, nil
}
