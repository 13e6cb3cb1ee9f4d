package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"sevaBack/internal/models"
)

type ProviderRepository struct {
	DB *sql.DB
}

func (r *ProviderRepository) CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error) {
	p.ID = uuid.NewString()
	p.IsActive = true
	p.Rating = models.Rating{}
	p.CreatedAt = time.Now()

	query := `
		INSERT INTO providers
			(id, name, phone, services, price, address, longitude, latitude, rating_average, rating_count, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 1, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Phone, strings.Join(p.Services, ","), p.Price, p.Address,
		p.Location.Longitude, p.Location.Latitude, p.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Provider{}, models.ErrDuplicatePhone
		}
		return models.Provider{}, err
	}
	return p, nil
}

const providerColumns = `id, name, phone, services, price, address, longitude, latitude, rating_average, rating_count, is_active, created_at`

func scanProvider(row interface{ Scan(...any) error }) (models.Provider, error) {
	var p models.Provider
	var services string
	err := row.Scan(
		&p.ID, &p.Name, &p.Phone, &services, &p.Price, &p.Address,
		&p.Location.Longitude, &p.Location.Latitude,
		&p.Rating.Average, &p.Rating.Count, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return models.Provider{}, err
	}
	if services != "" {
		p.Services = strings.Split(services, ",")
	}
	return p, nil
}

func (r *ProviderRepository) GetProviderByID(ctx context.Context, id string) (models.Provider, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+providerColumns+` FROM providers WHERE id = ?`, id)
	p, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return models.Provider{}, models.ErrProviderNotFound
	}
	if err != nil {
		return models.Provider{}, err
	}
	return p, nil
}

func (r *ProviderRepository) GetProviderByPhone(ctx context.Context, phone string) (models.Provider, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+providerColumns+` FROM providers WHERE phone = ?`, phone)
	p, err := scanProvider(row)
	if err == sql.ErrNoRows {
		return models.Provider{}, models.ErrProviderNotFound
	}
	if err != nil {
		return models.Provider{}, err
	}
	return p, nil
}

// GetProvidersByIDs returns the matching providers keyed by id. Absent ids
// are simply missing from the map.
func (r *ProviderRepository) GetProvidersByIDs(ctx context.Context, ids []string) (map[string]models.Provider, error) {
	result := make(map[string]models.Provider, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	params := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		params = append(params, id)
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT `+providerColumns+` FROM providers WHERE id IN (`+placeholders+`)`, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		result[p.ID] = p
	}
	return result, rows.Err()
}

// ListActiveProviders returns every active provider, used to rebuild the geo
// index at startup.
func (r *ProviderRepository) ListActiveProviders(ctx context.Context) ([]models.Provider, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+providerColumns+` FROM providers WHERE is_active = 1`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var providers []models.Provider
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *ProviderRepository) DeactivateProvider(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE providers SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrProviderNotFound
	}
	return nil
}

// RecomputeRating rederives the provider's aggregate rating from the full
// review set. It never accumulates incrementally, so repeated or concurrent
// invocations converge on the same values.
func (r *ProviderRepository) RecomputeRating(ctx context.Context, providerID string) (models.Rating, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT rating FROM reviews WHERE provider_id = ?`, providerID)
	if err != nil {
		return models.Rating{}, err
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return models.Rating{}, err
		}
		ratings = append(ratings, v)
	}
	if err := rows.Err(); err != nil {
		return models.Rating{}, err
	}

	avg, count := ratingSummary(ratings)
	_, err = r.DB.ExecContext(ctx,
		`UPDATE providers SET rating_average = ?, rating_count = ? WHERE id = ?`,
		avg, count, providerID,
	)
	if err != nil {
		return models.Rating{}, err
	}
	return models.Rating{Average: avg, Count: count}, nil
}
