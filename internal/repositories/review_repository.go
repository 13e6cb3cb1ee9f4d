package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sevaBack/internal/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// CreateReview persists a review. The unique key on booking_id is the
// authoritative one-review-per-booking guard: when two submissions race past
// the application pre-check, the second insert fails here and surfaces as
// the same duplicate-review error.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	rev.ID = uuid.NewString()
	rev.CreatedAt = time.Now()

	query := `
		INSERT INTO reviews (id, booking_id, provider_id, user_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		rev.ID, rev.BookingID, rev.ProviderID, rev.UserID, rev.UserName,
		rev.Rating, rev.Comment, rev.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Review{}, models.ErrAlreadyReviewed
		}
		if isForeignKeyConstraintError(err) {
			return models.Review{}, models.ErrBookingNotFound
		}
		return models.Review{}, err
	}
	return rev, nil
}

func (r *ReviewRepository) GetReviewsByProviderID(ctx context.Context, providerID string) ([]models.Review, error) {
	query := `
		SELECT id, booking_id, provider_id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE provider_id = ?
		ORDER BY created_at DESC
		LIMIT 50
	`
	rows, err := r.DB.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(&rev.ID, &rev.BookingID, &rev.ProviderID, &rev.UserID,
			&rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// GetReviewByBookingID returns the review attached to a booking, if any.
func (r *ReviewRepository) GetReviewByBookingID(ctx context.Context, bookingID string) (models.Review, error) {
	query := `
		SELECT id, booking_id, provider_id, user_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE booking_id = ?
	`
	var rev models.Review
	err := r.DB.QueryRowContext(ctx, query, bookingID).Scan(
		&rev.ID, &rev.BookingID, &rev.ProviderID, &rev.UserID,
		&rev.UserName, &rev.Rating, &rev.Comment, &rev.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Review{}, models.ErrReviewNotFound
	}
	if err != nil {
		return models.Review{}, err
	}
	return rev, nil
}
