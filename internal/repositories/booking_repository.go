package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"sevaBack/internal/bookingfsm"
	"sevaBack/internal/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = uuid.NewString()
	b.Status = bookingfsm.StatusRequested
	b.HasReview = false
	b.CreatedAt = time.Now()

	var lon, lat interface{}
	if b.UserLocation != nil {
		lon, lat = b.UserLocation.Longitude, b.UserLocation.Latitude
	}

	query := `
		INSERT INTO bookings
			(id, user_id, user_name, user_phone, user_address, provider_id, service, price, status, user_longitude, user_latitude, has_review, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, ?)
	`
	_, err := r.DB.ExecContext(ctx, query,
		b.ID, b.UserID, b.UserName, b.UserPhone, b.UserAddress,
		b.ProviderID, b.Service, b.Price, b.Status, lon, lat, b.CreatedAt,
	)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			return models.Booking{}, models.ErrProviderNotFound
		}
		return models.Booking{}, err
	}
	return r.GetBookingByID(ctx, b.ID)
}

const bookingColumns = `
		b.id, b.user_id, b.user_name, b.user_phone, b.user_address,
		b.provider_id, b.service, b.price, b.status,
		b.user_longitude, b.user_latitude, b.has_review, b.created_at,
		p.id, p.name, p.phone, p.services, p.price, p.address`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var lon, lat sql.NullFloat64
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.UserPhone, &b.UserAddress,
		&b.ProviderID, &b.Service, &b.Price, &b.Status,
		&lon, &lat, &b.HasReview, &b.CreatedAt,
		&b.Provider.ID, &b.Provider.Name, &b.Provider.Phone,
		&b.Provider.Service, &b.Provider.Price, &b.Provider.Address,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if lon.Valid && lat.Valid {
		b.UserLocation = &models.Point{Longitude: lon.Float64, Latitude: lat.Float64}
	}
	return b, nil
}

// GetBookingByID returns the booking joined with its provider summary.
// Service and price on the booking itself stay the values snapshotted at
// creation; only the summary reflects the live provider row.
func (r *BookingRepository) GetBookingByID(ctx context.Context, id string) (models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN providers p ON b.provider_id = p.id
		WHERE b.id = ?
	`
	b, err := scanBooking(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Booking{}, models.ErrBookingNotFound
	}
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (r *BookingRepository) listBookings(ctx context.Context, where string, arg interface{}) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN providers p ON b.provider_id = p.id
		WHERE ` + where + `
		ORDER BY b.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *BookingRepository) GetBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.listBookings(ctx, `b.user_id = ?`, userID)
}

func (r *BookingRepository) GetBookingsByProviderID(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.listBookings(ctx, `b.provider_id = ?`, providerID)
}

// ApplyStatus commits a status transition conditional on the status the
// caller read: a concurrent transition on the same booking makes the write
// affect zero rows, surfaced as sql.ErrNoRows, instead of clobbering.
func (r *BookingRepository) ApplyStatus(ctx context.Context, id, from, to string) error {
	return bookingfsm.Apply(ctx, r.DB, id, from, to)
}

// MarkReviewed flips has_review, which only ever transitions false to true.
// The conditional write makes the flip first-wins under concurrency.
func (r *BookingRepository) MarkReviewed(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE bookings SET has_review = 1 WHERE id = ? AND has_review = 0`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrAlreadyReviewed
	}
	return nil
}
