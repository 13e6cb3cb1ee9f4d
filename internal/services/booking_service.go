package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"sevaBack/internal/bookingfsm"
	"sevaBack/internal/models"
)

// BookingStore is the persistence surface for bookings. ApplyStatus has
// compare-and-swap semantics: the write commits only if the booking is still
// in the from status, and reports sql.ErrNoRows when it no longer is.
type BookingStore interface {
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	GetBookingByID(ctx context.Context, id string) (models.Booking, error)
	GetBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error)
	GetBookingsByProviderID(ctx context.Context, providerID string) ([]models.Booking, error)
	ApplyStatus(ctx context.Context, id, from, to string) error
	MarkReviewed(ctx context.Context, id string) error
}

type BookingService struct {
	BookingRepo  BookingStore
	ProviderRepo ProviderStore
}

// CreateBooking snapshots the provider's current service label and price
// into the new booking, so later provider changes never retroactively alter
// it. The booking starts in the requested status.
func (s *BookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (models.Booking, error) {
	if strings.TrimSpace(req.UserID) == "" ||
		strings.TrimSpace(req.UserName) == "" ||
		strings.TrimSpace(req.UserPhone) == "" ||
		strings.TrimSpace(req.UserAddress) == "" {
		return models.Booking{}, models.ErrMissingFields
	}

	var location *models.Point
	if req.Latitude != nil && req.Longitude != nil {
		p := models.Point{Longitude: *req.Longitude, Latitude: *req.Latitude}
		if !p.Valid() {
			return models.Booking{}, models.ErrInvalidCoordinates
		}
		location = &p
	}

	provider, err := s.ProviderRepo.GetProviderByID(ctx, req.ProviderID)
	if err != nil {
		return models.Booking{}, err
	}

	return s.BookingRepo.CreateBooking(ctx, models.Booking{
		UserID:       strings.TrimSpace(req.UserID),
		UserName:     strings.TrimSpace(req.UserName),
		UserPhone:    strings.TrimSpace(req.UserPhone),
		UserAddress:  strings.TrimSpace(req.UserAddress),
		ProviderID:   provider.ID,
		Service:      strings.Join(provider.Services, ", "),
		Price:        provider.Price,
		UserLocation: location,
	})
}

func (s *BookingService) GetBookingByID(ctx context.Context, id string) (models.Booking, error) {
	return s.BookingRepo.GetBookingByID(ctx, id)
}

func (s *BookingService) GetBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByUserID(ctx, userID)
}

func (s *BookingService) GetBookingsByProviderID(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.BookingRepo.GetBookingsByProviderID(ctx, providerID)
}

// UpdateBookingStatus advances the booking through the state machine. The
// target must be one of the four statuses; permitted transitions are decided
// by the table in bookingfsm and invalid attempts are reported, never
// clamped. The write is conditional on the status that was read, so two
// concurrent transitions on the same booking cannot both commit from the
// same state; the loser re-reads and is judged against the committed status.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id, target string) (models.Booking, error) {
	if !bookingfsm.IsValidStatus(target) {
		return models.Booking{}, models.ErrInvalidStatus
	}
	for attempt := 0; attempt < 2; attempt++ {
		current, err := s.BookingRepo.GetBookingByID(ctx, id)
		if err != nil {
			return models.Booking{}, err
		}

		err = s.BookingRepo.ApplyStatus(ctx, id, current.Status, target)
		if err == nil {
			return s.BookingRepo.GetBookingByID(ctx, id)
		}
		if errors.Is(err, bookingfsm.ErrTransitionNotAllowed) {
			return models.Booking{}, models.ErrInvalidTransition
		}
		if errors.Is(err, sql.ErrNoRows) {
			// lost a race: the status changed between read and write
			continue
		}
		return models.Booking{}, err
	}
	return models.Booking{}, models.ErrInvalidTransition
}
