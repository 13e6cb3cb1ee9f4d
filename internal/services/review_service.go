package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"sevaBack/internal/bookingfsm"
	"sevaBack/internal/models"
)

const maxCommentLength = 1000

// ReviewStore is the persistence surface for reviews.
type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.Review) (models.Review, error)
	GetReviewsByProviderID(ctx context.Context, providerID string) ([]models.Review, error)
	GetReviewByBookingID(ctx context.Context, bookingID string) (models.Review, error)
}

type ReviewService struct {
	ReviewsRepo  ReviewStore
	BookingRepo  BookingStore
	ProviderRepo ProviderStore
}

// SubmitReview validates that a review may be attached to the booking,
// persists it, flips the booking's review flag, and recomputes the owning
// provider's rating before returning. Preconditions are checked in order and
// the first failure wins; the store's unique key on the booking reference is
// the backstop for concurrent submissions.
func (s *ReviewService) SubmitReview(ctx context.Context, req models.CreateReviewRequest) (models.Review, error) {
	booking, err := s.BookingRepo.GetBookingByID(ctx, req.BookingID)
	if err != nil {
		return models.Review{}, err
	}
	if booking.Status != bookingfsm.StatusCompleted {
		return models.Review{}, models.ErrBookingNotCompleted
	}
	if booking.HasReview {
		return models.Review{}, models.ErrAlreadyReviewed
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Review{}, models.ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" || utf8.RuneCountInString(comment) > maxCommentLength {
		return models.Review{}, models.ErrInvalidComment
	}

	review, err := s.ReviewsRepo.CreateReview(ctx, models.Review{
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		UserID:     booking.UserID,
		UserName:   booking.UserName,
		Rating:     req.Rating,
		Comment:    comment,
	})
	if err != nil {
		return models.Review{}, err
	}

	// The insert above is the authoritative uniqueness point; a lost
	// MarkReviewed race just means the flag is already set.
	if err := s.BookingRepo.MarkReviewed(ctx, booking.ID); err != nil && !errors.Is(err, models.ErrAlreadyReviewed) {
		return models.Review{}, err
	}

	if _, err := s.ProviderRepo.RecomputeRating(ctx, booking.ProviderID); err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) GetReviewsByProviderID(ctx context.Context, providerID string) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByProviderID(ctx, providerID)
}

// GetReviewByBookingID returns the review attached to a booking, letting the
// dashboard show what was written for a completed job.
func (s *ReviewService) GetReviewByBookingID(ctx context.Context, bookingID string) (models.Review, error) {
	return s.ReviewsRepo.GetReviewByBookingID(ctx, bookingID)
}
