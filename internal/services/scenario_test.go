package services

import (
	"context"
	"testing"

	"sevaBack/internal/bookingfsm"
	"sevaBack/internal/geoindex"
	"sevaBack/internal/models"
)

// Full lifecycle: register, search, book, accept, complete, review, and a
// rejected second review.
func TestProviderBookingReviewFlow(t *testing.T) {
	ctx := context.Background()

	providers := newStubProviderStore()
	bookings := newStubBookingStore()
	reviews := newStubReviewStore()
	providers.rating = models.Rating{Average: 5, Count: 1}

	providerSvc := &ProviderService{ProviderRepo: providers, Locator: &stubLocator{}}
	bookingSvc := &BookingService{BookingRepo: bookings, ProviderRepo: providers}
	reviewSvc := &ReviewService{ReviewsRepo: reviews, BookingRepo: bookings, ProviderRepo: providers}

	p, err := providerSvc.RegisterProvider(ctx, models.RegisterProviderRequest{
		Name:      "Akshaya Home Repairs",
		Phone:     "91-9876543210",
		Services:  []string{"plumbing"},
		Price:     450,
		Address:   "123 Main Rd, Akshayanagar, Bangalore",
		Latitude:  12.89,
		Longitude: 77.62,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Search from ~1.5 km away with the real spherical distance.
	dist := geoindex.HaversineKm(12.88, 77.63, p.Location.Latitude, p.Location.Longitude)
	providerSvc.Locator = &stubLocator{hits: []geoindex.Hit{{ProviderID: p.ID, DistanceKm: dist}}}

	results, err := providerSvc.SearchNearby(ctx, 77.63, 12.88, 10, "plumbing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].DistanceKm >= 2 {
		t.Fatalf("distance = %v km, want < 2", results[0].DistanceKm)
	}

	b, err := bookingSvc.CreateBooking(ctx, validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if b.Status != bookingfsm.StatusRequested || b.Price != 450 {
		t.Fatalf("booking = %+v", b)
	}

	if _, err := bookingSvc.UpdateBookingStatus(ctx, b.ID, bookingfsm.StatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := bookingSvc.UpdateBookingStatus(ctx, b.ID, bookingfsm.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}

	rev, err := reviewSvc.SubmitReview(ctx, models.CreateReviewRequest{
		BookingID: b.ID,
		Rating:    5,
		Comment:   "Great service, very prompt.",
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if rev.Rating != 5 {
		t.Fatalf("rating = %d", rev.Rating)
	}

	got, err := bookingSvc.GetBookingByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if !got.HasReview {
		t.Fatal("booking has_review not set")
	}
	if len(providers.recomputed) != 1 {
		t.Fatalf("recompute calls = %v", providers.recomputed)
	}

	if _, err := reviewSvc.SubmitReview(ctx, models.CreateReviewRequest{BookingID: b.ID, Rating: 4, Comment: "again"}); err != models.ErrAlreadyReviewed {
		t.Fatalf("second review: got %v, want ErrAlreadyReviewed", err)
	}
}
