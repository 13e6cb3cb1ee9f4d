package services

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	"sevaBack/internal/bookingfsm"
	"sevaBack/internal/models"
)

type stubBookingStore struct {
	bookings map[string]models.Booking
	nextID   int
	// beforeApply runs once before the next conditional status write,
	// standing in for a concurrent transition committed by another caller.
	beforeApply func()
}

func newStubBookingStore() *stubBookingStore {
	return &stubBookingStore{bookings: make(map[string]models.Booking)}
}

func (s *stubBookingStore) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	s.nextID++
	b.ID = "b" + strconv.Itoa(s.nextID)
	b.Status = bookingfsm.StatusRequested
	b.HasReview = false
	b.CreatedAt = time.Now()
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubBookingStore) GetBookingByID(ctx context.Context, id string) (models.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, models.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubBookingStore) GetBookingsByUserID(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingStore) GetBookingsByProviderID(ctx context.Context, providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingStore) ApplyStatus(ctx context.Context, id, from, to string) error {
	if s.beforeApply != nil {
		hook := s.beforeApply
		s.beforeApply = nil
		hook()
	}
	if !bookingfsm.CanTransition(from, to) {
		return bookingfsm.ErrTransitionNotAllowed
	}
	b, ok := s.bookings[id]
	if !ok || b.Status != from {
		return sql.ErrNoRows
	}
	b.Status = to
	s.bookings[id] = b
	return nil
}

func (s *stubBookingStore) MarkReviewed(ctx context.Context, id string) error {
	b, ok := s.bookings[id]
	if !ok {
		return models.ErrBookingNotFound
	}
	if b.HasReview {
		return models.ErrAlreadyReviewed
	}
	b.HasReview = true
	s.bookings[id] = b
	return nil
}

func bookingFixture(t *testing.T) (*BookingService, *stubProviderStore, models.Provider) {
	t.Helper()
	providers := newStubProviderStore()
	providerSvc := &ProviderService{ProviderRepo: providers, Locator: &stubLocator{}}
	p, err := providerSvc.RegisterProvider(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register provider: %v", err)
	}
	return &BookingService{BookingRepo: newStubBookingStore(), ProviderRepo: providers}, providers, p
}

func validBookingRequest(providerID string) models.CreateBookingRequest {
	return models.CreateBookingRequest{
		UserID:      "91-9812345678",
		UserName:    "Asha",
		UserPhone:   "91-9812345678",
		UserAddress: "7 Cross, Jayanagar, Bangalore",
		ProviderID:  providerID,
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, p := bookingFixture(t)

	cases := []struct {
		name   string
		mutate func(*models.CreateBookingRequest)
		want   error
	}{
		{"blank user id", func(r *models.CreateBookingRequest) { r.UserID = " " }, models.ErrMissingFields},
		{"blank user name", func(r *models.CreateBookingRequest) { r.UserName = "" }, models.ErrMissingFields},
		{"blank phone", func(r *models.CreateBookingRequest) { r.UserPhone = "" }, models.ErrMissingFields},
		{"blank address", func(r *models.CreateBookingRequest) { r.UserAddress = "" }, models.ErrMissingFields},
		{"unknown provider", func(r *models.CreateBookingRequest) { r.ProviderID = "nope" }, models.ErrProviderNotFound},
		{"bad coordinates", func(r *models.CreateBookingRequest) {
			lat, lon := 99.0, 77.6
			r.Latitude, r.Longitude = &lat, &lon
		}, models.ErrInvalidCoordinates},
	}

	for _, c := range cases {
		req := validBookingRequest(p.ID)
		c.mutate(&req)
		if _, err := svc.CreateBooking(context.Background(), req); err != c.want {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}
}

func TestCreateBookingSnapshotsProvider(t *testing.T) {
	svc, providers, p := bookingFixture(t)

	b, err := svc.CreateBooking(context.Background(), validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if b.Status != bookingfsm.StatusRequested {
		t.Errorf("status = %s, want requested", b.Status)
	}
	if b.HasReview {
		t.Error("new booking must not have a review")
	}
	if b.Price != 450 || b.Service != "plumbing" {
		t.Errorf("snapshot = (%s, %v), want (plumbing, 450)", b.Service, b.Price)
	}

	// A later price change must not leak into the existing booking.
	changed := providers.providers[p.ID]
	changed.Price = 999
	providers.providers[p.ID] = changed

	got, err := svc.GetBookingByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("get booking: %v", err)
	}
	if got.Price != 450 {
		t.Errorf("booking price changed to %v after provider update", got.Price)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, _, p := bookingFixture(t)
	b, err := svc.CreateBooking(context.Background(), validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := svc.UpdateBookingStatus(context.Background(), b.ID, "approved"); err != models.ErrInvalidStatus {
		t.Fatalf("unknown status: got %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusCompleted); err != models.ErrInvalidTransition {
		t.Fatalf("requested -> completed: got %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.UpdateBookingStatus(context.Background(), "missing", bookingfsm.StatusAccepted); err != models.ErrBookingNotFound {
		t.Fatalf("missing booking: got %v, want ErrBookingNotFound", err)
	}

	got, err := svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusAccepted)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got.Status != bookingfsm.StatusAccepted {
		t.Errorf("status = %s, want accepted", got.Status)
	}

	got, err = svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Status != bookingfsm.StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}

	if _, err := svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusRequested); err != models.ErrInvalidTransition {
		t.Fatalf("completed -> requested: got %v, want ErrInvalidTransition", err)
	}
}

// A transition that loses the conditional write to a concurrent caller is
// re-judged against the committed status, not the stale one it read.
func TestUpdateBookingStatusLostRaceRejudged(t *testing.T) {
	providers := newStubProviderStore()
	providerSvc := &ProviderService{ProviderRepo: providers, Locator: &stubLocator{}}
	p, err := providerSvc.RegisterProvider(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register provider: %v", err)
	}

	bookings := newStubBookingStore()
	svc := &BookingService{BookingRepo: bookings, ProviderRepo: providers}
	b, err := svc.CreateBooking(context.Background(), validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// A concurrent accept commits between this caller's read and write. The
	// retried accept is judged against the committed accepted status, where
	// accepted -> accepted is not permitted.
	bookings.beforeApply = func() {
		changed := bookings.bookings[b.ID]
		changed.Status = bookingfsm.StatusAccepted
		bookings.bookings[b.ID] = changed
	}
	if _, err := svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusAccepted); err != models.ErrInvalidTransition {
		t.Fatalf("lost race to same target: got %v, want ErrInvalidTransition", err)
	}
	if got := bookings.bookings[b.ID].Status; got != bookingfsm.StatusAccepted {
		t.Fatalf("status = %s, want accepted untouched by the loser", got)
	}
}

// A lost race whose target is still reachable from the committed status
// succeeds on the retry.
func TestUpdateBookingStatusLostRaceRetriesValidTarget(t *testing.T) {
	providers := newStubProviderStore()
	providerSvc := &ProviderService{ProviderRepo: providers, Locator: &stubLocator{}}
	p, err := providerSvc.RegisterProvider(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register provider: %v", err)
	}

	bookings := newStubBookingStore()
	svc := &BookingService{BookingRepo: bookings, ProviderRepo: providers}
	b, err := svc.CreateBooking(context.Background(), validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	// A concurrent accept commits first; cancelled is reachable from both
	// requested and accepted, so the re-read write goes through.
	bookings.beforeApply = func() {
		changed := bookings.bookings[b.ID]
		changed.Status = bookingfsm.StatusAccepted
		bookings.bookings[b.ID] = changed
	}
	got, err := svc.UpdateBookingStatus(context.Background(), b.ID, bookingfsm.StatusCancelled)
	if err != nil {
		t.Fatalf("lost race to still-valid target: %v", err)
	}
	if got.Status != bookingfsm.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", got.Status)
	}
}

func TestCreateBookingKeepsOptionalLocation(t *testing.T) {
	svc, _, p := bookingFixture(t)

	req := validBookingRequest(p.ID)
	lat, lon := 12.88, 77.63
	req.Latitude, req.Longitude = &lat, &lon

	b, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if b.UserLocation == nil || b.UserLocation.Latitude != 12.88 || b.UserLocation.Longitude != 77.63 {
		t.Errorf("user location = %+v", b.UserLocation)
	}

	plain, err := svc.CreateBooking(context.Background(), validBookingRequest(p.ID))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if plain.UserLocation != nil {
		t.Errorf("expected nil location, got %+v", plain.UserLocation)
	}
}
