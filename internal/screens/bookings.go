package screens

import (
	"context"
	"fmt"
	"sync"

	"driverapp/internal/api"
	"driverapp/internal/domain/models"
	"driverapp/internal/services"
	"driverapp/internal/utils"
)

// SelectedPassenger is the explicit capture of "whichever passenger was
// last tapped": a copy of the booking plus its manifest index and the
// owed total at the moment of selection. The confirmation popup binds
// to this value, never to render order.
type SelectedPassenger struct {
	Booking    models.PassengerBooking
	Index      int
	TotalPrice float64
}

// BookingListScreen shows a trip's passenger manifest with a
// per-passenger payment confirmation.
type BookingListScreen struct {
	API      *api.Client
	Notifier Notifier
	Nav      Navigator
	Docs     services.DocsService

	TripID string

	Loading    bool
	Trip       models.Trip
	Passengers []models.PassengerBooking

	Selected       *SelectedPassenger
	ConfirmVisible bool
}

// Load fetches trip pricing and the passenger manifest. The two reads
// have no data dependency, so they run concurrently; both must land
// before the list renders.
func (s *BookingListScreen) Load(ctx context.Context) error {
	s.Loading = true
	defer func() { s.Loading = false }()

	var (
		wg         sync.WaitGroup
		trip       models.Trip
		passengers []models.PassengerBooking
		tripErr    error
		bookErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		trip, tripErr = s.API.Trip(ctx, s.TripID)
	}()
	go func() {
		defer wg.Done()
		passengers, bookErr = s.API.Bookings(ctx, s.TripID)
	}()
	wg.Wait()

	if tripErr != nil {
		utils.LogError("", "bookings", "load_trip", tripErr)
		s.Notifier.Notify("Error", "Failed to load bookings")
		return tripErr
	}
	if bookErr != nil {
		utils.LogError("", "bookings", "load_manifest", bookErr)
		s.Notifier.Notify("Error", "Failed to load bookings")
		return bookErr
	}

	s.Trip = trip
	s.Passengers = passengers
	return nil
}

// TotalPrice derives a passenger's owed total from the trip's current
// price per seat. Always recomputed, never read from a stored field.
func (s *BookingListScreen) TotalPrice(p models.PassengerBooking) float64 {
	return p.TotalPrice(s.Trip.PricePerSeat)
}

// SelectPassenger captures the tapped passenger and opens the
// confirmation popup.
func (s *BookingListScreen) SelectPassenger(index int) {
	if index < 0 || index >= len(s.Passengers) {
		return
	}
	p := s.Passengers[index]
	s.Selected = &SelectedPassenger{
		Booking:    p,
		Index:      index,
		TotalPrice: s.TotalPrice(p),
	}
	s.ConfirmVisible = true
}

// ConfirmMessage spells out who is being confirmed and for how much.
func (s *BookingListScreen) ConfirmMessage() string {
	if s.Selected == nil {
		return ""
	}
	return fmt.Sprintf(
		"By clicking confirm, you acknowledge that you've received %s from %s.",
		utils.FormatRupees(s.Selected.TotalPrice), s.Selected.Booking.Name)
}

// ConfirmPayment flips the captured passenger's payment flag and then
// re-fetches the full manifest instead of patching locally; nothing
// guarantees the update response echoes full state.
func (s *BookingListScreen) ConfirmPayment(ctx context.Context) error {
	if s.Selected == nil {
		return nil
	}
	index := s.Selected.Index
	s.ConfirmVisible = false
	s.Selected = nil

	if err := s.API.ConfirmPayment(ctx, s.TripID, index); err != nil {
		utils.LogError("", "bookings", "confirm_payment", err)
		s.Notifier.Notify("Error", "Failed to confirm payment")
		return err
	}
	return s.Load(ctx)
}

// CancelConfirm discards the captured selection.
func (s *BookingListScreen) CancelConfirm() {
	s.ConfirmVisible = false
	s.Selected = nil
}

// ExportManifest renders the loaded manifest as a PDF.
func (s *BookingListScreen) ExportManifest() ([]byte, string, error) {
	data, filename, err := s.Docs.GenerateManifest(s.Trip, s.Passengers)
	if err != nil {
		s.Notifier.Notify("Error", "Failed to export manifest")
		return nil, "", err
	}
	return data, filename, nil
}

// ExportReceipt renders a payment receipt for one passenger.
func (s *BookingListScreen) ExportReceipt(index int) ([]byte, string, error) {
	if index < 0 || index >= len(s.Passengers) {
		return nil, "", fmt.Errorf("no passenger at index %d", index)
	}
	data, filename, err := s.Docs.GenerateReceipt(s.Trip, s.Passengers[index])
	if err != nil {
		s.Notifier.Notify("Error", "Failed to export receipt")
		return nil, "", err
	}
	return data, filename, nil
}

// Back pops to the trip list.
func (s *BookingListScreen) Back() { s.Nav.GoBack() }
