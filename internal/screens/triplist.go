package screens

import (
	"context"

	"driverapp/internal/api"
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

// TripListScreen is the edit-trip screen: it lists the authenticated
// driver's trips as cards.
type TripListScreen struct {
	API      *api.Client
	Session  *session.Store
	Notifier Notifier
	Nav      Navigator

	Loading bool
	Cards   []*TripCard
}

// Load fetches the driver's trips. An unauthenticated session blocks
// the fetch; a backend failure leaves an empty list plus a
// notification.
func (s *TripListScreen) Load(ctx context.Context) error {
	driverID, err := s.Session.DriverID()
	if err != nil {
		s.Notifier.Notify("Error", "User not authenticated")
		return err
	}

	s.Loading = true
	defer func() { s.Loading = false }()

	trips, err := s.API.DriverTrips(ctx, driverID)
	if err != nil {
		utils.LogError("", "triplist", "load", err)
		s.Notifier.Notify("Error", "Failed to load trips")
		return err
	}

	s.Cards = make([]*TripCard, 0, len(trips))
	for _, trip := range trips {
		s.Cards = append(s.Cards, &TripCard{
			API:      s.API,
			Notifier: s.Notifier,
			Trip:     trip,
		})
	}
	return nil
}

// OpenBookings pushes the booking list for one trip.
func (s *TripListScreen) OpenBookings() { s.Nav.Navigate(RouteBookings) }

// OpenNavigation pushes the navigation view for one trip.
func (s *TripListScreen) OpenNavigation() { s.Nav.Navigate(RouteNavigation) }
