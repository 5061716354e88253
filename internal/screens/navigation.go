package screens

import (
	"context"

	"driverapp/internal/domain/models"
	"driverapp/internal/geo"
	"driverapp/internal/utils"
)

// NavigationScreen renders a driving route between two coordinates.
// The origin and destination markers always render; a provider failure
// only empties the connecting path.
type NavigationScreen struct {
	Directions *geo.Directions
	Notifier   Notifier
	Nav        Navigator

	Start       models.Location
	Destination models.Location

	Loading bool
	Path    []geo.LatLng
	Route   geo.Route
}

// Load fetches and decodes the route.
func (s *NavigationScreen) Load(ctx context.Context) error {
	s.Loading = true
	defer func() { s.Loading = false }()

	route, err := s.Directions.Route(ctx,
		geo.LatLng{Lat: s.Start.Latitude, Lng: s.Start.Longitude},
		geo.LatLng{Lat: s.Destination.Latitude, Lng: s.Destination.Longitude},
	)
	if err != nil {
		utils.LogError("", "navigation", "route", err)
		s.Path = nil
		s.Route = geo.Route{}
		s.Notifier.Notify("Error", "Failed to load route")
		return err
	}

	s.Route = route
	s.Path = route.Points
	return nil
}

// Markers returns the two endpoints; they render regardless of whether
// a path could be fetched.
func (s *NavigationScreen) Markers() (models.Location, models.Location) {
	return s.Start, s.Destination
}

// Back pops the screen.
func (s *NavigationScreen) Back() { s.Nav.GoBack() }
