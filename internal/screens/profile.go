package screens

import (
	"driverapp/internal/domain/models"
	"driverapp/internal/session"
)

// ProfileScreen renders the cached profile snapshot; it never hits the
// network.
type ProfileScreen struct {
	Session *session.Store
	Nav     Navigator
}

// Profile returns the stored snapshot; ok is false while no user data
// is cached (the screen shows a loading placeholder).
func (s *ProfileScreen) Profile() (models.DriverProfile, bool) {
	return s.Session.Profile()
}

func (s *ProfileScreen) Back() { s.Nav.GoBack() }
