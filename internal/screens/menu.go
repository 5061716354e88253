package screens

import (
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

// MenuScreen is the authenticated hub; it only navigates, except for
// logout which tears the session down.
type MenuScreen struct {
	Session  *session.Store
	Notifier Notifier
	Nav      Navigator
}

func (s *MenuScreen) OpenCreateTrip() { s.Nav.Navigate(RouteCreateTrip) }
func (s *MenuScreen) OpenEditTrip()   { s.Nav.Navigate(RouteEditTrip) }
func (s *MenuScreen) OpenProfile()    { s.Nav.Navigate(RouteProfile) }
func (s *MenuScreen) OpenRankboard()  { s.Nav.Navigate(RouteRankboard) }

// Logout clears the token and the cached profile together, then routes
// to the entry screen. Clearing both avoids a stale profile flashing at
// the next driver who logs in.
func (s *MenuScreen) Logout() {
	if err := s.Session.Clear(); err != nil {
		s.Notifier.Notify("Error", "Failed to log out. Please try again.")
		return
	}
	utils.LogEvent("", "menu", "logout", "session cleared")
	s.Nav.Navigate(RouteGetStarted)
}
