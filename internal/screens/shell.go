package screens

import (
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

// Shell decides the screen shown at launch: a stored token routes
// straight to the menu, otherwise the entry screen.
type Shell struct {
	Session *session.Store
	Nav     Navigator
}

func (s *Shell) Start() {
	if s.Session.Token() != "" {
		utils.LogEvent("", "shell", "start", "session found, routing to menu")
		s.Nav.Navigate(RouteMenu)
		return
	}
	s.Nav.Navigate(RouteGetStarted)
}
