package screens

import (
	"context"

	"driverapp/internal/api"
	"driverapp/internal/domain/models"
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

// LoginScreen handles both login and signup; IsLogin flips which form
// is shown. All state is screen-local.
type LoginScreen struct {
	API      *api.Client
	Session  *session.Store
	Notifier Notifier
	Nav      Navigator

	IsLogin         bool
	Email           string
	Password        string
	ConfirmPassword string
	Username        string
	Vehicle         string
	PhoneNumber     string

	SuccessPopupVisible bool
	ErrorPopupVisible   bool
}

func NewLoginScreen(client *api.Client, store *session.Store, notifier Notifier, nav Navigator) *LoginScreen {
	return &LoginScreen{
		API:      client,
		Session:  store,
		Notifier: notifier,
		Nav:      nav,
		IsLogin:  true,
	}
}

// Toggle switches between the login and signup forms and resets fields.
func (s *LoginScreen) Toggle() {
	s.IsLogin = !s.IsLogin
	s.resetFields()
}

// Login exchanges credentials for a token, caches the profile and moves
// to the menu. Invalid credentials leave the user on this screen with a
// notification and nothing stored.
func (s *LoginScreen) Login(ctx context.Context) error {
	token, err := s.API.Login(ctx, models.Credentials{
		Email:    utils.TrimOrEmpty(s.Email),
		Password: s.Password,
	})
	if err != nil {
		s.Notifier.Notify("Error", "Invalid credentials")
		return err
	}

	// Token is stored first so the profile fetch can authenticate.
	if err := s.Session.SetSession(token, models.DriverProfile{}); err != nil {
		s.Notifier.Notify("Error", "Failed to store session")
		return err
	}

	profile, err := s.API.Profile(ctx)
	if err != nil {
		s.Notifier.Notify("Error", "Invalid credentials")
		// Half-open session would confuse every authenticated screen.
		if clearErr := s.Session.Clear(); clearErr != nil {
			utils.LogError("", "login", "clear_session", clearErr)
		}
		return err
	}
	if err := s.Session.SetProfile(profile); err != nil {
		s.Notifier.Notify("Error", "Failed to store session")
		return err
	}

	utils.LogEvent("", "login", "login", "driver authenticated")
	s.Nav.Navigate(RouteMenu)
	return nil
}

// SignUp registers a new driver. Password mismatch blocks locally; no
// request is issued.
func (s *LoginScreen) SignUp(ctx context.Context) error {
	if s.Password != s.ConfirmPassword {
		s.Notifier.Notify("Error", "Passwords do not match")
		return nil
	}

	err := s.API.Signup(ctx, models.SignupRequest{
		Email:       utils.TrimOrEmpty(s.Email),
		Password:    s.Password,
		Vehicle:     utils.TrimOrEmpty(s.Vehicle),
		PhoneNumber: utils.TrimOrEmpty(s.PhoneNumber),
		Username:    utils.TrimOrEmpty(s.Username),
	})
	if err != nil {
		s.ErrorPopupVisible = true
		return err
	}

	s.SuccessPopupVisible = true
	s.resetFields()
	s.IsLogin = true
	return nil
}

// CloseSuccessPopup dismisses the signup success popup.
func (s *LoginScreen) CloseSuccessPopup() {
	s.SuccessPopupVisible = false
	s.resetFields()
	s.IsLogin = true
}

// CloseErrorPopup dismisses the signup failure popup; the form keeps
// its values for correction.
func (s *LoginScreen) CloseErrorPopup() {
	s.ErrorPopupVisible = false
}

func (s *LoginScreen) resetFields() {
	s.Email = ""
	s.Password = ""
	s.ConfirmPassword = ""
	s.Username = ""
	s.Vehicle = ""
	s.PhoneNumber = ""
}
