package screens

import (
	"context"
	"strconv"

	"driverapp/internal/api"
	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
	"driverapp/internal/session"
	"driverapp/internal/utils"
)

// TripDetails holds the free-form text inputs exactly as typed; they
// are only parsed at submission.
type TripDetails struct {
	SeatsAvailable string
	PricePerSeat   string
	Date           string
	Description    string
}

// TripFormScreen collects a new trip. Validation is fail-fast in a
// fixed order: session first, then locations, then the text fields.
// Nothing goes on the wire until all three pass.
type TripFormScreen struct {
	API      *api.Client
	Session  *session.Store
	Notifier Notifier
	Nav      Navigator
	Picker   *LocationPicker

	StartLocation *models.Location
	Destination   *models.Location
	Details       TripDetails

	pickingDestination bool

	SuccessPopupVisible bool
	FailurePopupVisible bool
}

// OpenStartPicker opens the picker for the start location.
func (s *TripFormScreen) OpenStartPicker() {
	s.pickingDestination = false
	s.Picker.Open()
}

// OpenDestinationPicker opens the picker for the destination.
func (s *TripFormScreen) OpenDestinationPicker() {
	s.pickingDestination = true
	s.Picker.Open()
}

// ConfirmPickedLocation routes the picker's confirmed selection to
// whichever slot the picker was opened for.
func (s *TripFormScreen) ConfirmPickedLocation() {
	loc, err := s.Picker.Confirm()
	if err != nil {
		return
	}
	if s.pickingDestination {
		s.Destination = &loc
	} else {
		s.StartLocation = &loc
	}
}

// Submit validates and issues the create request. Success and failure
// are mutually exclusive terminal outcomes: success pops a popup whose
// dismissal navigates back to the menu, failure pops its own popup and
// leaves the form populated for correction.
func (s *TripFormScreen) Submit(ctx context.Context) error {
	req, err := s.buildRequest()
	if err != nil {
		s.Notifier.Notify("Error", err.Error())
		return err
	}

	if err := s.API.CreateTrip(ctx, *req); err != nil {
		utils.LogError("", "tripform", "create", err)
		s.FailurePopupVisible = true
		return err
	}

	s.SuccessPopupVisible = true
	return nil
}

// buildRequest runs the three validation stages and assembles the
// payload, locations verbatim.
func (s *TripFormScreen) buildRequest() (*api.CreateTripRequest, error) {
	driverID, err := s.Session.DriverID()
	if err != nil {
		return nil, domain.AuthError{Msg: "User not authenticated", Err: err}
	}

	if s.StartLocation == nil || s.Destination == nil {
		return nil, domain.ValidationError{Msg: "Please select both start and destination locations."}
	}

	seatsRaw := utils.TrimOrEmpty(s.Details.SeatsAvailable)
	priceRaw := utils.TrimOrEmpty(s.Details.PricePerSeat)
	dateRaw := utils.TrimOrEmpty(s.Details.Date)
	if seatsRaw == "" || priceRaw == "" || dateRaw == "" {
		return nil, domain.ValidationError{Msg: "Please fill in all required fields."}
	}

	seats, err := strconv.Atoi(seatsRaw)
	if err != nil || seats <= 0 {
		return nil, domain.ValidationError{Field: "seatsAvailable", Msg: "must be a positive number"}
	}
	price, err := utils.ParseAmount(priceRaw)
	if err != nil || price <= 0 {
		return nil, domain.ValidationError{Field: "pricePerSeat", Msg: "must be a positive amount"}
	}
	if _, err := utils.ParseDate(dateRaw); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD"}
	}

	return &api.CreateTripRequest{
		Driver:         driverID,
		StartLocation:  *s.StartLocation,
		Destination:    *s.Destination,
		SeatsAvailable: seats,
		PricePerSeat:   price,
		Date:           dateRaw,
		Description:    utils.TrimOrEmpty(s.Details.Description),
	}, nil
}

// CloseSuccessPopup navigates back to the menu.
func (s *TripFormScreen) CloseSuccessPopup() {
	s.SuccessPopupVisible = false
	s.Nav.Navigate(RouteMenu)
}

// CloseFailurePopup stays on the form so the driver can correct it.
func (s *TripFormScreen) CloseFailurePopup() {
	s.FailurePopupVisible = false
}
