package screens

import (
	"context"

	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
	"driverapp/internal/geo"
)

// LocationPicker is the modal map/search component. Two input paths
// feed the same output contract: a map tap goes through reverse
// geocoding, a search selection already carries its coordinate and
// description. No state survives across invocations; callers open a
// fresh picker each time.
type LocationPicker struct {
	Geocoder *geo.Geocoder
	Places   *geo.Places
	Notifier Notifier

	Visible  bool
	Loading  bool
	Selected *models.Location
}

// Open shows the picker with a clean slate.
func (p *LocationPicker) Open() {
	p.Visible = true
	p.Loading = false
	p.Selected = nil
}

// Close dismisses the picker without a result.
func (p *LocationPicker) Close() {
	p.Visible = false
	p.Selected = nil
}

// SelectCoordinate handles a map tap: the coordinate is resolved to an
// address and becomes the current selection. A geocoding failure keeps
// the tap usable with the sentinel address and notifies.
func (p *LocationPicker) SelectCoordinate(ctx context.Context, lat, lng float64) {
	p.Loading = true
	address, err := p.Geocoder.ReverseGeocode(ctx, lat, lng)
	p.Loading = false

	if err != nil {
		p.Notifier.Notify("Error", "Could not fetch address.")
	}
	p.Selected = &models.Location{Latitude: lat, Longitude: lng, Address: address}
}

// Search returns autocomplete suggestions for the search box.
func (p *LocationPicker) Search(ctx context.Context, query string) []geo.Prediction {
	predictions, err := p.Places.Autocomplete(ctx, query)
	if err != nil {
		p.Notifier.Notify("Error", "Location search failed.")
		return nil
	}
	return predictions
}

// SelectPlace handles a search selection.
func (p *LocationPicker) SelectPlace(ctx context.Context, prediction geo.Prediction) {
	place, err := p.Places.Details(ctx, prediction.PlaceID, prediction.Description)
	if err != nil {
		p.Notifier.Notify("Error", "Could not load the selected place.")
		return
	}
	p.Selected = &models.Location{
		Latitude:  place.Lat,
		Longitude: place.Lng,
		Address:   place.Description,
	}
}

// Confirm returns the selection to the caller. Confirming with nothing
// selected is rejected with a prompt and no network call.
func (p *LocationPicker) Confirm() (models.Location, error) {
	if p.Selected == nil {
		p.Notifier.Notify("Error", "Please select a location.")
		return models.Location{}, domain.ValidationError{Field: "location", Msg: "no location selected"}
	}
	loc := *p.Selected
	p.Visible = false
	p.Selected = nil
	return loc, nil
}
