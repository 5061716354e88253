package api

import (
	"context"
	"net/http"
	"net/url"

	"driverapp/internal/domain/models"
)

// CreateTripRequest mirrors the create endpoint payload. Locations are
// carried verbatim; no coordinate transformation happens client-side.
type CreateTripRequest struct {
	Driver         string          `json:"driver"`
	StartLocation  models.Location `json:"startLocation"`
	Destination    models.Location `json:"destination"`
	SeatsAvailable int             `json:"seatsAvailable"`
	PricePerSeat   float64         `json:"pricePerSeat"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
}

type statusUpdateRequest struct {
	Status models.TripStatus `json:"status"`
}

// CreateTrip publishes a new trip for the authenticated driver.
func (c *Client) CreateTrip(ctx context.Context, req CreateTripRequest) error {
	return c.do(ctx, http.MethodPost, "/api/createTrip", req, nil, true)
}

// DriverTrips lists the trips published by one driver.
func (c *Client) DriverTrips(ctx context.Context, driverID string) ([]models.Trip, error) {
	var trips []models.Trip
	err := c.do(ctx, http.MethodGet, "/api/trips/driver/"+url.PathEscape(driverID), nil, &trips, true)
	return trips, err
}

// Trip fetches a single trip, used by the booking list for pricing.
// The endpoint is public; no auth header is attached.
func (c *Client) Trip(ctx context.Context, tripID string) (models.Trip, error) {
	var trip models.Trip
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(tripID), nil, &trip, false)
	return trip, err
}

// UpdateTripStatus commits a driver-confirmed status transition.
func (c *Client) UpdateTripStatus(ctx context.Context, tripID string, status models.TripStatus) (models.Trip, error) {
	var trip models.Trip
	err := c.do(ctx, http.MethodPut, "/api/trips/"+url.PathEscape(tripID)+"/status",
		statusUpdateRequest{Status: status}, &trip, true)
	return trip, err
}
