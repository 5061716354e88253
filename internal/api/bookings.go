package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"driverapp/internal/domain/models"
)

type bookingsResponse struct {
	Passengers []models.PassengerBooking `json:"passengers"`
}

// Bookings fetches a trip's passenger manifest.
func (c *Client) Bookings(ctx context.Context, tripID string) ([]models.PassengerBooking, error) {
	var resp bookingsResponse
	err := c.do(ctx, http.MethodGet, "/api/trips/"+url.PathEscape(tripID)+"/bookings", nil, &resp, true)
	if err != nil {
		return nil, err
	}
	return resp.Passengers, nil
}

// ConfirmPayment flips the payment flag for one passenger, addressed by
// manifest index. Callers re-fetch the manifest afterwards instead of
// patching local state; the response is not trusted to echo full state.
func (c *Client) ConfirmPayment(ctx context.Context, tripID string, passengerIndex int) error {
	path := fmt.Sprintf("/api/trips/%s/bookings/%d/payment", url.PathEscape(tripID), passengerIndex)
	return c.do(ctx, http.MethodPut, path, nil, nil, true)
}
