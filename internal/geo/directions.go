package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"driverapp/internal/domain"
	"driverapp/internal/utils"
)

// Route is a decoded driving route between two coordinates.
type Route struct {
	Points   []LatLng
	Distance string
	Duration string
}

// Directions wraps the routing provider.
type Directions struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func (d *Directions) client() *http.Client {
	if d.HTTP != nil {
		return d.HTTP
	}
	return http.DefaultClient
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route fetches a driving route and decodes its polyline. Any provider
// failure yields an error; callers render an empty path but keep the
// origin and destination markers.
func (d *Directions) Route(ctx context.Context, origin, destination LatLng) (Route, error) {
	endpoint := fmt.Sprintf("%s?origin=%s&destination=%s&mode=driving&key=%s",
		d.BaseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", origin.Lat, origin.Lng)),
		url.QueryEscape(fmt.Sprintf("%f,%f", destination.Lat, destination.Lng)),
		url.QueryEscape(d.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Route{}, domain.ProviderError{Provider: "directions", Err: err}
	}

	resp, err := d.client().Do(req)
	if err != nil {
		utils.LogError("", "geo", "directions", err)
		return Route{}, domain.ProviderError{Provider: "directions", Msg: "could not fetch route", Err: err}
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Route{}, domain.ProviderError{Provider: "directions", Msg: "could not fetch route", Err: err}
	}

	if decoded.Status != "OK" || len(decoded.Routes) == 0 {
		return Route{}, domain.ProviderError{Provider: "directions", Msg: "no route returned"}
	}

	raw := decoded.Routes[0]
	points, err := DecodePolyline(raw.OverviewPolyline.Points)
	if err != nil {
		return Route{}, domain.ProviderError{Provider: "directions", Msg: "malformed route geometry", Err: err}
	}

	route := Route{Points: points}
	if len(raw.Legs) > 0 {
		route.Distance = raw.Legs[0].Distance.Text
		route.Duration = raw.Legs[0].Duration.Text
	}
	return route, nil
}
