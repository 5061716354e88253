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

// UnknownLocation substitutes for the address when reverse geocoding
// fails; the flow continues with the sentinel rather than blocking.
const UnknownLocation = "Unknown location"

// Geocoder resolves coordinates to human readable addresses through the
// external geocoding provider.
type Geocoder struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func (g *Geocoder) client() *http.Client {
	if g.HTTP != nil {
		return g.HTTP
	}
	return http.DefaultClient
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
	} `json:"results"`
}

// ReverseGeocode resolves a coordinate pair to an address string. On
// provider error or a non-OK provider status it returns the
// UnknownLocation sentinel together with the error so the caller can
// notify without losing the tapped coordinate.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	endpoint := fmt.Sprintf("%s?latlng=%s&key=%s",
		g.BaseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", lat, lng)),
		url.QueryEscape(g.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return UnknownLocation, domain.ProviderError{Provider: "geocoding", Err: err}
	}

	resp, err := g.client().Do(req)
	if err != nil {
		utils.LogError("", "geo", "reverse_geocode", err)
		return UnknownLocation, domain.ProviderError{Provider: "geocoding", Msg: "could not fetch address", Err: err}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		utils.LogError("", "geo", "reverse_geocode", err)
		return UnknownLocation, domain.ProviderError{Provider: "geocoding", Msg: "could not fetch address", Err: err}
	}

	if decoded.Status != "OK" {
		utils.LogEvent("", "geo", "reverse_geocode", "provider status "+decoded.Status)
		return UnknownLocation, domain.ProviderError{
			Provider: "geocoding",
			Msg:      "failed to fetch address from location",
		}
	}

	if len(decoded.Results) == 0 || decoded.Results[0].FormattedAddress == "" {
		return UnknownLocation, nil
	}
	return decoded.Results[0].FormattedAddress, nil
}
