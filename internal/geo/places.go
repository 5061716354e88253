package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"driverapp/internal/domain"
)

// Prediction is one places-autocomplete suggestion.
type Prediction struct {
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
}

// Place holds the detail lookup for a selected prediction. The search
// path yields a coordinate and description directly; no reverse
// geocoding is needed afterwards.
type Place struct {
	Lat         float64
	Lng         float64
	Description string
}

// Places wraps the autocomplete provider.
type Places struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func (p *Places) client() *http.Client {
	if p.HTTP != nil {
		return p.HTTP
	}
	return http.DefaultClient
}

type autocompleteResponse struct {
	Status      string       `json:"status"`
	Predictions []Prediction `json:"predictions"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		FormattedAddress string `json:"formatted_address"`
	} `json:"result"`
}

// Autocomplete returns suggestions for a partial query.
func (p *Places) Autocomplete(ctx context.Context, query string) ([]Prediction, error) {
	endpoint := fmt.Sprintf("%s/autocomplete/json?input=%s&language=en&key=%s",
		p.BaseURL, url.QueryEscape(query), url.QueryEscape(p.APIKey))

	var decoded autocompleteResponse
	if err := p.get(ctx, endpoint, &decoded); err != nil {
		return nil, err
	}
	if decoded.Status != "OK" && decoded.Status != "ZERO_RESULTS" {
		return nil, domain.ProviderError{Provider: "places", Msg: "autocomplete status " + decoded.Status}
	}
	return decoded.Predictions, nil
}

// Details resolves a prediction to its coordinate. The prediction's own
// description is used as the address, matching what the user picked.
func (p *Places) Details(ctx context.Context, placeID, description string) (Place, error) {
	endpoint := fmt.Sprintf("%s/details/json?place_id=%s&key=%s",
		p.BaseURL, url.QueryEscape(placeID), url.QueryEscape(p.APIKey))

	var decoded detailsResponse
	if err := p.get(ctx, endpoint, &decoded); err != nil {
		return Place{}, err
	}
	if decoded.Status != "OK" {
		return Place{}, domain.ProviderError{Provider: "places", Msg: "details status " + decoded.Status}
	}

	place := Place{
		Lat:         decoded.Result.Geometry.Location.Lat,
		Lng:         decoded.Result.Geometry.Location.Lng,
		Description: description,
	}
	if place.Description == "" {
		place.Description = decoded.Result.FormattedAddress
	}
	return place, nil
}

func (p *Places) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ProviderError{Provider: "places", Err: err}
	}
	resp, err := p.client().Do(req)
	if err != nil {
		return domain.ProviderError{Provider: "places", Err: err}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.ProviderError{Provider: "places", Err: err}
	}
	return nil
}
