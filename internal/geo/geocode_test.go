package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"driverapp/internal/domain"
)

func TestReverseGeocodeOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latlng"); got == "" {
			t.Errorf("latlng query missing")
		}
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"12 Main St, Colombo, Western, Sri Lanka"}]}`))
	}))
	defer srv.Close()

	g := &Geocoder{BaseURL: srv.URL, APIKey: "k"}
	address, err := g.ReverseGeocode(context.Background(), 6.9271, 79.8612)
	if err != nil {
		t.Fatalf("ReverseGeocode returned error: %v", err)
	}
	if address != "12 Main St, Colombo, Western, Sri Lanka" {
		t.Fatalf("address = %q", address)
	}
}

func TestReverseGeocodeProviderStatusFallsBackToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_DENIED","results":[]}`))
	}))
	defer srv.Close()

	g := &Geocoder{BaseURL: srv.URL, APIKey: "k"}
	address, err := g.ReverseGeocode(context.Background(), 1, 2)
	if err == nil {
		t.Fatalf("expected provider error")
	}
	if !domain.IsProvider(err) {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if address != UnknownLocation {
		t.Fatalf("address = %q, want sentinel", address)
	}
}

func TestReverseGeocodeNetworkErrorFallsBackToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	g := &Geocoder{BaseURL: srv.URL, APIKey: "k"}
	address, err := g.ReverseGeocode(context.Background(), 1, 2)
	if err == nil {
		t.Fatalf("expected network error")
	}
	if address != UnknownLocation {
		t.Fatalf("address = %q, want sentinel", address)
	}
}

func TestReverseGeocodeEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","results":[]}`))
	}))
	defer srv.Close()

	g := &Geocoder{BaseURL: srv.URL, APIKey: "k"}
	address, err := g.ReverseGeocode(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("empty results should not error: %v", err)
	}
	if address != UnknownLocation {
		t.Fatalf("address = %q, want sentinel", address)
	}
}
