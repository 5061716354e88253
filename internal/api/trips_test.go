package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"driverapp/internal/domain/models"
)

func TestCreateTripCarriesLocationsVerbatim(t *testing.T) {
	start := models.Location{Latitude: 6.9271, Longitude: 79.8612, Address: "Colombo, Western, Sri Lanka"}
	dest := models.Location{Latitude: 7.2906, Longitude: 80.6337, Address: "Kandy, Central, Sri Lanka"}

	var captured CreateTripRequest
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/createTrip" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{}`))
	})

	err := client.CreateTrip(context.Background(), CreateTripRequest{
		Driver:         "d1",
		StartLocation:  start,
		Destination:    dest,
		SeatsAvailable: 3,
		PricePerSeat:   1500,
		Date:           "2025-02-01",
	})
	if err != nil {
		t.Fatalf("CreateTrip returned error: %v", err)
	}

	if captured.StartLocation != start || captured.Destination != dest {
		t.Fatalf("locations transformed in flight: %+v / %+v", captured.StartLocation, captured.Destination)
	}
	if captured.Driver != "d1" || captured.SeatsAvailable != 3 || captured.PricePerSeat != 1500 {
		t.Fatalf("payload fields lost: %+v", captured)
	}
}

func TestUpdateTripStatus(t *testing.T) {
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/trips/t1/status" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if body["status"] != "InProgress" {
			t.Errorf("status payload = %q", body["status"])
		}
		w.Write([]byte(`{"id":"t1","status":"InProgress"}`))
	})

	trip, err := client.UpdateTripStatus(context.Background(), "t1", models.StatusInProgress)
	if err != nil {
		t.Fatalf("UpdateTripStatus returned error: %v", err)
	}
	if trip.Status != models.StatusInProgress {
		t.Fatalf("trip status = %q", trip.Status)
	}
}

func TestBookingsUnwrapsPassengers(t *testing.T) {
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trips/t1/bookings" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"passengers":[{"name":"Amal","phone":"071","seatsBooked":2,"payment":"Pending"}]}`))
	})

	passengers, err := client.Bookings(context.Background(), "t1")
	if err != nil {
		t.Fatalf("Bookings returned error: %v", err)
	}
	if len(passengers) != 1 || passengers[0].Name != "Amal" || passengers[0].SeatsBooked != 2 {
		t.Fatalf("passengers = %+v", passengers)
	}
}

func TestConfirmPaymentPath(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{}`))
	})

	if err := client.ConfirmPayment(context.Background(), "t1", 2); err != nil {
		t.Fatalf("ConfirmPayment returned error: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/trips/t1/bookings/2/payment" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}
