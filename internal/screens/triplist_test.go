package screens

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
)

func TestTripListLoadBuildsCards(t *testing.T) {
	client, store := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trips/driver/driver-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		trips := []models.Trip{availableTrip()}
		json.NewEncoder(w).Encode(trips)
	})
	screen := &TripListScreen{API: client, Session: store, Notifier: &fakeNotifier{}, Nav: &fakeNav{}}

	if err := screen.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(screen.Cards) != 1 {
		t.Fatalf("built %d cards, want 1", len(screen.Cards))
	}
	if got := screen.Cards[0].Title(); got != "Western -> Southern" {
		t.Fatalf("card title = %q", got)
	}
}

func TestTripListUnauthenticatedBlocksFetch(t *testing.T) {
	var calls int64
	client, store := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
	})
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	notifier := &fakeNotifier{}
	screen := &TripListScreen{API: client, Session: store, Notifier: notifier, Nav: &fakeNav{}}

	if err := screen.Load(context.Background()); !domain.IsAuth(err) {
		t.Fatalf("want auth error, got %v", err)
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Fatalf("server saw %d requests", n)
	}
}

func TestTripListLoadFailure(t *testing.T) {
	client, store := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	})
	notifier := &fakeNotifier{}
	screen := &TripListScreen{API: client, Session: store, Notifier: notifier, Nav: &fakeNav{}}

	if err := screen.Load(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
	if len(screen.Cards) != 0 {
		t.Fatalf("failed load left %d cards", len(screen.Cards))
	}
	if notifier.count() != 1 {
		t.Fatalf("expected one notification, got %d", notifier.count())
	}
}
