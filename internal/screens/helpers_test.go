package screens

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"driverapp/internal/api"
	"driverapp/internal/domain/models"
	"driverapp/internal/session"
)

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(title, message string) {
	f.messages = append(f.messages, title+": "+message)
}

func (f *fakeNotifier) count() int { return len(f.messages) }

type fakeNav struct {
	routes []Route
	backs  int
}

func (f *fakeNav) Navigate(route Route) { f.routes = append(f.routes, route) }
func (f *fakeNav) GoBack()              { f.backs++ }

func (f *fakeNav) last() Route {
	if len(f.routes) == 0 {
		return ""
	}
	return f.routes[len(f.routes)-1]
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("session.Open: %v", err)
	}
	return s
}

func loggedInStore(t *testing.T) *session.Store {
	t.Helper()
	s := newStore(t)
	err := s.SetSession("tok-test", models.DriverProfile{
		ID: "driver-1", Username: "nethmi", Email: "n@example.com", Vehicle: "Toyota Prius",
	})
	if err != nil {
		t.Fatalf("SetSession: %v", err)
	}
	return s
}

func newBackend(t *testing.T, handler http.HandlerFunc) (*api.Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := loggedInStore(t)
	return api.New(srv.URL, store, 5*time.Second), store
}
