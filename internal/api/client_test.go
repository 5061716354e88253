package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"driverapp/internal/domain"
	"driverapp/internal/domain/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, staticToken(token), 5*time.Second), srv
}

func TestAuthenticatedCallWithoutTokenFailsFast(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})

	_, err := client.Profile(context.Background())
	if !domain.IsAuth(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("no request may be issued without a token, got %d", calls)
	}
}

func TestBearerHeaderAndRequestID(t *testing.T) {
	client, _ := newTestClient(t, "tok-1", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("X-Request-ID missing")
		}
		w.Write([]byte(`{"id":"d1","username":"u"}`))
	})

	profile, err := client.Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if profile.ID != "d1" {
		t.Fatalf("profile = %+v", profile)
	}
}

func TestErrorMappingByStatus(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusUnauthorized, domain.IsAuth, "auth"},
		{http.StatusNotFound, domain.IsNotFound, "not found"},
		{http.StatusBadRequest, domain.IsValidation, "validation"},
		{http.StatusInternalServerError, domain.IsProvider, "provider"},
	}

	for _, tc := range cases {
		client, _ := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"message":"nope"}`))
		})
		_, err := client.Trip(context.Background(), "t1")
		if err == nil || !tc.check(err) {
			t.Fatalf("status %d: expected %s error, got %v", tc.status, tc.name, err)
		}
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	client, _ := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Login(context.Background(), models.Credentials{Email: "e", Password: "p"})
	if err == nil {
		t.Fatalf("expected error for tokenless login response")
	}
}
