package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"driverapp/internal/domain"
)

// DriverID resolves the authenticated driver's identity. The cached
// profile id is preferred; decoding the bearer token's claims is kept
// only as a fallback for sessions stored before the profile carried an
// id. The token signature is the backend's concern, not ours, so the
// claims are read unverified.
func (s *Store) DriverID() (string, error) {
	if profile, ok := s.Profile(); ok && profile.ID != "" {
		return profile.ID, nil
	}

	token := s.Token()
	if token == "" {
		return "", domain.AuthError{Msg: "user not authenticated"}
	}

	id, err := subjectFromToken(token)
	if err != nil {
		return "", domain.AuthError{Msg: "user not authenticated", Err: err}
	}
	return id, nil
}

func subjectFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return "", err
	}

	if id, ok := claims["id"].(string); ok && id != "" {
		return id, nil
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("token carries no subject id")
}
