package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Location is an immutable coordinate/address value produced by the
// location picker and passed through to the backend verbatim.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// TripStatus is the canonical trip lifecycle enum. Older revisions of
// the backend spelled the middle state "On Progress" or "In Progress";
// those spellings are accepted on decode and normalized here, never
// written back.
type TripStatus string

const (
	StatusAvailable  TripStatus = "Available"
	StatusInProgress TripStatus = "InProgress"
	StatusCompleted  TripStatus = "Completed"
	StatusCancelled  TripStatus = "Cancelled"
)

// AllStatuses lists the selectable transition targets in display order.
func AllStatuses() []TripStatus {
	return []TripStatus{StatusAvailable, StatusInProgress, StatusCompleted, StatusCancelled}
}

// ParseTripStatus normalizes a wire or user supplied status string.
func ParseTripStatus(s string) (TripStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "available":
		return StatusAvailable, nil
	case "inprogress", "in progress", "on progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("unknown trip status %q", s)
}

// Terminal reports whether no further transition fires from the status.
func (s TripStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the driver-initiated move from -> to is
// allowed: Available -> InProgress -> Completed, with Cancelled
// reachable from any non-terminal state.
func (s TripStatus) CanTransition(to TripStatus) bool {
	if s.Terminal() || s == to {
		return false
	}
	switch to {
	case StatusInProgress:
		return s == StatusAvailable
	case StatusCompleted:
		return s == StatusInProgress
	case StatusCancelled:
		return true
	}
	return false
}

func (s *TripStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTripStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Trip is a driver-published ride offering.
type Trip struct {
	ID             string     `json:"id"`
	StartLocation  Location   `json:"startLocation"`
	Destination    Location   `json:"destination"`
	SeatsAvailable int        `json:"seatsAvailable"`
	PricePerSeat   float64    `json:"pricePerSeat"`
	Date           string     `json:"date"`
	Description    string     `json:"description"`
	DriverName     string     `json:"driverName"`
	Vehicle        string     `json:"vehicle"`
	Rating         float64    `json:"rating"`
	Status         TripStatus `json:"status"`
}
