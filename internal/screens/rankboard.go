package screens

import (
	"driverapp/internal/domain/models"
)

// RankProvider feeds the rankboard. The shipped provider serves a
// static list; a backend feed can replace it without touching the
// screen.
type RankProvider interface {
	Rankboard() []models.RankEntry
}

// StaticRankboard is the bundled rank data.
type StaticRankboard struct{}

func (StaticRankboard) Rankboard() []models.RankEntry {
	return []models.RankEntry{
		{ID: "1", Driver: "Alex Smith", Vehicle: "Toyota Prius", Trips: 120, Stars: 4.8},
		{ID: "2", Driver: "John Doe", Vehicle: "Honda Civic", Trips: 95, Stars: 4.5},
		{ID: "3", Driver: "Sarah Lee", Vehicle: "Tesla Model 3", Trips: 80, Stars: 4.7},
		{ID: "4", Driver: "Michael Brown", Vehicle: "Ford Focus", Trips: 70, Stars: 4.3},
	}
}

// RankboardScreen lists drivers by rank.
type RankboardScreen struct {
	Provider RankProvider
	Nav      Navigator
}

func (s *RankboardScreen) Entries() []models.RankEntry {
	if s.Provider == nil {
		return StaticRankboard{}.Rankboard()
	}
	return s.Provider.Rankboard()
}

func (s *RankboardScreen) Back() { s.Nav.GoBack() }
