package models

// DriverProfile is the cached profile snapshot; it is replaced wholesale
// on each login and never partially mutated.
type DriverProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Vehicle     string `json:"vehicle"`
}

// Credentials carries a login attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest mirrors the signup endpoint payload.
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Vehicle     string `json:"vehicle"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
}

// RankEntry is one row of the driver rankboard.
type RankEntry struct {
	ID      string `json:"id"`
	Driver  string `json:"driver"`
	Vehicle string `json:"vehicle"`
	Trips   int    `json:"trips"`
	Stars   float64 `json:"stars"`
}
