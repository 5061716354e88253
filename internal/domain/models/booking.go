package models

// PaymentStatus tracks the server-side payment flag per passenger.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
)

// PassengerBooking is one passenger's reservation against a trip.
// The owed total is never stored on the record; it is derived from the
// trip's current price at render time.
type PassengerBooking struct {
	Name        string        `json:"name"`
	Phone       string        `json:"phone"`
	SeatsBooked int           `json:"seatsBooked"`
	Payment     PaymentStatus `json:"payment"`
}

// Seats reports seatsBooked with the legacy fallback of 1 when the
// backend omits the field.
func (b PassengerBooking) Seats() int {
	if b.SeatsBooked <= 0 {
		return 1
	}
	return b.SeatsBooked
}

// PaymentOrPending reports the payment flag with the legacy fallback.
func (b PassengerBooking) PaymentOrPending() PaymentStatus {
	if b.Payment == "" {
		return PaymentPending
	}
	return b.Payment
}

// TotalPrice is the one derived quantity in the system: seats booked
// times the trip's current price per seat. Recomputed, never cached.
func (b PassengerBooking) TotalPrice(pricePerSeat float64) float64 {
	return float64(b.Seats()) * pricePerSeat
}
