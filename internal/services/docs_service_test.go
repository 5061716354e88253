package services

import (
	"bytes"
	"testing"

	"driverapp/internal/domain/models"
)

func sampleTrip() models.Trip {
	return models.Trip{
		ID: "trip-42",
		StartLocation: models.Location{
			Address: "123 Galle Road, Colombo, Western, Sri Lanka",
		},
		Destination: models.Location{
			Address: "Fort, Galle, Southern, Sri Lanka",
		},
		PricePerSeat: 1500,
		Date:         "2025-01-07",
		DriverName:   "Nethmi Perera",
		Vehicle:      "Toyota Prius",
	}
}

func TestGenerateManifest(t *testing.T) {
	passengers := []models.PassengerBooking{
		{Name: "Kasun Perera", Phone: "0771234567", SeatsBooked: 2, Payment: models.PaymentCompleted},
		{Name: "Amaya Silva", Phone: "0719876543"},
	}

	data, filename, err := DocsService{}.GenerateManifest(sampleTrip(), passengers)
	if err != nil {
		t.Fatalf("GenerateManifest: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF, starts with %q", data[:min(8, len(data))])
	}
	if filename != "MANIFEST_trip-42.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateManifestEmpty(t *testing.T) {
	data, _, err := DocsService{}.GenerateManifest(sampleTrip(), nil)
	if err != nil {
		t.Fatalf("GenerateManifest: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("empty manifest produced no document")
	}
}

func TestGenerateReceipt(t *testing.T) {
	p := models.PassengerBooking{Name: "Kasun Perera", Phone: "0771234567", SeatsBooked: 2}

	data, filename, err := DocsService{}.GenerateReceipt(sampleTrip(), p)
	if err != nil {
		t.Fatalf("GenerateReceipt: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "RECEIPT_trip-42_Kasun_Perera.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
