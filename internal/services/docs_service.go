package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"driverapp/internal/domain/models"
	"driverapp/internal/utils"
)

// DocsService renders a trip's passenger manifest and per-passenger
// payment receipts as PDF. Everything here is local rendering of data
// the booking list already fetched.
type DocsService struct {
	RequestID string
}

// GenerateManifest builds the passenger manifest for one trip.
func (s DocsService) GenerateManifest(trip models.Trip, passengers []models.PassengerBooking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_manifest", fmt.Sprintf("trip_id=%s passengers=%d", trip.ID, len(passengers)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Passenger Manifest", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PASSENGER MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	header := []string{
		fmt.Sprintf("Route      : %s -> %s",
			safe(utils.ExtractDistrict(trip.StartLocation.Address), "-"),
			safe(utils.ExtractDistrict(trip.Destination.Address), "-")),
		fmt.Sprintf("Date       : %s", safe(utils.FormatTripDate(trip.Date), "-")),
		fmt.Sprintf("Driver     : %s", safe(trip.DriverName, "-")),
		fmt.Sprintf("Vehicle    : %s", safe(trip.Vehicle, "-")),
		fmt.Sprintf("Per seat   : %s", utils.FormatRupees(trip.PricePerSeat)),
	}
	for _, line := range header {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Passengers:")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range passengers {
		line := fmt.Sprintf("%d) %s  %s  seats=%d  total=%s  payment=%s",
			i+1,
			safe(p.Name, "-"),
			safe(p.Phone, "-"),
			p.Seats(),
			utils.FormatRupees(p.TotalPrice(trip.PricePerSeat)),
			p.PaymentOrPending(),
		)
		pdf.MultiCell(0, 6, line, "", "", false)
		pdf.Ln(1)
	}
	if len(passengers) == 0 {
		pdf.Cell(0, 6, "No bookings yet.")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%s.pdf", safeFilenamePart(trip.ID))
	return buf.Bytes(), filename, nil
}

// GenerateReceipt builds a payment receipt for one passenger.
func (s DocsService) GenerateReceipt(trip models.Trip, p models.PassengerBooking) ([]byte, string, error) {
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("trip_id=%s passenger=%s", trip.ID, p.Name))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	receiptNo := fmt.Sprintf("RCPT-%s-%s", safeFilenamePart(trip.ID), safeFilenamePart(p.Name))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : "+receiptNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Received from:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Name  : %s", safe(p.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Phone : %s", safe(p.Phone, "-")))
	pdf.Ln(10)

	desc := fmt.Sprintf("Ride %s -> %s on %s, %d seat(s) at %s per seat",
		safe(utils.ExtractDistrict(trip.StartLocation.Address), "-"),
		safe(utils.ExtractDistrict(trip.Destination.Address), "-"),
		safe(utils.FormatTripDate(trip.Date), "-"),
		p.Seats(),
		utils.FormatRupees(trip.PricePerSeat),
	)

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupees(p.TotalPrice(trip.PricePerSeat)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt acknowledges payment received by the driver for the booking above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%s_%s.pdf", safeFilenamePart(trip.ID), safeFilenamePart(p.Name))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
