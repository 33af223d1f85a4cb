package service

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"busline/internal/domains/booking/model"
	"busline/shared/constant"
)

func renderTicket(booking model.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		fmt.Sprintf("Booking ID   : %s", booking.ID),
		fmt.Sprintf("Passenger    : %s", booking.PassengerName),
		fmt.Sprintf("Phone        : %s", booking.PassengerPhone),
		fmt.Sprintf("Route        : %s -> %s", booking.SourceLocation, booking.DestinationLocation),
		fmt.Sprintf("Departure    : %s %s", booking.DepartureDate.Format(constant.DateOnlyFormat), booking.DepartureTime),
		fmt.Sprintf("Bus          : %s (%s)", booking.BusName, booking.BusNumber),
		fmt.Sprintf("Seats        : %d", booking.SeatsBooked),
		fmt.Sprintf("Total fare   : %.2f", booking.TotalFare),
		fmt.Sprintf("Status       : %s", booking.Status),
		fmt.Sprintf("Booked at    : %s", booking.BookingDate.Format(constant.DateFormat)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this ticket when boarding. Seats are held under the passenger name above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}
