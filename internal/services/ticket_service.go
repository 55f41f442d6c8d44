package services

import (
	"bytes"
	"fmt"
	"strings"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// TicketService menghasilkan PDF e-ticket per booking.
type TicketService struct {
	BookingRepo repositories.BookingRepo
	RequestID   string
}

// GenerateETicket builds the PDF for a confirmed booking owned by userID.
func (s TicketService) GenerateETicket(bookingID, userID int64) ([]byte, string, error) {
	b, err := s.BookingRepo.GetOwnedByID(bookingID, userID)
	if err != nil {
		return nil, "", err
	}
	if b.Status != string(domain.BookingConfirmed) {
		return nil, "", domain.ConflictError{Resource: "booking", Msg: "booking sudah dibatalkan"}
	}

	utils.LogEvent(s.RequestID, "ticket", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(b)
}

func buildETicketPDF(b models.BookingWithService) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVELGO E-TICKET")
	pdf.Ln(12)

	route := b.Location
	if b.Destination != "" {
		route = b.Location + " -> " + b.Destination
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Kode Booking   : %s", b.Code),
		fmt.Sprintf("Layanan        : %s", safe(b.ServiceName, "-")),
		fmt.Sprintf("Tipe           : %s", safe(b.ServiceType, "-")),
		fmt.Sprintf("Rute/Lokasi    : %s", safe(route, "-")),
		fmt.Sprintf("Tanggal        : %s", safe(dateOnly(b.BookingDate), "-")),
		fmt.Sprintf("Penumpang      : %d", b.Passengers),
		fmt.Sprintf("Harga per Unit : %.2f", b.Price),
		fmt.Sprintf("Total          : %.2f", b.Price*float64(b.Passengers)),
		fmt.Sprintf("Status         : %s", b.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	// QR berisi kode booking untuk verifikasi saat keberangkatan/check-in.
	qrBytes, err := qrcode.Encode(b.Code, qrcode.Medium, 256)
	if err == nil {
		pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
		pdf.ImageOptions("qr", 150, 40, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: harap tunjukkan e-ticket ini saat keberangkatan atau check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", b.ID, safeFilenamePart(b.Code))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func dateOnly(s string) string {
	if len(s) >= 10 {
		return s[:10]
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
