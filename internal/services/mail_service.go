package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"travelgo/internal/domain/models"
)

const resendAPI = "https://api.resend.com/emails"

// MailService sends booking notifications through the Resend HTTP API.
// Without an API key it logs a mock email instead, so local development
// works tanpa kredensial.
type MailService struct {
	APIKey string
	From   string
	Client *http.Client
}

type resendEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

func (m MailService) client() *http.Client {
	if m.Client != nil {
		return m.Client
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (m MailService) from() string {
	if m.From != "" {
		return m.From
	}
	return "TravelGo <noreply@travelgo.local>"
}

// SendBookingConfirmation is best-effort; callers fire it on a goroutine
// and the booking succeeds regardless of mail delivery.
func (m MailService) SendBookingConfirmation(to string, b models.BookingWithService) error {
	subject := fmt.Sprintf("Booking %s terkonfirmasi", b.Code)
	text := fmt.Sprintf("Booking %s untuk %s (%d penumpang, tanggal %s) sudah terkonfirmasi.",
		b.Code, b.ServiceName, b.Passengers, b.BookingDate)
	html := fmt.Sprintf("<p>Booking <b>%s</b> untuk <b>%s</b> (%d penumpang, tanggal %s) sudah terkonfirmasi.</p>",
		b.Code, b.ServiceName, b.Passengers, b.BookingDate)
	return m.send(to, subject, html, text)
}

func (m MailService) send(to, subject, html, text string) error {
	if m.APIKey == "" {
		log.Printf("[MAIL] mock email to=%s subject=%q", to, subject)
		return nil
	}

	body, _ := json.Marshal(resendEmail{
		From:    m.from(),
		To:      to,
		Subject: subject,
		Html:    html,
		Text:    text,
	})

	req, err := http.NewRequest(http.MethodPost, resendAPI, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail API status %d", resp.StatusCode)
	}
	return nil
}
