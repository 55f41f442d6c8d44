package handlers

import (
	"log"
	"net/http"
	"strconv"

	intconfig "travelgo/internal/config"
	"travelgo/internal/http/middleware"
	"travelgo/internal/repositories"
	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

var mailer services.MailService

// SetMailer installs the notification sender from config at startup.
func SetMailer(m services.MailService) {
	mailer = m
}

type createBookingRequest struct {
	ServiceID   int64  `json:"service_id"`
	BookingDate string `json:"booking_date"`
	Passengers  int    `json:"passengers"`
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Passengers == 0 {
		req.Passengers = 1
	}

	svc := services.ReservationService{
		ServiceRepo: repositories.ServiceRepo{DB: intconfig.DB},
		BookingRepo: repositories.BookingRepo{DB: intconfig.DB},
		RequestID:   middleware.GetRequestID(c),
	}

	booking, err := svc.CreateBooking(services.CreateBookingInput{
		UserID:      middleware.GetUserID(c),
		ServiceID:   req.ServiceID,
		BookingDate: req.BookingDate,
		Passengers:  req.Passengers,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// Notifikasi email best-effort, tidak memblokir response.
	if email := middleware.GetUserEmail(c); email != "" {
		go func() {
			b, err := repositories.BookingRepo{DB: intconfig.DB}.GetOwnedByID(booking.ID, booking.UserID)
			if err != nil {
				return
			}
			if err := mailer.SendBookingConfirmation(email, b); err != nil {
				log.Printf("[MAIL] gagal kirim konfirmasi booking_id=%d: %v", booking.ID, err)
			}
		}()
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "booking berhasil dibuat",
		"booking_id": booking.ID,
		"booking":    booking,
	})
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	bookings, err := repositories.BookingRepo{}.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DELETE /api/bookings/:id
func CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id booking tidak valid", err)
		return
	}

	svc := services.ReservationService{
		ServiceRepo: repositories.ServiceRepo{DB: intconfig.DB},
		BookingRepo: repositories.BookingRepo{DB: intconfig.DB},
		RequestID:   middleware.GetRequestID(c),
	}

	if err := svc.CancelBooking(middleware.GetUserID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking berhasil dibatalkan"})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicketPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id booking tidak valid", err)
		return
	}

	svc := services.TicketService{
		BookingRepo: repositories.BookingRepo{DB: intconfig.DB},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateETicket(id, middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
