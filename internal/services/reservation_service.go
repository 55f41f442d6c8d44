package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "travelgo/internal/config"
	intdb "travelgo/internal/db"
	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"

	"github.com/google/uuid"
)

// ReservationService reconciles seat inventory with the booking ledger.
// Every operation is one transaction: the seat read runs under FOR UPDATE so
// concurrent requests on the same service serialize on the row lock, and the
// seat mutation plus the booking write commit or roll back together. The
// service never retries a conflicted transaction; the caller decides.
type ReservationService struct {
	ServiceRepo repositories.ServiceRepo
	BookingRepo repositories.BookingRepo
	DB          *sql.DB
	RequestID   string
}

func (s ReservationService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type CreateBookingInput struct {
	UserID      int64
	ServiceID   int64
	BookingDate string
	Passengers  int
}

// CreateBooking reserves seats and records the booking atomically. Fails
// with InsufficientSeatsError without any write when not enough seats
// remain, and with NotFoundError when the service does not exist.
func (s ReservationService) CreateBooking(in CreateBookingInput) (models.Booking, error) {
	if in.ServiceID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "service_id", Msg: "id tidak valid"}
	}
	if in.Passengers < 1 {
		return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "minimal 1 penumpang"}
	}
	date := strings.TrimSpace(in.BookingDate)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return models.Booking{}, domain.ValidationError{Field: "booking_date", Msg: "format tanggal harus YYYY-MM-DD", Err: err}
	}

	db := s.db()
	if db == nil {
		return models.Booking{}, domain.InternalError{Msg: "database belum terhubung"}
	}

	tx, err := db.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "gagal mulai transaksi", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	seats, err := s.ServiceRepo.SeatsForUpdate(tx, in.ServiceID)
	if err != nil {
		return models.Booking{}, classifyTxError(err, "gagal cek kursi")
	}
	if seats < in.Passengers {
		return models.Booking{}, domain.InsufficientSeatsError{
			ServiceID: in.ServiceID,
			Requested: in.Passengers,
			Available: seats,
		}
	}

	if err := s.ServiceRepo.AdjustSeats(tx, in.ServiceID, -in.Passengers); err != nil {
		return models.Booking{}, classifyTxError(err, "gagal update kursi")
	}

	booking := models.Booking{
		Code:        uuid.NewString(),
		UserID:      in.UserID,
		ServiceID:   in.ServiceID,
		BookingDate: date,
		Passengers:  in.Passengers,
		Status:      string(domain.BookingConfirmed),
	}
	id, err := s.BookingRepo.Insert(tx, booking)
	if err != nil {
		return models.Booking{}, classifyTxError(err, "gagal simpan booking")
	}
	booking.ID = id

	if err := tx.Commit(); err != nil {
		return models.Booking{}, classifyTxError(err, "gagal commit transaksi")
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d service_id=%d passengers=%d", id, in.ServiceID, in.Passengers))
	return booking, nil
}

// CancelBooking flips a confirmed booking to cancelled and returns its seats
// to the service, atomically. At most one concurrent cancel of the same
// booking succeeds; the rest observe NotFoundError.
func (s ReservationService) CancelBooking(userID, bookingID int64) error {
	if bookingID <= 0 {
		return domain.ValidationError{Field: "booking_id", Msg: "id tidak valid"}
	}

	db := s.db()
	if db == nil {
		return domain.InternalError{Msg: "database belum terhubung"}
	}

	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Msg: "gagal mulai transaksi", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	serviceID, passengers, err := s.BookingRepo.OwnedConfirmedForUpdate(tx, bookingID, userID)
	if err != nil {
		return classifyTxError(err, "gagal cek booking")
	}

	if err := s.BookingRepo.MarkCancelled(tx, bookingID); err != nil {
		return classifyTxError(err, "gagal update status booking")
	}
	if err := s.ServiceRepo.AdjustSeats(tx, serviceID, passengers); err != nil {
		return classifyTxError(err, "gagal kembalikan kursi")
	}

	if err := tx.Commit(); err != nil {
		return classifyTxError(err, "gagal commit transaksi")
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%d service_id=%d passengers=%d", bookingID, serviceID, passengers))
	return nil
}

// classifyTxError keeps domain errors as-is and maps storage errors:
// deadlock / lock wait timeout become retryable conflicts, everything else
// is internal. The surrounding transaction has already been rolled back.
func classifyTxError(err error, msg string) error {
	switch {
	case domain.IsNotFound(err), domain.IsValidation(err), domain.IsInsufficientSeats(err), domain.IsConflict(err):
		return err
	case intdb.IsSerializationFailure(err):
		return domain.ConflictError{Resource: "booking", Msg: "transaksi bentrok, coba lagi", Err: err}
	default:
		return domain.InternalError{Msg: msg, Err: err}
	}
}
