package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/domain/model"
	"github.com/eventback/hallrental/internal/domain/repository"
)

// BookingUsecase implements hall listing, availability checking and booking
// creation.
type BookingUsecase struct {
	hallRepo    repository.HallRepository
	bookingRepo repository.BookingRepository
	logger      *zap.Logger
}

// NewBookingUsecase creates a new booking usecase
func NewBookingUsecase(
	hallRepo repository.HallRepository,
	bookingRepo repository.BookingRepository,
	logger *zap.Logger,
) *BookingUsecase {
	return &BookingUsecase{
		hallRepo:    hallRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// CreateBookingInput carries validated booking fields. Dates are calendar
// dates; parsing belongs to the HTTP layer.
type CreateBookingInput struct {
	HallID        int64
	StartDate     time.Time
	EndDate       time.Time
	CustomerName  string
	CustomerEmail string
}

func (u *BookingUsecase) ListHalls(ctx context.Context, limit int) ([]model.Hall, error) {
	return u.hallRepo.List(ctx, limit)
}

func (u *BookingUsecase) GetHall(ctx context.Context, id int64) (*model.Hall, error) {
	hall, err := u.hallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hall == nil {
		return nil, domainErrors.ErrHallNotFound
	}
	return hall, nil
}

// IsAvailable reports whether the hall has no pending or confirmed booking
// overlapping the inclusive [start, end] range. Touching ranges conflict: a
// booking ending on a given day blocks another starting that same day.
func (u *BookingUsecase) IsAvailable(ctx context.Context, hallID int64, start, end time.Time) (bool, error) {
	if _, err := u.GetHall(ctx, hallID); err != nil {
		return false, err
	}

	conflict, err := u.findConflict(ctx, hallID, start, end)
	if err != nil {
		return false, err
	}
	return conflict == nil, nil
}

// CreateBooking validates input, computes the total and persists a pending
// booking. The availability check and the insert are not wrapped in a
// transaction, so two concurrent callers can both pass the check; callers at
// this volume accept the race.
func (u *BookingUsecase) CreateBooking(ctx context.Context, input CreateBookingInput) (*model.Booking, error) {
	hall, err := u.GetHall(ctx, input.HallID)
	if err != nil {
		return nil, err
	}

	days := inclusiveDays(input.StartDate, input.EndDate)
	total := hall.PricePerDay.Mul(decimal.NewFromInt(days))

	conflict, err := u.findConflict(ctx, input.HallID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		u.logger.Info("Booking rejected: dates unavailable",
			zap.Int64("hall_id", input.HallID),
			zap.Int64("conflicting_booking_id", conflict.ID))
		return nil, domainErrors.ErrDatesUnavailable
	}

	booking := &model.Booking{
		HallID:        input.HallID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalAmount:   total,
		Status:        model.BookingStatusPending,
	}
	if err := u.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	u.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("hall_id", booking.HallID),
		zap.String("total_amount", total.StringFixed(2)))

	return booking, nil
}

func (u *BookingUsecase) findConflict(ctx context.Context, hallID int64, start, end time.Time) (*model.Booking, error) {
	bookings, err := u.bookingRepo.ListActiveByHall(ctx, hallID)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		if datesOverlap(bookings[i].StartDate, bookings[i].EndDate, start, end) {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

// datesOverlap tests inclusive-range overlap: aStart <= bEnd && bStart <= aEnd.
func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// inclusiveDays counts calendar days in [start, end], both ends included.
// A reversed range yields a non-positive count and with it a non-positive
// total; reversed ranges are not rejected here.
func inclusiveDays(start, end time.Time) int64 {
	return epochDays(end) - epochDays(start) + 1
}

// epochDays converts a date to whole days since the Unix epoch. Calendar
// arithmetic, not Sub: a time.Duration caps out near 292 years and would
// silently clamp multi-century ranges.
func epochDays(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
