package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/eventback/hallrental/internal/domain/errors"
	"github.com/eventback/hallrental/internal/domain/model"
	"github.com/eventback/hallrental/internal/usecase"
)

// MockHallRepository is a mock implementation of HallRepository
type MockHallRepository struct {
	mock.Mock
}

func (m *MockHallRepository) GetByID(ctx context.Context, id int64) (*model.Hall, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hall), args.Error(1)
}

func (m *MockHallRepository) List(ctx context.Context, limit int) ([]model.Hall, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.Hall), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListActiveByHall(ctx context.Context, hallID int64) ([]model.Booking, error) {
	args := m.Called(ctx, hallID)
	return args.Get(0).([]model.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testHall() *model.Hall {
	return &model.Hall{
		ID:          1,
		Name:        "Grand Ballroom",
		Capacity:    400,
		PricePerDay: decimal.NewFromInt(100),
	}
}

func TestBookingUsecase_GetHall(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("unknown hall maps to domain error", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(99)).Return(nil, nil)

		hall, err := uc.GetHall(ctx, 99)

		assert.Nil(t, hall)
		assert.ErrorIs(t, err, domainErrors.ErrHallNotFound)
		mockHalls.AssertExpectations(t)
	})
}

func TestBookingUsecase_IsAvailable(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	// Existing active booking occupies Jan 10 through Jan 12, inclusive.
	existing := []model.Booking{
		{
			ID:        7,
			HallID:    1,
			StartDate: date(2026, time.January, 10),
			EndDate:   date(2026, time.January, 12),
			Status:    model.BookingStatusPending,
		},
	}

	cases := []struct {
		name      string
		start     time.Time
		end       time.Time
		available bool
	}{
		{"fully before", date(2026, time.January, 5), date(2026, time.January, 8), true},
		{"fully after", date(2026, time.January, 14), date(2026, time.January, 16), true},
		{"identical range", date(2026, time.January, 10), date(2026, time.January, 12), false},
		{"contained inside", date(2026, time.January, 11), date(2026, time.January, 11), false},
		{"surrounding", date(2026, time.January, 8), date(2026, time.January, 15), false},
		{"ends on existing start", date(2026, time.January, 8), date(2026, time.January, 10), false},
		{"starts on existing end", date(2026, time.January, 12), date(2026, time.January, 14), false},
		{"ends day before start", date(2026, time.January, 8), date(2026, time.January, 9), true},
		{"starts day after end", date(2026, time.January, 13), date(2026, time.January, 14), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockHalls := new(MockHallRepository)
			mockBookings := new(MockBookingRepository)
			uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

			mockHalls.On("GetByID", ctx, int64(1)).Return(testHall(), nil)
			mockBookings.On("ListActiveByHall", ctx, int64(1)).Return(existing, nil)

			available, err := uc.IsAvailable(ctx, 1, tc.start, tc.end)

			assert.NoError(t, err)
			assert.Equal(t, tc.available, available)
		})
	}

	t.Run("unknown hall", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(42)).Return(nil, nil)

		_, err := uc.IsAvailable(ctx, 42, date(2026, time.January, 1), date(2026, time.January, 2))

		assert.ErrorIs(t, err, domainErrors.ErrHallNotFound)
		mockBookings.AssertNotCalled(t, "ListActiveByHall", mock.Anything, mock.Anything)
	})
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	input := usecase.CreateBookingInput{
		HallID:        1,
		StartDate:     date(2026, time.March, 1),
		EndDate:       date(2026, time.March, 3),
		CustomerName:  "Ada Okafor",
		CustomerEmail: "ada@example.com",
	}

	t.Run("total is inclusive day count times daily price", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(1)).Return(testHall(), nil)
		mockBookings.On("ListActiveByHall", ctx, int64(1)).Return([]model.Booking{}, nil)
		mockBookings.On("Create", ctx, mock.AnythingOfType("*model.Booking")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Booking).ID = 5
		}).Return(nil)

		booking, err := uc.CreateBooking(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), booking.ID)
		// 3 inclusive days at 100/day
		assert.Equal(t, "300.00", booking.TotalAmount.StringFixed(2))
		assert.Equal(t, model.BookingStatusPending, booking.Status)
		mockBookings.AssertExpectations(t)
	})

	t.Run("single day books one day", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(1)).Return(testHall(), nil)
		mockBookings.On("ListActiveByHall", ctx, int64(1)).Return([]model.Booking{}, nil)
		mockBookings.On("Create", ctx, mock.AnythingOfType("*model.Booking")).Return(nil)

		oneDay := input
		oneDay.EndDate = oneDay.StartDate

		booking, err := uc.CreateBooking(ctx, oneDay)

		assert.NoError(t, err)
		assert.Equal(t, "100.00", booking.TotalAmount.StringFixed(2))
	})

	t.Run("multi-century range totals exactly", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(1)).Return(testHall(), nil)
		mockBookings.On("ListActiveByHall", ctx, int64(1)).Return([]model.Booking{}, nil)
		mockBookings.On("Create", ctx, mock.AnythingOfType("*model.Booking")).Return(nil)

		// 400 Gregorian years span exactly 146097 days, 146098 inclusive.
		// Well past the ~292-year ceiling of a time.Duration.
		long := input
		long.StartDate = date(2000, time.January, 1)
		long.EndDate = date(2400, time.January, 1)

		booking, err := uc.CreateBooking(ctx, long)

		assert.NoError(t, err)
		assert.Equal(t, "14609800.00", booking.TotalAmount.StringFixed(2))
	})

	t.Run("conflicting dates reject without insert", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(1)).Return(testHall(), nil)
		mockBookings.On("ListActiveByHall", ctx, int64(1)).Return([]model.Booking{
			{
				ID:        9,
				HallID:    1,
				StartDate: date(2026, time.March, 3),
				EndDate:   date(2026, time.March, 5),
				Status:    model.BookingStatusConfirmed,
			},
		}, nil)

		booking, err := uc.CreateBooking(ctx, input)

		assert.Nil(t, booking)
		assert.ErrorIs(t, err, domainErrors.ErrDatesUnavailable)
		mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown hall", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)

		mockHalls.On("GetByID", ctx, int64(1)).Return(nil, nil)

		booking, err := uc.CreateBooking(ctx, input)

		assert.Nil(t, booking)
		assert.ErrorIs(t, err, domainErrors.ErrHallNotFound)
	})
}
