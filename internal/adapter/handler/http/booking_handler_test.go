package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handlers "github.com/eventback/hallrental/internal/adapter/handler/http"
	"github.com/eventback/hallrental/internal/config"
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

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func providersConfig() config.ProvidersConfig {
	return config.ProvidersConfig{
		PayPal:   config.PayPalConfig{ClientID: "paypal-client", Currency: "USD"},
		Stripe:   config.StripeConfig{PublicKey: "pk_test_123"},
		Paystack: config.PaystackConfig{PublicKey: "pk_paystack"},
	}
}

func grandBallroom() *model.Hall {
	return &model.Hall{
		ID:          1,
		Name:        "Grand Ballroom",
		Capacity:    400,
		PricePerDay: decimal.NewFromInt(100),
	}
}

func TestBookingHandler_CheckAvailability(t *testing.T) {
	logger := zap.NewNop()

	t.Run("free range", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)
		handler := handlers.NewBookingHandler(uc, logger)

		mockHalls.On("GetByID", mock.Anything, int64(1)).Return(grandBallroom(), nil)
		mockBookings.On("ListActiveByHall", mock.Anything, int64(1)).Return([]model.Booking{}, nil)

		e := newEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/?hall_id=1&start_date=2026-03-01&end_date=2026-03-03", nil)
		rec := httptest.NewRecorder()

		err := handler.CheckAvailability(e.NewContext(req, rec))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["available"])
	})

	t.Run("missing params", func(t *testing.T) {
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(new(MockHallRepository), new(MockBookingRepository), logger), logger)

		e := newEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CheckAvailability(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(new(MockHallRepository), new(MockBookingRepository), logger), logger)

		e := newEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/?hall_id=1&start_date=03-01-2026&end_date=2026-03-03", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CheckAvailability(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown hall", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(mockHalls, mockBookings, logger), logger)

		mockHalls.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		e := newEcho()
		req := httptest.NewRequest(http.MethodGet, "/api/availability/?hall_id=99&start_date=2026-03-01&end_date=2026-03-03", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CheckAvailability(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	logger := zap.NewNop()

	validBody := `{
		"hall_id": 1,
		"start_date": "2026-03-01",
		"end_date": "2026-03-03",
		"customer_name": "Ada Okafor",
		"customer_email": "ada@example.com"
	}`

	t.Run("creates pending booking", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(mockHalls, mockBookings, logger), logger)

		mockHalls.On("GetByID", mock.Anything, int64(1)).Return(grandBallroom(), nil)
		mockBookings.On("ListActiveByHall", mock.Anything, int64(1)).Return([]model.Booking{}, nil)
		mockBookings.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Booking).ID = 5
		}).Return(nil)

		e := newEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CreateBooking(e.NewContext(jsonRequest(http.MethodPost, "/api/book/", validBody), rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, float64(5), body["booking_id"])
		assert.Equal(t, "300.00", body["total_amount"])
	})

	t.Run("conflicting dates return 409", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		mockBookings := new(MockBookingRepository)
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(mockHalls, mockBookings, logger), logger)

		mockHalls.On("GetByID", mock.Anything, int64(1)).Return(grandBallroom(), nil)
		mockBookings.On("ListActiveByHall", mock.Anything, int64(1)).Return([]model.Booking{
			{
				ID:        9,
				HallID:    1,
				StartDate: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
				Status:    model.BookingStatusPending,
			},
		}, nil)

		e := newEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CreateBooking(e.NewContext(jsonRequest(http.MethodPost, "/api/book/", validBody), rec)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Hall not available for selected dates", decodeBody(t, rec)["error"])
		mockBookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(new(MockHallRepository), new(MockBookingRepository), logger), logger)

		body := strings.Replace(validBody, "ada@example.com", "not-an-email", 1)
		e := newEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CreateBooking(e.NewContext(jsonRequest(http.MethodPost, "/api/book/", body), rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(new(MockHallRepository), new(MockBookingRepository), logger), logger)

		e := newEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CreateBooking(e.NewContext(jsonRequest(http.MethodPost, "/api/book/", `{"hall_id": 1}`), rec)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown hall returns 404", func(t *testing.T) {
		mockHalls := new(MockHallRepository)
		handler := handlers.NewBookingHandler(
			usecase.NewBookingUsecase(mockHalls, new(MockBookingRepository), logger), logger)

		mockHalls.On("GetByID", mock.Anything, int64(1)).Return(nil, nil)

		e := newEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, handler.CreateBooking(e.NewContext(jsonRequest(http.MethodPost, "/api/book/", validBody), rec)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHallHandler_ListHalls(t *testing.T) {
	logger := zap.NewNop()

	mockHalls := new(MockHallRepository)
	mockBookings := new(MockBookingRepository)
	uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)
	handler := handlers.NewHallHandler(uc, providersConfig(), "http://localhost:8080", logger)

	mockHalls.On("List", mock.Anything, 0).Return([]model.Hall{*grandBallroom()}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/api/halls/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.ListHalls(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	halls := decodeBody(t, rec)["halls"].([]interface{})
	require.Len(t, halls, 1)
	hall := halls[0].(map[string]interface{})
	assert.Equal(t, "Grand Ballroom", hall["name"])
	assert.Equal(t, "100.00", hall["price_per_day"])
}

func TestHallHandler_Home(t *testing.T) {
	logger := zap.NewNop()

	mockHalls := new(MockHallRepository)
	mockBookings := new(MockBookingRepository)
	uc := usecase.NewBookingUsecase(mockHalls, mockBookings, logger)
	handler := handlers.NewHallHandler(uc, providersConfig(), "http://localhost:8080", logger)

	mockHalls.On("List", mock.Anything, 8).Return([]model.Hall{*grandBallroom()}, nil)

	e := newEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Home(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "pk_test_123", body["stripe_public_key"])
	assert.Equal(t, "paypal-client", body["paypal_client_id"])
	assert.Equal(t, "pk_paystack", body["paystack_public_key"])
	assert.Equal(t, "http://localhost:8080", body["site_url"])
	assert.NotEmpty(t, body["halls"])
}
