package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/kafka"
	"busline/infras/otel/mocks"
	bookingMocks "busline/internal/domains/booking/mocks"
	"busline/internal/domains/booking/model"
	"busline/internal/domains/booking/model/dto"
	"busline/internal/domains/booking/service"
	routeMocks "busline/internal/domains/route/mocks"
	routeModel "busline/internal/domains/route/model"
	scheduleMocks "busline/internal/domains/schedule/mocks"
	scheduleModel "busline/internal/domains/schedule/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"
	"busline/shared/timezone"
)

func newTestTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, smock, err := sqlmock.New()
	require.NoError(t, err)

	smock.MatchExpectationsInOrder(false)
	smock.ExpectBegin()
	smock.ExpectCommit()
	smock.ExpectRollback()

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx
}

func newFailingCommitTx(t *testing.T) *sqlx.Tx {
	t.Helper()

	db, smock, err := sqlmock.New()
	require.NoError(t, err)

	smock.ExpectBegin()
	smock.ExpectCommit().WillReturnError(errors.New("connection reset during commit"))

	tx, err := sqlx.NewDb(db, "sqlmock").Beginx()
	require.NoError(t, err)

	return tx
}

func testSchedule() scheduleModel.Schedule {
	return scheduleModel.Schedule{
		ID:             "3f1f9de2-8c41-4f8f-9a93-0b9f47a3cb11",
		RouteID:        "8e0e7c43-55a2-4d36-8f0d-2a40a8d9f002",
		BusID:          "b7a6e814-93c1-4a55-86f4-1f2d7f3f9c21",
		DepartureDate:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DepartureTime:  "08:30:00",
		ArrivalTime:    "14:45:00",
		AvailableSeats: 12,
		Active:         true,
		BusName:        "Hill Express",
		BusNumber:      "KA-01-F-2345",
		BusType:        "AC Sleeper",
		Fare:           450,
		Capacity:       40,
	}
}

func testRoute() routeModel.Route {
	return routeModel.Route{
		ID:                  "8e0e7c43-55a2-4d36-8f0d-2a40a8d9f002",
		SourceLocation:      "Bangalore",
		DestinationLocation: "Mysore",
		DistanceKM:          145,
		Active:              true,
	}
}

func TestBookingService_SearchOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, nil, nil, mockOtel)

	tests := []struct {
		name       string
		req        dto.SearchOffersRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantOffers int
	}{
		{
			name:      "same source and destination",
			req:       dto.SearchOffersRequest{From: "Bangalore", To: "bangalore", Date: "2026-09-15"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "malformed date",
			req:       dto.SearchOffersRequest{From: "Bangalore", To: "Mysore", Date: "15-09-2026"},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "no matching route is empty, not an error",
			req:  dto.SearchOffersRequest{From: "Bangalore", To: "Pune", Date: "2026-09-15"},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]routeModel.Route{}, nil)
			},
			wantErr:    false,
			wantOffers: 0,
		},
		{
			name: "route lookup unavailable",
			req:  dto.SearchOffersRequest{From: "Bangalore", To: "Mysore", Date: "2026-09-15"},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "offers sorted by route, chronological within route",
			req:  dto.SearchOffersRequest{From: "Bangalore", To: "Mysore", Date: "2026-09-15"},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]routeModel.Route{testRoute()}, nil)

				morning := testSchedule()
				evening := testSchedule()
				evening.ID = "5d7c3b90-11ef-48d2-b0d2-6f8f2e1a4c55"
				evening.DepartureTime = "18:00:00"
				evening.ArrivalTime = "23:50:00"

				mockScheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]scheduleModel.Schedule{morning, evening}, nil)
			},
			wantErr:    false,
			wantOffers: 2,
		},
		{
			name: "every schedule lookup failing is unavailable",
			req:  dto.SearchOffersRequest{From: "Bangalore", To: "Mysore", Date: "2026-09-15"},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]routeModel.Route{testRoute()}, nil)

				mockScheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "one failing route degrades instead of failing",
			req:  dto.SearchOffersRequest{From: "Bangalore", To: "Mysore", Date: "2026-09-15"},
			setupMock: func() {
				second := testRoute()
				second.ID = "0a7f1c55-4b1d-4f6e-9f9b-8a2d3e4f5a66"

				mockRouteRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]routeModel.Route{testRoute(), second}, nil)

				mockScheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]scheduleModel.Schedule{testSchedule()}, nil)

				mockScheduleRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("timeout"))
			},
			wantErr:    false,
			wantOffers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.SearchOffers(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Offers, tt.wantOffers)
			}
		})
	}
}

func TestBookingService_SearchOffers_MaxSeatsCappedByAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, nil, nil, mockOtel)

	nearlyFull := testSchedule()
	nearlyFull.AvailableSeats = 2

	mockRouteRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]routeModel.Route{testRoute()}, nil)

	mockScheduleRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]scheduleModel.Schedule{nearlyFull}, nil)

	res, err := svc.SearchOffers(context.Background(), dto.SearchOffersRequest{
		From: "Bangalore", To: "Mysore", Date: "2026-09-15",
	})

	assert.NoError(t, err)
	require.Len(t, res.Offers, 1)
	assert.Equal(t, 2, res.Offers[0].AvailableSeats)
	assert.Equal(t, 2, res.Offers[0].MaxSeatsPerBooking)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockPublisher := newRecordingPublisher()
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "busline.booking.created"

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, mockPublisher, nil, mockOtel)

	validReq := dto.CreateBookingRequest{
		ScheduleID:     "3f1f9de2-8c41-4f8f-9a93-0b9f47a3cb11",
		PassengerName:  "Asha Rao",
		PassengerPhone: "9876543210",
		PassengerEmail: "asha@example.com",
		Seats:          3,
	}

	tests := []struct {
		name          string
		req           dto.CreateBookingRequest
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantRemaining int
	}{
		{
			name: "seats above policy limit rejected before any write",
			req: dto.CreateBookingRequest{
				ScheduleID:     validReq.ScheduleID,
				PassengerName:  validReq.PassengerName,
				PassengerPhone: validReq.PassengerPhone,
				Seats:          6,
			},
			setupMock:     func() {},
			wantErr:       true,
			wantCode:      http.StatusBadRequest,
			wantRemaining: -1,
		},
		{
			name: "successful booking",
			req:  validReq,
			setupMock: func() {
				tx := newTestTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(true, nil)
				mockScheduleRepo.EXPECT().
					GetTx(gomock.Any(), tx, validReq.ScheduleID).
					Return(testSchedule(), nil)
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoute(), nil)
				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)
			},
			wantErr:       false,
			wantRemaining: -1,
		},
		{
			name: "sold out returns conflict with remaining seats",
			req:  validReq,
			setupMock: func() {
				tx := newTestTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(false, nil)

				remaining := testSchedule()
				remaining.AvailableSeats = 1
				mockScheduleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(remaining, nil)
			},
			wantErr:       true,
			wantCode:      http.StatusConflict,
			wantRemaining: 1,
		},
		{
			name: "unknown schedule",
			req:  validReq,
			setupMock: func() {
				tx := newTestTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(false, nil)
				mockScheduleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(scheduleModel.Schedule{}, nil)
			},
			wantErr:       true,
			wantCode:      http.StatusNotFound,
			wantRemaining: -1,
		},
		{
			name: "retired schedule",
			req:  validReq,
			setupMock: func() {
				tx := newTestTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(false, nil)

				retired := testSchedule()
				retired.Active = false
				mockScheduleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(retired, nil)
			},
			wantErr:       true,
			wantCode:      http.StatusBadRequest,
			wantRemaining: -1,
		},
		{
			name: "commit failure reports unknown outcome",
			req:  validReq,
			setupMock: func() {
				tx := newFailingCommitTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(true, nil)
				mockScheduleRepo.EXPECT().
					GetTx(gomock.Any(), tx, validReq.ScheduleID).
					Return(testSchedule(), nil)
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoute(), nil)
				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(nil)
			},
			wantErr:       true,
			wantCode:      http.StatusInternalServerError,
			wantRemaining: -1,
		},
		{
			name: "insert failure rolls back the reservation",
			req:  validReq,
			setupMock: func() {
				tx := newTestTx(t)

				mockScheduleRepo.EXPECT().BeginTx(gomock.Any()).Return(tx, nil)
				mockScheduleRepo.EXPECT().
					ReserveSeatsTx(gomock.Any(), tx, validReq.ScheduleID, validReq.Seats).
					Return(true, nil)
				mockScheduleRepo.EXPECT().
					GetTx(gomock.Any(), tx, validReq.ScheduleID).
					Return(testSchedule(), nil)
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testRoute(), nil)
				mockRepo.EXPECT().
					InsertTx(gomock.Any(), tx, gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr:       true,
			wantCode:      http.StatusInternalServerError,
			wantRemaining: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantRemaining, failure.GetRemaining(err))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, tt.req.Seats, res.SeatsBooked)
				assert.Equal(t, testSchedule().Fare*float64(tt.req.Seats), res.TotalFare)
				assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
				assert.Equal(t, "Bangalore", res.SourceLocation)
				assert.Equal(t, "Mysore", res.DestinationLocation)
				assert.Equal(t, "KA-01-F-2345", res.BusNumber)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, nil, nil, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "test-id", Status: constant.BookingStatusConfirmed, BookingDate: timezone.Now()}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, res.ID)
			}
		})
	}
}

func TestBookingService_GetMyBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, nil, nil, mockOtel)

	t.Run("missing email claim", func(t *testing.T) {
		_, err := svc.GetMyBookings(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("bookings for caller", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{
				{ID: "b-1", PassengerEmail: "asha@example.com", BookingDate: timezone.Now()},
				{ID: "b-2", PassengerEmail: "asha@example.com", BookingDate: timezone.Now()},
			}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "asha@example.com")
		res, err := svc.GetMyBookings(ctx)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "asha@example.com")
		_, err := svc.GetMyBookings(ctx)

		assert.Error(t, err)
	})
}

func TestBookingService_Ticket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, nil, nil, mockOtel)

	booking := model.Booking{
		ID:                  "b-1",
		PassengerName:       "Asha Rao",
		PassengerEmail:      "asha@example.com",
		SourceLocation:      "Bangalore",
		DestinationLocation: "Mysore",
		SeatsBooked:         2,
		TotalFare:           900,
		BusNumber:           "KA-01-F-2345",
		BusName:             "Hill Express",
		DepartureDate:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		DepartureTime:       "08:30:00",
		BookingDate:         timezone.Now(),
		Status:              constant.BookingStatusConfirmed,
	}

	t.Run("owner downloads a pdf", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "ASHA@example.com")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

		pdf, err := svc.Ticket(ctx, "b-1")

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 0)
		assert.Equal(t, "%PDF", string(pdf[:4]))
	})

	t.Run("admin may download any ticket", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "ops@example.com")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

		pdf, err := svc.Ticket(ctx, "b-1")

		assert.NoError(t, err)
		assert.True(t, len(pdf) > 0)
	})

	t.Run("other passenger is forbidden", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "other@example.com")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleUser)

		_, err := svc.Ticket(ctx, "b-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "asha@example.com")

		_, err := svc.Ticket(ctx, "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

// TestBookingService_Create_ConcurrentNeverOversells drives many bookings at a
// shared availability counter guarded the way the conditional seat decrement
// guards the schedule row. Successful bookings must never exceed capacity and
// the counter must never go negative.
func TestBookingService_Create_ConcurrentNeverOversells(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockScheduleRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockPublisher := newRecordingPublisher()
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "busline.booking.created"

	svc := service.New(mockRepo, mockScheduleRepo, mockRouteRepo, cfg, mockPublisher, nil, mockOtel)

	const (
		capacity  = 10
		seatsEach = 2
		workers   = 25
	)

	var mu sync.Mutex
	available := capacity

	mockScheduleRepo.EXPECT().
		BeginTx(gomock.Any()).
		DoAndReturn(func(context.Context) (*sqlx.Tx, error) {
			return newTestTx(t), nil
		}).
		AnyTimes()

	mockScheduleRepo.EXPECT().
		ReserveSeatsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ string, seats int) (bool, error) {
			mu.Lock()
			defer mu.Unlock()

			if available >= seats {
				available -= seats

				return true, nil
			}

			return false, nil
		}).
		AnyTimes()

	mockScheduleRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (scheduleModel.Schedule, error) {
			mu.Lock()
			defer mu.Unlock()

			snapshot := testSchedule()
			snapshot.AvailableSeats = available

			return snapshot, nil
		}).
		AnyTimes()

	mockScheduleRepo.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testSchedule(), nil).
		AnyTimes()

	mockRouteRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testRoute(), nil).
		AnyTimes()

	mockRepo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	req := dto.CreateBookingRequest{
		ScheduleID:     "3f1f9de2-8c41-4f8f-9a93-0b9f47a3cb11",
		PassengerName:  "Asha Rao",
		PassengerPhone: "9876543210",
		Seats:          seatsEach,
	}

	var (
		wg        sync.WaitGroup
		successes int64
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

			_, err := svc.Create(ctx, req)
			if err == nil {
				atomic.AddInt64(&successes, 1)

				return
			}

			assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(capacity/seatsEach), successes)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, available)
	assert.GreaterOrEqual(t, available, 0)
}

// recordingPublisher is a concurrency-safe stand-in for the Kafka publisher;
// the booking service publishes from a goroutine after commit.
type recordingPublisher struct {
	mu    sync.Mutex
	count int
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{}
}

func (p *recordingPublisher) SendMessages(_ context.Context, _ string, _ ...kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.count++

	return nil
}
