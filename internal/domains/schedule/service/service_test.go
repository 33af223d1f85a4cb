package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/otel/mocks"
	busMocks "busline/internal/domains/bus/mocks"
	busModel "busline/internal/domains/bus/model"
	routeMocks "busline/internal/domains/route/mocks"
	scheduleMocks "busline/internal/domains/schedule/mocks"
	"busline/internal/domains/schedule/model"
	"busline/internal/domains/schedule/model/dto"
	"busline/internal/domains/schedule/service"
	"busline/shared/constant"
	"busline/shared/failure"
)

func TestScheduleService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := scheduleMocks.NewMockSchedule(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockBusRepo := busMocks.NewMockBus(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRouteRepo, mockBusRepo, cfg, mockOtel)

	validReq := dto.CreateScheduleRequest{
		RouteID:        "2f0a4f3e-98c1-4b6e-b6ff-0b6a3a3dd001",
		BusID:          "2f0a4f3e-98c1-4b6e-b6ff-0b6a3a3dd002",
		DepartureDate:  "2026-09-15",
		DepartureTime:  "08:30",
		ArrivalTime:    "11:45",
		AvailableSeats: 40,
	}

	activeBus := busModel.Bus{
		ID:       validReq.BusID,
		Number:   "KA-01-F-2345",
		Capacity: 40,
		Status:   busModel.StatusActive,
	}

	tests := []struct {
		name      string
		req       dto.CreateScheduleRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBusRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBus, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, schedule model.Schedule) error {
						assert.Equal(t, validReq.RouteID, schedule.RouteID)
						assert.Equal(t, 40, schedule.AvailableSeats)
						assert.True(t, schedule.Active)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "unknown route",
			req:  validReq,
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "unknown bus",
			req:  validReq,
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBusRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(busModel.Bus{}, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "seats exceed bus capacity",
			req: dto.CreateScheduleRequest{
				RouteID:        validReq.RouteID,
				BusID:          validReq.BusID,
				DepartureDate:  validReq.DepartureDate,
				DepartureTime:  validReq.DepartureTime,
				ArrivalTime:    validReq.ArrivalTime,
				AvailableSeats: 60,
			},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBusRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBus, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "route check error",
			req:  validReq,
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockBusRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeBus, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
