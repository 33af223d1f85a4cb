package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"busline/config"
	"busline/infras/otel/mocks"
	routeMocks "busline/internal/domains/route/mocks"
	"busline/internal/domains/route/model"
	"busline/internal/domains/route/model/dto"
	"busline/internal/domains/route/service"
	"busline/shared/constant"
	"busline/shared/failure"
)

func TestRouteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateRouteRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateRouteRequest{
				SourceLocation:      "Bangalore",
				DestinationLocation: "Mysore",
				DistanceKM:          145,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, route model.Route) error {
						assert.Equal(t, "Bangalore", route.SourceLocation)
						assert.Equal(t, "Mysore", route.DestinationLocation)
						assert.True(t, route.Active)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "endpoints are trimmed",
			req: dto.CreateRouteRequest{
				SourceLocation:      " Bangalore ",
				DestinationLocation: " Mysore ",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, route model.Route) error {
						assert.Equal(t, "Bangalore", route.SourceLocation)
						assert.Equal(t, "Mysore", route.DestinationLocation)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "same endpoints rejected",
			req: dto.CreateRouteRequest{
				SourceLocation:      "Bangalore",
				DestinationLocation: "bangalore",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "duplicate route",
			req: dto.CreateRouteRequest{
				SourceLocation:      "Bangalore",
				DestinationLocation: "Mysore",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "existence check error",
			req: dto.CreateRouteRequest{
				SourceLocation:      "Bangalore",
				DestinationLocation: "Mysore",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
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

func TestRouteService_FindActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	routes := []model.Route{
		{
			ID:                  "route-1",
			SourceLocation:      "Bangalore",
			DestinationLocation: "Mysore",
			DistanceKM:          145,
			Active:              true,
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "routes found",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(routes, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name: "no routes",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Route{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.FindActive(context.Background(), "Bangalore", "Mysore")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
		})
	}
}
