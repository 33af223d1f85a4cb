//go:build wireinject
// +build wireinject

package di

import (
	"busline/config"
	"busline/infras/jwt"
	"busline/infras/kafka"
	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/infras/redis"
	"busline/infras/s3"
	"busline/permissions"
	"busline/shared/cache"
	"busline/transport/http"
	"busline/transport/http/middleware"
	"busline/transport/http/router"

	"github.com/google/wire"

	assistantService "busline/internal/domains/assistant/service"
	authService "busline/internal/domains/auth/service"
	bookingRepository "busline/internal/domains/booking/repository"
	bookingService "busline/internal/domains/booking/service"
	busRepository "busline/internal/domains/bus/repository"
	busService "busline/internal/domains/bus/service"
	directionsService "busline/internal/domains/directions/service"
	locationRepository "busline/internal/domains/location/repository"
	locationService "busline/internal/domains/location/service"
	routeRepository "busline/internal/domains/route/repository"
	routeService "busline/internal/domains/route/service"
	scheduleRepository "busline/internal/domains/schedule/repository"
	scheduleService "busline/internal/domains/schedule/service"
	userRepository "busline/internal/domains/user/repository"

	assistantHandler "busline/internal/handlers/assistant"
	authHandler "busline/internal/handlers/auth"
	bookingHandler "busline/internal/handlers/booking"
	busHandler "busline/internal/handlers/bus"
	directionsHandler "busline/internal/handlers/directions"
	locationHandler "busline/internal/handlers/location"
	routeHandler "busline/internal/handlers/route"
	scheduleHandler "busline/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var locationDomain = wire.NewSet(
	locationRepository.New,
	locationService.New,
)

var routeDomain = wire.NewSet(
	routeRepository.New,
	routeService.New,
)

var busDomain = wire.NewSet(
	busRepository.New,
	busService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	scheduleService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var assistantDomain = wire.NewSet(
	assistantService.New,
)

var directionsDomain = wire.NewSet(
	directionsService.New,
)

var domains = wire.NewSet(
	authDomain,
	locationDomain,
	routeDomain,
	busDomain,
	scheduleDomain,
	bookingDomain,
	assistantDomain,
	directionsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	locationHandler.New,
	routeHandler.New,
	busHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
	assistantHandler.New,
	directionsHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
