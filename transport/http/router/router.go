package router

import (
	"busline/internal/handlers/assistant"
	"busline/internal/handlers/auth"
	"busline/internal/handlers/booking"
	"busline/internal/handlers/bus"
	"busline/internal/handlers/directions"
	"busline/internal/handlers/location"
	"busline/internal/handlers/route"
	"busline/internal/handlers/schedule"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Location   location.Handler
	Route      route.Handler
	Bus        bus.Handler
	Schedule   schedule.Handler
	Booking    booking.Handler
	Assistant  assistant.Handler
	Directions directions.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Location.Router(routerGroup)
		r.DomainHandlers.Route.Router(routerGroup)
		r.DomainHandlers.Bus.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Assistant.Router(routerGroup)
		r.DomainHandlers.Directions.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
