package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"busline/config"
	"busline/infras/kafka"
	"busline/infras/otel"
	"busline/infras/s3"
	"busline/internal/domains/booking/model"
	"busline/internal/domains/booking/model/dto"
	"busline/internal/domains/booking/repository"
	busModel "busline/internal/domains/bus/model"
	routeModel "busline/internal/domains/route/model"
	routeRepo "busline/internal/domains/route/repository"
	scheduleModel "busline/internal/domains/schedule/model"
	scheduleRepo "busline/internal/domains/schedule/repository"
	"busline/shared"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/failure"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	SearchOffers(ctx context.Context, req dto.SearchOffersRequest) (dto.SearchOffersResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (dto.GetBookingsResponse, error)
	Ticket(ctx context.Context, id string) ([]byte, error)
}

type serviceImpl struct {
	repo         repository.Booking
	scheduleRepo scheduleRepo.Schedule
	routeRepo    routeRepo.Route
	cfg          *config.Config
	publisher    kafka.Publisher
	s3           s3.S3
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	scheduleRepo scheduleRepo.Schedule,
	routeRepo routeRepo.Route,
	cfg *config.Config,
	publisher kafka.Publisher,
	s3 s3.S3,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		routeRepo:    routeRepo,
		cfg:          cfg,
		publisher:    publisher,
		s3:           s3,
		otel:         otel,
	}
}

// SearchOffers lists bookable departures for a source, destination and date.
// No matching route is an empty result, not an error. A route whose schedule
// lookup fails is skipped as long as at least one other route resolved.
func (s *serviceImpl) SearchOffers(ctx context.Context, req dto.SearchOffersRequest) (res dto.SearchOffersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchOffers")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Offers = []dto.OfferResponse{}

	if strings.EqualFold(strings.TrimSpace(req.From), strings.TrimSpace(req.To)) {
		return res, failure.BadRequestFromString("source and destination must differ") // nolint:wrapcheck
	}

	departureDate, err := time.Parse(constant.DateOnlyFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	routes, err := s.routeRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: routeModel.FieldSourceLocation, SortDir: constant.SortAscending},
		routeRepo.FilterActiveEndpoints(req.From, req.To))
	if err != nil {
		log.Error().Err(err).Msg("failed to find routes")

		return res, failure.Unavailable("route lookup unavailable") // nolint:wrapcheck
	}

	if len(routes) == 0 {
		return res, nil
	}

	failed := 0

	for _, route := range routes {
		schedules, err := s.scheduleRepo.GetAll(ctx,
			gDto.QueryParams{SortBy: scheduleModel.FieldDepartureTime, SortDir: constant.SortAscending},
			scheduleFilter(route.ID, departureDate))
		if err != nil {
			log.Error().Err(err).Str("routeID", route.ID).Msg("failed to get schedules for route")

			failed++

			continue
		}

		for _, schedule := range schedules {
			var offer dto.OfferResponse

			offer.FromModels(schedule, route, s.maxSeats())
			res.Offers = append(res.Offers, offer)
		}
	}

	if failed == len(routes) {
		return res, failure.Unavailable("schedule lookup unavailable") // nolint:wrapcheck
	}

	return res, nil
}

// Create reserves seats and records the booking in one transaction. The seat
// decrement is conditional on enough seats remaining, so two concurrent
// bookings can never oversell a schedule.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Seats < 1 || req.Seats > s.maxSeats() {
		return res, failure.BadRequestFromString(fmt.Sprintf("seats must be between 1 and %d", s.maxSeats())) // nolint:wrapcheck
	}

	sqltx, err := s.scheduleRepo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin booking transaction")

		return res, fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	committed := false

	defer func() {
		if !committed {
			if rollbackErr := sqltx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	reserved, err := s.scheduleRepo.ReserveSeatsTx(ctx, sqltx, req.ScheduleID, req.Seats)
	if err != nil {
		log.Error().Err(err).Msg("failed to reserve seats")

		return res, fmt.Errorf("failed to reserve seats: %w", err)
	}

	if !reserved {
		return res, s.classifyReservationFailure(ctx, req.ScheduleID)
	}

	schedule, err := s.scheduleRepo.GetTx(ctx, sqltx, req.ScheduleID)
	if err != nil {
		log.Error().Err(err).Msg("failed to load schedule")

		return res, fmt.Errorf("failed to load schedule: %w", err)
	}

	route, err := s.routeRepo.Get(ctx, shared.FilterByID(schedule.RouteID, routeModel.FieldID, routeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to load route")

		return res, fmt.Errorf("failed to load route: %w", err)
	}

	if route.ID == constant.Empty {
		return res, failure.BadRequestFromString("schedule has no active route") // nolint:wrapcheck
	}

	booking := req.ToModel(user, schedule, route)

	if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("booking commit failed with unknown outcome")

		return res, failure.UnknownOutcome("failed to finalize booking") // nolint:wrapcheck
	}

	committed = true

	s.publishBookingCreated(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// classifyReservationFailure re-reads the schedule after a reservation came
// back empty to tell exhausted capacity apart from a missing or retired
// schedule.
func (s *serviceImpl) classifyReservationFailure(ctx context.Context, scheduleID string) error {
	schedule, err := s.scheduleRepo.Get(ctx, shared.FilterByID(scheduleID, scheduleModel.FieldID, scheduleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to re-read schedule availability")

		return fmt.Errorf("failed to re-read schedule availability: %w", err)
	}

	if schedule.ID == constant.Empty {
		return failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	if !schedule.Active {
		return failure.BadRequestFromString("schedule is no longer active") // nolint:wrapcheck
	}

	return failure.CapacityConflict(schedule.AvailableSeats) // nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// GetMyBookings scopes to the caller's email claim, newest first.
func (s *serviceImpl) GetMyBookings(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Bookings = []dto.BookingResponse{}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	if email == constant.Empty {
		return res, failure.Unauthorized("missing email claim") // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.FieldBookingDate, SortDir: constant.SortDescending},
		gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{Field: model.FieldPassengerEmail, Operator: gDto.FilterOperatorEq, Value: email, Table: model.TableName},
			},
		})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// Ticket renders the booking as a PDF and archives a copy to S3 best effort.
func (s *serviceImpl) Ticket(ctx context.Context, id string) (pdf []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingTicket")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if role != constant.RoleAdmin && !strings.EqualFold(email, booking.PassengerEmail) {
		return nil, failure.Forbidden("ticket belongs to another passenger") // nolint:wrapcheck
	}

	pdf, err = renderTicket(booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to render ticket")

		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	s.archiveTicket(ctx, booking.ID, pdf)

	return pdf, nil
}

func (s *serviceImpl) archiveTicket(ctx context.Context, bookingID string, pdf []byte) {
	if !s.cfg.External.S3.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		fileName := fmt.Sprintf("%s.pdf", bookingID)
		if _, err := s.s3.UploadBytes(c, s.cfg.External.S3.BucketName, s.cfg.External.S3.TicketDir, fileName, constant.ContentTypePDF, pdf); err != nil {
			log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to archive ticket to S3")
		}
	}()
}

func (s *serviceImpl) publishBookingCreated(ctx context.Context, booking model.Booking) {
	go func() {
		c := context.WithoutCancel(ctx)

		var event dto.BookingCreatedEvent

		event.FromModel(booking)

		err := s.publisher.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking created event")
		}
	}()
}

func (s *serviceImpl) maxSeats() int {
	if s.cfg.Booking.MaxSeats > 0 {
		return s.cfg.Booking.MaxSeats
	}

	return constant.DefaultMaxSeatsPerBooking
}

func scheduleFilter(routeID string, departureDate time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: scheduleModel.FieldRouteID, Operator: gDto.FilterOperatorEq, Value: routeID, Table: scheduleModel.TableName},
			gDto.Filter{Field: scheduleModel.FieldDepartureDate, Operator: gDto.FilterOperatorEq, Value: departureDate, Table: scheduleModel.TableName},
			gDto.Filter{Field: scheduleModel.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: scheduleModel.TableName},
			gDto.Filter{ArgName: "available_seats_min", Field: scheduleModel.FieldAvailableSeats, Operator: gDto.FilterOperatorGreater, Value: 0, Table: scheduleModel.TableName},
			gDto.Filter{ArgName: "bus_status", Field: busModel.FieldStatus, Operator: gDto.FilterOperatorEq, Value: busModel.StatusActive, Table: busModel.TableName},
		},
	}
}
