package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"busline/infras/otel"
	"busline/infras/postgres"
	"busline/internal/domains/schedule/model"
	"busline/shared/constant"
	gDto "busline/shared/dto"
	"busline/shared/logger"
	gRepo "busline/shared/repository"
	"busline/shared/timezone"
)

type Schedule interface {
	Insert(ctx context.Context, model model.Schedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Schedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Schedule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	ReserveSeatsTx(ctx context.Context, sqltx *sqlx.Tx, scheduleID string, seats int) (bool, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, scheduleID string) (model.Schedule, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Schedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Schedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReserveSeatsTx decrements available seats only when the schedule is active
// and still has at least the requested count. The guard and the decrement run
// in a single statement so concurrent bookings can never drive the count
// negative. Returns false when the row no longer qualifies.
func (repo *repositoryImpl) ReserveSeatsTx(ctx context.Context, sqltx *sqlx.Tx, scheduleID string, seats int) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.ReserveSeatsTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s - :seats, modified_at = :modified_at WHERE %s = :id AND %s = TRUE AND %s >= :seats",
		model.TableName,
		model.FieldAvailableSeats, model.FieldAvailableSeats,
		model.FieldID, model.FieldActive, model.FieldAvailableSeats,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := sqltx.NamedExecContext(ctx, query, map[string]any{
		"id":          scheduleID,
		"seats":       seats,
		"modified_at": timezone.Now(),
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to reserve seats (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to reserve seats (%s): %w", model.EntityName, err)
	}

	return affected == 1, nil
}

// GetTx reads a schedule with its bus inside the given transaction.
func (repo *repositoryImpl) GetTx(ctx context.Context, sqltx *sqlx.Tx, scheduleID string) (model.Schedule, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.GetTx")
	defer scope.End()

	var res model.Schedule

	query := fmt.Sprintf(
		`SELECT schedules.id, schedules.route_id, schedules.bus_id, schedules.departure_date,
			schedules.departure_time, schedules.arrival_time, schedules.available_seats, schedules.is_active,
			buses.name AS bus_name, buses.number AS bus_number, buses.bus_type, buses.operator AS bus_operator,
			buses.fare, buses.capacity, buses.amenities AS bus_amenities
		FROM %s JOIN buses ON buses.id = schedules.bus_id
		WHERE schedules.%s = $1`,
		model.TableName, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := sqltx.GetContext(ctx, &res, query, scheduleID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return res, nil
}
