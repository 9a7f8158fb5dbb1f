package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/psqlbuilder"
)

// pqExclusionViolation SQLSTATE нарушения EXCLUDE-ограничения
const pqExclusionViolation = "23P01"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"venue_id",
	"group_id",
	"group_name",
	"title",
	"start_time",
	"end_time",
	"status",
	"allow_overlap",
	"created_by",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Пересечение с другим подтвержденным бронированием без allow_overlap отсекается
// ограничением БД bookings_no_overlap - в этом случае возвращается ErrOverlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"venue_id",
			"group_id",
			"group_name",
			"title",
			"start_time",
			"end_time",
			"status",
			"allow_overlap",
			"created_by",
			"notes",
		).
		Values(
			booking.VenueID,
			booking.GroupID,
			booking.GroupName,
			booking.Title,
			booking.StartTime.UTC(),
			booking.EndTime.UTC(),
			booking.Status,
			booking.AllowOverlap,
			booking.CreatedBy,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if isExclusionViolation(err) {
		return nil, ErrOverlap
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку - бронирование будет изменено
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByVenueWithFilter получает бронирования площадки, пересекающиеся с периодом [From, To)
// Результат отсортирован по времени начала (ASC), при равенстве - по ID.
//
// Если используется транзакция, строки блокируются (FOR UPDATE), чтобы проверка конфликтов
// и запись нового бронирования выполнялись над одним и тем же состоянием
//
// Примеры использования:
//
//  1. Активные бронирования на день (для проверки конфликтов):
//     filter := domain.VenueBookingsFilter{VenueID: 7, From: dayStart, To: dayEnd}
//
//  2. То же при редактировании бронирования 42:
//     filter := domain.VenueBookingsFilter{VenueID: 7, From: dayStart, To: dayEnd, ExcludeID: ptr.Ptr(int64(42))}
//
//  3. Все бронирования дня включая отмененные:
//     filter := domain.VenueBookingsFilter{VenueID: 7, From: dayStart, To: dayEnd, IncludeInactive: true}
func (r *Repository) GetByVenueWithFilter(ctx context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Пересечение интервалов: start_time < To AND end_time > From
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"venue_id": filter.VenueID}).
		Where(squirrel.Lt{"start_time": filter.To.UTC()}).
		Where(squirrel.Gt{"end_time": filter.From.UTC()})

	// Исключение бронирования (редактирование самого себя)
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": domain.StatusConfirmed})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateTime переносит бронирование на новый интервал
// allowOverlap фиксирует, прошел ли перенос через проверку конфликтов
func (r *Repository) UpdateTime(ctx context.Context, id int64, startTime, endTime time.Time, allowOverlap bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_time", startTime.UTC()).
		Set("end_time", endTime.UTC()).
		Set("allow_overlap", allowOverlap).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTime - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isExclusionViolation(err) {
		return ErrOverlap
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateTime - execute update: %w", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateTime")
}

// Cancel отменяет бронирование с указанием причины
// Уже отмененное бронирование повторно не отменяется (ErrCannotCancel)
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusConfirmed}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	if err := checkAffected(result, "Cancel"); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return ErrCannotCancel
		}
		return err
	}

	return nil
}

// checkAffected проверяет, что запрос изменил хотя бы одну строку
func checkAffected(result sql.Result, operation string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, operation, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// isExclusionViolation проверяет, что ошибка - нарушение EXCLUDE-ограничения
func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqExclusionViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.GroupID,
		&booking.GroupName,
		&booking.Title,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.AllowOverlap,
		&booking.CreatedBy,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartTime = booking.StartTime.UTC()
	booking.EndTime = booking.EndTime.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
