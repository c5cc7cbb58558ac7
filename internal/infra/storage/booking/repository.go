package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/dbmetrics"
	"github.com/jaysonsaraujo/phm-app/pkg/psqlbuilder"
)

// Колонки выборки бронирования (с JOIN-ами для имен места и целебранта)
var selectColumns = []string{
	"b.id",
	"b.wedding_date",
	"b.start_time",
	"b.location_id",
	"b.celebrant_id",
	"b.bride_name",
	"b.bride_phone",
	"b.groom_name",
	"b.groom_phone",
	"b.status",
	"b.notes",
	"l.name AS location_name",
	"c.full_name AS celebrant_name",
	"b.cancellation_reason",
	"b.cancelled_at",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с бронированиями венчаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Сохранение после проверки конфликтов обязано выполняться в той же
// SERIALIZABLE транзакции, что и сама проверка - иначе два параллельных
// запроса могут получить "нет конфликтов" и оба вставить пересекающиеся
// бронирования (классическая гонка check-then-act).
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"wedding_date",
			"start_time",
			"location_id",
			"celebrant_id",
			"bride_name",
			"bride_phone",
			"groom_name",
			"groom_phone",
			"status",
			"notes",
		).
		Values(
			b.WeddingDate,
			b.StartTime,
			b.LocationID,
			b.CelebrantID,
			b.BrideName,
			b.BridePhone,
			b.GroomName,
			b.GroomPhone,
			b.Status,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// FindWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, месту, целебранту, статусу,
// исключению конкретного ID (при редактировании) и только активным.
//
// Для выборки одного дня внутри транзакции добавляется FOR UPDATE OF b -
// блокировка строк дня нужна usecase сохранения для предотвращения гонки
func (r *Repository) FindWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect()

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"b.wedding_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"b.wedding_date": *filter.EndDate})
	}
	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.location_id": *filter.LocationID})
	}
	if filter.CelebrantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.celebrant_id": *filter.CelebrantID})
	}
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *filter.ExcludeID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": domain.StatusActive})
	}

	_, singleDate := filter.SingleDate()
	if singleDate {
		// Для конкретной даты сортируем по времени начала
		selectBuilder = selectBuilder.OrderBy("b.start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("b.wedding_date ASC, b.start_time ASC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindActiveForPerson ищет будущие активные бронирования, где имя
// фигурирует как невеста или жених (сравнение без учета регистра)
func (r *Repository) FindActiveForPerson(ctx context.Context, name string, fromDate time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().
		Where(squirrel.Or{
			squirrel.Expr("UPPER(b.bride_name) = UPPER(?)", name),
			squirrel.Expr("UPPER(b.groom_name) = UPPER(?)", name),
		}).
		Where(squirrel.GtOrEq{"b.wedding_date": fromDate}).
		Where(squirrel.Eq{"b.status": domain.StatusActive}).
		OrderBy("b.wedding_date ASC, b.start_time ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveForPerson - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveForPerson - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindUpcoming получает ближайшие активные бронирования начиная с даты
func (r *Repository) FindUpcoming(ctx context.Context, fromDate time.Time, limit uint64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.GtOrEq{"b.wedding_date": fromDate}).
		Where(squirrel.Eq{"b.status": domain.StatusActive}).
		OrderBy("b.wedding_date ASC, b.start_time ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CountActive подсчитывает активные бронирования на дату
// Опционально фильтрует по месту и/или целебранту
func (r *Repository) CountActive(ctx context.Context, date time.Time, locationID, celebrantID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"wedding_date": date}).
		Where(squirrel.Eq{"status": domain.StatusActive})

	if locationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *locationID})
	}
	if celebrantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"celebrant_id": *celebrantID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatusInPeriod подсчитывает бронирования по статусам за период
func (r *Repository) CountByStatusInPeriod(ctx context.Context, start, end time.Time) (map[domain.BookingStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		Where(squirrel.GtOrEq{"wedding_date": start}).
		Where(squirrel.LtOrEq{"wedding_date": end}).
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusInPeriod - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusInPeriod - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// CountByMonth подсчитывает активные бронирования по месяцам года
func (r *Repository) CountByMonth(ctx context.Context, year int) ([]domain.MonthCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"EXTRACT(MONTH FROM wedding_date)::int AS month",
		"COUNT(*)",
	).
		From("bookings").
		Where(squirrel.Expr("EXTRACT(YEAR FROM wedding_date) = ?", year)).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.MonthCount, 0)
	for rows.Next() {
		var mc domain.MonthCount
		if err := rows.Scan(&mc.Month, &mc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByMonth - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, mc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByMonth - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// PopularTimes возвращает самые востребованные времена начала за год
func (r *Repository) PopularTimes(ctx context.Context, year int, limit uint64) ([]domain.TimeCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "COUNT(*)").
		From("bookings").
		Where(squirrel.Expr("EXTRACT(YEAR FROM wedding_date) = ?", year)).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		GroupBy("start_time").
		OrderBy("COUNT(*) DESC, start_time ASC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PopularTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PopularTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.TimeCount, 0)
	for rows.Next() {
		var tc domain.TimeCount
		if err := rows.Scan(&tc.Time, &tc.Count); err != nil {
			return nil, fmt.Errorf("%w: PopularTimes - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, tc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PopularTimes - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// baseSelect выборка бронирования с именами места и целебранта
func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("bookings b").
		Join("ceremony_locations l ON b.location_id = l.id").
		Join("celebrants c ON b.celebrant_id = c.id")
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.WeddingDate,
			&b.StartTime,
			&b.LocationID,
			&b.CelebrantID,
			&b.BrideName,
			&b.BridePhone,
			&b.GroomName,
			&b.GroomPhone,
			&b.Status,
			&b.Notes,
			&b.LocationName,
			&b.CelebrantName,
			&b.CancellationReason,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
