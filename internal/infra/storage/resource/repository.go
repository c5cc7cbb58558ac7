package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/jaysonsaraujo/phm-app/internal/domain"
	"github.com/jaysonsaraujo/phm-app/pkg/dbmetrics"
	"github.com/jaysonsaraujo/phm-app/pkg/psqlbuilder"
)

// Repository репозиторий мест церемоний и целебрантов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListLocations получает все активные места церемоний
func (r *Repository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "capacity", "active", "created_at", "updated_at",
	).
		From("ceremony_locations").
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		err := rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.Capacity, &l.Active, &l.CreatedAt, &l.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		locations = append(locations, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

// GetLocation получает место церемонии по ID
func (r *Repository) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "address", "capacity", "active", "created_at", "updated_at",
	).
		From("ceremony_locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLocation - build select query: %v", ErrBuildQuery, err)
	}

	var l domain.Location
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&l.ID, &l.Name, &l.Address, &l.Capacity, &l.Active, &l.CreatedAt, &l.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, fmt.Errorf("%w: GetLocation - scan row: %v", ErrScanRow, err)
	}

	return &l, nil
}

// CreateLocation создает новое место церемонии
// Имя уникально без учета регистра
func (r *Repository) CreateLocation(ctx context.Context, l *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	exists, err := r.nameExists(ctx, "ceremony_locations", "name", l.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	query, args, err := psqlbuilder.Insert("ceremony_locations").
		Columns("name", "address", "capacity", "active").
		Values(l.Name, l.Address, l.Capacity, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateLocation - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateLocation - execute insert: %v", ErrExecQuery, err)
	}

	l.Active = true

	return l, nil
}

// ListCelebrants получает всех активных целебрантов
func (r *Repository) ListCelebrants(ctx context.Context) ([]*domain.Celebrant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "full_name", "type", "phone", "email", "active", "created_at", "updated_at",
	).
		From("celebrants").
		Where(squirrel.Eq{"active": true}).
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCelebrants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCelebrants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	celebrants := make([]*domain.Celebrant, 0)
	for rows.Next() {
		var c domain.Celebrant
		err := rows.Scan(
			&c.ID, &c.FullName, &c.Type, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCelebrants - scan row: %v", ErrScanRow, err)
		}
		celebrants = append(celebrants, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCelebrants - rows error: %v", ErrScanRow, err)
	}

	return celebrants, nil
}

// GetCelebrant получает целебранта по ID
func (r *Repository) GetCelebrant(ctx context.Context, id int64) (*domain.Celebrant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "full_name", "type", "phone", "email", "active", "created_at", "updated_at",
	).
		From("celebrants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCelebrant - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Celebrant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.FullName, &c.Type, &c.Phone, &c.Email, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCelebrantNotFound
		}
		return nil, fmt.Errorf("%w: GetCelebrant - scan row: %v", ErrScanRow, err)
	}

	return &c, nil
}

// CreateCelebrant создает нового целебранта
// Имя уникально без учета регистра
func (r *Repository) CreateCelebrant(ctx context.Context, c *domain.Celebrant) (*domain.Celebrant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	exists, err := r.nameExists(ctx, "celebrants", "full_name", c.FullName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	query, args, err := psqlbuilder.Insert("celebrants").
		Columns("full_name", "type", "phone", "email", "active").
		Values(c.FullName, c.Type, c.Phone, c.Email, true).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateCelebrant - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCelebrant - execute insert: %v", ErrExecQuery, err)
	}

	c.Active = true

	return c, nil
}

// nameExists проверяет занятость имени без учета регистра
func (r *Repository) nameExists(ctx context.Context, table, column, name string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Expr(fmt.Sprintf("UPPER(%s) = UPPER(?)", column), name)).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: nameExists - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: nameExists - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}
