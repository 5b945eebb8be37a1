package tour

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/pgerr"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

const ratingColumn = "(SELECT AVG(r.rating)::float8 FROM reviews r WHERE r.tourid = t.tourid) AS rating"

// Repository репозиторий туров и справочников
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List каталог туров с типом, партнёром и средней оценкой
func (r *Repository) List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"t.tourid",
		"t.destination",
		"t.tourtypeid",
		"tt.typename",
		"t.partnerid",
		"p.name",
		"t.managerid",
		"t.startdate",
		"t.enddate",
		"t.basecost",
		"t.isactive",
		"t.description",
		ratingColumn,
	).
		From("tours t").
		Join("tourtypes tt ON tt.tourtypeid = t.tourtypeid").
		Join("partners p ON p.partnerid = t.partnerid").
		OrderBy("t.startdate")

	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"t.destination": psqlbuilder.ContainsPattern(filter.Search)})
	}
	if filter.MaxPrice != nil {
		builder = builder.Where(squirrel.LtOrEq{"t.basecost": *filter.MaxPrice})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tours := make([]domain.Tour, 0)
	for rows.Next() {
		var (
			t           domain.Tour
			description sql.NullString
			rating      sql.NullFloat64
		)
		if err := rows.Scan(
			&t.ID,
			&t.Destination,
			&t.TypeID,
			&t.TypeName,
			&t.PartnerID,
			&t.PartnerName,
			&t.EmployeeID,
			&t.StartDate,
			&t.EndDate,
			&t.Cost,
			&t.IsActive,
			&description,
			&rating,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan tour: %v", ErrScanRow, err)
		}
		if description.Valid {
			t.Description = &description.String
		}
		if rating.Valid {
			t.Rating = &rating.Float64
		}
		tours = append(tours, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return tours, nil
}

// GetForBooking цена и доступность тура; внутри транзакции строка блокируется
func (r *Repository) GetForBooking(ctx context.Context, id int64) (*domain.Tour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("tourid", "destination", "basecost", "isactive").
		From("tours").
		Where(squirrel.Eq{"tourid": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForBooking - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tour
	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.Destination, &t.Cost, &t.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForBooking - scan tour: %v", ErrScanRow, err)
	}

	return &t, nil
}

// ListTypes справочник типов туров
func (r *Repository) ListTypes(ctx context.Context) ([]domain.LookupItem, error) {
	return r.lookup(ctx, "ListTypes", "tourtypes", "tourtypeid", "typename")
}

// ListPartners справочник партнёров
func (r *Repository) ListPartners(ctx context.Context) ([]domain.LookupItem, error) {
	return r.lookup(ctx, "ListPartners", "partners", "partnerid", "name")
}

func (r *Repository) lookup(ctx context.Context, op, table, idColumn, nameColumn string) ([]domain.LookupItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(idColumn, nameColumn).
		From(table).
		OrderBy(nameColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	items := make([]domain.LookupItem, 0)
	for rows.Next() {
		var item domain.LookupItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("%w: %s - scan item: %v", ErrScanRow, op, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return items, nil
}

// Create добавляет тур, активный по умолчанию
func (r *Repository) Create(ctx context.Context, in domain.TourInput) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tours").
		Columns("tourtypeid", "managerid", "partnerid", "destination", "startdate", "enddate", "basecost", "isactive", "description").
		Values(in.TypeID, in.EmployeeID, in.PartnerID, in.Destination, in.StartDate, in.EndDate, in.Cost, true, in.Description).
		Suffix("RETURNING tourid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapWriteError("Create", err)
	}

	return id, nil
}

// Update перезаписывает поля тура, последняя запись побеждает
func (r *Repository) Update(ctx context.Context, id int64, in domain.TourInput) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("tourtypeid", in.TypeID).
		Set("partnerid", in.PartnerID).
		Set("destination", in.Destination).
		Set("startdate", in.StartDate).
		Set("enddate", in.EndDate).
		Set("basecost", in.Cost).
		Set("description", in.Description).
		Where(squirrel.Eq{"tourid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError("Update", err)
	}

	return checkAffected("Update", result)
}

// SetActive открывает или закрывает тур для бронирования
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tours").
		Set("isactive", active).
		Where(squirrel.Eq{"tourid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected("SetActive", result)
}

// Delete удаляет тур без заявок и отзывов
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tours").
		Where(squirrel.Eq{"tourid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err, "") {
		return ErrHasBookings
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected("Delete", result)
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsForeignKeyViolation(err, ""):
		return ErrInvalidReference
	case pgerr.IsCheckViolation(err, ""):
		return ErrInvalidData
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}
