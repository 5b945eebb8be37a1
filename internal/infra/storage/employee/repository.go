package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/pgerr"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

const uniqueLogin = "managers_db_login_key"

var employeeColumns = []string{
	"managerid",
	"firstname",
	"lastname",
	"phone",
	"email",
	"position",
	"hiredate",
	"db_login",
}

// Repository репозиторий сотрудников (таблица managers)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLogin находит сотрудника по логину роли БД
func (r *Repository) GetByLogin(ctx context.Context, dbLogin string) (*domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("managers").
		Where(squirrel.Eq{"db_login": dbLogin}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLogin - build select query: %v", ErrBuildQuery, err)
	}

	e, err := scanEmployee(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLogin - scan employee: %v", ErrScanRow, err)
	}

	return e, nil
}

// List все сотрудники по фамилии
func (r *Repository) List(ctx context.Context) ([]domain.Employee, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(employeeColumns...).
		From("managers").
		OrderBy("lastname", "firstname").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan employee: %v", ErrScanRow, err)
		}
		employees = append(employees, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return employees, nil
}

// Create добавляет сотрудника с датой найма hireDate
func (r *Repository) Create(ctx context.Context, in domain.EmployeeInput, hireDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("managers").
		Columns("firstname", "lastname", "phone", "email", "position", "hiredate", "db_login").
		Values(in.FirstName, in.LastName, in.Phone, in.Email, in.Position, hireDate, nullIfEmpty(in.DBLogin)).
		Suffix("RETURNING managerid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if pgerr.IsUniqueViolation(err, uniqueLogin) {
		return 0, ErrLoginTaken
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Update меняет данные сотрудника; логин БД не меняется
func (r *Repository) Update(ctx context.Context, id int64, in domain.EmployeeInput) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("managers").
		Set("firstname", in.FirstName).
		Set("lastname", in.LastName).
		Set("phone", in.Phone).
		Set("email", in.Email).
		Set("position", in.Position).
		Where(squirrel.Eq{"managerid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected("Update", result)
}

// Delete удаляет сотрудника, если на него нет ссылок
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("managers").
		Where(squirrel.Eq{"managerid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err, "") {
		return ErrHasDependents
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected("Delete", result)
}

func checkAffected(op string, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(s scanner) (*domain.Employee, error) {
	var (
		e       domain.Employee
		phone   sql.NullString
		email   sql.NullString
		dbLogin sql.NullString
	)
	if err := s.Scan(&e.ID, &e.FirstName, &e.LastName, &phone, &email, &e.Position, &e.HireDate, &dbLogin); err != nil {
		return nil, err
	}
	if phone.Valid {
		e.Phone = &phone.String
	}
	if email.Valid {
		e.Email = &email.String
	}
	e.DBLogin = dbLogin.String
	return &e, nil
}
