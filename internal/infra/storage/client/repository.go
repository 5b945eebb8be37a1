package client

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

const uniqueEmail = "clients_email_key"

var clientColumns = []string{
	"clientid",
	"firstname",
	"lastname",
	"email",
	"phone",
	"registrationdate",
}

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует клиента, пароль передается уже захешированным
func (r *Repository) Create(ctx context.Context, c domain.NewClient) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("firstname", "lastname", "phone", "email", "passwordhash", "passportdata").
		Values(c.FirstName, c.LastName, c.Phone, c.Email, c.PasswordHash, c.PassportData).
		Suffix("RETURNING clientid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if pgerr.IsUniqueViolation(err, uniqueEmail) {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// FindByEmail находит клиента и хеш его пароля по email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Client, string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(clientColumns, "passwordhash")...).
		From("clients").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("%w: FindByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var (
		c     domain.Client
		phone sql.NullString
		hash  string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &phone, &c.RegistrationDate, &hash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrClientNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: FindByEmail - scan client: %v", ErrScanRow, err)
	}

	if phone.Valid {
		c.Phone = &phone.String
	}
	return &c, hash, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"clientid": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// Search ищет клиентов по подстроке в имени, фамилии или телефоне
func (r *Repository) Search(ctx context.Context, q string, limit uint64) ([]domain.Client, error) {
	pattern := psqlbuilder.ContainsPattern(q)
	builder := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Or{
			squirrel.ILike{"firstname": pattern},
			squirrel.ILike{"lastname": pattern},
			squirrel.ILike{"phone": pattern},
		}).
		OrderBy("lastname", "firstname").
		Limit(limit)

	return r.list(ctx, "Search", builder)
}

// ListAll последние зарегистрированные клиенты
func (r *Repository) ListAll(ctx context.Context, limit uint64) ([]domain.Client, error) {
	builder := psqlbuilder.Select(clientColumns...).
		From("clients").
		OrderBy("registrationdate DESC").
		Limit(limit)

	return r.list(ctx, "ListAll", builder)
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan client: %v", ErrScanRow, op, err)
		}
		clients = append(clients, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return clients, nil
}

// Update меняет контактные и паспортные данные клиента
func (r *Repository) Update(ctx context.Context, id int64, u domain.ClientUpdate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("clients").
		Set("firstname", u.FirstName).
		Set("lastname", u.LastName).
		Set("phone", u.Phone).
		Set("passportdata", u.PassportData).
		Where(squirrel.Eq{"clientid": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// GetPassportData паспортные данные клиента, пустая строка если не заполнены
func (r *Repository) GetPassportData(ctx context.Context, id int64) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("passportdata").
		From("clients").
		Where(squirrel.Eq{"clientid": id}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetPassportData - build select query: %v", ErrBuildQuery, err)
	}

	var passport sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(&passport)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrClientNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetPassportData - scan: %v", ErrScanRow, err)
	}

	return passport.String, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(s scanner) (*domain.Client, error) {
	var (
		c     domain.Client
		phone sql.NullString
	)
	if err := s.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &phone, &c.RegistrationDate); err != nil {
		return nil, err
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	return &c, nil
}
