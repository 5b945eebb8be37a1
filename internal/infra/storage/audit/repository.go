package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

// Repository чтение журнала аудита; записи создает триггер в БД
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRecent последние limit записей, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]domain.AuditLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("logid", "eventdate", "dbuser", "operationtype", "tablename", "changedfields").
		From("auditlog").
		OrderBy("eventdate DESC", "logid DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.AuditLogEntry, 0)
	for rows.Next() {
		var (
			e       domain.AuditLogEntry
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.EventDate, &e.User, &e.Operation, &e.Table, &details); err != nil {
			return nil, fmt.Errorf("%w: ListRecent - scan entry: %v", ErrScanRow, err)
		}
		if details.Valid {
			e.Details = &details.String
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRecent - iterate rows: %v", ErrScanRow, err)
	}

	return entries, nil
}
