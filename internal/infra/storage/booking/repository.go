package booking

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

const (
	fkTour     = "bookings_tourid_fkey"
	fkClient   = "bookings_clientid_fkey"
	fkPayments = "payments_bookingid_fkey"
)

const (
	paidColumn      = "COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.bookingid = b.bookingid), 0) AS paid"
	hasReviewColumn = "EXISTS(SELECT 1 FROM reviews r WHERE r.tourid = b.tourid AND r.clientid = b.clientid) AS has_review"

	// Сначала свободные и необработанные заявки, затем остальные по дате
	managerOrder = "CASE WHEN b.managerid IS NULL OR b.status = 'В обработке' THEN 0 ELSE 1 END"
)

// Repository репозиторий заявок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заявку в статусе "В обработке" без оплаты
// Цена передается вызывающим и фиксируется на момент бронирования
func (r *Repository) Create(ctx context.Context, booking domain.NewBooking) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("tourid", "clientid", "managerid", "status", "paymentstatus", "finalprice").
		Values(
			booking.TourID,
			booking.ClientID,
			booking.EmployeeID,
			string(domain.StatusPending),
			string(domain.PaymentUnpaid),
			booking.FinalPrice,
		).
		Suffix("RETURNING bookingid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case pgerr.IsForeignKeyViolation(err, fkTour):
		return 0, ErrTourNotFound
	case pgerr.IsForeignKeyViolation(err, fkClient):
		return 0, ErrClientNotFound
	case err != nil:
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// ListForManager заявки, закрепленные за сотрудником, и свободные заявки
func (r *Repository) ListForManager(ctx context.Context, employeeID int64) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.bookingid",
		"b.tourid",
		"t.destination",
		"b.clientid",
		"c.firstname || ' ' || c.lastname AS client_name",
		"b.managerid",
		"b.bookingdate",
		"b.status",
		"b.paymentstatus",
		"b.finalprice",
		paidColumn,
		hasReviewColumn,
	).
		From("bookings b").
		Join("tours t ON t.tourid = b.tourid").
		Join("clients c ON c.clientid = b.clientid").
		Where(squirrel.Or{
			squirrel.Eq{"b.managerid": employeeID},
			squirrel.Eq{"b.managerid": nil},
		}).
		OrderBy(managerOrder, "b.bookingdate DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForManager - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForManager - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b          domain.Booking
			clientName string
			employeeID sql.NullInt64
		)
		if err := rows.Scan(
			&b.ID,
			&b.TourID,
			&b.TourName,
			&b.ClientID,
			&clientName,
			&employeeID,
			&b.CreatedAt,
			&b.Status,
			&b.PaymentStatus,
			&b.Price,
			&b.PaidAmount,
			&b.HasReview,
		); err != nil {
			return nil, fmt.Errorf("%w: ListForManager - scan booking: %v", ErrScanRow, err)
		}
		b.ClientName = &clientName
		if employeeID.Valid {
			b.EmployeeID = &employeeID.Int64
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForManager - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListForClient заявки клиента, новые первыми
func (r *Repository) ListForClient(ctx context.Context, clientID int64) ([]domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.bookingid",
		"b.tourid",
		"t.destination",
		"b.clientid",
		"b.managerid",
		"b.bookingdate",
		"b.status",
		"b.paymentstatus",
		"b.finalprice",
		paidColumn,
		hasReviewColumn,
	).
		From("bookings b").
		Join("tours t ON t.tourid = b.tourid").
		Where(squirrel.Eq{"b.clientid": clientID}).
		OrderBy("b.bookingdate DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b          domain.Booking
			employeeID sql.NullInt64
		)
		if err := rows.Scan(
			&b.ID,
			&b.TourID,
			&b.TourName,
			&b.ClientID,
			&employeeID,
			&b.CreatedAt,
			&b.Status,
			&b.PaymentStatus,
			&b.Price,
			&b.PaidAmount,
			&b.HasReview,
		); err != nil {
			return nil, fmt.Errorf("%w: ListForClient - scan booking: %v", ErrScanRow, err)
		}
		if employeeID.Valid {
			b.EmployeeID = &employeeID.Int64
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForClient - iterate rows: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// GetState читает состояние заявки
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetState(ctx context.Context, bookingID int64) (*domain.BookingState, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"bookingid",
		"tourid",
		"clientid",
		"managerid",
		"status",
		"paymentstatus",
		"finalprice",
	).
		From("bookings").
		Where(squirrel.Eq{"bookingid": bookingID})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetState - build select query: %v", ErrBuildQuery, err)
	}

	var (
		state      domain.BookingState
		employeeID sql.NullInt64
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&state.ID,
		&state.TourID,
		&state.ClientID,
		&employeeID,
		&state.Status,
		&state.PaymentStatus,
		&state.FinalPrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetState - scan booking: %v", ErrScanRow, err)
	}

	if employeeID.Valid {
		state.EmployeeID = &employeeID.Int64
	}

	return &state, nil
}

// Claim закрепляет заявку за сотрудником, если она свободна или уже его
func (r *Repository) Claim(ctx context.Context, bookingID, employeeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("managerid", employeeID).
		Where(squirrel.Eq{"bookingid": bookingID}).
		Where(squirrel.Or{
			squirrel.Eq{"managerid": nil},
			squirrel.Eq{"managerid": employeeID},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Claim - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Claim - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAlreadyClaimed
	}

	return nil
}

// UpdateStatus меняет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.update(ctx, "UpdateStatus", bookingID, "status", string(status))
}

// UpdatePaymentStatus сохраняет пересчитанный статус оплаты
func (r *Repository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	return r.update(ctx, "UpdatePaymentStatus", bookingID, "paymentstatus", string(status))
}

func (r *Repository) update(ctx context.Context, op string, bookingID int64, column string, value string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set(column, value).
		Where(squirrel.Eq{"bookingid": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет заявку; платежи по ней блокируют удаление через внешний ключ
func (r *Repository) Delete(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"bookingid": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerr.IsForeignKeyViolation(err, fkPayments) {
		return ErrHasPayments
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// HasPaidBooking у клиента есть полностью оплаченная и не аннулированная заявка на тур
func (r *Repository) HasPaidBooking(ctx context.Context, clientID, tourID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{
			"clientid":      clientID,
			"tourid":        tourID,
			"paymentstatus": string(domain.PaymentPaid),
		}).
		Where(squirrel.NotEq{"status": string(domain.StatusAnnulled)}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasPaidBooking - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasPaidBooking - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}
