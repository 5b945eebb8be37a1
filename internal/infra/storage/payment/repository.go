package payment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/pgerr"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

// Repository репозиторий платежей, платежи только добавляются
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вносит платёж по заявке
func (r *Repository) Create(ctx context.Context, p domain.NewPayment) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("bookingid", "amount", "paymentmethod", "transactioninfo").
		Values(p.BookingID, p.Amount, p.Method, p.TransactionInfo).
		Suffix("RETURNING paymentid").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case pgerr.IsForeignKeyViolation(err, "payments_bookingid_fkey"):
		return 0, ErrBookingNotFound
	case pgerr.IsCheckViolation(err, "payments_amount_check"):
		return 0, ErrInvalidAmount
	case err != nil:
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// SumByBooking сумма всех платежей по заявке
func (r *Repository) SumByBooking(ctx context.Context, bookingID int64) (decimal.Decimal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"bookingid": bookingID}).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var sum decimal.Decimal
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("%w: SumByBooking - scan: %v", ErrScanRow, err)
	}

	return sum, nil
}

// ListDebtors неаннулированные заявки с долгом, старые первыми
func (r *Repository) ListDebtors(ctx context.Context) ([]domain.Debtor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.bookingid",
		"c.firstname || ' ' || c.lastname AS client_name",
		"t.destination",
		"b.finalprice",
		"COALESCE((SELECT SUM(p.amount) FROM payments p WHERE p.bookingid = b.bookingid), 0) AS paid",
	).
		From("bookings b").
		Join("clients c ON c.clientid = b.clientid").
		Join("tours t ON t.tourid = b.tourid").
		Where(squirrel.Eq{"b.paymentstatus": []string{string(domain.PaymentUnpaid), string(domain.PaymentPartial)}}).
		Where(squirrel.NotEq{"b.status": string(domain.StatusAnnulled)}).
		OrderBy("b.bookingdate").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDebtors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDebtors - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	debtors := make([]domain.Debtor, 0)
	for rows.Next() {
		var d domain.Debtor
		if err := rows.Scan(&d.BookingID, &d.ClientName, &d.TourName, &d.TotalPrice, &d.PaidAmount); err != nil {
			return nil, fmt.Errorf("%w: ListDebtors - scan debtor: %v", ErrScanRow, err)
		}
		d.Debt = d.TotalPrice.Sub(d.PaidAmount)
		debtors = append(debtors, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDebtors - iterate rows: %v", ErrScanRow, err)
	}

	return debtors, nil
}
