// Package report агрегирующие запросы для отчётов, только чтение
package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/psqlbuilder"
)

type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ManagerPerformance продажи и выручка менеджеров за период
// Продажа: неаннулированная заявка, закрепленная за менеджером; выручка: платежи по ним
func (r *Repository) ManagerPerformance(ctx context.Context, period domain.Period) ([]domain.ManagerKpi, error) {
	query, args, err := psqlbuilder.Select(
		"m.firstname || ' ' || m.lastname AS name",
		"m.position",
		"COUNT(b.bookingid) AS tours_sold",
		"COALESCE(SUM(p.paid), 0) AS revenue",
	).
		From("managers m").
		LeftJoin("bookings b ON b.managerid = m.managerid AND b.status <> ? AND b.bookingdate BETWEEN ? AND ?",
			string(domain.StatusAnnulled), period.From, period.To).
		LeftJoin("(SELECT bookingid, SUM(amount) AS paid FROM payments GROUP BY bookingid) p ON p.bookingid = b.bookingid").
		Where(squirrel.Eq{"m.position": domain.ManagerPositions}).
		GroupBy("m.managerid", "m.firstname", "m.lastname", "m.position").
		OrderBy("revenue DESC", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ManagerPerformance - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, "ManagerPerformance", query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.ManagerKpi, 0)
	for rows.Next() {
		var k domain.ManagerKpi
		if err := rows.Scan(&k.Name, &k.Position, &k.ToursSold, &k.Revenue); err != nil {
			return nil, fmt.Errorf("%w: ManagerPerformance - scan row: %v", ErrScanRow, err)
		}
		items = append(items, k)
	}

	return items, iterErr("ManagerPerformance", rows)
}

// MonthlyRevenue выручка и число платежей по месяцам, последние месяцы первыми
func (r *Repository) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	query, args, err := psqlbuilder.Select(
		"TO_CHAR(paymentdate, 'YYYY-MM') AS month",
		"COUNT(*) AS transactions",
		"SUM(amount) AS revenue",
	).
		From("payments").
		GroupBy("month").
		OrderBy("month DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: MonthlyRevenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, "MonthlyRevenue", query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MonthlyRevenue, 0)
	for rows.Next() {
		var m domain.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Transactions, &m.Revenue); err != nil {
			return nil, fmt.Errorf("%w: MonthlyRevenue - scan row: %v", ErrScanRow, err)
		}
		items = append(items, m)
	}

	return items, iterErr("MonthlyRevenue", rows)
}

// Debtors задолженности по неаннулированным заявкам, старые первыми
func (r *Repository) Debtors(ctx context.Context) ([]domain.DebtorReportItem, error) {
	query, args, err := psqlbuilder.Select(
		"c.firstname || ' ' || c.lastname AS client_name",
		"t.destination",
		"b.bookingdate",
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
		return nil, fmt.Errorf("%w: Debtors - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, "Debtors", query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.DebtorReportItem, 0)
	for rows.Next() {
		var d domain.DebtorReportItem
		if err := rows.Scan(&d.Client, &d.Tour, &d.Date, &d.Total, &d.Paid); err != nil {
			return nil, fmt.Errorf("%w: Debtors - scan row: %v", ErrScanRow, err)
		}
		d.Debt = d.Total.Sub(d.Paid)
		items = append(items, d)
	}

	return items, iterErr("Debtors", rows)
}

// PaymentLog платежи за период, новые первыми
func (r *Repository) PaymentLog(ctx context.Context, period domain.Period) ([]domain.PaymentLogItem, error) {
	query, args, err := psqlbuilder.Select(
		"p.paymentid",
		"p.paymentdate",
		"c.firstname || ' ' || c.lastname AS client_name",
		"p.amount",
		"COALESCE(p.paymentmethod, '')",
	).
		From("payments p").
		Join("bookings b ON b.bookingid = p.bookingid").
		Join("clients c ON c.clientid = b.clientid").
		Where(squirrel.Expr("p.paymentdate BETWEEN ? AND ?", period.From, period.To)).
		OrderBy("p.paymentdate DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: PaymentLog - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.query(ctx, "PaymentLog", query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.PaymentLogItem, 0)
	for rows.Next() {
		var p domain.PaymentLogItem
		if err := rows.Scan(&p.ID, &p.Date, &p.Client, &p.Amount, &p.Method); err != nil {
			return nil, fmt.Errorf("%w: PaymentLog - scan row: %v", ErrScanRow, err)
		}
		items = append(items, p)
	}

	return items, iterErr("PaymentLog", rows)
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) (*sql.Rows, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	return rows, nil
}

func iterErr(op string, rows *sql.Rows) error {
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}
	return nil
}
