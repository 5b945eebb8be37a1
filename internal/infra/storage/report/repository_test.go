package report

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_ManagerPerformance(t *testing.T) {
	repo, mock := newMock(t)
	period := domain.UnboundedPeriod()

	mock.ExpectQuery(`LEFT JOIN bookings b ON b.managerid = m.managerid AND b.status <> \$1 AND b.bookingdate BETWEEN \$2 AND \$3 .* WHERE m.position IN \(\$4,\$5\) GROUP BY`).
		WithArgs("Аннулировано", period.From, period.To, "Менеджер", "Старший").
		WillReturnRows(sqlmock.NewRows([]string{"name", "position", "tours_sold", "revenue"}).
			AddRow("Пётр Иванов", "Менеджер", int64(3), "250000.00").
			AddRow("Олег Сидоров", "Старший", int64(0), "0"))

	items, err := repo.ManagerPerformance(context.Background(), period)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].ToursSold)
	assert.True(t, items[0].Revenue.Equal(decimal.RequireFromString("250000")))
	assert.True(t, items[1].Revenue.IsZero())
}

func TestRepository_MonthlyRevenue(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT TO_CHAR\(paymentdate, 'YYYY-MM'\) AS month.* GROUP BY month ORDER BY month DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "transactions", "revenue"}).
			AddRow("2025-02", int64(4), "120000.00").
			AddRow("2025-01", int64(1), "5000.00"))

	items, err := repo.MonthlyRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "2025-02", items[0].Month)
	assert.Equal(t, 4, items[0].Transactions)
}

func TestRepository_Debtors(t *testing.T) {
	repo, mock := newMock(t)
	date := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE b.paymentstatus IN \(\$1,\$2\) AND b.status <> \$3 ORDER BY b.bookingdate`).
		WillReturnRows(sqlmock.NewRows([]string{"client_name", "destination", "bookingdate", "finalprice", "paid"}).
			AddRow("Иван Иванов", "Сочи", date, "1000.00", "0"))

	items, err := repo.Debtors(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Debt.Equal(decimal.RequireFromString("1000")))
}

func TestRepository_PaymentLog(t *testing.T) {
	repo, mock := newMock(t)
	period := domain.UnboundedPeriod()

	mock.ExpectQuery(`WHERE p.paymentdate BETWEEN \$1 AND \$2 ORDER BY p.paymentdate DESC`).
		WithArgs(period.From, period.To).
		WillReturnRows(sqlmock.NewRows([]string{"paymentid", "paymentdate", "client_name", "amount", "paymentmethod"}).
			AddRow(int64(7), time.Now(), "Иван Иванов", "700.00", "Наличные"))

	items, err := repo.PaymentLog(context.Background(), period)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Наличные", items[0].Method)
}
