package reports

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// ReportRepository интерфейс аналитических запросов
type ReportRepository interface {
	ManagerPerformance(ctx context.Context, period domain.Period) ([]domain.ManagerKpi, error)
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	Debtors(ctx context.Context) ([]domain.DebtorReportItem, error)
	PaymentLog(ctx context.Context, period domain.Period) ([]domain.PaymentLogItem, error)
}

// Session текущий пользователь
type Session interface {
	Employee() *domain.Employee
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
