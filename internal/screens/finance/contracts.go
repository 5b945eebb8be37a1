package finance

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
)

// PaymentService интерфейс сервиса платежей
type PaymentService interface {
	ListDebtors(ctx context.Context) ([]domain.Debtor, error)
	AddPayment(ctx context.Context, bookingID int64, amount decimal.Decimal, method string) (*models.Receipt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
