package payments

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	GetState(ctx context.Context, bookingID int64) (*domain.BookingState, error)
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p domain.NewPayment) (int64, error)
	SumByBooking(ctx context.Context, bookingID int64) (decimal.Decimal, error)
	ListDebtors(ctx context.Context) ([]domain.Debtor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Session текущий пользователь
type Session interface {
	Employee() *domain.Employee
	Client() *domain.Client
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
