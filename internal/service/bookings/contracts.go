package bookings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
	"github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"
)

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	ListForManager(ctx context.Context, employeeID int64) ([]domain.Booking, error)
	ListForClient(ctx context.Context, clientID int64) ([]domain.Booking, error)
	GetState(ctx context.Context, bookingID int64) (*domain.BookingState, error)
	Claim(ctx context.Context, bookingID, employeeID int64) error
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	Delete(ctx context.Context, bookingID int64) error
}

// CreateBookingUseCase use case создания заявки
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// PaymentService внесение платежей
type PaymentService interface {
	AddPayment(ctx context.Context, bookingID int64, amount decimal.Decimal, method string) (*models.Receipt, error)
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
