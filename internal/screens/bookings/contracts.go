package bookings

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
)

// BookingService интерфейс сервиса заявок
type BookingService interface {
	ListForManager(ctx context.Context) ([]domain.Booking, error)
	ListForClient(ctx context.Context) ([]domain.Booking, error)
	SetStatus(ctx context.Context, bookingID int64, status string) error
	Delete(ctx context.Context, bookingID int64) error
	Pay(ctx context.Context, bookingID int64, amount decimal.Decimal) (*models.Receipt, error)
}

// ReviewService интерфейс сервиса отзывов
type ReviewService interface {
	Add(ctx context.Context, tourID, clientID int64, rating int, comment string) (int64, error)
}

// Session текущий пользователь
type Session interface {
	IsManager() bool
	Client() *domain.Client
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
