package create_booking

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetForBooking(ctx context.Context, id int64) (*domain.Tour, error)
}

// BookingRepository интерфейс репозитория заявок
type BookingRepository interface {
	Create(ctx context.Context, booking domain.NewBooking) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
