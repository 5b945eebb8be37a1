package reviews

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, in domain.NewReview) (int64, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
}

// BookingRepository проверка права на отзыв
type BookingRepository interface {
	HasPaidBooking(ctx context.Context, clientID, tourID int64) (bool, error)
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
