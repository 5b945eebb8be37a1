package bookingdialog

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// BookingService оформление заявки
type BookingService interface {
	Create(ctx context.Context, tourID, clientID int64) (int64, error)
}

// ClientService подбор клиента менеджером
type ClientService interface {
	Lookup(ctx context.Context, q string) ([]domain.Client, error)
}

// Session текущий пользователь
type Session interface {
	IsManager() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
