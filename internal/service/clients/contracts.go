package clients

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Search(ctx context.Context, q string, limit uint64) ([]domain.Client, error)
	ListAll(ctx context.Context, limit uint64) ([]domain.Client, error)
	Update(ctx context.Context, id int64, u domain.ClientUpdate) error
	GetPassportData(ctx context.Context, id int64) (string, error)
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
