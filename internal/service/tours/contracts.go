package tours

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, error)
	ListTypes(ctx context.Context) ([]domain.LookupItem, error)
	ListPartners(ctx context.Context) ([]domain.LookupItem, error)
	Create(ctx context.Context, in domain.TourInput) (int64, error)
	Update(ctx context.Context, id int64, in domain.TourInput) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
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
