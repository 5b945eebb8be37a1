package tours

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/tours/models"
)

// TourService интерфейс сервиса каталога туров
type TourService interface {
	List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, error)
	Dictionaries(ctx context.Context) (*models.Dictionaries, error)
	Create(ctx context.Context, form models.TourForm) (int64, error)
	Update(ctx context.Context, id int64, form models.TourForm) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
