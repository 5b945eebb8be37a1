package clients

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/clients/models"
)

// ClientService интерфейс сервиса клиентов
type ClientService interface {
	Search(ctx context.Context, q string) ([]domain.Client, error)
	ListAll(ctx context.Context) ([]domain.Client, error)
	Update(ctx context.Context, id int64, form models.ClientForm) error
	GetPassportData(ctx context.Context, id int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
