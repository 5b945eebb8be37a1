package auth

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, c domain.NewClient) (int64, error)
	FindByEmail(ctx context.Context, email string) (*domain.Client, string, error)
}

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	GetByLogin(ctx context.Context, dbLogin string) (*domain.Employee, error)
}

// CredentialVerifier проверяет учётные данные роли БД
type CredentialVerifier interface {
	Verify(ctx context.Context, user, secret string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
