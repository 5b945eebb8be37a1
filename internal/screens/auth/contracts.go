package auth

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/auth/models"
)

// AuthService интерфейс сервиса входа и регистрации
type AuthService interface {
	Login(ctx context.Context, login, password string) (*models.LoginResult, error)
	RegisterClient(ctx context.Context, req models.RegisterRequest) (int64, error)
}

// Session сессия приложения
type Session interface {
	LoginClient(c *domain.Client)
	LoginEmployee(e *domain.Employee)
	Clear()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
