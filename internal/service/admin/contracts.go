package admin

import (
	"context"
	"time"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// EmployeeRepository интерфейс репозитория сотрудников
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, in domain.EmployeeInput, hireDate time.Time) (int64, error)
	Update(ctx context.Context, id int64, in domain.EmployeeInput) error
	Delete(ctx context.Context, id int64) error
}

// AuditRepository интерфейс журнала аудита
type AuditRepository interface {
	ListRecent(ctx context.Context, limit uint64) ([]domain.AuditLogEntry, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
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
