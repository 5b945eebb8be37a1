package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	employeeRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/employee"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/admin/models"
)

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Service управление персоналом и журнал аудита
type Service struct {
	employees    EmployeeRepository
	audit        AuditRepository
	timeProvider TimeProvider
	session      Session
	logger       Logger
}

func NewService(
	employees EmployeeRepository,
	audit AuditRepository,
	timeProvider TimeProvider,
	session Session,
	logger Logger,
) *Service {
	return &Service{
		employees:    employees,
		audit:        audit,
		timeProvider: timeProvider,
		session:      session,
		logger:       logger,
	}
}

// ListEmployees весь персонал по алфавиту
func (s *Service) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := s.admin("ListEmployees"); err != nil {
		return nil, err
	}

	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, s.mapError("ListEmployees", err)
	}
	return list, nil
}

// AddEmployee принимает сотрудника на работу сегодняшним числом
func (s *Service) AddEmployee(ctx context.Context, form models.EmployeeForm) (int64, error) {
	if err := s.admin("AddEmployee"); err != nil {
		return 0, err
	}

	in, err := form.ToInput()
	if err != nil {
		s.logger.Warn("AddEmployee: invalid form: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.timeProvider.Now()
	hireDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	id, err := s.employees.Create(ctx, in, hireDate)
	if err != nil {
		return 0, s.mapError("AddEmployee", err)
	}

	s.logger.Info("AddEmployee: employee id=%d (%s, %s) hired", id, in.LastName, in.Position)
	return id, nil
}

// UpdateEmployee меняет данные сотрудника, логин БД не меняется
func (s *Service) UpdateEmployee(ctx context.Context, id int64, form models.EmployeeForm) error {
	if err := s.admin("UpdateEmployee"); err != nil {
		return err
	}

	in, err := form.ToInput()
	if err != nil {
		s.logger.Warn("UpdateEmployee: invalid form for employee id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.employees.Update(ctx, id, in); err != nil {
		return s.mapError("UpdateEmployee", err)
	}

	s.logger.Info("UpdateEmployee: employee id=%d updated", id)
	return nil
}

// DeleteEmployee удаляет сотрудника без связанных туров и заявок
func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.admin("DeleteEmployee"); err != nil {
		return err
	}

	if e := s.session.Employee(); e.ID == id {
		s.logger.Warn("DeleteEmployee: admin id=%d tried to delete own account", id)
		return fmt.Errorf("%w: cannot delete own account", ErrInvalidInput)
	}

	if err := s.employees.Delete(ctx, id); err != nil {
		return s.mapError("DeleteEmployee", err)
	}

	s.logger.Info("DeleteEmployee: employee id=%d deleted", id)
	return nil
}

// ListAuditLog последние записи журнала аудита
func (s *Service) ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error) {
	if err := s.admin("ListAuditLog"); err != nil {
		return nil, err
	}

	entries, err := s.audit.ListRecent(ctx, domain.AuditLogLimit)
	if err != nil {
		s.logger.Error("ListAuditLog: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAuditLog - repository error: %v", ErrInternal, err)
	}
	return entries, nil
}

func (s *Service) admin(op string) error {
	e := s.session.Employee()
	if e == nil || !e.IsAdmin() {
		s.logger.Warn("%s: access denied", op)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, employeeRepo.ErrEmployeeNotFound):
		s.logger.Warn("%s: employee not found", op)
		return ErrEmployeeNotFound
	case errors.Is(err, employeeRepo.ErrLoginTaken):
		s.logger.Warn("%s: db login taken", op)
		return ErrLoginTaken
	case errors.Is(err, employeeRepo.ErrHasDependents):
		s.logger.Warn("%s: employee has dependents", op)
		return ErrEmployeeHasDependents
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
