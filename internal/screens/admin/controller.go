package admin

import (
	"context"
	"errors"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	adminService "github.com/m04kA/TravelAgency-BackOffice/internal/service/admin"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/admin/models"
)

const (
	msgError         = "Ошибка: "
	msgAddFailed     = "Ошибка добавления: "
	msgUpdateFailed  = "Ошибка обновления: "
	msgLoginTaken    = "Этот логин уже занят"
	msgHasDependents = "Нельзя удалить: у сотрудника есть связанные данные (туры или брони)."
	msgDeleteFailed  = "Не удалось удалить: "
)

var knownErrors = []viewstate.ErrorText{
	{Err: adminService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: adminService.ErrEmployeeNotFound, Text: "Сотрудник не найден"},
	{Err: adminService.ErrInvalidInput, Text: "Проверьте введённые данные"},
	{Err: adminService.ErrLoginTaken, Text: msgLoginTaken},
}

// AdminService интерфейс сервиса администратора
type AdminService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	AddEmployee(ctx context.Context, form models.EmployeeForm) (int64, error)
	UpdateEmployee(ctx context.Context, id int64, form models.EmployeeForm) error
	DeleteEmployee(ctx context.Context, id int64) error
	ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Controller экраны "Штат" и "Аудит"
type Controller struct {
	admin     AdminService
	logger    Logger
	employees *viewstate.Holder[[]domain.Employee]
	audit     *viewstate.Holder[[]domain.AuditLogEntry]
}

func NewController(admin AdminService, logger Logger) *Controller {
	return &Controller{
		admin:     admin,
		logger:    logger,
		employees: viewstate.NewHolder[[]domain.Employee](),
		audit:     viewstate.NewHolder[[]domain.AuditLogEntry](),
	}
}

func (c *Controller) Employees() *viewstate.Holder[[]domain.Employee] {
	return c.employees
}

func (c *Controller) Audit() *viewstate.Holder[[]domain.AuditLogEntry] {
	return c.audit
}

func (c *Controller) LoadEmployees(ctx context.Context) {
	c.employees.SetLoading()

	list, err := c.admin.ListEmployees(ctx)
	if err != nil {
		c.logger.Error("LoadEmployees: %v", err)
		c.employees.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.employees.SetContent(list)
}

func (c *Controller) CreateEmployee(ctx context.Context, form models.EmployeeForm) {
	_, err := c.admin.AddEmployee(ctx, form)
	switch {
	case errors.Is(err, adminService.ErrLoginTaken):
		c.employees.SetError(msgLoginTaken)
	case err != nil:
		c.logger.Warn("CreateEmployee: %v", err)
		c.employees.SetError(msgAddFailed + viewstate.Describe(err, knownErrors...))
	default:
		c.LoadEmployees(ctx)
	}
}

func (c *Controller) EditEmployee(ctx context.Context, id int64, form models.EmployeeForm) {
	if err := c.admin.UpdateEmployee(ctx, id, form); err != nil {
		c.logger.Warn("EditEmployee: employee id=%d: %v", id, err)
		c.employees.SetError(msgUpdateFailed + viewstate.Describe(err, knownErrors...))
		return
	}
	c.LoadEmployees(ctx)
}

func (c *Controller) DeleteEmployee(ctx context.Context, id int64) {
	err := c.admin.DeleteEmployee(ctx, id)
	switch {
	case errors.Is(err, adminService.ErrEmployeeHasDependents):
		c.employees.SetError(msgHasDependents)
	case err != nil:
		c.logger.Warn("DeleteEmployee: employee id=%d: %v", id, err)
		c.employees.SetError(msgDeleteFailed + viewstate.Describe(err, knownErrors...))
	default:
		c.LoadEmployees(ctx)
	}
}

// LoadLogs последние записи журнала аудита
func (c *Controller) LoadLogs(ctx context.Context) {
	c.audit.SetLoading()

	entries, err := c.admin.ListAuditLog(ctx)
	if err != nil {
		c.logger.Error("LoadLogs: %v", err)
		c.audit.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.audit.SetContent(entries)
}
