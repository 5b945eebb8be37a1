package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	employeeRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/employee"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/admin/models"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeEmployees struct {
	created   []domain.EmployeeInput
	hireDates []time.Time
	createErr error
	deleteErr error
	updated   map[int64]domain.EmployeeInput
}

func (f *fakeEmployees) List(context.Context) ([]domain.Employee, error) {
	return []domain.Employee{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeEmployees) Create(_ context.Context, in domain.EmployeeInput, hireDate time.Time) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, in)
	f.hireDates = append(f.hireDates, hireDate)
	return int64(10 + len(f.created)), nil
}

func (f *fakeEmployees) Update(_ context.Context, id int64, in domain.EmployeeInput) error {
	if id == 404 {
		return employeeRepo.ErrEmployeeNotFound
	}
	f.updated[id] = in
	return nil
}

func (f *fakeEmployees) Delete(context.Context, int64) error { return f.deleteErr }

type fakeAudit struct{ limit uint64 }

func (f *fakeAudit) ListRecent(_ context.Context, limit uint64) ([]domain.AuditLogEntry, error) {
	f.limit = limit
	return []domain.AuditLogEntry{{ID: 2}, {ID: 1}}, nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeSession struct{ employee *domain.Employee }

func (f fakeSession) Employee() *domain.Employee { return f.employee }

var adminUser = &domain.Employee{ID: 1, Position: domain.PositionAdmin}

func newService(e *domain.Employee) (*Service, *fakeEmployees, *fakeAudit) {
	employees := &fakeEmployees{updated: map[int64]domain.EmployeeInput{}}
	audit := &fakeAudit{}
	now := fixedTime{t: time.Date(2025, time.March, 14, 16, 30, 0, 0, time.UTC)}
	return NewService(employees, audit, now, fakeSession{employee: e}, logger.Nop()), employees, audit
}

func validForm() models.EmployeeForm {
	return models.EmployeeForm{
		FirstName: "Анна",
		LastName:  "Смирнова",
		Email:     "anna@agency.ru",
		Position:  domain.PositionManager,
		DBLogin:   "manager_anna",
	}
}

func TestService_AddEmployee(t *testing.T) {
	svc, employees, _ := newService(adminUser)

	id, err := svc.AddEmployee(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.Equal(t, time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), employees.hireDates[0])
	assert.Nil(t, employees.created[0].Phone)
	assert.Equal(t, "manager_anna", employees.created[0].DBLogin)
}

func TestService_AddEmployee_Errors(t *testing.T) {
	svc, employees, _ := newService(adminUser)

	form := validForm()
	form.Position = "Директор"
	_, err := svc.AddEmployee(context.Background(), form)
	assert.ErrorIs(t, err, ErrInvalidInput)

	employees.createErr = employeeRepo.ErrLoginTaken
	_, err = svc.AddEmployee(context.Background(), validForm())
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestService_UpdateEmployee(t *testing.T) {
	svc, employees, _ := newService(adminUser)

	form := validForm()
	form.Position = domain.PositionSenior
	require.NoError(t, svc.UpdateEmployee(context.Background(), 5, form))
	assert.Equal(t, domain.PositionSenior, employees.updated[5].Position)

	assert.ErrorIs(t, svc.UpdateEmployee(context.Background(), 404, validForm()), ErrEmployeeNotFound)
}

func TestService_DeleteEmployee(t *testing.T) {
	svc, employees, _ := newService(adminUser)

	require.NoError(t, svc.DeleteEmployee(context.Background(), 5))

	employees.deleteErr = employeeRepo.ErrHasDependents
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), 5), ErrEmployeeHasDependents)

	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), adminUser.ID), ErrInvalidInput)
}

func TestService_ListAuditLog(t *testing.T) {
	svc, _, audit := newService(adminUser)

	entries, err := svc.ListAuditLog(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, uint64(domain.AuditLogLimit), audit.limit)
}

func TestService_AdminOnly(t *testing.T) {
	svc, _, _ := newService(&domain.Employee{ID: 3, Position: domain.PositionManager})

	_, err := svc.ListEmployees(context.Background())
	assert.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.ListAuditLog(context.Background())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, svc.DeleteEmployee(context.Background(), 5), ErrAccessDenied)
}
