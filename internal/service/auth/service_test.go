package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/client"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/database"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/employee"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/auth/models"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeClients struct {
	byEmail map[string]*domain.Client
	hashes  map[string]string
	created []domain.NewClient
	err     error
}

func (f *fakeClients) Create(_ context.Context, c domain.NewClient) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, c)
	return int64(len(f.created)), nil
}

func (f *fakeClients) FindByEmail(_ context.Context, email string) (*domain.Client, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	c, ok := f.byEmail[email]
	if !ok {
		return nil, "", client.ErrClientNotFound
	}
	return c, f.hashes[email], nil
}

type fakeEmployees struct {
	byLogin map[string]*domain.Employee
}

func (f *fakeEmployees) GetByLogin(_ context.Context, login string) (*domain.Employee, error) {
	e, ok := f.byLogin[login]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeVerifier struct {
	secrets map[string]string
	err     error
	calls   int
}

func (f *fakeVerifier) Verify(_ context.Context, user, secret string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	if f.secrets[user] != secret {
		return database.ErrInvalidCredentials
	}
	return nil
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newService(t *testing.T) (*Service, *fakeClients, *fakeVerifier) {
	clients := &fakeClients{
		byEmail: map[string]*domain.Client{"ivan@mail.ru": {ID: 7, FirstName: "Иван", LastName: "Иванов"}},
		hashes:  map[string]string{"ivan@mail.ru": hash(t, "qwerty")},
	}
	employees := &fakeEmployees{byLogin: map[string]*domain.Employee{
		"manager_petrov": {ID: 2, FirstName: "Пётр", LastName: "Петров", Position: domain.PositionManager, DBLogin: "manager_petrov"},
	}}
	verifier := &fakeVerifier{secrets: map[string]string{"manager_petrov": "pg-secret"}}
	return NewService(clients, employees, verifier, logger.Nop(), bcrypt.MinCost), clients, verifier
}

func TestService_Login_Client(t *testing.T) {
	svc, _, verifier := newService(t)

	res, err := svc.Login(context.Background(), "ivan@mail.ru", "qwerty")
	require.NoError(t, err)
	require.NotNil(t, res.Client)
	assert.Nil(t, res.Employee)
	assert.Equal(t, "Иван Иванов", res.DisplayName())
	assert.Zero(t, verifier.calls)
}

func TestService_Login_Employee(t *testing.T) {
	svc, _, verifier := newService(t)

	res, err := svc.Login(context.Background(), "manager_petrov", "pg-secret")
	require.NoError(t, err)
	require.NotNil(t, res.Employee)
	assert.Nil(t, res.Client)
	assert.Equal(t, 1, verifier.calls)
}

func TestService_Login_EmployeeWrongPassword(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "manager_petrov", "nope")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_Unknown(t *testing.T) {
	svc, _, verifier := newService(t)

	_, err := svc.Login(context.Background(), "ghost@mail.ru", "qwerty")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, verifier.calls)
}

func TestService_Login_ClientWrongPasswordFallsThrough(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "ivan@mail.ru", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_BlankFields(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Login(context.Background(), "  ", "x")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Login_VerifierUnavailable(t *testing.T) {
	svc, _, verifier := newService(t)
	verifier.err = errors.New("dial tcp: connection refused")

	_, err := svc.Login(context.Background(), "manager_petrov", "pg-secret")
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_RegisterClient(t *testing.T) {
	svc, clients, _ := newService(t)

	id, err := svc.RegisterClient(context.Background(), models.RegisterRequest{
		FirstName: " Анна ",
		LastName:  "Смирнова",
		Email:     "anna@mail.ru",
		Password:  "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	created := clients.created[0]
	assert.Equal(t, "Анна", created.FirstName)
	assert.Nil(t, created.Phone)
	assert.Nil(t, created.PassportData)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestService_RegisterClient_EmailTaken(t *testing.T) {
	svc, clients, _ := newService(t)
	clients.err = client.ErrEmailTaken

	_, err := svc.RegisterClient(context.Background(), models.RegisterRequest{
		FirstName: "Анна", LastName: "Смирнова", Email: "ivan@mail.ru", Password: "x",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_RegisterClient_MissingFields(t *testing.T) {
	svc, clients, _ := newService(t)

	_, err := svc.RegisterClient(context.Background(), models.RegisterRequest{FirstName: "Анна", Email: "a@mail.ru", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, clients.created)
}

func TestService_GetEmployeeInfo_NotFound(t *testing.T) {
	svc, _, _ := newService(t)

	e, err := svc.GetEmployeeInfo(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, e)
}
