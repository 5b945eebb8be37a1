package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/client"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/database"
	"github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/employee"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/auth/models"
)

// Service вход и регистрация
type Service struct {
	clients    ClientRepository
	employees  EmployeeRepository
	verifier   CredentialVerifier
	logger     Logger
	bcryptCost int
}

// NewService создает сервис; bcryptCost 0 означает bcrypt.DefaultCost
func NewService(
	clients ClientRepository,
	employees EmployeeRepository,
	verifier CredentialVerifier,
	logger Logger,
	bcryptCost int,
) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		clients:    clients,
		employees:  employees,
		verifier:   verifier,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

// LoginClient проверяет email и пароль клиента; при несовпадении возвращает nil без ошибки
func (s *Service) LoginClient(ctx context.Context, email, password string) (*domain.Client, error) {
	c, hash, err := s.clients.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, client.ErrClientNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("LoginClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: LoginClient - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn("LoginClient: wrong password for client id=%d", c.ID)
		return nil, nil
	}

	return c, nil
}

// GetEmployeeInfo сотрудник по логину роли БД, nil если не найден
func (s *Service) GetEmployeeInfo(ctx context.Context, dbLogin string) (*domain.Employee, error) {
	e, err := s.employees.GetByLogin(ctx, strings.TrimSpace(dbLogin))
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("GetEmployeeInfo: repository error for login=%s: %v", dbLogin, err)
		return nil, fmt.Errorf("%w: GetEmployeeInfo - repository error: %v", ErrInternal, err)
	}
	return e, nil
}

// Login сначала пробует войти как клиент, затем как сотрудник
func (s *Service) Login(ctx context.Context, login, password string) (*models.LoginResult, error) {
	if strings.TrimSpace(login) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidInput
	}

	c, err := s.LoginClient(ctx, login, password)
	if err != nil {
		return nil, err
	}
	if c != nil {
		s.logger.Info("Login: client id=%d signed in", c.ID)
		return &models.LoginResult{Client: c}, nil
	}

	e, err := s.GetEmployeeInfo(ctx, login)
	if err != nil {
		return nil, err
	}
	if e == nil {
		s.logger.Warn("Login: no client or employee for login=%s", login)
		return nil, ErrInvalidCredentials
	}

	if err := s.verifier.Verify(ctx, e.DBLogin, password); err != nil {
		if errors.Is(err, database.ErrInvalidCredentials) {
			s.logger.Warn("Login: database rejected credentials for login=%s", login)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: credential check failed for login=%s: %v", login, err)
		return nil, fmt.Errorf("%w: Login - verify credentials: %v", ErrInternal, err)
	}

	s.logger.Info("Login: employee id=%d (%s) signed in", e.ID, e.Position)
	return &models.LoginResult{Employee: e}, nil
}

// RegisterClient регистрирует клиента и возвращает его ID
func (s *Service) RegisterClient(ctx context.Context, req models.RegisterRequest) (int64, error) {
	req = req.Normalize()
	if !req.Complete() {
		return 0, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("RegisterClient: hash password: %v", err)
		return 0, fmt.Errorf("%w: RegisterClient - hash password: %v", ErrInternal, err)
	}

	id, err := s.clients.Create(ctx, domain.NewClient{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        optional(req.Phone),
		Email:        req.Email,
		PasswordHash: string(hash),
		PassportData: optional(req.Passport),
	})
	if errors.Is(err, client.ErrEmailTaken) {
		s.logger.Warn("RegisterClient: email %s already taken", req.Email)
		return 0, ErrEmailTaken
	}
	if err != nil {
		s.logger.Error("RegisterClient: repository error: %v", err)
		return 0, fmt.Errorf("%w: RegisterClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterClient: client id=%d registered", id)
	return id, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
