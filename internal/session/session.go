// Package session хранит текущего пользователя приложения
package session

import (
	"sync"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// Kind тип вошедшего пользователя
type Kind int

const (
	KindNone Kind = iota
	KindClient
	KindEmployee
)

// Principal кто сейчас работает с приложением
type Principal struct {
	Kind     Kind
	ID       int64
	Name     string
	Position string // только для сотрудника
}

// Session в каждый момент держит не больше одного пользователя: клиента или сотрудника
type Session struct {
	mu       sync.RWMutex
	client   *domain.Client
	employee *domain.Employee
}

func New() *Session {
	return &Session{}
}

// LoginClient запоминает клиента и сбрасывает сотрудника
func (s *Session) LoginClient(c *domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
	s.employee = nil
}

// LoginEmployee запоминает сотрудника и сбрасывает клиента
func (s *Session) LoginEmployee(e *domain.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employee = e
	s.client = nil
}

// Clear выход из системы
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = nil
	s.employee = nil
}

func (s *Session) Client() *domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Session) Employee() *domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.employee
}

func (s *Session) IsClient() bool {
	return s.Client() != nil
}

func (s *Session) IsEmployee() bool {
	return s.Employee() != nil
}

func (s *Session) IsAdmin() bool {
	e := s.Employee()
	return e != nil && e.IsAdmin()
}

func (s *Session) IsFinancier() bool {
	e := s.Employee()
	return e != nil && e.IsFinancier()
}

// IsManager Менеджер или Старший
func (s *Session) IsManager() bool {
	e := s.Employee()
	return e != nil && e.IsManager()
}

// Principal снимок текущего пользователя
func (s *Session) Principal() Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case s.client != nil:
		return Principal{Kind: KindClient, ID: s.client.ID, Name: s.client.FullName()}
	case s.employee != nil:
		return Principal{
			Kind:     KindEmployee,
			ID:       s.employee.ID,
			Name:     s.employee.FullName(),
			Position: s.employee.Position,
		}
	default:
		return Principal{Kind: KindNone}
	}
}
