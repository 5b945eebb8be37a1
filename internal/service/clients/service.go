package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	clientRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/client"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/clients/models"
)

// Service база клиентов для сотрудников
type Service struct {
	repo    ClientRepository
	session Session
	logger  Logger
}

func NewService(repo ClientRepository, session Session, logger Logger) *Service {
	return &Service{
		repo:    repo,
		session: session,
		logger:  logger,
	}
}

// Search поиск по имени, фамилии и телефону; пустой запрос возвращает весь список
func (s *Service) Search(ctx context.Context, q string) ([]domain.Client, error) {
	if err := s.staff("Search"); err != nil {
		return nil, err
	}

	q = strings.TrimSpace(q)
	if q == "" {
		return s.listAll(ctx)
	}

	list, err := s.repo.Search(ctx, q, domain.ClientSearchLimit)
	if err != nil {
		s.logger.Error("Search: repository error for %q: %v", q, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Lookup подбор клиента при оформлении заявки, запрос короче двух символов ничего не находит
func (s *Service) Lookup(ctx context.Context, q string) ([]domain.Client, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < domain.MinClientSearchLen {
		return []domain.Client{}, nil
	}
	return s.Search(ctx, q)
}

// ListAll последние зарегистрированные клиенты
func (s *Service) ListAll(ctx context.Context) ([]domain.Client, error) {
	if err := s.staff("ListAll"); err != nil {
		return nil, err
	}
	return s.listAll(ctx)
}

func (s *Service) listAll(ctx context.Context) ([]domain.Client, error) {
	list, err := s.repo.ListAll(ctx, domain.ClientListLimit)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Update перезаписывает данные клиента
func (s *Service) Update(ctx context.Context, id int64, form models.ClientForm) error {
	if err := s.staff("Update"); err != nil {
		return err
	}

	u, err := form.ToUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid form for client id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, id, u); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Update: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Update: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: client id=%d updated", id)
	return nil
}

// GetPassportData паспортные данные для формы редактирования, пустая строка если не заполнены
func (s *Service) GetPassportData(ctx context.Context, id int64) (string, error) {
	if err := s.staff("GetPassportData"); err != nil {
		return "", err
	}

	passport, err := s.repo.GetPassportData(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return "", ErrClientNotFound
		}
		s.logger.Error("GetPassportData: repository error for client id=%d: %v", id, err)
		return "", fmt.Errorf("%w: GetPassportData - repository error: %v", ErrInternal, err)
	}
	return passport, nil
}

func (s *Service) staff(op string) error {
	if s.session.Employee() == nil {
		s.logger.Warn("%s: access denied", op)
		return ErrAccessDenied
	}
	return nil
}
