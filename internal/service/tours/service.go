package tours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	tourRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/tour"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/tours/models"
)

// Service каталог туров
type Service struct {
	repo    TourRepository
	session Session
	logger  Logger
}

func NewService(repo TourRepository, session Session, logger Logger) *Service {
	return &Service{
		repo:    repo,
		session: session,
		logger:  logger,
	}
}

// List каталог с фильтром по направлению и максимальной цене
func (s *Service) List(ctx context.Context, filter domain.TourFilter) ([]domain.Tour, error) {
	tours, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return tours, nil
}

// Dictionaries типы туров и партнёры
func (s *Service) Dictionaries(ctx context.Context) (*models.Dictionaries, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		s.logger.Error("Dictionaries: load types: %v", err)
		return nil, fmt.Errorf("%w: Dictionaries - types: %v", ErrInternal, err)
	}

	partners, err := s.repo.ListPartners(ctx)
	if err != nil {
		s.logger.Error("Dictionaries: load partners: %v", err)
		return nil, fmt.Errorf("%w: Dictionaries - partners: %v", ErrInternal, err)
	}

	return &models.Dictionaries{Types: types, Partners: partners}, nil
}

// Create добавляет тур от имени текущего сотрудника
func (s *Service) Create(ctx context.Context, form models.TourForm) (int64, error) {
	e, err := s.editor("Create")
	if err != nil {
		return 0, err
	}

	in, err := form.ToInput()
	if err != nil {
		s.logger.Warn("Create: invalid form: %v", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	in.EmployeeID = e.ID

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, s.mapError("Create", err)
	}

	s.logger.Info("Create: tour id=%d (%s) created by employee id=%d", id, in.Destination, e.ID)
	return id, nil
}

// Update перезаписывает тур
func (s *Service) Update(ctx context.Context, id int64, form models.TourForm) error {
	if _, err := s.editor("Update"); err != nil {
		return err
	}

	in, err := form.ToInput()
	if err != nil {
		s.logger.Warn("Update: invalid form for tour id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Update(ctx, id, in); err != nil {
		return s.mapError("Update", err)
	}

	s.logger.Info("Update: tour id=%d updated", id)
	return nil
}

// SetActive открывает или закрывает тур для новых заявок
func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	if _, err := s.editor("SetActive"); err != nil {
		return err
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return s.mapError("SetActive", err)
	}

	s.logger.Info("SetActive: tour id=%d active=%t", id, active)
	return nil
}

// Delete удаляет тур без заявок
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.editor("Delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapError("Delete", err)
	}

	s.logger.Info("Delete: tour id=%d deleted", id)
	return nil
}

// editor текущий сотрудник, если ему разрешено менять каталог
func (s *Service) editor(op string) (*domain.Employee, error) {
	e := s.session.Employee()
	if e == nil || !(e.IsManager() || e.IsAdmin()) {
		s.logger.Warn("%s: access denied", op)
		return nil, ErrAccessDenied
	}
	return e, nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, tourRepo.ErrTourNotFound):
		s.logger.Warn("%s: tour not found", op)
		return ErrTourNotFound
	case errors.Is(err, tourRepo.ErrHasBookings):
		s.logger.Warn("%s: tour has bookings", op)
		return ErrTourHasBookings
	case errors.Is(err, tourRepo.ErrInvalidReference):
		s.logger.Warn("%s: invalid reference", op)
		return ErrInvalidReference
	case errors.Is(err, tourRepo.ErrInvalidData):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
