package bookings

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/bookings/models"
	paymentModels "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
	"github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"
)

// Service сервис для работы с заявками
type Service struct {
	bookingRepo   BookingRepository
	createBooking CreateBookingUseCase
	payments      PaymentService
	txManager     TransactionManager
	session       Session
	logger        Logger
	cardDigits    func() int
}

// NewService создает новый экземпляр сервиса заявок
func NewService(
	bookingRepo BookingRepository,
	createBooking CreateBookingUseCase,
	payments PaymentService,
	txManager TransactionManager,
	session Session,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		createBooking: createBooking,
		payments:      payments,
		txManager:     txManager,
		session:       session,
		logger:        logger,
		cardDigits:    func() int { return 1000 + rand.Intn(9000) },
	}
}

// WithCardDigits подменяет генератор последних цифр карты
func (s *Service) WithCardDigits(fn func() int) *Service {
	s.cardDigits = fn
	return s
}

// Create оформляет заявку
// Менеджер бронирует для выбранного клиента и сразу закрепляет заявку за собой,
// клиент бронирует для себя, clientID при этом игнорируется
func (s *Service) Create(ctx context.Context, tourID, clientID int64) (int64, error) {
	req := &create_booking.Request{TourID: tourID}

	switch e, c := s.session.Employee(), s.session.Client(); {
	case e != nil && e.IsManager():
		if clientID <= 0 {
			s.logger.Warn("Create: manager id=%d did not select a client", e.ID)
			return 0, ErrClientRequired
		}
		employeeID := e.ID
		req.ClientID = clientID
		req.EmployeeID = &employeeID
	case c != nil:
		req.ClientID = c.ID
	default:
		s.logger.Warn("Create: access denied")
		return 0, ErrAccessDenied
	}

	resp, err := s.createBooking.Execute(ctx, req)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// ListForManager заявки текущего менеджера и свободные заявки
func (s *Service) ListForManager(ctx context.Context) ([]domain.Booking, error) {
	e, err := s.manager("ListForManager")
	if err != nil {
		return nil, err
	}

	list, err := s.bookingRepo.ListForManager(ctx, e.ID)
	if err != nil {
		s.logger.Error("ListForManager: repository error for employee id=%d: %v", e.ID, err)
		return nil, fmt.Errorf("%w: ListForManager - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// ListForClient заявки текущего клиента
func (s *Service) ListForClient(ctx context.Context) ([]domain.Booking, error) {
	c := s.session.Client()
	if c == nil {
		s.logger.Warn("ListForClient: access denied")
		return nil, ErrAccessDenied
	}

	list, err := s.bookingRepo.ListForClient(ctx, c.ID)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client id=%d: %v", c.ID, err)
		return nil, fmt.Errorf("%w: ListForClient - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// SetStatus закрепляет заявку за менеджером и меняет её статус в одной транзакции
func (s *Service) SetStatus(ctx context.Context, bookingID int64, status string) error {
	e, err := s.manager("SetStatus")
	if err != nil {
		return err
	}

	to, ok := domain.ParseBookingStatus(status)
	if !ok {
		s.logger.Warn("SetStatus: unknown status %q for booking id=%d", status, bookingID)
		return ErrInvalidStatus
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		state, err := s.bookingRepo.GetState(txCtx, bookingID)
		if err != nil {
			return s.mapError("SetStatus", err)
		}

		if !domain.CanTransition(state.Status, to, state.PaymentStatus) {
			s.logger.Warn("SetStatus: transition %s -> %s (%s) is not allowed for booking id=%d",
				state.Status, to, state.PaymentStatus, bookingID)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.Claim(txCtx, bookingID, e.ID); err != nil {
			return s.mapError("SetStatus", err)
		}
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, to); err != nil {
			return s.mapError("SetStatus", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("SetStatus: booking id=%d set to %s by employee id=%d", bookingID, to, e.ID)
	return nil
}

// Delete удаляет аннулированную заявку
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	if _, err := s.manager("Delete"); err != nil {
		return err
	}

	state, err := s.bookingRepo.GetState(ctx, bookingID)
	if err != nil {
		return s.mapError("Delete", err)
	}
	if state.Status != domain.StatusAnnulled {
		s.logger.Warn("Delete: booking id=%d has status %s", bookingID, state.Status)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return s.mapError("Delete", err)
	}

	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}

// Pay оплата заявки клиентом картой
func (s *Service) Pay(ctx context.Context, bookingID int64, amount decimal.Decimal) (*paymentModels.Receipt, error) {
	c := s.session.Client()
	if c == nil {
		s.logger.Warn("Pay: access denied")
		return nil, ErrAccessDenied
	}

	method := models.CardMethod(s.cardDigits())
	receipt, err := s.payments.AddPayment(ctx, bookingID, amount, method)
	if err != nil {
		s.logger.Warn("Pay: client id=%d, booking id=%d: %v", c.ID, bookingID, err)
		return nil, err
	}
	return receipt, nil
}

// manager текущий сотрудник, если он работает с заявками
func (s *Service) manager(op string) (*domain.Employee, error) {
	e := s.session.Employee()
	if e == nil || !e.IsManager() {
		s.logger.Warn("%s: access denied", op)
		return nil, ErrAccessDenied
	}
	return e, nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking not found", op)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrAlreadyClaimed):
		s.logger.Warn("%s: booking claimed by another manager", op)
		return ErrAlreadyClaimed
	case errors.Is(err, bookingRepo.ErrHasPayments):
		s.logger.Warn("%s: booking has payments", op)
		return ErrBookingHasPayments
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
