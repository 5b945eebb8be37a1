package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/payment"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
)

// Service учёт платежей и должников
type Service struct {
	bookings  BookingRepository
	payments  PaymentRepository
	txManager TransactionManager
	session   Session
	logger    Logger
}

func NewService(
	bookings BookingRepository,
	payments PaymentRepository,
	txManager TransactionManager,
	session Session,
	logger Logger,
) *Service {
	return &Service{
		bookings:  bookings,
		payments:  payments,
		txManager: txManager,
		session:   session,
		logger:    logger,
	}
}

// ListDebtors заявки с непогашенным долгом, старые первыми
func (s *Service) ListDebtors(ctx context.Context) ([]domain.Debtor, error) {
	if !s.isCashier() {
		s.logger.Warn("ListDebtors: access denied")
		return nil, ErrAccessDenied
	}

	debtors, err := s.payments.ListDebtors(ctx)
	if err != nil {
		s.logger.Error("ListDebtors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDebtors - repository error: %v", ErrInternal, err)
	}
	return debtors, nil
}

// AddPayment вносит платёж и пересчитывает статус оплаты заявки в одной транзакции
func (s *Service) AddPayment(ctx context.Context, bookingID int64, amount decimal.Decimal, method string) (*models.Receipt, error) {
	// 1. Проверка прав и входных данных
	cashier := s.isCashier()
	client := s.session.Client()
	if !cashier && client == nil {
		s.logger.Warn("AddPayment: access denied for booking id=%d", bookingID)
		return nil, ErrAccessDenied
	}

	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	// в БД сумма хранится с точностью до копейки
	amount = amount.Round(2)
	if !amount.IsPositive() {
		s.logger.Warn("AddPayment: non-positive amount %s for booking id=%d", amount, bookingID)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrNonPositive)
	}
	method, err := models.ValidateMethod(method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	reference := uuid.NewString()
	receipt := &models.Receipt{Reference: reference}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Блокируем заявку
		state, err := s.bookings.GetState(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("AddPayment: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("AddPayment: failed to lock booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: AddPayment - get booking: %v", ErrInternal, err)
		}

		if !cashier && state.ClientID != client.ID {
			s.logger.Warn("AddPayment: client id=%d is not the owner of booking id=%d", client.ID, bookingID)
			return ErrAccessDenied
		}
		if state.Status == domain.StatusAnnulled {
			s.logger.Warn("AddPayment: booking id=%d is annulled", bookingID)
			return ErrBookingAnnulled
		}

		// 3. Проверяем остаток долга
		paid, err := s.payments.SumByBooking(txCtx, bookingID)
		if err != nil {
			s.logger.Error("AddPayment: failed to sum payments of booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: AddPayment - sum payments: %v", ErrInternal, err)
		}
		debt := state.FinalPrice.Sub(paid)
		if amount.GreaterThan(debt) {
			s.logger.Warn("AddPayment: amount %s exceeds debt %s for booking id=%d", amount, debt, bookingID)
			return ErrOverpayment
		}

		// 4. Записываем платёж
		paymentID, err := s.payments.Create(txCtx, domain.NewPayment{
			BookingID:       bookingID,
			Amount:          amount,
			Method:          method,
			TransactionInfo: domain.DefaultPaymentNote + " #" + reference,
		})
		if err != nil {
			switch {
			case errors.Is(err, paymentRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			case errors.Is(err, paymentRepo.ErrInvalidAmount):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			s.logger.Error("AddPayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: AddPayment - create payment: %v", ErrInternal, err)
		}

		// 5. Пересчитываем статус оплаты
		total := paid.Add(amount)
		status := domain.DerivePaymentStatus(total, state.FinalPrice)
		if err := s.bookings.UpdatePaymentStatus(txCtx, bookingID, status); err != nil {
			s.logger.Error("AddPayment: failed to update payment status of booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: AddPayment - update payment status: %v", ErrInternal, err)
		}

		receipt.PaymentID = paymentID
		receipt.Status = status
		receipt.Debt = state.FinalPrice.Sub(total)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AddPayment: payment id=%d, booking id=%d, amount=%s, status=%s",
		receipt.PaymentID, bookingID, amount.StringFixed(2), receipt.Status)
	return receipt, nil
}

// isCashier финансист или администратор
func (s *Service) isCashier() bool {
	e := s.session.Employee()
	return e != nil && (e.IsFinancier() || e.IsAdmin())
}
