package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/tour"
)

// UseCase use case для создания заявки на тур
type UseCase struct {
	tourRepo    TourRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tourRepo TourRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tourRepo:    tourRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает заявку в одной транзакции:
// блокирует тур, проверяет что он активен и фиксирует его текущую стоимость как итоговую цену
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tour=%d, client=%d, employee=%v", req.TourID, req.ClientID, req.EmployeeID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		tour, err := uc.tourRepo.GetForBooking(txCtx, req.TourID)
		if err != nil {
			if errors.Is(err, tourRepo.ErrTourNotFound) {
				uc.logger.Warn("CreateBooking: tour id=%d not found", req.TourID)
				return ErrTourNotFound
			}
			uc.logger.Error("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
			return fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
		}

		if !tour.IsActive {
			uc.logger.Warn("CreateBooking: tour id=%d is not active", req.TourID)
			return ErrTourInactive
		}

		id, err := uc.bookingRepo.Create(txCtx, domain.NewBooking{
			TourID:     req.TourID,
			ClientID:   req.ClientID,
			EmployeeID: req.EmployeeID,
			FinalPrice: tour.Cost,
		})
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrClientNotFound):
				uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
				return ErrClientNotFound
			case errors.Is(err, bookingRepo.ErrTourNotFound):
				return ErrTourNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = &Response{
			ID:         id,
			TourID:     req.TourID,
			ClientID:   req.ClientID,
			EmployeeID: req.EmployeeID,
			FinalPrice: tour.Cost,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created, price=%s", result.ID, result.FinalPrice.StringFixed(2))
	return result, nil
}
