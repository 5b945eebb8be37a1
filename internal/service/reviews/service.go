package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	reviewRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/review"
)

// Service отзывы клиентов о турах
type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
	session  Session
	logger   Logger
}

func NewService(reviews ReviewRepository, bookings BookingRepository, session Session, logger Logger) *Service {
	return &Service{
		reviews:  reviews,
		bookings: bookings,
		session:  session,
		logger:   logger,
	}
}

// Add сохраняет отзыв клиента на тур, который он полностью оплатил
func (s *Service) Add(ctx context.Context, tourID, clientID int64, rating int, comment string) (int64, error) {
	if c := s.session.Client(); c == nil || c.ID != clientID {
		s.logger.Warn("Add: access denied for client id=%d", clientID)
		return 0, ErrAccessDenied
	}

	if rating < domain.MinRating || rating > domain.MaxRating {
		s.logger.Warn("Add: rating %d out of range", rating)
		return 0, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > domain.MaxReviewLength {
		return 0, ErrCommentTooLong
	}

	eligible, err := s.bookings.HasPaidBooking(ctx, clientID, tourID)
	if err != nil {
		s.logger.Error("Add: eligibility check failed for client id=%d, tour id=%d: %v", clientID, tourID, err)
		return 0, fmt.Errorf("%w: Add - eligibility check: %v", ErrInternal, err)
	}
	if !eligible {
		s.logger.Warn("Add: client id=%d has no paid booking for tour id=%d", clientID, tourID)
		return 0, ErrNotEligible
	}

	id, err := s.reviews.Create(ctx, domain.NewReview{
		TourID:   tourID,
		ClientID: clientID,
		Rating:   rating,
		Comment:  comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, reviewRepo.ErrAlreadyReviewed):
			s.logger.Warn("Add: client id=%d already reviewed tour id=%d", clientID, tourID)
			return 0, ErrAlreadyReviewed
		case errors.Is(err, reviewRepo.ErrInvalidRating):
			return 0, ErrInvalidRating
		case errors.Is(err, reviewRepo.ErrInvalidReference):
			return 0, ErrTourNotFound
		}
		s.logger.Error("Add: repository error: %v", err)
		return 0, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: review id=%d, tour id=%d, rating=%d", id, tourID, rating)
	return id, nil
}

// ListAll все отзывы, новые первыми
func (s *Service) ListAll(ctx context.Context) ([]domain.Review, error) {
	if s.session.Employee() == nil && s.session.Client() == nil {
		s.logger.Warn("ListAll: access denied")
		return nil, ErrAccessDenied
	}

	list, err := s.reviews.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return list, nil
}
