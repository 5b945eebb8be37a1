package review

import "errors"

var (
	// ErrAlreadyReviewed возвращается при повторном отзыве клиента на тур
	ErrAlreadyReviewed = errors.New("review.repository: tour already reviewed by client")

	// ErrInvalidRating возвращается, когда оценка нарушает CHECK ограничение
	ErrInvalidRating = errors.New("review.repository: rating out of range")

	// ErrInvalidReference возвращается, когда тура или клиента не существует
	ErrInvalidReference = errors.New("review.repository: tour or client not found")

	ErrBuildQuery = errors.New("review.repository: failed to build query")
	ErrExecQuery  = errors.New("review.repository: failed to execute query")
	ErrScanRow    = errors.New("review.repository: failed to scan row")
)
