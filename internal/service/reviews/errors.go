package reviews

import "errors"

var (
	// ErrInvalidRating возвращается при оценке вне диапазона 1..5
	ErrInvalidRating = errors.New("reviews.service: rating must be between 1 and 5")

	// ErrCommentTooLong возвращается при слишком длинном комментарии
	ErrCommentTooLong = errors.New("reviews.service: comment is too long")

	// ErrAccessDenied возвращается, если отзыв оставляет не сам клиент
	ErrAccessDenied = errors.New("reviews.service: access denied")

	// ErrNotEligible возвращается, если у клиента нет оплаченной заявки на тур
	ErrNotEligible = errors.New("reviews.service: client has no paid booking for the tour")

	// ErrAlreadyReviewed возвращается при повторном отзыве на тот же тур
	ErrAlreadyReviewed = errors.New("reviews.service: tour already reviewed")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("reviews.service: tour not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews.service: internal error")
)
