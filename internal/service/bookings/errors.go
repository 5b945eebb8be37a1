package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("bookings.service: access denied")

	// ErrClientRequired возвращается, если менеджер оформляет заявку без выбранного клиента
	ErrClientRequired = errors.New("bookings.service: client is not selected")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("bookings.service: invalid booking status")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("bookings.service: status transition is not allowed")

	// ErrAlreadyClaimed возвращается, когда заявку уже взял другой менеджер
	ErrAlreadyClaimed = errors.New("bookings.service: booking is claimed by another manager")

	// ErrCannotDelete возвращается при удалении неаннулированной заявки
	ErrCannotDelete = errors.New("bookings.service: only annulled bookings can be deleted")

	// ErrBookingHasPayments возвращается при удалении заявки с платежами
	ErrBookingHasPayments = errors.New("bookings.service: booking has payments")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
