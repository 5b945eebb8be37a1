package payments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной сумме или способе оплаты
	ErrInvalidInput = errors.New("payments.service: invalid payment data")

	// ErrAccessDenied возвращается, если платёж вносит не финансист, не администратор и не владелец заявки
	ErrAccessDenied = errors.New("payments.service: access denied")

	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("payments.service: booking not found")

	// ErrBookingAnnulled возвращается при оплате аннулированной заявки
	ErrBookingAnnulled = errors.New("payments.service: booking is annulled")

	// ErrOverpayment возвращается, когда сумма больше остатка долга
	ErrOverpayment = errors.New("payments.service: amount exceeds remaining debt")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments.service: internal error")
)
