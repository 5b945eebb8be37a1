package payment

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявки для платежа не существует
	ErrBookingNotFound = errors.New("payment.repository: booking not found")

	// ErrInvalidAmount возвращается, когда сумма нарушает CHECK (amount > 0)
	ErrInvalidAmount = errors.New("payment.repository: invalid payment amount")

	ErrBuildQuery = errors.New("payment.repository: failed to build query")
	ErrExecQuery  = errors.New("payment.repository: failed to execute query")
	ErrScanRow    = errors.New("payment.repository: failed to scan row")
)
