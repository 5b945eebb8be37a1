package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда заявка не найдена
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrTourNotFound возвращается, когда тур заявки не существует
	ErrTourNotFound = errors.New("booking.repository: tour not found")

	// ErrClientNotFound возвращается, когда клиент заявки не существует
	ErrClientNotFound = errors.New("booking.repository: client not found")

	// ErrAlreadyClaimed возвращается, когда заявка закреплена за другим сотрудником
	ErrAlreadyClaimed = errors.New("booking.repository: booking claimed by another employee")

	// ErrHasPayments возвращается при удалении заявки, по которой есть платежи
	ErrHasPayments = errors.New("booking.repository: booking has payments")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
