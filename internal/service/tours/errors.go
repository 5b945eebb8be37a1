package tours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных тура
	ErrInvalidInput = errors.New("tours.service: invalid tour data")

	// ErrAccessDenied возвращается, если изменять каталог пытается не менеджер и не администратор
	ErrAccessDenied = errors.New("tours.service: access denied")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tours.service: tour not found")

	// ErrTourHasBookings возвращается при удалении тура с заявками
	ErrTourHasBookings = errors.New("tours.service: tour has bookings")

	// ErrInvalidReference возвращается, если выбранный тип или партнёр не существуют
	ErrInvalidReference = errors.New("tours.service: unknown tour type or partner")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tours.service: internal error")
)
