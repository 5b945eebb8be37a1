package tour

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("tour.repository: tour not found")

	// ErrHasBookings возвращается при удалении тура, на который есть заявки или отзывы
	ErrHasBookings = errors.New("tour.repository: tour has bookings")

	// ErrInvalidReference возвращается, если тип тура, партнёр или сотрудник не существуют
	ErrInvalidReference = errors.New("tour.repository: referenced type, partner or employee not found")

	// ErrInvalidData возвращается при нарушении CHECK ограничений (даты, стоимость)
	ErrInvalidData = errors.New("tour.repository: tour data violates constraints")

	ErrBuildQuery = errors.New("tour.repository: failed to build query")
	ErrExecQuery  = errors.New("tour.repository: failed to execute query")
	ErrScanRow    = errors.New("tour.repository: failed to scan row")
)
