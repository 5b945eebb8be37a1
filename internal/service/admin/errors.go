package admin

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных сотрудника
	ErrInvalidInput = errors.New("admin.service: invalid employee data")

	// ErrAccessDenied возвращается, если операцию выполняет не администратор
	ErrAccessDenied = errors.New("admin.service: access denied")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("admin.service: employee not found")

	// ErrLoginTaken возвращается, когда логин БД уже занят
	ErrLoginTaken = errors.New("admin.service: db login already taken")

	// ErrEmployeeHasDependents возвращается при удалении сотрудника с турами или заявками
	ErrEmployeeHasDependents = errors.New("admin.service: employee has related tours or bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admin.service: internal error")
)
