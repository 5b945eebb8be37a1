package employee

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee.repository: employee not found")

	// ErrLoginTaken возвращается, когда логин БД уже привязан к другому сотруднику
	ErrLoginTaken = errors.New("employee.repository: db login already taken")

	// ErrHasDependents возвращается при удалении сотрудника, на которого ссылаются туры или заявки
	ErrHasDependents = errors.New("employee.repository: employee has dependent records")

	ErrBuildQuery = errors.New("employee.repository: failed to build query")
	ErrExecQuery  = errors.New("employee.repository: failed to execute query")
	ErrScanRow    = errors.New("employee.repository: failed to scan row")
)
