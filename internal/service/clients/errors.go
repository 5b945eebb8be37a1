package clients

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных клиента
	ErrInvalidInput = errors.New("clients.service: invalid client data")

	// ErrAccessDenied возвращается, если с базой клиентов работает не сотрудник
	ErrAccessDenied = errors.New("clients.service: access denied")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients.service: client not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients.service: internal error")
)
