package reports

import "errors"

var (
	// ErrAccessDenied возвращается, если отчёты запрашивает не финансист и не администратор
	ErrAccessDenied = errors.New("reports.service: access denied")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("reports.service: invalid period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports.service: internal error")
)
