package health

import "context"

// DatabasePinger проверка доступности БД
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
