package domain

import "time"

// AuditLogEntry запись журнала аудита, пишется триггером в БД
type AuditLogEntry struct {
	ID        int64
	EventDate time.Time
	User      string // роль БД, выполнившая изменение
	Operation string // INSERT / UPDATE / DELETE
	Table     string
	Details   *string
}
