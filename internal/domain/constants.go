package domain

import "time"

// Должности сотрудников
const (
	PositionAdmin     = "Администратор"
	PositionFinancier = "Финансист"
	PositionManager   = "Менеджер"
	PositionSenior    = "Старший"
)

// ManagerPositions должности, которые работают с заявками и турами
var ManagerPositions = []string{
	PositionManager,
	PositionSenior,
}

// Форматы дат для отображения
const (
	DateFormat      = "02.01.2006"
	DateTimeFormat  = "02.01.2006 15:04"
	AuditTimeFormat = "02.01 15:04:05"
	MonthFormat     = "2006-01"
	ISODateFormat   = "2006-01-02"
)

// Ограничения выборок
const (
	ClientSearchLimit    = 20
	ClientListLimit      = 100
	AuditLogLimit        = 100
	MinClientSearchLen   = 2
	MinRating            = 1
	MaxRating            = 5
	MaxReviewLength      = 2000
	MaxDestinationLength = 100
)

// DefaultPaymentNote примечание к платежу, внесённому из приложения
const DefaultPaymentNote = "Оплата через Desktop App"

// Period интервал дат для отчётов
type Period struct {
	From time.Time
	To   time.Time
}

// UnboundedPeriod период "за всё время", как в исходных отчётах
func UnboundedPeriod() Period {
	return Period{
		From: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2030, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}
