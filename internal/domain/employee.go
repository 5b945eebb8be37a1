package domain

import (
	"slices"
	"time"
)

// Employee сотрудник агентства
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     *string
	Email     *string
	Position  string
	HireDate  time.Time
	DBLogin   string // логин роли в БД, по нему сотрудник входит в систему
}

// FullName ФИО сотрудника
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e *Employee) IsAdmin() bool {
	return e.Position == PositionAdmin
}

func (e *Employee) IsFinancier() bool {
	return e.Position == PositionFinancier
}

// IsManager сотрудник работает с заявками (Менеджер или Старший)
func (e *Employee) IsManager() bool {
	return slices.Contains(ManagerPositions, e.Position)
}

// EmployeeInput данные сотрудника для создания и изменения
type EmployeeInput struct {
	FirstName string
	LastName  string
	Phone     *string
	Email     *string
	Position  string
	DBLogin   string // при изменении не используется
}

// IsKnownPosition проверяет, что должность из известного набора
func IsKnownPosition(position string) bool {
	switch position {
	case PositionAdmin, PositionFinancier, PositionManager, PositionSenior:
		return true
	}
	return false
}
