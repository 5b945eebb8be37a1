package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

var (
	ErrNameRequired    = errors.New("first and last name are required")
	ErrUnknownPosition = errors.New("unknown position")
	ErrInvalidLogin    = errors.New("db login must not contain spaces")
)

// EmployeeForm данные формы сотрудника
type EmployeeForm struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Position  string
	DBLogin   string
}

// ToInput проверяет форму, пустые телефон и email сохраняются как NULL
func (f EmployeeForm) ToInput() (domain.EmployeeInput, error) {
	in := domain.EmployeeInput{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Phone:     optional(f.Phone),
		Email:     optional(f.Email),
		Position:  strings.TrimSpace(f.Position),
		DBLogin:   strings.TrimSpace(f.DBLogin),
	}

	if in.FirstName == "" || in.LastName == "" {
		return in, ErrNameRequired
	}
	if !domain.IsKnownPosition(in.Position) {
		return in, fmt.Errorf("%w: %q", ErrUnknownPosition, in.Position)
	}
	if strings.ContainsAny(in.DBLogin, " \t") {
		return in, ErrInvalidLogin
	}
	return in, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
