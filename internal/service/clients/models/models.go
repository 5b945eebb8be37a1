package models

import (
	"errors"
	"strings"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

var ErrNameRequired = errors.New("first and last name are required")

// ClientForm данные формы редактирования клиента
type ClientForm struct {
	FirstName string
	LastName  string
	Phone     string
	Passport  string
}

// ToUpdate проверяет форму, пустые телефон и паспорт сохраняются как NULL
func (f ClientForm) ToUpdate() (domain.ClientUpdate, error) {
	u := domain.ClientUpdate{
		FirstName:    strings.TrimSpace(f.FirstName),
		LastName:     strings.TrimSpace(f.LastName),
		Phone:        optional(f.Phone),
		PassportData: optional(f.Passport),
	}
	if u.FirstName == "" || u.LastName == "" {
		return u, ErrNameRequired
	}
	return u, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
