package models

import (
	"strings"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// RegisterRequest данные формы регистрации клиента
type RegisterRequest struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Password  string
	Passport  string
}

// Normalize обрезает пробелы по краям, пароль не трогает
func (r RegisterRequest) Normalize() RegisterRequest {
	return RegisterRequest{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		Passport:  strings.TrimSpace(r.Passport),
	}
}

// Complete заполнены ли обязательные поля
func (r RegisterRequest) Complete() bool {
	return r.FirstName != "" && r.LastName != "" && r.Email != "" && strings.TrimSpace(r.Password) != ""
}

// LoginResult вошедший пользователь: ровно одно поле не nil
type LoginResult struct {
	Client   *domain.Client
	Employee *domain.Employee
}

// DisplayName имя для приветствия
func (r *LoginResult) DisplayName() string {
	if r.Client != nil {
		return r.Client.FullName()
	}
	if r.Employee != nil {
		return r.Employee.FullName()
	}
	return ""
}
