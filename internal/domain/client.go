package domain

import "time"

// Client клиент агентства
type Client struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            *string
	RegistrationDate time.Time
}

// FullName имя и фамилия клиента
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClientCredentials учётные данные клиента для входа
type ClientCredentials struct {
	ClientID     int64
	PasswordHash string
}

// NewClient данные для регистрации клиента
type NewClient struct {
	FirstName    string
	LastName     string
	Phone        *string
	Email        string
	PasswordHash string
	PassportData *string
}

// ClientUpdate изменяемые поля клиента
type ClientUpdate struct {
	FirstName    string
	LastName     string
	Phone        *string
	PassportData *string
}
