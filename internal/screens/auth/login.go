package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	authService "github.com/m04kA/TravelAgency-BackOffice/internal/service/auth"
)

const (
	msgFillAll            = "Заполните все поля"
	msgInvalidCredentials = "Неверный логин или пароль"
	msgDatabaseError      = "Ошибка базы данных: "
)

// UserType тип вошедшего пользователя
type UserType string

const (
	UserClient   UserType = "Client"
	UserEmployee UserType = "Employee"
)

// Welcome результат успешного входа
type Welcome struct {
	UserType UserType
	UserName string
	Position string // только для сотрудника
}

// Login экран входа
type Login struct {
	auth    AuthService
	session Session
	logger  Logger
	state   *viewstate.Holder[Welcome]
}

func NewLogin(auth AuthService, session Session, logger Logger) *Login {
	return &Login{
		auth:    auth,
		session: session,
		logger:  logger,
		state:   viewstate.NewHolder[Welcome](),
	}
}

func (c *Login) State() *viewstate.Holder[Welcome] {
	return c.state
}

// Submit вход по email клиента или логину сотрудника
func (c *Login) Submit(ctx context.Context, login, password string) {
	if strings.TrimSpace(login) == "" || strings.TrimSpace(password) == "" {
		c.state.SetError(msgFillAll)
		return
	}

	c.state.SetLoading()

	res, err := c.auth.Login(ctx, strings.TrimSpace(login), password)
	switch {
	case errors.Is(err, authService.ErrInvalidCredentials):
		c.state.SetError(msgInvalidCredentials)
		return
	case errors.Is(err, authService.ErrInvalidInput):
		c.state.SetError(msgFillAll)
		return
	case err != nil:
		c.logger.Error("Login: %v", err)
		c.state.SetError(msgDatabaseError + viewstate.Describe(err))
		return
	}

	w := Welcome{UserName: res.DisplayName()}
	if res.Client != nil {
		c.session.LoginClient(res.Client)
		w.UserType = UserClient
	} else {
		c.session.LoginEmployee(res.Employee)
		w.UserType = UserEmployee
		w.Position = res.Employee.Position
	}
	c.state.SetContent(w)
}

// Logout завершает сессию и возвращает экран в исходное состояние
func (c *Login) Logout() {
	c.session.Clear()
	c.state.SetIdle()
}

// Reset сбрасывает сообщение об ошибке
func (c *Login) Reset() {
	c.state.SetIdle()
}
