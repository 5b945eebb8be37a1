package auth

import (
	"context"
	"errors"

	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	authService "github.com/m04kA/TravelAgency-BackOffice/internal/service/auth"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/auth/models"
)

const (
	msgFillRequired  = "Заполните обязательные поля"
	msgEmailTaken    = "Этот email уже занят"
	msgRegisterError = "Ошибка регистрации: "
)

// Register экран регистрации клиента, в Data ID нового клиента
type Register struct {
	auth   AuthService
	logger Logger
	state  *viewstate.Holder[int64]
}

func NewRegister(auth AuthService, logger Logger) *Register {
	return &Register{
		auth:   auth,
		logger: logger,
		state:  viewstate.NewHolder[int64](),
	}
}

func (c *Register) State() *viewstate.Holder[int64] {
	return c.state
}

func (c *Register) Submit(ctx context.Context, req models.RegisterRequest) {
	if !req.Normalize().Complete() {
		c.state.SetError(msgFillRequired)
		return
	}

	c.state.SetLoading()

	id, err := c.auth.RegisterClient(ctx, req)
	switch {
	case errors.Is(err, authService.ErrEmailTaken):
		c.state.SetError(msgEmailTaken)
	case errors.Is(err, authService.ErrInvalidInput):
		c.state.SetError(msgFillRequired)
	case err != nil:
		c.logger.Error("Register: %v", err)
		c.state.SetError(msgRegisterError + viewstate.Describe(err))
	default:
		c.state.SetContent(id)
	}
}
