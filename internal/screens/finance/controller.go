package finance

import (
	"context"
	"errors"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	paymentService "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
)

const (
	msgLoadFailed  = "Ошибка загрузки: "
	msgPayFailed   = "Ошибка оплаты: "
	msgOverpayment = "Сумма больше остатка долга"
	msgAnnulled    = "Заявка аннулирована"
	msgPaid        = "Платёж проведён, квитанция "
)

var knownErrors = []viewstate.ErrorText{
	{Err: paymentService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: paymentService.ErrBookingNotFound, Text: "Заявка не найдена"},
	{Err: models.ErrInvalidAmount, Text: "Некорректная сумма"},
	{Err: models.ErrNonPositive, Text: "Сумма должна быть больше нуля"},
	{Err: models.ErrEmptyMethod, Text: "Укажите способ оплаты"},
	{Err: models.ErrLongMethod, Text: "Слишком длинное название способа оплаты"},
	{Err: paymentService.ErrInvalidInput, Text: "Проверьте сумму и способ оплаты"},
}

// Controller экран должников финансиста
type Controller struct {
	payments PaymentService
	logger   Logger
	state    *viewstate.Holder[[]domain.Debtor]
}

func NewController(payments PaymentService, logger Logger) *Controller {
	return &Controller{
		payments: payments,
		logger:   logger,
		state:    viewstate.NewHolder[[]domain.Debtor](),
	}
}

func (c *Controller) State() *viewstate.Holder[[]domain.Debtor] {
	return c.state
}

func (c *Controller) Load(ctx context.Context) {
	c.state.SetLoading()

	list, err := c.payments.ListDebtors(ctx)
	if err != nil {
		c.logger.Error("Load: %v", err)
		c.state.SetError(msgLoadFailed + viewstate.Describe(err, knownErrors...))
		return
	}
	c.state.SetContent(list)
}

// ProcessPayment проводит платёж и обновляет список: долг уменьшается или заявка уходит из списка
func (c *Controller) ProcessPayment(ctx context.Context, bookingID int64, amount, method string) {
	value, err := models.ParseAmount(amount)
	if err != nil {
		c.state.SetError(msgPayFailed + viewstate.Describe(err, knownErrors...))
		return
	}

	receipt, err := c.payments.AddPayment(ctx, bookingID, value, method)
	switch {
	case errors.Is(err, paymentService.ErrOverpayment):
		c.state.SetError(msgPayFailed + msgOverpayment)
		return
	case errors.Is(err, paymentService.ErrBookingAnnulled):
		c.state.SetError(msgPayFailed + msgAnnulled)
		return
	case err != nil:
		c.logger.Warn("ProcessPayment: booking id=%d: %v", bookingID, err)
		c.state.SetError(msgPayFailed + viewstate.Describe(err, knownErrors...))
		return
	}

	c.Load(ctx)
	if st := c.state.Get(); st.Status == viewstate.Content {
		c.state.SetContentMessage(st.Data, msgPaid+receipt.Reference)
	}
}
