package finance

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	paymentService "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakePayments struct {
	debtors []domain.Debtor
	method  string
	err     error
}

func (f *fakePayments) ListDebtors(context.Context) ([]domain.Debtor, error) {
	return f.debtors, nil
}

func (f *fakePayments) AddPayment(_ context.Context, bookingID int64, amount decimal.Decimal, method string) (*models.Receipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.method = method
	f.debtors = nil
	return &models.Receipt{PaymentID: 1, Reference: "abc", Status: domain.PaymentPaid}, nil
}

func TestController_ProcessPayment(t *testing.T) {
	svc := &fakePayments{debtors: []domain.Debtor{{BookingID: 1, Debt: decimal.NewFromInt(500)}}}
	c := NewController(svc, logger.Nop())

	c.Load(context.Background())
	assert.Len(t, c.State().Get().Data, 1)

	c.ProcessPayment(context.Background(), 1, "500", domain.PaymentMethodCash)

	st := c.State().Get()
	require.Equal(t, viewstate.Content, st.Status)
	assert.Empty(t, st.Data)
	assert.Equal(t, "Платёж проведён, квитанция abc", st.Message)
	assert.Equal(t, domain.PaymentMethodCash, svc.method)
}

func TestController_ProcessPayment_Errors(t *testing.T) {
	c := NewController(&fakePayments{err: paymentService.ErrOverpayment}, logger.Nop())
	c.ProcessPayment(context.Background(), 1, "9999", domain.PaymentMethodCard)
	assert.Equal(t, "Ошибка оплаты: Сумма больше остатка долга", c.State().Get().Message)

	c = NewController(&fakePayments{}, logger.Nop())
	c.ProcessPayment(context.Background(), 1, "-1", domain.PaymentMethodCard)
	assert.Equal(t, viewstate.Error, c.State().Get().Status)
}

func TestController_ProcessPayment_HidesInternalErrors(t *testing.T) {
	internal := fmt.Errorf("%w: AddPayment - insert payment: %v", paymentService.ErrInternal,
		errors.New("pq: deadlock detected"))
	c := NewController(&fakePayments{err: internal}, logger.Nop())
	c.ProcessPayment(context.Background(), 1, "100", domain.PaymentMethodCard)
	assert.Equal(t, "Ошибка оплаты: "+viewstate.MsgInternal, c.State().Get().Message)
	assert.NotContains(t, c.State().Get().Message, "deadlock")

	wrapped := fmt.Errorf("%w: %w", paymentService.ErrInvalidInput, models.ErrEmptyMethod)
	c = NewController(&fakePayments{err: wrapped}, logger.Nop())
	c.ProcessPayment(context.Background(), 1, "100", "")
	assert.Equal(t, "Ошибка оплаты: Укажите способ оплаты", c.State().Get().Message)

	c = NewController(&fakePayments{}, logger.Nop())
	c.ProcessPayment(context.Background(), 1, "сто", domain.PaymentMethodCard)
	assert.Equal(t, "Ошибка оплаты: Некорректная сумма", c.State().Get().Message)
}
