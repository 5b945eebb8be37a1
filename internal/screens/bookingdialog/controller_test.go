package bookingdialog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	"github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeBookings struct {
	clientID int64
	calls    int
	err      error
}

func (f *fakeBookings) Create(_ context.Context, _ int64, clientID int64) (int64, error) {
	f.calls++
	f.clientID = clientID
	if f.err != nil {
		return 0, f.err
	}
	return 55, nil
}

type fakeClients struct{}

func (fakeClients) Lookup(_ context.Context, q string) ([]domain.Client, error) {
	if len([]rune(q)) < 2 {
		return []domain.Client{}, nil
	}
	return []domain.Client{{ID: 7, FirstName: "Иван"}}, nil
}

type fakeSession struct{ manager bool }

func (f fakeSession) IsManager() bool { return f.manager }

func TestController_ManagerMustSelectClient(t *testing.T) {
	svc := &fakeBookings{}
	c := NewController(svc, fakeClients{}, fakeSession{manager: true}, logger.Nop())

	c.Confirm(context.Background(), 10, nil)
	assert.Equal(t, "Выберите клиента из списка!", c.State().Get().Message)
	assert.Zero(t, svc.calls)

	c.SearchClient(context.Background(), "Ив")
	found := c.Found().Get().Data
	assert.Len(t, found, 1)

	c.Confirm(context.Background(), 10, &found[0])
	assert.Equal(t, viewstate.State[int64]{Status: viewstate.Content, Data: 55}, c.State().Get())
	assert.Equal(t, int64(7), svc.clientID)
}

func TestController_ClientBooksForItself(t *testing.T) {
	svc := &fakeBookings{}
	c := NewController(svc, fakeClients{}, fakeSession{}, logger.Nop())

	c.Confirm(context.Background(), 10, nil)
	assert.Equal(t, viewstate.Content, c.State().Get().Status)
	assert.Zero(t, svc.clientID)
}

func TestController_ShortSearch(t *testing.T) {
	c := NewController(&fakeBookings{}, fakeClients{}, fakeSession{manager: true}, logger.Nop())

	c.SearchClient(context.Background(), "И")
	assert.Empty(t, c.Found().Get().Data)
}

func TestController_InactiveTour(t *testing.T) {
	c := NewController(&fakeBookings{err: create_booking.ErrTourInactive}, fakeClients{}, fakeSession{}, logger.Nop())

	c.Confirm(context.Background(), 10, nil)
	assert.Equal(t, "Тур закрыт для бронирования", c.State().Get().Message)
}

func TestController_ConfirmHidesInternalErrors(t *testing.T) {
	internal := fmt.Errorf("%w: Create - insert booking: %v", create_booking.ErrInternal,
		errors.New("pq: null value in column \"tourid\""))
	c := NewController(&fakeBookings{err: internal}, fakeClients{}, fakeSession{}, logger.Nop())

	c.Confirm(context.Background(), 10, nil)
	assert.Equal(t, "Ошибка бронирования: "+viewstate.MsgInternal, c.State().Get().Message)
	assert.NotContains(t, c.State().Get().Message, "tourid")
}
