package bookingdialog

import (
	"context"
	"errors"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	bookingService "github.com/m04kA/TravelAgency-BackOffice/internal/service/bookings"
	"github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"
)

const (
	msgSelectClient   = "Выберите клиента из списка!"
	msgTourInactive   = "Тур закрыт для бронирования"
	msgTourNotFound   = "Тур не найден"
	msgClientNotFound = "Клиент не найден"
	msgBookingFailed  = "Ошибка бронирования: "
	msgSearchFailed   = "Ошибка поиска: "
)

var knownErrors = []viewstate.ErrorText{
	{Err: bookingService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: create_booking.ErrInvalidInput, Text: "Проверьте выбранный тур"},
}

// Controller диалог бронирования тура, в Data ID созданной заявки
type Controller struct {
	bookings BookingService
	clients  ClientService
	session  Session
	logger   Logger

	found *viewstate.Holder[[]domain.Client]
	state *viewstate.Holder[int64]
}

func NewController(bookings BookingService, clients ClientService, session Session, logger Logger) *Controller {
	return &Controller{
		bookings: bookings,
		clients:  clients,
		session:  session,
		logger:   logger,
		found:    viewstate.NewHolder[[]domain.Client](),
		state:    viewstate.NewHolder[int64](),
	}
}

func (c *Controller) State() *viewstate.Holder[int64] {
	return c.state
}

// Found результаты поиска клиента
func (c *Controller) Found() *viewstate.Holder[[]domain.Client] {
	return c.found
}

// SearchClient поиск клиента, запрос короче двух символов очищает список
func (c *Controller) SearchClient(ctx context.Context, q string) {
	list, err := c.clients.Lookup(ctx, q)
	if err != nil {
		c.logger.Error("SearchClient: %v", err)
		c.found.SetError(msgSearchFailed + viewstate.Describe(err, knownErrors...))
		return
	}
	c.found.SetContent(list)
}

// Confirm оформляет заявку; менеджер обязан выбрать клиента
func (c *Controller) Confirm(ctx context.Context, tourID int64, selected *domain.Client) {
	var clientID int64
	if c.session.IsManager() {
		if selected == nil {
			c.state.SetError(msgSelectClient)
			return
		}
		clientID = selected.ID
	}

	c.state.SetLoading()

	id, err := c.bookings.Create(ctx, tourID, clientID)
	switch {
	case errors.Is(err, bookingService.ErrClientRequired):
		c.state.SetError(msgSelectClient)
	case errors.Is(err, create_booking.ErrTourInactive):
		c.state.SetError(msgTourInactive)
	case errors.Is(err, create_booking.ErrTourNotFound):
		c.state.SetError(msgTourNotFound)
	case errors.Is(err, create_booking.ErrClientNotFound):
		c.state.SetError(msgClientNotFound)
	case err != nil:
		c.logger.Error("Confirm: tour id=%d: %v", tourID, err)
		c.state.SetError(msgBookingFailed + viewstate.Describe(err, knownErrors...))
	default:
		c.logger.Info("Confirm: booking id=%d created for tour id=%d", id, tourID)
		c.state.SetContent(id)
	}
}

// Reset закрытие диалога
func (c *Controller) Reset() {
	c.state.SetIdle()
	c.found.SetContent(nil)
}
