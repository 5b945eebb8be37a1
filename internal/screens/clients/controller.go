package clients

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	clientService "github.com/m04kA/TravelAgency-BackOffice/internal/service/clients"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/clients/models"
)

const (
	msgError      = "Ошибка: "
	msgSaveFailed = "Ошибка сохранения: "
)

var knownErrors = []viewstate.ErrorText{
	{Err: clientService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: clientService.ErrClientNotFound, Text: "Клиент не найден"},
	{Err: clientService.ErrInvalidInput, Text: "Проверьте введённые данные"},
}

// Controller экран базы клиентов
type Controller struct {
	clients  ClientService
	logger   Logger
	state    *viewstate.Holder[[]domain.Client]
	passport *viewstate.Holder[string]
}

func NewController(clients ClientService, logger Logger) *Controller {
	return &Controller{
		clients:  clients,
		logger:   logger,
		state:    viewstate.NewHolder[[]domain.Client](),
		passport: viewstate.NewHolder[string](),
	}
}

func (c *Controller) State() *viewstate.Holder[[]domain.Client] {
	return c.state
}

// Passport паспортные данные клиента для формы редактирования
func (c *Controller) Passport() *viewstate.Holder[string] {
	return c.passport
}

func (c *Controller) Load(ctx context.Context) {
	c.state.SetLoading()

	list, err := c.clients.ListAll(ctx)
	if err != nil {
		c.logger.Error("Load: %v", err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.state.SetContent(list)
}

// Search пустой запрос показывает весь список
func (c *Controller) Search(ctx context.Context, q string) {
	list, err := c.clients.Search(ctx, q)
	if err != nil {
		c.logger.Error("Search: %v", err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.state.SetContent(list)
}

func (c *Controller) Save(ctx context.Context, id int64, form models.ClientForm) {
	if err := c.clients.Update(ctx, id, form); err != nil {
		c.logger.Warn("Save: client id=%d: %v", id, err)
		c.state.SetError(msgSaveFailed + viewstate.Describe(err, knownErrors...))
		return
	}
	c.Load(ctx)
}

func (c *Controller) LoadPassport(ctx context.Context, id int64) {
	c.passport.SetLoading()

	p, err := c.clients.GetPassportData(ctx, id)
	if err != nil {
		c.logger.Warn("LoadPassport: client id=%d: %v", id, err)
		c.passport.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.passport.SetContent(p)
}
