package tours

import (
	"context"
	"errors"
	"sync"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	tourService "github.com/m04kA/TravelAgency-BackOffice/internal/service/tours"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/tours/models"
)

const (
	msgLoadFailed   = "Не удалось загрузить туры: "
	msgCreateFailed = "Ошибка создания: "
	msgUpdateFailed = "Ошибка обновления: "
	msgDeleteFailed = "Нельзя удалить тур (возможно, есть брони): "
	msgHasBookings  = "Нельзя удалить тур: есть бронирования"
	msgAccessDenied = "Недостаточно прав"
	msgDictionaries = "Не удалось загрузить справочники: "
)

var knownErrors = []viewstate.ErrorText{
	{Err: tourService.ErrTourNotFound, Text: "Тур не найден"},
	{Err: tourService.ErrInvalidReference, Text: "Выбранный тип тура или партнёр не существует"},
	{Err: tourService.ErrInvalidInput, Text: "Проверьте введённые данные"},
}

// Controller экран каталога туров
type Controller struct {
	service TourService
	logger  Logger

	state        *viewstate.Holder[[]domain.Tour]
	dictionaries *viewstate.Holder[models.Dictionaries]

	mu     sync.Mutex
	filter domain.TourFilter
}

func NewController(service TourService, logger Logger) *Controller {
	return &Controller{
		service:      service,
		logger:       logger,
		state:        viewstate.NewHolder[[]domain.Tour](),
		dictionaries: viewstate.NewHolder[models.Dictionaries](),
	}
}

func (c *Controller) State() *viewstate.Holder[[]domain.Tour] {
	return c.state
}

func (c *Controller) Dictionaries() *viewstate.Holder[models.Dictionaries] {
	return c.dictionaries
}

// Load загружает каталог и запоминает фильтр для перезагрузки после изменений
func (c *Controller) Load(ctx context.Context, filter domain.TourFilter) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()

	c.reload(ctx)
}

// LoadDictionaries типы туров и партнёры для формы
func (c *Controller) LoadDictionaries(ctx context.Context) {
	c.dictionaries.SetLoading()

	d, err := c.service.Dictionaries(ctx)
	if err != nil {
		c.logger.Error("LoadDictionaries: %v", err)
		c.dictionaries.SetError(msgDictionaries + viewstate.Describe(err, knownErrors...))
		return
	}
	c.dictionaries.SetContent(*d)
}

func (c *Controller) Create(ctx context.Context, form models.TourForm) {
	if _, err := c.service.Create(ctx, form); err != nil {
		c.fail(msgCreateFailed, err)
		return
	}
	c.reload(ctx)
}

func (c *Controller) Update(ctx context.Context, id int64, form models.TourForm) {
	if err := c.service.Update(ctx, id, form); err != nil {
		c.fail(msgUpdateFailed, err)
		return
	}
	c.reload(ctx)
}

func (c *Controller) SetActive(ctx context.Context, id int64, active bool) {
	if err := c.service.SetActive(ctx, id, active); err != nil {
		c.fail(msgUpdateFailed, err)
		return
	}
	c.reload(ctx)
}

func (c *Controller) Delete(ctx context.Context, id int64) {
	err := c.service.Delete(ctx, id)
	switch {
	case errors.Is(err, tourService.ErrTourHasBookings):
		c.state.SetError(msgHasBookings)
	case err != nil:
		c.fail(msgDeleteFailed, err)
	default:
		c.reload(ctx)
	}
}

func (c *Controller) reload(ctx context.Context) {
	c.mu.Lock()
	filter := c.filter
	c.mu.Unlock()

	c.state.SetLoading()

	list, err := c.service.List(ctx, filter)
	if err != nil {
		c.logger.Error("Load: %v", err)
		c.state.SetError(msgLoadFailed + viewstate.Describe(err, knownErrors...))
		return
	}
	c.state.SetContent(list)
}

func (c *Controller) fail(prefix string, err error) {
	if errors.Is(err, tourService.ErrAccessDenied) {
		c.state.SetError(msgAccessDenied)
		return
	}
	c.logger.Warn("%s%v", prefix, err)
	c.state.SetError(prefix + viewstate.Describe(err, knownErrors...))
}
