package reviews

import (
	"context"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
)

const msgLoadFailed = "Ошибка загрузки отзывов: "

// ReviewService интерфейс сервиса отзывов
type ReviewService interface {
	ListAll(ctx context.Context) ([]domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Controller лента отзывов
type Controller struct {
	reviews ReviewService
	logger  Logger
	state   *viewstate.Holder[[]domain.Review]
}

func NewController(reviews ReviewService, logger Logger) *Controller {
	return &Controller{
		reviews: reviews,
		logger:  logger,
		state:   viewstate.NewHolder[[]domain.Review](),
	}
}

func (c *Controller) State() *viewstate.Holder[[]domain.Review] {
	return c.state
}

func (c *Controller) Load(ctx context.Context) {
	c.state.SetLoading()

	list, err := c.reviews.ListAll(ctx)
	if err != nil {
		c.logger.Error("Load: %v", err)
		c.state.SetError(msgLoadFailed + viewstate.Describe(err))
		return
	}
	c.state.SetContent(list)
}
