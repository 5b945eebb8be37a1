package bookings

import (
	"context"
	"errors"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	bookingService "github.com/m04kA/TravelAgency-BackOffice/internal/service/bookings"
	paymentService "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
	reviewService "github.com/m04kA/TravelAgency-BackOffice/internal/service/reviews"
)

const (
	msgError           = "Ошибка: "
	msgDeleteFailed    = "Не удалось удалить: "
	msgPayFailed       = "Ошибка оплаты: "
	msgAlreadyClaimed  = "Заявку уже взял в работу другой менеджер"
	msgBadTransition   = "Нельзя установить этот статус"
	msgOnlyAnnulled    = "Удалить можно только аннулированную заявку"
	msgHasPayments     = "Нельзя удалить: по заявке есть платежи"
	msgOverpayment     = "Сумма больше остатка долга"
	msgAlreadyReviewed = "Вы уже оставили отзыв на этот тур"
	msgNotEligible     = "Отзыв можно оставить только по оплаченному туру"
	msgNoSession       = "Нет авторизации"
)

var knownErrors = []viewstate.ErrorText{
	{Err: bookingService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: bookingService.ErrBookingNotFound, Text: "Заявка не найдена"},
	{Err: paymentService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: paymentService.ErrBookingNotFound, Text: "Заявка не найдена"},
	{Err: paymentService.ErrBookingAnnulled, Text: "Заявка аннулирована"},
	{Err: models.ErrInvalidAmount, Text: "Некорректная сумма"},
	{Err: models.ErrNonPositive, Text: "Сумма должна быть больше нуля"},
	{Err: paymentService.ErrInvalidInput, Text: "Некорректная сумма"},
	{Err: reviewService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: reviewService.ErrInvalidRating, Text: "Оценка должна быть от 1 до 5"},
	{Err: reviewService.ErrCommentTooLong, Text: "Слишком длинный отзыв"},
	{Err: reviewService.ErrTourNotFound, Text: "Тур не найден"},
}

// Controller экран заявок: для менеджера "Заказы", для клиента "Поездки"
type Controller struct {
	bookings BookingService
	reviews  ReviewService
	session  Session
	logger   Logger
	state    *viewstate.Holder[[]domain.Booking]
}

func NewController(bookings BookingService, reviews ReviewService, session Session, logger Logger) *Controller {
	return &Controller{
		bookings: bookings,
		reviews:  reviews,
		session:  session,
		logger:   logger,
		state:    viewstate.NewHolder[[]domain.Booking](),
	}
}

func (c *Controller) State() *viewstate.Holder[[]domain.Booking] {
	return c.state
}

// Load список заявок в зависимости от того, кто вошёл
func (c *Controller) Load(ctx context.Context) {
	c.state.SetLoading()

	var (
		list []domain.Booking
		err  error
	)
	if c.session.IsManager() {
		list, err = c.bookings.ListForManager(ctx)
	} else {
		list, err = c.bookings.ListForClient(ctx)
	}
	if err != nil {
		c.logger.Error("Load: %v", err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}
	c.state.SetContent(list)
}

// ChangeStatus менеджер берёт заявку в работу и меняет статус
func (c *Controller) ChangeStatus(ctx context.Context, bookingID int64, status string) {
	err := c.bookings.SetStatus(ctx, bookingID, status)
	switch {
	case errors.Is(err, bookingService.ErrAlreadyClaimed):
		c.state.SetError(msgAlreadyClaimed)
	case errors.Is(err, bookingService.ErrInvalidTransition), errors.Is(err, bookingService.ErrInvalidStatus):
		c.state.SetError(msgBadTransition)
	case err != nil:
		c.logger.Error("ChangeStatus: booking id=%d: %v", bookingID, err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
	default:
		c.Load(ctx)
	}
}

func (c *Controller) Delete(ctx context.Context, bookingID int64) {
	err := c.bookings.Delete(ctx, bookingID)
	switch {
	case errors.Is(err, bookingService.ErrCannotDelete):
		c.state.SetError(msgOnlyAnnulled)
	case errors.Is(err, bookingService.ErrBookingHasPayments):
		c.state.SetError(msgHasPayments)
	case err != nil:
		c.logger.Error("Delete: booking id=%d: %v", bookingID, err)
		c.state.SetError(msgDeleteFailed + viewstate.Describe(err, knownErrors...))
	default:
		c.Load(ctx)
	}
}

// Pay клиент оплачивает заявку картой, сумма из поля ввода
func (c *Controller) Pay(ctx context.Context, bookingID int64, amount string) {
	value, err := models.ParseAmount(amount)
	if err != nil {
		c.state.SetError(msgPayFailed + viewstate.Describe(err, knownErrors...))
		return
	}

	_, err = c.bookings.Pay(ctx, bookingID, value)
	switch {
	case errors.Is(err, paymentService.ErrOverpayment):
		c.state.SetError(msgPayFailed + msgOverpayment)
	case err != nil:
		c.logger.Warn("Pay: booking id=%d: %v", bookingID, err)
		c.state.SetError(msgPayFailed + viewstate.Describe(err, knownErrors...))
	default:
		c.Load(ctx)
	}
}

// SendReview отзыв клиента по оплаченной поездке
func (c *Controller) SendReview(ctx context.Context, tourID int64, rating int, comment string) {
	client := c.session.Client()
	if client == nil {
		c.state.SetError(msgError + msgNoSession)
		return
	}

	_, err := c.reviews.Add(ctx, tourID, client.ID, rating, comment)
	switch {
	case errors.Is(err, reviewService.ErrAlreadyReviewed):
		c.state.SetError(msgAlreadyReviewed)
	case errors.Is(err, reviewService.ErrNotEligible):
		c.state.SetError(msgNotEligible)
	case err != nil:
		c.logger.Error("SendReview: tour id=%d: %v", tourID, err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
	default:
		c.Load(ctx)
	}
}
