package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus статус заявки на тур
type BookingStatus string

const (
	StatusPending   BookingStatus = "В обработке"
	StatusConfirmed BookingStatus = "Подтверждено"
	StatusAnnulled  BookingStatus = "Аннулировано"
)

// PaymentStatus статус оплаты заявки, выводится из суммы платежей
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Не оплачено"
	PaymentPartial PaymentStatus = "Частично"
	PaymentPaid    PaymentStatus = "Оплачено"
)

// Booking заявка клиента на тур
type Booking struct {
	ID            int64
	TourID        int64
	TourName      string
	ClientID      int64
	ClientName    *string // заполняется только в списке менеджера
	EmployeeID    *int64  // nil, пока заявку не взял менеджер
	CreatedAt     time.Time
	Status        BookingStatus
	PaymentStatus PaymentStatus
	Price         decimal.Decimal // итоговая цена, фиксируется при бронировании
	PaidAmount    decimal.Decimal
	HasReview     bool
}

// Date дата создания заявки для отображения
func (b *Booking) Date() string {
	return b.CreatedAt.Format(DateTimeFormat)
}

// IsClaimed заявка закреплена за сотрудником
func (b *Booking) IsClaimed() bool {
	return b.EmployeeID != nil
}

// Debt остаток к оплате
func (b *Booking) Debt() decimal.Decimal {
	return b.Price.Sub(b.PaidAmount)
}

// CanBeReviewed клиент может оставить отзыв только по оплаченной заявке
func (b *Booking) CanBeReviewed() bool {
	return b.PaymentStatus == PaymentPaid && !b.HasReview
}

// CanBeDeleted удалить можно только аннулированную заявку
func (b *Booking) CanBeDeleted() bool {
	return b.Status == StatusAnnulled
}

// BookingState минимальный срез заявки для проверок внутри транзакции
type BookingState struct {
	ID            int64
	TourID        int64
	ClientID      int64
	EmployeeID    *int64
	Status        BookingStatus
	PaymentStatus PaymentStatus
	FinalPrice    decimal.Decimal
}

// NewBooking данные для создания заявки
type NewBooking struct {
	TourID     int64
	ClientID   int64
	EmployeeID *int64
	FinalPrice decimal.Decimal
}

// DerivePaymentStatus вычисляет статус оплаты по сумме платежей и цене
func DerivePaymentStatus(paid, finalPrice decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(finalPrice):
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

// ParseBookingStatus проверяет, что строка является допустимым статусом
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch st := BookingStatus(s); st {
	case StatusPending, StatusConfirmed, StatusAnnulled:
		return st, true
	}
	return "", false
}

// CanTransition проверяет переход статуса заявки
// В обработке -> любой; Подтверждено -> Подтверждено/Аннулировано;
// полностью оплаченную заявку аннулировать нельзя, из Аннулировано выхода нет
func CanTransition(from BookingStatus, to BookingStatus, payment PaymentStatus) bool {
	if to == StatusAnnulled && payment == PaymentPaid {
		return false
	}
	switch from {
	case StatusPending:
		return true
	case StatusConfirmed:
		return to == StatusConfirmed || to == StatusAnnulled
	default:
		return false
	}
}
