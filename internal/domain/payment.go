package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment платёж по заявке, только добавляется
type Payment struct {
	ID              int64
	BookingID       int64
	Date            time.Time
	Amount          decimal.Decimal
	Method          string
	TransactionInfo *string
}

// NewPayment данные для внесения платежа
type NewPayment struct {
	BookingID       int64
	Amount          decimal.Decimal
	Method          string
	TransactionInfo string
}

// Debtor заявка с непогашенным долгом
type Debtor struct {
	BookingID  int64
	ClientName string
	TourName   string
	TotalPrice decimal.Decimal
	PaidAmount decimal.Decimal
	Debt       decimal.Decimal
}

// Способы оплаты
const (
	PaymentMethodCash = "Наличные"
	PaymentMethodCard = "Карта"
)

// MaxPaymentMethodLength ограничение колонки paymentmethod
const MaxPaymentMethodLength = 50
