package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNonPositive   = errors.New("amount must be positive")
	ErrEmptyMethod   = errors.New("payment method is required")
	ErrLongMethod    = errors.New("payment method is too long")
)

// Receipt результат внесения платежа
type Receipt struct {
	PaymentID int64
	Reference string // номер квитанции в примечании к платежу
	Status    domain.PaymentStatus
	Debt      decimal.Decimal // остаток после платежа
}

// ParseAmount разбирает сумму из поля ввода, допускает запятую как разделитель
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidAmount, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositive
	}
	return amount.Round(2), nil
}

// ValidateMethod проверяет способ оплаты
func ValidateMethod(method string) (string, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return "", ErrEmptyMethod
	}
	if len([]rune(method)) > domain.MaxPaymentMethodLength {
		return "", ErrLongMethod
	}
	return method, nil
}
