package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManagerKpi строка отчёта по эффективности менеджеров
type ManagerKpi struct {
	Name      string
	Position  string
	ToursSold int
	Revenue   decimal.Decimal
}

// MonthlyRevenue строка финансового отчёта по месяцам
type MonthlyRevenue struct {
	Month        string // "2025-01"
	Revenue      decimal.Decimal
	Transactions int
}

// DebtorReportItem строка отчёта по должникам
type DebtorReportItem struct {
	Client string
	Tour   string
	Date   time.Time
	Total  decimal.Decimal
	Paid   decimal.Decimal
	Debt   decimal.Decimal
}

// PaymentLogItem строка журнала платежей
type PaymentLogItem struct {
	ID     int64
	Date   time.Time
	Client string
	Amount decimal.Decimal
	Method string
}
