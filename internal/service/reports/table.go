package reports

import (
	"strconv"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/ptr"
)

// Table входные данные выгрузки: заголовок листа, строка шапки и строки записей
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

func ManagerKpiTable(items []domain.ManagerKpi) Table {
	t := Table{
		Title:  "KPI Менеджеров",
		Header: []string{"ФИО", "Должность", "Продано туров", "Выручка (Руб)"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.Name,
			it.Position,
			strconv.Itoa(it.ToursSold),
			it.Revenue.StringFixed(2),
		})
	}
	return t
}

func MonthlyRevenueTable(items []domain.MonthlyRevenue) Table {
	t := Table{
		Title:  "Выручка по месяцам",
		Header: []string{"Месяц", "Кол-во транзакций", "Выручка (Руб)"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.Month,
			strconv.Itoa(it.Transactions),
			it.Revenue.StringFixed(2),
		})
	}
	return t
}

func AuditLogTable(items []domain.AuditLogEntry) Table {
	t := Table{
		Title:  "Журнал аудита",
		Header: []string{"ID", "Время", "Пользователь", "Операция", "Таблица", "Детали"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.EventDate.Format(domain.AuditTimeFormat),
			it.User,
			it.Operation,
			it.Table,
			ptr.Value(it.Details),
		})
	}
	return t
}

func DebtorsTable(items []domain.DebtorReportItem) Table {
	t := Table{
		Title:  "Должники",
		Header: []string{"Клиент", "Тур", "Дата", "Сумма", "Оплачено", "Долг"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.Client,
			it.Tour,
			it.Date.Format(domain.DateFormat),
			it.Total.StringFixed(2),
			it.Paid.StringFixed(2),
			it.Debt.StringFixed(2),
		})
	}
	return t
}

func PaymentLogTable(items []domain.PaymentLogItem) Table {
	t := Table{
		Title:  "Журнал платежей",
		Header: []string{"ID", "Дата", "Клиент", "Сумма", "Способ"},
		Rows:   make([][]string, 0, len(items)),
	}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(it.ID, 10),
			it.Date.Format(domain.DateTimeFormat),
			it.Client,
			it.Amount.StringFixed(2),
			it.Method,
		})
	}
	return t
}
