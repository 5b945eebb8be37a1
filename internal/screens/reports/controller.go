package reports

import (
	"context"
	"path/filepath"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	reportService "github.com/m04kA/TravelAgency-BackOffice/internal/service/reports"
)

const (
	msgGenerating = "Генерация..."
	msgSaved      = "Успешно сохранено: "
	msgSavedShort = "Сохранено: "
	msgError      = "Ошибка: "
	msgNoExporter = "выгрузка недоступна"
	msgSaveFailed = "не удалось сохранить файл, подробности в журнале"
)

var knownErrors = []viewstate.ErrorText{
	{Err: reportService.ErrAccessDenied, Text: "Недостаточно прав"},
	{Err: reportService.ErrInvalidPeriod, Text: "Начало периода позже конца"},
}

// Имена файлов по умолчанию
const (
	FileManagerKpi = "manager_kpi.xlsx"
	FileFinance    = "monthly_revenue.xlsx"
	FileDebtors    = "debtors.xlsx"
	FilePaymentLog = "payment_log.xlsx"
	FileAuditLog   = "audit_log.xlsx"
)

// ReportService интерфейс сервиса отчётов
type ReportService interface {
	ManagerPerformance(ctx context.Context, period *domain.Period) ([]domain.ManagerKpi, error)
	MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error)
	DebtorsReport(ctx context.Context) ([]domain.DebtorReportItem, error)
	PaymentLog(ctx context.Context, period *domain.Period) ([]domain.PaymentLogItem, error)
}

// AuditService журнал аудита для выгрузки
type AuditService interface {
	ListAuditLog(ctx context.Context) ([]domain.AuditLogEntry, error)
}

// Exporter сохраняет таблицу в файл, реализуется слоем представления
type Exporter interface {
	Export(ctx context.Context, path string, table reportService.Table) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Controller экран отчётов, в Data последняя выгруженная таблица
type Controller struct {
	reports   ReportService
	audit     AuditService
	exporter  Exporter
	outputDir string
	logger    Logger
	state     *viewstate.Holder[reportService.Table]
}

func NewController(reports ReportService, audit AuditService, exporter Exporter, outputDir string, logger Logger) *Controller {
	return &Controller{
		reports:   reports,
		audit:     audit,
		exporter:  exporter,
		outputDir: outputDir,
		logger:    logger,
		state:     viewstate.NewHolder[reportService.Table](),
	}
}

func (c *Controller) State() *viewstate.Holder[reportService.Table] {
	return c.state
}

// ExportManagerKpi period nil означает "за всё время"
func (c *Controller) ExportManagerKpi(ctx context.Context, path string, period *domain.Period) {
	c.state.SetLoadingMessage(msgGenerating)
	c.export(ctx, c.path(path, FileManagerKpi), msgSaved, func() (reportService.Table, error) {
		rows, err := c.reports.ManagerPerformance(ctx, period)
		return reportService.ManagerKpiTable(rows), err
	})
}

func (c *Controller) ExportFinance(ctx context.Context, path string) {
	c.state.SetLoadingMessage(msgGenerating)
	c.export(ctx, c.path(path, FileFinance), msgSaved, func() (reportService.Table, error) {
		rows, err := c.reports.MonthlyRevenue(ctx)
		return reportService.MonthlyRevenueTable(rows), err
	})
}

func (c *Controller) ExportDebtors(ctx context.Context, path string) {
	c.state.SetLoading()
	c.export(ctx, c.path(path, FileDebtors), msgSavedShort, func() (reportService.Table, error) {
		rows, err := c.reports.DebtorsReport(ctx)
		return reportService.DebtorsTable(rows), err
	})
}

func (c *Controller) ExportPaymentLog(ctx context.Context, path string, period *domain.Period) {
	c.state.SetLoading()
	c.export(ctx, c.path(path, FilePaymentLog), msgSavedShort, func() (reportService.Table, error) {
		rows, err := c.reports.PaymentLog(ctx, period)
		return reportService.PaymentLogTable(rows), err
	})
}

func (c *Controller) ExportAuditLog(ctx context.Context, path string) {
	c.state.SetLoading()
	c.export(ctx, c.path(path, FileAuditLog), msgSavedShort, func() (reportService.Table, error) {
		rows, err := c.audit.ListAuditLog(ctx)
		return reportService.AuditLogTable(rows), err
	})
}

func (c *Controller) export(ctx context.Context, path, okPrefix string, build func() (reportService.Table, error)) {
	if c.exporter == nil {
		c.state.SetError(msgError + msgNoExporter)
		return
	}

	table, err := build()
	if err != nil {
		c.logger.Error("Export %s: %v", path, err)
		c.state.SetError(msgError + viewstate.Describe(err, knownErrors...))
		return
	}

	if err := c.exporter.Export(ctx, path, table); err != nil {
		c.logger.Error("Export %s: %v", path, err)
		c.state.SetError(msgError + msgSaveFailed)
		return
	}

	c.logger.Info("Export: %q saved to %s, rows=%d", table.Title, path, len(table.Rows))
	c.state.SetContentMessage(table, okPrefix+path)
}

// path выбранный пользователем путь или файл по умолчанию в каталоге выгрузок
func (c *Controller) path(chosen, fallback string) string {
	if chosen != "" {
		return chosen
	}
	return filepath.Join(c.outputDir, fallback)
}
