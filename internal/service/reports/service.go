package reports

import (
	"context"
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// Service отчёты для финансиста и администратора
type Service struct {
	repo    ReportRepository
	session Session
	logger  Logger
}

func NewService(repo ReportRepository, session Session, logger Logger) *Service {
	return &Service{
		repo:    repo,
		session: session,
		logger:  logger,
	}
}

// ManagerPerformance продажи и выручка по менеджерам за период
func (s *Service) ManagerPerformance(ctx context.Context, period *domain.Period) ([]domain.ManagerKpi, error) {
	p, err := s.prepare("ManagerPerformance", period)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ManagerPerformance(ctx, p)
	if err != nil {
		return nil, s.internal("ManagerPerformance", err)
	}
	return rows, nil
}

// MonthlyRevenue выручка по месяцам, последние месяцы первыми
func (s *Service) MonthlyRevenue(ctx context.Context) ([]domain.MonthlyRevenue, error) {
	if err := s.allowed("MonthlyRevenue"); err != nil {
		return nil, err
	}

	rows, err := s.repo.MonthlyRevenue(ctx)
	if err != nil {
		return nil, s.internal("MonthlyRevenue", err)
	}
	return rows, nil
}

// DebtorsReport должники с датой заявки
func (s *Service) DebtorsReport(ctx context.Context) ([]domain.DebtorReportItem, error) {
	if err := s.allowed("DebtorsReport"); err != nil {
		return nil, err
	}

	rows, err := s.repo.Debtors(ctx)
	if err != nil {
		return nil, s.internal("DebtorsReport", err)
	}
	return rows, nil
}

// PaymentLog все платежи за период
func (s *Service) PaymentLog(ctx context.Context, period *domain.Period) ([]domain.PaymentLogItem, error) {
	p, err := s.prepare("PaymentLog", period)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.PaymentLog(ctx, p)
	if err != nil {
		return nil, s.internal("PaymentLog", err)
	}
	return rows, nil
}

// prepare проверяет права и период, nil означает "за всё время"
func (s *Service) prepare(op string, period *domain.Period) (domain.Period, error) {
	if err := s.allowed(op); err != nil {
		return domain.Period{}, err
	}

	if period == nil {
		return domain.UnboundedPeriod(), nil
	}
	if period.From.After(period.To) {
		s.logger.Warn("%s: period %s..%s is inverted", op,
			period.From.Format(domain.ISODateFormat), period.To.Format(domain.ISODateFormat))
		return domain.Period{}, ErrInvalidPeriod
	}
	return *period, nil
}

func (s *Service) allowed(op string) error {
	e := s.session.Employee()
	if e == nil || !(e.IsFinancier() || e.IsAdmin()) {
		s.logger.Warn("%s: access denied", op)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) internal(op string, err error) error {
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
