// Package database управляет пулом соединений с PostgreSQL
package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/TravelAgency-BackOffice/internal/config"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/dbmetrics"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/metrics"
)

// SQLSTATE ошибок аутентификации
const (
	codeInvalidPassword      pq.ErrorCode = "28P01"
	codeInvalidAuthorization pq.ErrorCode = "28000"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Opener открывает *sql.DB по строке подключения
type Opener func(dsn string) (*sql.DB, error)

func openPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}

// Provider держит единственный пул соединений процесса
type Provider struct {
	cfg     config.DatabaseConfig
	metrics *metrics.Metrics
	logger  Logger
	open    Opener

	mu     sync.RWMutex
	db     *dbmetrics.DB
	stopCh chan struct{}
}

// NewProvider создает провайдер; m может быть nil, тогда метрики не пишутся
func NewProvider(cfg config.DatabaseConfig, m *metrics.Metrics, logger Logger) *Provider {
	return &Provider{
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		open:    openPostgres,
	}
}

// WithOpener подменяет способ открытия соединения
func (p *Provider) WithOpener(open Opener) *Provider {
	p.open = open
	return p
}

// Verify проверяет учётные данные отдельным соединением, не трогая пул
func (p *Provider) Verify(ctx context.Context, user, secret string) error {
	db, err := p.open(p.cfg.DSNFor(user, secret))
	if err != nil {
		return fmt.Errorf("%w: Verify - open: %v", ErrConnect, err)
	}
	defer db.Close()

	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return classify("Verify", err)
	}
	return nil
}

// Connect проверяет учётные данные и открывает пул соединений
func (p *Provider) Connect(ctx context.Context, user, secret string) error {
	if err := p.Verify(ctx, user, secret); err != nil {
		p.logger.Error("Database connection failed for user %s: %v", user, err)
		return err
	}

	db, err := p.open(p.cfg.DSNFor(user, secret))
	if err != nil {
		p.logger.Error("Failed to open database pool: %v", err)
		return fmt.Errorf("%w: Connect - open pool: %v", ErrConnect, err)
	}

	db.SetMaxOpenConns(p.cfg.MaxOpenConns)
	db.SetMaxIdleConns(p.cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(p.cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		p.logger.Error("Failed to ping database pool: %v", err)
		return classify("Connect", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		p.closeLocked()
	}

	if p.metrics != nil {
		p.stopCh = make(chan struct{})
		p.db = dbmetrics.WrapWithDefault(db, p.metrics, p.stopCh)
	} else {
		p.db = dbmetrics.Wrap(db, nil)
	}

	p.logger.Info("Connected to database (host=%s, port=%d, db=%s, user=%s)",
		p.cfg.Host, p.cfg.Port, p.cfg.DBName, user)
	return nil
}

// Connected пул открыт
func (p *Provider) Connected() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.db != nil
}

// Get возвращает пул; вызов до успешного Connect является ошибкой программы
func (p *Provider) Get() *dbmetrics.DB {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		panic(ErrNotConnected)
	}
	return p.db
}

// Ping проверяет, что пул открыт и сервер отвечает
func (p *Provider) Ping(ctx context.Context) error {
	p.mu.RLock()
	db := p.db
	p.mu.RUnlock()
	if db == nil {
		return ErrNotConnected
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrConnect, err)
	}
	return nil
}

// Close закрывает пул, повторный вызов безопасен
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Provider) closeLocked() error {
	if p.db == nil {
		return nil
	}
	if p.stopCh != nil {
		close(p.stopCh)
		p.stopCh = nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}

func classify(op string, err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == codeInvalidPassword || pqErr.Code == codeInvalidAuthorization {
			return fmt.Errorf("%w: %s: %v", ErrInvalidCredentials, op, err)
		}
	}
	return fmt.Errorf("%w: %s - ping: %v", ErrConnect, op, err)
}
