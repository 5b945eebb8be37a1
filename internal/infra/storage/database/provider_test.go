package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/config"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

func testConfig() config.DatabaseConfig {
	return config.DatabaseConfig{Host: "localhost", Port: 5432, DBName: "TravelAgency", MaxOpenConns: 4}
}

// mockOpener отдает заранее созданные sqlmock соединения по очереди
func mockOpener(t *testing.T, pingErrs ...error) Opener {
	t.Helper()
	dbs := make([]*sql.DB, 0, len(pingErrs))
	for _, pingErr := range pingErrs {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		ping := mock.ExpectPing()
		if pingErr != nil {
			ping.WillReturnError(pingErr)
		}
		mock.ExpectClose()
		dbs = append(dbs, db)
	}

	i := 0
	return func(dsn string) (*sql.DB, error) {
		db := dbs[i]
		i++
		return db, nil
	}
}

func TestProvider_GetBeforeConnectPanics(t *testing.T) {
	p := NewProvider(testConfig(), nil, logger.Nop())

	assert.False(t, p.Connected())
	assert.PanicsWithValue(t, ErrNotConnected, func() { p.Get() })
}

func TestProvider_ConnectSuccess(t *testing.T) {
	open := mockOpener(t, nil, nil)
	p := NewProvider(testConfig(), nil, logger.Nop()).WithOpener(open)

	require.NoError(t, p.Connect(context.Background(), "manager_ivanov", "secret"))
	assert.True(t, p.Connected())
	assert.NotNil(t, p.Get())

	require.NoError(t, p.Close())
	assert.False(t, p.Connected())
	require.NoError(t, p.Close())
}

func TestProvider_ConnectBadCredentials(t *testing.T) {
	open := mockOpener(t, &pq.Error{Code: "28P01", Message: "password authentication failed"})
	p := NewProvider(testConfig(), nil, logger.Nop()).WithOpener(open)

	err := p.Connect(context.Background(), "manager_ivanov", "wrong")

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, p.Connected())
}

func TestProvider_VerifyDoesNotOpenPool(t *testing.T) {
	open := mockOpener(t, nil)
	p := NewProvider(testConfig(), nil, logger.Nop()).WithOpener(open)

	require.NoError(t, p.Verify(context.Background(), "fin_petrova", "secret"))
	assert.False(t, p.Connected())
}

func TestProvider_PingNotConnected(t *testing.T) {
	p := NewProvider(testConfig(), nil, logger.Nop())

	err := p.Ping(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)
}
