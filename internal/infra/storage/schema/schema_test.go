package schema

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestMigrations_OrderedAndComplete(t *testing.T) {
	migrations, err := Migrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, "0001_init", migrations[0].Version)
	assert.Equal(t, "0002_lookups", migrations[1].Version)

	initSQL := migrations[0].SQL
	for _, fragment := range []string{
		"CONSTRAINT clients_email_key UNIQUE (email)",
		"CONSTRAINT reviews_client_tour_key UNIQUE (clientid, tourid)",
		"CONSTRAINT bookings_tourid_fkey REFERENCES tours (tourid)",
		"CREATE TABLE IF NOT EXISTS auditlog",
	} {
		assert.Contains(t, initSQL, fragment)
	}
}

func TestApply_SkipsAppliedMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations")).
		WithArgs("0001_init").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations")).
		WithArgs("0002_lookups").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tourtypes").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version)")).
		WithArgs("0002_lookups").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, Apply(context.Background(), db, nopLogger{}))
	require.NoError(t, mock.ExpectationsWereMet())
}
