package client

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/ptr"
)

var columns = []string{"clientid", "firstname", "lastname", "email", "phone", "registrationdate"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create_EmailTaken(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "clients_email_key"})

	_, err := repo.Create(context.Background(), domain.NewClient{
		FirstName: "Иван", LastName: "Иванов", Email: "ivan@mail.ru", PasswordHash: "hash",
	})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`INSERT INTO clients \(firstname,lastname,phone,email,passwordhash,passportdata\)`).
		WithArgs("Иван", "Иванов", nil, "ivan@mail.ru", "hash", "4510 123456").
		WillReturnRows(sqlmock.NewRows([]string{"clientid"}).AddRow(int64(12)))

	id, err := repo.Create(context.Background(), domain.NewClient{
		FirstName: "Иван", LastName: "Иванов", Email: "ivan@mail.ru", PasswordHash: "hash",
		PassportData: ptr.Ptr("4510 123456"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM clients WHERE email = \$1`).
		WithArgs("ivan@mail.ru").
		WillReturnRows(sqlmock.NewRows(append(columns, "passwordhash")).
			AddRow(int64(1), "Иван", "Иванов", "ivan@mail.ru", "+79990000000", time.Now(), "$2a$10$hash"))

	c, hash, err := repo.FindByEmail(context.Background(), "ivan@mail.ru")
	require.NoError(t, err)
	assert.Equal(t, "Иван Иванов", c.FullName())
	assert.Equal(t, "+79990000000", *c.Phone)
	assert.Equal(t, "$2a$10$hash", hash)
}

func TestRepository_FindByEmail_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM clients").WillReturnError(sql.ErrNoRows)

	_, _, err := repo.FindByEmail(context.Background(), "nobody@mail.ru")
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestRepository_Search(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`WHERE \(firstname ILIKE \$1 OR lastname ILIKE \$2 OR phone ILIKE \$3\) ORDER BY lastname, firstname LIMIT 20`).
		WithArgs("%Ив%", "%Ив%", "%Ив%").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(int64(1), "Иван", "Иванов", "ivan@mail.ru", nil, time.Now()))

	clients, err := repo.Search(context.Background(), "Ив", domain.ClientSearchLimit)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Nil(t, clients[0].Phone)
}

func TestRepository_Search_EscapesWildcards(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`WHERE \(firstname ILIKE \$1 OR lastname ILIKE \$2 OR phone ILIKE \$3\)`).
		WithArgs(`%+7\_900%`, `%+7\_900%`, `%+7\_900%`).
		WillReturnRows(sqlmock.NewRows(columns))

	clients, err := repo.Search(context.Background(), "+7_900", domain.ClientSearchLimit)
	require.NoError(t, err)
	assert.Empty(t, clients)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListAll(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`ORDER BY registrationdate DESC LIMIT 100`).
		WillReturnRows(sqlmock.NewRows(columns))

	clients, err := repo.ListAll(context.Background(), domain.ClientListLimit)
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE clients SET firstname").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), 99, domain.ClientUpdate{FirstName: "А", LastName: "Б"})
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestRepository_GetPassportData_Null(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT passportdata FROM clients WHERE clientid = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"passportdata"}).AddRow(nil))

	passport, err := repo.GetPassportData(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "", passport)
}
