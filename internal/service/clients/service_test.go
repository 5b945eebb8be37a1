package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	clientRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/client"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/clients/models"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeRepo struct {
	searched    string
	searchLimit uint64
	listLimit   uint64
	updated     map[int64]domain.ClientUpdate
	passports   map[int64]string
}

func (f *fakeRepo) Search(_ context.Context, q string, limit uint64) ([]domain.Client, error) {
	f.searched, f.searchLimit = q, limit
	return []domain.Client{{ID: 1, FirstName: "Иван"}}, nil
}

func (f *fakeRepo) ListAll(_ context.Context, limit uint64) ([]domain.Client, error) {
	f.listLimit = limit
	return []domain.Client{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, u domain.ClientUpdate) error {
	if id == 404 {
		return clientRepo.ErrClientNotFound
	}
	f.updated[id] = u
	return nil
}

func (f *fakeRepo) GetPassportData(_ context.Context, id int64) (string, error) {
	p, ok := f.passports[id]
	if !ok {
		return "", clientRepo.ErrClientNotFound
	}
	return p, nil
}

type fakeSession struct{ employee *domain.Employee }

func (f fakeSession) Employee() *domain.Employee { return f.employee }

var manager = &domain.Employee{ID: 3, Position: domain.PositionManager}

func newService(e *domain.Employee) (*Service, *fakeRepo) {
	repo := &fakeRepo{updated: map[int64]domain.ClientUpdate{}, passports: map[int64]string{1: "4510 123456", 2: ""}}
	return NewService(repo, fakeSession{employee: e}, logger.Nop()), repo
}

func TestService_Search(t *testing.T) {
	svc, repo := newService(manager)

	list, err := svc.Search(context.Background(), "  Ив ")
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Ив", repo.searched)
	assert.Equal(t, uint64(domain.ClientSearchLimit), repo.searchLimit)

	list, err = svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, uint64(domain.ClientListLimit), repo.listLimit)
}

func TestService_Lookup_ShortQuery(t *testing.T) {
	svc, repo := newService(manager)

	list, err := svc.Lookup(context.Background(), "И")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, repo.searched)

	list, err = svc.Lookup(context.Background(), "Ив")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestService_Update(t *testing.T) {
	svc, repo := newService(manager)

	err := svc.Update(context.Background(), 1, models.ClientForm{FirstName: " Иван ", LastName: "Петров", Phone: " "})
	require.NoError(t, err)
	assert.Equal(t, "Иван", repo.updated[1].FirstName)
	assert.Nil(t, repo.updated[1].Phone)

	err = svc.Update(context.Background(), 1, models.ClientForm{FirstName: "Иван"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Update(context.Background(), 404, models.ClientForm{FirstName: "А", LastName: "Б"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_GetPassportData(t *testing.T) {
	svc, _ := newService(manager)

	p, err := svc.GetPassportData(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "4510 123456", p)

	p, err = svc.GetPassportData(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = svc.GetPassportData(context.Background(), 3)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_RequiresEmployee(t *testing.T) {
	svc, _ := newService(nil)

	_, err := svc.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Search(context.Background(), "Иван")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
