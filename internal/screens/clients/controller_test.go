package clients

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	"github.com/m04kA/TravelAgency-BackOffice/internal/screens/viewstate"
	clientService "github.com/m04kA/TravelAgency-BackOffice/internal/service/clients"
	"github.com/m04kA/TravelAgency-BackOffice/internal/service/clients/models"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeClients struct {
	listCalls int
	updateErr error
}

func (f *fakeClients) Search(_ context.Context, q string) ([]domain.Client, error) {
	if q == "" {
		return f.ListAll(context.Background())
	}
	return []domain.Client{{ID: 1}}, nil
}

func (f *fakeClients) ListAll(context.Context) ([]domain.Client, error) {
	f.listCalls++
	return []domain.Client{{ID: 1}, {ID: 2}, {ID: 3}}, nil
}

func (f *fakeClients) Update(context.Context, int64, models.ClientForm) error { return f.updateErr }

func (f *fakeClients) GetPassportData(context.Context, int64) (string, error) {
	return "4510 123456", nil
}

func TestController_SearchAndLoad(t *testing.T) {
	svc := &fakeClients{}
	c := NewController(svc, logger.Nop())

	c.Search(context.Background(), "Иван")
	assert.Len(t, c.State().Get().Data, 1)

	c.Search(context.Background(), "")
	assert.Len(t, c.State().Get().Data, 3)
}

func TestController_Save(t *testing.T) {
	svc := &fakeClients{}
	c := NewController(svc, logger.Nop())

	c.Save(context.Background(), 1, models.ClientForm{FirstName: "Иван", LastName: "Петров"})
	assert.Equal(t, viewstate.Content, c.State().Get().Status)
	assert.Equal(t, 1, svc.listCalls)

	svc.updateErr = errors.New("boom")
	c.Save(context.Background(), 1, models.ClientForm{})
	assert.Equal(t, "Ошибка сохранения: "+viewstate.MsgInternal, c.State().Get().Message)

	svc.updateErr = fmt.Errorf("%w: last name is required", clientService.ErrInvalidInput)
	c.Save(context.Background(), 1, models.ClientForm{})
	assert.Equal(t, "Ошибка сохранения: Проверьте введённые данные", c.State().Get().Message)

	svc.updateErr = clientService.ErrClientNotFound
	c.Save(context.Background(), 9, models.ClientForm{})
	assert.Equal(t, "Ошибка сохранения: Клиент не найден", c.State().Get().Message)
}

func TestController_LoadPassport(t *testing.T) {
	c := NewController(&fakeClients{}, logger.Nop())
	c.LoadPassport(context.Background(), 1)
	assert.Equal(t, "4510 123456", c.Passport().Get().Data)
}
