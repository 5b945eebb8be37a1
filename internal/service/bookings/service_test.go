package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	paymentModels "github.com/m04kA/TravelAgency-BackOffice/internal/service/payments/models"
	"github.com/m04kA/TravelAgency-BackOffice/internal/usecase/create_booking"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
)

type fakeRepo struct {
	states    map[int64]*domain.BookingState
	claimed   map[int64]int64
	deleted   []int64
	deleteErr error
	listedFor int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		states: map[int64]*domain.BookingState{
			1: {ID: 1, Status: domain.StatusPending, PaymentStatus: domain.PaymentUnpaid},
			2: {ID: 2, Status: domain.StatusConfirmed, PaymentStatus: domain.PaymentPaid},
			3: {ID: 3, Status: domain.StatusAnnulled, PaymentStatus: domain.PaymentUnpaid},
			4: {ID: 4, Status: domain.StatusPending, PaymentStatus: domain.PaymentPaid},
		},
		claimed: map[int64]int64{},
	}
}

func (f *fakeRepo) ListForManager(_ context.Context, employeeID int64) ([]domain.Booking, error) {
	f.listedFor = employeeID
	return []domain.Booking{{ID: 1}}, nil
}

func (f *fakeRepo) ListForClient(_ context.Context, clientID int64) ([]domain.Booking, error) {
	f.listedFor = clientID
	return []domain.Booking{{ID: 1, ClientID: clientID}}, nil
}

func (f *fakeRepo) GetState(_ context.Context, id int64) (*domain.BookingState, error) {
	st, ok := f.states[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *st
	return &cp, nil
}

func (f *fakeRepo) Claim(_ context.Context, bookingID, employeeID int64) error {
	if owner, ok := f.claimed[bookingID]; ok && owner != employeeID {
		return bookingRepo.ErrAlreadyClaimed
	}
	f.claimed[bookingID] = employeeID
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.states[id].Status = status
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCreate struct {
	last *create_booking.Request
	err  error
}

func (f *fakeCreate) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.last = req
	return &create_booking.Response{ID: 42}, nil
}

type fakePayments struct {
	method string
	err    error
}

func (f *fakePayments) AddPayment(_ context.Context, _ int64, _ decimal.Decimal, method string) (*paymentModels.Receipt, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.method = method
	return &paymentModels.Receipt{PaymentID: 1, Status: domain.PaymentPaid}, nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeSession struct {
	employee *domain.Employee
	client   *domain.Client
}

func (f fakeSession) Employee() *domain.Employee { return f.employee }
func (f fakeSession) Client() *domain.Client { return f.client }

var (
	manager   = &domain.Employee{ID: 3, Position: domain.PositionManager}
	colleague = &domain.Employee{ID: 4, Position: domain.PositionSenior}
	financier = &domain.Employee{ID: 5, Position: domain.PositionFinancier}
	client    = &domain.Client{ID: 7}
)

type fixture struct {
	svc      *Service
	repo     *fakeRepo
	create   *fakeCreate
	payments *fakePayments
	tx       *fakeTx
}

func newFixture(sess fakeSession) *fixture {
	f := &fixture{repo: newFakeRepo(), create: &fakeCreate{}, payments: &fakePayments{}, tx: &fakeTx{}}
	f.svc = NewService(f.repo, f.create, f.payments, f.tx, sess, logger.Nop()).
		WithCardDigits(func() int { return 4821 })
	return f
}

func TestService_Create_ByManager(t *testing.T) {
	f := newFixture(fakeSession{employee: manager})

	id, err := f.svc.Create(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, int64(7), f.create.last.ClientID)
	require.NotNil(t, f.create.last.EmployeeID)
	assert.Equal(t, int64(3), *f.create.last.EmployeeID)

	_, err = f.svc.Create(context.Background(), 10, 0)
	assert.ErrorIs(t, err, ErrClientRequired)
}

func TestService_Create_ByClient(t *testing.T) {
	f := newFixture(fakeSession{client: client})

	_, err := f.svc.Create(context.Background(), 10, 999)
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.create.last.ClientID)
	assert.Nil(t, f.create.last.EmployeeID)
}

func TestService_Create_PropagatesUseCaseError(t *testing.T) {
	f := newFixture(fakeSession{client: client})
	f.create.err = create_booking.ErrTourInactive

	_, err := f.svc.Create(context.Background(), 10, 0)
	assert.ErrorIs(t, err, create_booking.ErrTourInactive)
}

func TestService_Create_Denied(t *testing.T) {
	f := newFixture(fakeSession{employee: financier})

	_, err := f.svc.Create(context.Background(), 10, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_SetStatus(t *testing.T) {
	f := newFixture(fakeSession{employee: manager})

	require.NoError(t, f.svc.SetStatus(context.Background(), 1, string(domain.StatusConfirmed)))
	assert.Equal(t, domain.StatusConfirmed, f.repo.states[1].Status)
	assert.Equal(t, int64(3), f.repo.claimed[1])
	assert.Equal(t, 1, f.tx.calls)
}

func TestService_SetStatus_Errors(t *testing.T) {
	tests := []struct {
		name      string
		session   fakeSession
		bookingID int64
		status    string
		wantErr   error
	}{
		{name: "unknown status", session: fakeSession{employee: manager}, bookingID: 1, status: "Отправлено", wantErr: ErrInvalidStatus},
		{name: "paid cannot be annulled", session: fakeSession{employee: manager}, bookingID: 2, status: string(domain.StatusAnnulled), wantErr: ErrInvalidTransition},
		{name: "paid pending cannot be annulled", session: fakeSession{employee: manager}, bookingID: 4, status: string(domain.StatusAnnulled), wantErr: ErrInvalidTransition},
		{name: "annulled is final", session: fakeSession{employee: manager}, bookingID: 3, status: string(domain.StatusPending), wantErr: ErrInvalidTransition},
		{name: "missing booking", session: fakeSession{employee: manager}, bookingID: 99, status: string(domain.StatusConfirmed), wantErr: ErrBookingNotFound},
		{name: "client", session: fakeSession{client: client}, bookingID: 1, status: string(domain.StatusConfirmed), wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.session)
			err := f.svc.SetStatus(context.Background(), tt.bookingID, tt.status)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_SetStatus_ClaimedByColleague(t *testing.T) {
	f := newFixture(fakeSession{employee: manager})
	f.repo.claimed[1] = colleague.ID

	err := f.svc.SetStatus(context.Background(), 1, string(domain.StatusConfirmed))
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, domain.StatusPending, f.repo.states[1].Status)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(fakeSession{employee: manager})

	assert.ErrorIs(t, f.svc.Delete(context.Background(), 1), ErrCannotDelete)

	require.NoError(t, f.svc.Delete(context.Background(), 3))
	assert.Equal(t, []int64{3}, f.repo.deleted)

	f.repo.deleteErr = bookingRepo.ErrHasPayments
	assert.ErrorIs(t, f.svc.Delete(context.Background(), 3), ErrBookingHasPayments)

	f.repo.deleteErr = errors.New("connection reset")
	assert.ErrorIs(t, f.svc.Delete(context.Background(), 3), ErrInternal)
}

func TestService_Lists(t *testing.T) {
	f := newFixture(fakeSession{employee: manager})
	list, err := f.svc.ListForManager(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(3), f.repo.listedFor)

	_, err = f.svc.ListForClient(context.Background())
	assert.ErrorIs(t, err, ErrAccessDenied)

	f = newFixture(fakeSession{client: client})
	_, err = f.svc.ListForClient(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), f.repo.listedFor)
}

func TestService_Pay(t *testing.T) {
	f := newFixture(fakeSession{client: client})

	receipt, err := f.svc.Pay(context.Background(), 1, decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, receipt.Status)
	assert.Equal(t, "Карта *4821", f.payments.method)

	f = newFixture(fakeSession{employee: manager})
	_, err = f.svc.Pay(context.Background(), 1, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, ErrAccessDenied)
}
