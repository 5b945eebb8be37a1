package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
	bookingRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/TravelAgency-BackOffice/internal/infra/storage/tour"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/logger"
	"github.com/m04kA/TravelAgency-BackOffice/pkg/ptr"
)

type fakeTours struct {
	tours map[int64]*domain.Tour
	err   error
}

func (f *fakeTours) GetForBooking(_ context.Context, id int64) (*domain.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	return t, nil
}

type fakeBookings struct {
	created []domain.NewBooking
	err     error
}

func (f *fakeBookings) Create(_ context.Context, b domain.NewBooking) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, b)
	return int64(100 + len(f.created)), nil
}

// fakeTx выполняет функцию без транзакции и считает вызовы
type fakeTx struct {
	calls int
}

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func newUseCase() (*UseCase, *fakeBookings, *fakeTx) {
	tours := &fakeTours{tours: map[int64]*domain.Tour{
		1: {ID: 1, Cost: decimal.RequireFromString("85000.00"), IsActive: true},
		2: {ID: 2, Cost: decimal.RequireFromString("50000.00"), IsActive: false},
	}}
	bookings := &fakeBookings{}
	tx := &fakeTx{}
	return NewUseCase(tours, bookings, tx, logger.Nop()), bookings, tx
}

func TestUseCase_Execute_ClientBooksItself(t *testing.T) {
	uc, bookings, tx := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{TourID: 1, ClientID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.True(t, resp.FinalPrice.Equal(decimal.RequireFromString("85000")))
	assert.Nil(t, bookings.created[0].EmployeeID)
	assert.Equal(t, 1, tx.calls)
}

func TestUseCase_Execute_ManagerBooksForClient(t *testing.T) {
	uc, bookings, _ := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{TourID: 1, ClientID: 7, EmployeeID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	assert.Equal(t, int64(3), *resp.EmployeeID)
	assert.Equal(t, int64(3), *bookings.created[0].EmployeeID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		bookErr error
		wantErr error
	}{
		{name: "unknown tour", req: Request{TourID: 99, ClientID: 7}, wantErr: ErrTourNotFound},
		{name: "inactive tour", req: Request{TourID: 2, ClientID: 7}, wantErr: ErrTourInactive},
		{name: "unknown client", req: Request{TourID: 1, ClientID: 404}, bookErr: bookingRepo.ErrClientNotFound, wantErr: ErrClientNotFound},
		{name: "storage failure", req: Request{TourID: 1, ClientID: 7}, bookErr: errors.New("disk full"), wantErr: ErrInternal},
		{name: "zero client", req: Request{TourID: 1}, wantErr: ErrInvalidInput},
		{name: "bad employee", req: Request{TourID: 1, ClientID: 7, EmployeeID: ptr.Ptr(int64(0))}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, bookings, _ := newUseCase()
			bookings.err = tt.bookErr

			resp, err := uc.Execute(context.Background(), &tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
