package service_test

import (
	"math"
	"sync"
	"testing"

	"ledger_system/internal/domain"
	"ledger_system/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitGross(t *testing.T) {
	cases := []struct {
		gross float64
		fee   float64
		net   float64
	}{
		{100, 3.00, 97.00},
		{1000, 30.00, 970.00},
		{10, 0.30, 9.70},
		{33.33, 1.00, 32.33},
		{123.45, 3.70, 119.75},
		{0.01, 0.00, 0.01},
	}
	for _, tc := range cases {
		fee, net := service.SplitGross(tc.gross)
		assert.InDelta(t, tc.fee, fee, 0.000001, "fee for gross %v", tc.gross)
		assert.InDelta(t, tc.net, net, 0.000001, "net for gross %v", tc.gross)
		// Fee plus net reassembles the gross at cent precision
		assert.InDelta(t, tc.gross, fee+net, 0.005, "sum for gross %v", tc.gross)
	}
}

func TestCreateOperation(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)

	op, err := operations.Create(receiver.ID, 100)
	require.NoError(t, err)
	assert.NotZero(t, op.ID)
	assert.Equal(t, receiver.ID, op.ReceiverID)
	assert.Equal(t, domain.StatusPending, op.Status)
	assert.InDelta(t, 3.00, op.Fee, 0.000001)
	assert.InDelta(t, 97.00, op.NetValue, 0.000001)
	assert.False(t, op.CreatedAt.IsZero())
}

func TestCreateOperationRejectsInvalidGross(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)

	for _, gross := range []float64{-5, 0, math.NaN(), math.Inf(1)} {
		_, err := operations.Create(receiver.ID, gross)
		require.ErrorIs(t, err, service.ErrInvalidInput)
	}
	_, err = operations.Create(0, 100)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	// No row was created by any rejected attempt
	assert.Zero(t, countOperations(t, database))
}

func TestCreateOperationUnknownReceiver(t *testing.T) {
	database := newTestDB(t)
	operations := service.NewOperationService(database)

	_, err := operations.Create(9999, 100)
	require.ErrorIs(t, err, service.ErrNotFound)
	assert.Zero(t, countOperations(t, database))
}

func TestGetOperation(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)
	created, err := operations.Create(receiver.ID, 200)
	require.NoError(t, err)

	op, err := operations.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, op.ID)
	assert.InDelta(t, 194.00, op.NetValue, 0.000001)

	_, err = operations.Get(9999)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestConfirmOperationCreditsReceiver(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)
	op, err := operations.Create(receiver.ID, 100)
	require.NoError(t, err)

	confirmed, err := operations.Confirm(op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.InDelta(t, 97.00, receiverBalance(t, database, receiver.ID), 0.001)
}

func TestConfirmOperationTwice(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)
	op, err := operations.Create(receiver.ID, 100)
	require.NoError(t, err)

	_, err = operations.Confirm(op.ID)
	require.NoError(t, err)

	// A second confirmation is rejected, not silently absorbed
	_, err = operations.Confirm(op.ID)
	require.ErrorIs(t, err, service.ErrAlreadyConfirmed)

	// Neither the balance nor the status moved again
	assert.InDelta(t, 97.00, receiverBalance(t, database, receiver.ID), 0.001)
	stored, err := operations.Get(op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestConfirmUnknownOperation(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)

	_, err = operations.Confirm(9999)
	require.ErrorIs(t, err, service.ErrNotFound)
	// Nothing mutated
	assert.Zero(t, receiverBalance(t, database, receiver.ID))
}

func TestConcurrentConfirmSameOperation(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)
	op, err := operations.Create(receiver.ID, 100)
	require.NoError(t, err)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := operations.Confirm(op.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, service.ErrAlreadyConfirmed)
			rejected++
		}
	}
	// Exactly one attempt wins, the rest are rejected
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	// The net value was credited exactly once
	assert.InDelta(t, 97.00, receiverBalance(t, database, receiver.ID), 0.001)
}

func TestConcurrentConfirmDistinctOperations(t *testing.T) {
	database := newTestDB(t)
	receivers := service.NewReceiverService(database)
	operations := service.NewOperationService(database)

	receiver, err := receivers.Create("Payee")
	require.NoError(t, err)
	first, err := operations.Create(receiver.ID, 100) // Net 97.00
	require.NoError(t, err)
	second, err := operations.Create(receiver.ID, 200) // Net 194.00
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, id := range []uint{first.ID, second.ID} {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			_, err := operations.Confirm(id)
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// No lost update: both credits land
	assert.InDelta(t, 291.00, receiverBalance(t, database, receiver.ID), 0.001)
}
