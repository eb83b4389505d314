package txsync

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type transactionSourceMock struct {
	mock.Mock
}

func (m *transactionSourceMock) FetchTransactions(ctx context.Context, address string) ([]Transaction, error) {
	args := m.Called(ctx, address)
	if txs, ok := args.Get(0).([]Transaction); ok {
		return txs, args.Error(1)
	}
	return nil, args.Error(1)
}

type priceSourceMock struct {
	mock.Mock
}

func (m *priceSourceMock) FetchPrices(ctx context.Context) (PriceSnapshot, error) {
	args := m.Called(ctx)
	if snapshot, ok := args.Get(0).(PriceSnapshot); ok {
		return snapshot, args.Error(1)
	}
	return nil, args.Error(1)
}

type recordSinkMock struct {
	mock.Mock
}

func (m *recordSinkMock) CreateRecord(ctx context.Context, record ValuedRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type idempotencyGuardMock struct {
	mock.Mock
}

func (m *idempotencyGuardMock) AlreadySynced(ctx context.Context, network, txHash string) (bool, error) {
	args := m.Called(ctx, network, txHash)
	return args.Bool(0), args.Error(1)
}

func (m *idempotencyGuardMock) MarkSynced(ctx context.Context, network, txHash string) error {
	args := m.Called(ctx, network, txHash)
	return args.Error(0)
}
