package testhelpers

import (
	"context"

	"lotofacil/domain/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDrawResultRepository is a mock implementation of DrawResultRepository
type MockDrawResultRepository struct {
	mock.Mock
}

func (m *MockDrawResultRepository) Upsert(ctx context.Context, draw *entities.DrawResult) error {
	args := m.Called(ctx, draw)
	return args.Error(0)
}

func (m *MockDrawResultRepository) UpsertBatch(ctx context.Context, draws []*entities.DrawResult) (int, error) {
	args := m.Called(ctx, draws)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawResultRepository) GetByContestID(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	args := m.Called(ctx, contestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DrawResult), args.Error(1)
}

func (m *MockDrawResultRepository) GetLatest(ctx context.Context) (*entities.DrawResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DrawResult), args.Error(1)
}

func (m *MockDrawResultRepository) GetRecent(ctx context.Context, limit int) ([]*entities.DrawResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DrawResult), args.Error(1)
}

func (m *MockDrawResultRepository) GetUpTo(ctx context.Context, contestID int, limit int) ([]*entities.DrawResult, error) {
	args := m.Called(ctx, contestID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.DrawResult), args.Error(1)
}

func (m *MockDrawResultRepository) GetMissingContestIDs(ctx context.Context, from, to int) ([]int, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockDrawResultRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDrawResultRepository) Delete(ctx context.Context, contestID int) error {
	args := m.Called(ctx, contestID)
	return args.Error(0)
}

// MockTicketRepository is a mock implementation of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entities.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) CreateBatch(ctx context.Context, tickets []*entities.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context, source entities.TicketSource, limit int) ([]*entities.Ticket, error) {
	args := m.Called(ctx, source, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Rename(ctx context.Context, id uuid.UUID, label string) error {
	args := m.Called(ctx, id, label)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockResultFetcher is a mock implementation of ResultFetcher
type MockResultFetcher struct {
	mock.Mock
}

func (m *MockResultFetcher) FetchLatest(ctx context.Context) (*entities.DrawResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DrawResult), args.Error(1)
}

func (m *MockResultFetcher) FetchContest(ctx context.Context, contestID int) (*entities.DrawResult, error) {
	args := m.Called(ctx, contestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DrawResult), args.Error(1)
}
