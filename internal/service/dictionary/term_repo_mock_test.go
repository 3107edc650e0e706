package dictionary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListFunc    func(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)
	SearchFunc  func(ctx context.Context, q string, limit int) ([]domain.Term, error)
	CreateFunc  func(ctx context.Context, t *domain.Term) (*domain.Term, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TermFilter
		}
		Search []struct {
			Ctx   context.Context
			Q     string
			Limit int
		}
		Create []struct {
			Ctx  context.Context
			Term *domain.Term
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockSearch  sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *termRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *termRepoMock) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		Ctx    context.Context
		Filter domain.TermFilter
	}{Ctx: ctx, Filter: filter})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *termRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Filter domain.TermFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *termRepoMock) Search(ctx context.Context, q string, limit int) ([]domain.Term, error) {
	if mock.SearchFunc == nil {
		panic("termRepoMock.SearchFunc: method is nil but termRepo.Search was just called")
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Ctx   context.Context
		Q     string
		Limit int
	}{Ctx: ctx, Q: q, Limit: limit})
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, q, limit)
}

func (mock *termRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Q     string
	Limit int
} {
	mock.lockSearch.RLock()
	defer mock.lockSearch.RUnlock()
	return mock.calls.Search
}

func (mock *termRepoMock) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx  context.Context
		Term *domain.Term
	}{Ctx: ctx, Term: t})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Term *domain.Term
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}
