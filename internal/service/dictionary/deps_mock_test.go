package dictionary

import (
	"context"
	"sync"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

var (
	_ suggestionRepo = &suggestionRepoMock{}
	_ searchCache    = &searchCacheMock{}
	_ txManager      = &txManagerMock{}
)

type suggestionRepoMock struct {
	CreateFunc func(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error)

	calls struct {
		Create []struct {
			Ctx        context.Context
			Suggestion *domain.Suggestion
		}
	}
	lockCreate sync.RWMutex
}

func (mock *suggestionRepoMock) Create(ctx context.Context, s *domain.Suggestion) (*domain.Suggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx        context.Context
		Suggestion *domain.Suggestion
	}{Ctx: ctx, Suggestion: s})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	Suggestion *domain.Suggestion
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

type searchCacheMock struct {
	GetOrLoadFunc func(ctx context.Context, query string, limit int, load func(ctx context.Context) ([]domain.Term, error)) ([]domain.Term, error)

	calls struct {
		GetOrLoad []struct {
			Ctx   context.Context
			Query string
			Limit int
		}
	}
	lockGetOrLoad sync.RWMutex
}

func (mock *searchCacheMock) GetOrLoad(ctx context.Context, query string, limit int, load func(ctx context.Context) ([]domain.Term, error)) ([]domain.Term, error) {
	if mock.GetOrLoadFunc == nil {
		panic("searchCacheMock.GetOrLoadFunc: method is nil but searchCache.GetOrLoad was just called")
	}
	mock.lockGetOrLoad.Lock()
	mock.calls.GetOrLoad = append(mock.calls.GetOrLoad, struct {
		Ctx   context.Context
		Query string
		Limit int
	}{Ctx: ctx, Query: query, Limit: limit})
	mock.lockGetOrLoad.Unlock()
	return mock.GetOrLoadFunc(ctx, query, limit, load)
}

func (mock *searchCacheMock) GetOrLoadCalls() []struct {
	Ctx   context.Context
	Query string
	Limit int
} {
	mock.lockGetOrLoad.RLock()
	defer mock.lockGetOrLoad.RUnlock()
	return mock.calls.GetOrLoad
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct {
		Ctx context.Context
	}{Ctx: ctx})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
} {
	mock.lockRunInTx.RLock()
	defer mock.lockRunInTx.RUnlock()
	return mock.calls.RunInTx
}
