package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

var (
	_ commentRepo = &commentRepoMock{}
	_ termRepo    = &termRepoMock{}
)

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByTermFunc func(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Comment *domain.Comment
		}
		ListByTerm []struct {
			Ctx    context.Context
			TermID uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockListByTerm sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Ctx     context.Context
		Comment *domain.Comment
	}{Ctx: ctx, Comment: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Comment *domain.Comment
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *commentRepoMock) ListByTerm(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByTermFunc == nil {
		panic("commentRepoMock.ListByTermFunc: method is nil but commentRepo.ListByTerm was just called")
	}
	mock.lockListByTerm.Lock()
	mock.calls.ListByTerm = append(mock.calls.ListByTerm, struct {
		Ctx    context.Context
		TermID uuid.UUID
	}{Ctx: ctx, TermID: termID})
	mock.lockListByTerm.Unlock()
	return mock.ListByTermFunc(ctx, termID)
}

func (mock *commentRepoMock) ListByTermCalls() []struct {
	Ctx    context.Context
	TermID uuid.UUID
} {
	mock.lockListByTerm.RLock()
	defer mock.lockListByTerm.RUnlock()
	return mock.calls.ListByTerm
}

type termRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Term, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
