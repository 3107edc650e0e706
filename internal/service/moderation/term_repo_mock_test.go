package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	UpdateByIDFunc   func(ctx context.Context, id uuid.UUID, patch domain.TermPatch) (*domain.Term, error)
	ListByStatusFunc func(ctx context.Context, status domain.Status) ([]domain.Term, error)
	ListFunc         func(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateByID []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.TermPatch
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.Status
		}
		List []struct {
			Ctx    context.Context
			Filter domain.TermFilter
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateByID   sync.RWMutex
	lockListByStatus sync.RWMutex
	lockList         sync.RWMutex
}

func (mock *termRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	if mock.GetByIDFunc == nil {
		panic("termRepoMock.GetByIDFunc: method is nil but termRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
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

func (mock *termRepoMock) UpdateByID(ctx context.Context, id uuid.UUID, patch domain.TermPatch) (*domain.Term, error) {
	if mock.UpdateByIDFunc == nil {
		panic("termRepoMock.UpdateByIDFunc: method is nil but termRepo.UpdateByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.TermPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdateByID.Lock()
	mock.calls.UpdateByID = append(mock.calls.UpdateByID, callInfo)
	mock.lockUpdateByID.Unlock()
	return mock.UpdateByIDFunc(ctx, id, patch)
}

func (mock *termRepoMock) UpdateByIDCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.TermPatch
} {
	mock.lockUpdateByID.RLock()
	defer mock.lockUpdateByID.RUnlock()
	return mock.calls.UpdateByID
}

func (mock *termRepoMock) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Term, error) {
	if mock.ListByStatusFunc == nil {
		panic("termRepoMock.ListByStatusFunc: method is nil but termRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.Status
	}{Ctx: ctx, Status: status}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status)
}

func (mock *termRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.Status
} {
	mock.lockListByStatus.RLock()
	defer mock.lockListByStatus.RUnlock()
	return mock.calls.ListByStatus
}

func (mock *termRepoMock) List(ctx context.Context, filter domain.TermFilter) ([]domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.TermFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
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
