package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error)
	UpdateByIDFunc   func(ctx context.Context, id uuid.UUID, patch domain.SuggestionPatch) (*domain.Suggestion, error)
	ListByStatusFunc func(ctx context.Context, status domain.Status) ([]domain.Suggestion, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateByID []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Patch domain.SuggestionPatch
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.Status
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateByID   sync.RWMutex
	lockListByStatus sync.RWMutex
}

func (mock *suggestionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Suggestion, error) {
	if mock.GetByIDFunc == nil {
		panic("suggestionRepoMock.GetByIDFunc: method is nil but suggestionRepo.GetByID was just called")
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

func (mock *suggestionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *suggestionRepoMock) UpdateByID(ctx context.Context, id uuid.UUID, patch domain.SuggestionPatch) (*domain.Suggestion, error) {
	if mock.UpdateByIDFunc == nil {
		panic("suggestionRepoMock.UpdateByIDFunc: method is nil but suggestionRepo.UpdateByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Patch domain.SuggestionPatch
	}{Ctx: ctx, ID: id, Patch: patch}
	mock.lockUpdateByID.Lock()
	mock.calls.UpdateByID = append(mock.calls.UpdateByID, callInfo)
	mock.lockUpdateByID.Unlock()
	return mock.UpdateByIDFunc(ctx, id, patch)
}

func (mock *suggestionRepoMock) UpdateByIDCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Patch domain.SuggestionPatch
} {
	mock.lockUpdateByID.RLock()
	defer mock.lockUpdateByID.RUnlock()
	return mock.calls.UpdateByID
}

func (mock *suggestionRepoMock) ListByStatus(ctx context.Context, status domain.Status) ([]domain.Suggestion, error) {
	if mock.ListByStatusFunc == nil {
		panic("suggestionRepoMock.ListByStatusFunc: method is nil but suggestionRepo.ListByStatus was just called")
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

func (mock *suggestionRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.Status
} {
	mock.lockListByStatus.RLock()
	defer mock.lockListByStatus.RUnlock()
	return mock.calls.ListByStatus
}
