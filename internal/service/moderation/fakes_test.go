package moderation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

// memStore backs the repo mocks with an in-memory set of terms and
// suggestions so multi-step flows can be checked end to end.
type memStore struct {
	mu       sync.Mutex
	terms    map[uuid.UUID]domain.Term
	sugs     map[uuid.UUID]domain.Suggestion
	sugOrder []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		terms: make(map[uuid.UUID]domain.Term),
		sugs:  make(map[uuid.UUID]domain.Suggestion),
	}
}

func (m *memStore) putTerm(t domain.Term) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terms[t.ID] = t
}

func (m *memStore) putSuggestion(s domain.Suggestion) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sugs[s.ID]; !ok {
		m.sugOrder = append(m.sugOrder, s.ID)
	}
	m.sugs[s.ID] = s
}

func (m *memStore) term(id uuid.UUID) domain.Term {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.terms[id]
}

func (m *memStore) suggestion(id uuid.UUID) domain.Suggestion {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sugs[id]
}

func (m *memStore) termRepo() *termRepoMock {
	return &termRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Term, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.terms[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &t, nil
		},
		UpdateByIDFunc: func(_ context.Context, id uuid.UUID, patch domain.TermPatch) (*domain.Term, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			t, ok := m.terms[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			t = t.Apply(patch)
			m.terms[id] = t
			return &t, nil
		},
		ListByStatusFunc: func(_ context.Context, status domain.Status) ([]domain.Term, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []domain.Term
			for _, t := range m.terms {
				if t.Status == status {
					out = append(out, t)
				}
			}
			return out, nil
		},
		ListFunc: func(_ context.Context, filter domain.TermFilter) ([]domain.Term, error) {
			return nil, nil
		},
	}
}

func (m *memStore) suggestionRepo() *suggestionRepoMock {
	return &suggestionRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Suggestion, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			s, ok := m.sugs[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			return &s, nil
		},
		UpdateByIDFunc: func(_ context.Context, id uuid.UUID, patch domain.SuggestionPatch) (*domain.Suggestion, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			s, ok := m.sugs[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			s = s.Apply(patch)
			m.sugs[id] = s
			return &s, nil
		},
		ListByStatusFunc: func(_ context.Context, status domain.Status) ([]domain.Suggestion, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			out := []domain.Suggestion{}
			for _, id := range m.sugOrder {
				if s := m.sugs[id]; s.Status == status {
					out = append(out, s)
				}
			}
			return out, nil
		},
	}
}

type invalidatorFake struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *invalidatorFake) Invalidate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *invalidatorFake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recorderFake struct {
	mu        sync.Mutex
	decisions []string
	batches   []int
}

func (f *recorderFake) ModerationDecision(action, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decisions = append(f.decisions, action+":"+outcome)
}

func (f *recorderFake) ApproveAllBatch(size int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, size)
}

func (f *recorderFake) Decisions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.decisions...)
}
