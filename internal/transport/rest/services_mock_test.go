package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/comment"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/dictionary"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/service/moderation"
)

var (
	_ dictionaryService = &dictionaryMock{}
	_ commentService    = &commentMock{}
	_ moderationService = &moderationMock{}
)

type dictionaryMock struct {
	SearchFunc             func(ctx context.Context, query string, limit int) ([]domain.Term, error)
	GetTermFunc            func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListApprovedFunc       func(ctx context.Context, limit, offset int) ([]domain.Term, error)
	SubmitTermFunc         func(ctx context.Context, input dictionary.SubmitTermInput) (*domain.Term, error)
	SuggestTranslationFunc func(ctx context.Context, input dictionary.SuggestTranslationInput) (*domain.Suggestion, error)
	SuggestEditFunc        func(ctx context.Context, input dictionary.SuggestEditInput) (*domain.Suggestion, error)
}

func (m *dictionaryMock) Search(ctx context.Context, query string, limit int) ([]domain.Term, error) {
	return m.SearchFunc(ctx, query, limit)
}

func (m *dictionaryMock) GetTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	return m.GetTermFunc(ctx, id)
}

func (m *dictionaryMock) ListApproved(ctx context.Context, limit, offset int) ([]domain.Term, error) {
	return m.ListApprovedFunc(ctx, limit, offset)
}

func (m *dictionaryMock) SubmitTerm(ctx context.Context, input dictionary.SubmitTermInput) (*domain.Term, error) {
	return m.SubmitTermFunc(ctx, input)
}

func (m *dictionaryMock) SuggestTranslation(ctx context.Context, input dictionary.SuggestTranslationInput) (*domain.Suggestion, error) {
	return m.SuggestTranslationFunc(ctx, input)
}

func (m *dictionaryMock) SuggestEdit(ctx context.Context, input dictionary.SuggestEditInput) (*domain.Suggestion, error) {
	return m.SuggestEditFunc(ctx, input)
}

type commentMock struct {
	AddCommentFunc   func(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	ListCommentsFunc func(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error)
}

func (m *commentMock) AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error) {
	return m.AddCommentFunc(ctx, input)
}

func (m *commentMock) ListComments(ctx context.Context, termID uuid.UUID) ([]domain.Comment, error) {
	return m.ListCommentsFunc(ctx, termID)
}

type moderationMock struct {
	PendingQueueFunc       func(ctx context.Context) (*moderation.Queue, error)
	ListTermsFunc          func(ctx context.Context, status *domain.Status, limit, offset int) ([]domain.Term, error)
	ApproveSuggestionFunc  func(ctx context.Context, id uuid.UUID) (*moderation.ApproveResult, error)
	RejectSuggestionFunc   func(ctx context.Context, input moderation.RejectSuggestionInput) (*domain.Suggestion, error)
	ApprovePendingTermFunc func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	RejectPendingTermFunc  func(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ApproveAllFunc         func(ctx context.Context, ids []uuid.UUID) (*moderation.BatchResult, error)
	EditPendingEntityFunc  func(ctx context.Context, ref moderation.EntityRef, form moderation.EditForm) (*moderation.EditResult, error)
}

func (m *moderationMock) PendingQueue(ctx context.Context) (*moderation.Queue, error) {
	return m.PendingQueueFunc(ctx)
}

func (m *moderationMock) ListTerms(ctx context.Context, status *domain.Status, limit, offset int) ([]domain.Term, error) {
	return m.ListTermsFunc(ctx, status, limit, offset)
}

func (m *moderationMock) ApproveSuggestion(ctx context.Context, id uuid.UUID) (*moderation.ApproveResult, error) {
	return m.ApproveSuggestionFunc(ctx, id)
}

func (m *moderationMock) RejectSuggestion(ctx context.Context, input moderation.RejectSuggestionInput) (*domain.Suggestion, error) {
	return m.RejectSuggestionFunc(ctx, input)
}

func (m *moderationMock) ApprovePendingTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	return m.ApprovePendingTermFunc(ctx, id)
}

func (m *moderationMock) RejectPendingTerm(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	return m.RejectPendingTermFunc(ctx, id)
}

func (m *moderationMock) ApproveAll(ctx context.Context, ids []uuid.UUID) (*moderation.BatchResult, error) {
	return m.ApproveAllFunc(ctx, ids)
}

func (m *moderationMock) EditPendingEntity(ctx context.Context, ref moderation.EntityRef, form moderation.EditForm) (*moderation.EditResult, error) {
	return m.EditPendingEntityFunc(ctx, ref, form)
}
