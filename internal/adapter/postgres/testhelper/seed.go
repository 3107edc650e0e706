package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

// SeedProfile inserts a profile with the given role and a generated email.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Profile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	name := gofakeit.Name()
	email := uuid.NewString()[:8] + "-" + gofakeit.Email()
	p := domain.Profile{
		ID:        uuid.New(),
		Email:     &email,
		FullName:  &name,
		Role:      role,
		CreatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, email, full_name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Email, p.FullName, string(p.Role), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedTerm inserts a term with the given status. English text is generated
// when empty. Arabic is left NULL when arabic is empty, which is only allowed
// for non-approved terms.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, english, arabic string, status domain.Status) domain.Term {
	t.Helper()

	if english == "" {
		english = gofakeit.BuzzWord() + " " + uuid.NewString()[:8]
	}

	desc := gofakeit.Sentence(8)
	term := domain.Term{
		ID:            uuid.New(),
		EnglishTerm:   english,
		DescriptionEn: &desc,
		Status:        status,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
	if arabic != "" {
		term.ArabicTerm = &arabic
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO terms (id, english_term, arabic_term, description_en, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		term.ID, term.EnglishTerm, term.ArabicTerm, term.DescriptionEn, string(term.Status), term.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm: %v", err)
	}

	return term
}

// SeedSuggestion inserts a pending suggestion proposing arabic for termID.
func SeedSuggestion(t *testing.T, pool *pgxpool.Pool, termID uuid.UUID, arabic string) domain.Suggestion {
	t.Helper()

	reason := gofakeit.Sentence(5)
	s := domain.Suggestion{
		ID:                  uuid.New(),
		TermID:              termID,
		SuggestedArabicTerm: &arabic,
		Reason:              &reason,
		Status:              domain.StatusPending,
		CreatedAt:           time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO suggestions (id, term_id, suggested_arabic_term, reason, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.TermID, s.SuggestedArabicTerm, s.Reason, string(s.Status), s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSuggestion: %v", err)
	}

	return s
}
