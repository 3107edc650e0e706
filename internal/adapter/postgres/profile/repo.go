// Package profile implements the profile store that carries user roles.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/adapter/postgres"
	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

const table = "profiles"

var columns = []string{"id", "email", "full_name", "role", "created_at", "updated_at"}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new profile repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// GetByID returns the profile for an identity-provider subject, or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get profile: %w", err)
	}

	var p domain.Profile
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &p, nil
}

// SetRoleByEmail changes the role of the profile with the given email.
// It reports false when no profile matched or the role was already set.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (bool, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("role", role.String()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"lower(email)": strings.ToLower(strings.TrimSpace(email))}).
		Where(sq.NotEq{"role": role.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build set role: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("set role for %s: %w", email, err)
	}
	return tag.RowsAffected() > 0, nil
}
