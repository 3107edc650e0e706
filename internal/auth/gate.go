package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ai-arabic-dictionary/internal/domain"
)

type profileGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// Gate turns a bearer token into an Identity. The role comes from the
// profiles table; callers without a profile are plain users.
type Gate struct {
	verifier *Verifier
	profiles profileGetter
	log      *slog.Logger
}

// NewGate creates a Gate.
func NewGate(verifier *Verifier, profiles profileGetter, log *slog.Logger) *Gate {
	return &Gate{
		verifier: verifier,
		profiles: profiles,
		log:      log.With("component", "auth_gate"),
	}
}

// Authenticate verifies token and resolves the caller's role.
// Invalid tokens wrap domain.ErrUnauthorized.
func (g *Gate) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	userID, err := g.verifier.Verify(token)
	if err != nil {
		g.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	id := domain.Identity{UserID: userID, Role: domain.UserRoleUser}

	profile, err := g.profiles.GetByID(ctx, userID)
	switch {
	case err == nil:
		if profile.Role.IsValid() {
			id.Role = profile.Role
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return domain.Identity{}, fmt.Errorf("resolve role: %w", err)
	}

	return id, nil
}
