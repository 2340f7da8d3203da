package repository

import (
	"context"
	"errors"

	"github.com/corpkit/company-portal/internal/domain"
)

// ErrNotFound is returned when a lookup key has no entry.
var ErrNotFound = errors.New("not found")

// CredentialRepository defines read access to the credential table.
type CredentialRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Identity, error)
}

type credentialRepository struct {
	identities map[string]domain.Identity
}

// NewCredentialRepository returns an in-memory implementation backed by the seed.
func NewCredentialRepository(seed *Seed) CredentialRepository {
	identities := make(map[string]domain.Identity, len(seed.Identities))
	for _, identity := range seed.Identities {
		identities[identity.Email] = domain.Identity{
			Email:    identity.Email,
			Password: identity.Password,
			Role:     identity.Role,
			Name:     identity.Name,
		}
	}
	return &credentialRepository{identities: identities}
}

// GetByEmail matches email exactly; no case folding or trimming is applied.
func (r *credentialRepository) GetByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	identity, ok := r.identities[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &identity, nil
}
