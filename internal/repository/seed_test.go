package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpkit/company-portal/internal/domain"
)

func TestLoadSeed_Default(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)

	assert.Len(t, seed.Identities, 3)
	require.Contains(t, seed.Logs, domain.RoleWorker)
	worker := seed.Logs[domain.RoleWorker]
	assert.Equal(t, "Worker tasks retrieved successfully", worker.Message)
	require.Len(t, worker.Entries, 3)
	assert.Equal(t, "pending", worker.Entries[0].Status)
	assert.Equal(t, "2024-12-10 08:00", worker.Entries[0].Timestamp)
	assert.Empty(t, seed.Logs[domain.RoleManager].Entries[0].Status)
}

func TestLoadSeed_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	doc := []byte(`
identities:
  - {email: a@b.c, password: pw, role: sde, name: A}
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Identities, 1)
	assert.Empty(t, seed.Logs)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseSeed_Validation(t *testing.T) {
	cases := map[string]string{
		"unknown role":    "identities:\n  - {email: a@b.c, password: pw, role: admin, name: A}\n",
		"duplicate email": "identities:\n  - {email: a@b.c, password: pw, role: sde, name: A}\n  - {email: a@b.c, password: x, role: sde, name: B}\n",
		"empty password":  "identities:\n  - {email: a@b.c, password: '', role: sde, name: A}\n",
		"empty email":     "identities:\n  - {email: '', password: pw, role: sde, name: A}\n",
		"unknown log key": "logs:\n  admin:\n    message: hi\n",
		"bad yaml":        "identities: [",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestCredentialRepository_ExactMatch(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	repo := NewCredentialRepository(seed)

	identity, err := repo.GetByEmail(context.Background(), "sde@company.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSDE, identity.Role)
	assert.Equal(t, "Alex Developer", identity.Name)

	for _, email := range []string{"SDE@company.com", " sde@company.com", "nobody@company.com"} {
		_, err = repo.GetByEmail(context.Background(), email)
		assert.ErrorIs(t, err, ErrNotFound, email)
	}
}

func TestLogRepository_ReturnsCopies(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)
	repo := NewLogRepository(seed)

	first, err := repo.ListByRole(context.Background(), domain.RoleSDE)
	require.NoError(t, err)
	first.Entries[0].Message = "mutated"

	second, err := repo.ListByRole(context.Background(), domain.RoleSDE)
	require.NoError(t, err)
	assert.Equal(t, "Production deploy successful - v2.3.1", second.Entries[0].Message)
}

func TestLogRepository_UnknownRole(t *testing.T) {
	repo := NewLogRepository(&Seed{})

	_, err := repo.ListByRole(context.Background(), domain.RoleManager)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepositories_HonorCancelledContext(t *testing.T) {
	seed, err := LoadSeed("")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err = NewCredentialRepository(seed).GetByEmail(ctx, "sde@company.com")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = NewLogRepository(seed).ListByRole(ctx, domain.RoleSDE)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
