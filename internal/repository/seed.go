package repository

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/corpkit/company-portal/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the startup data set: the credential table and the log sets per role.
type Seed struct {
	Identities []seedIdentity          `yaml:"identities"`
	Logs       map[domain.Role]seedLog `yaml:"logs"`
}

type seedIdentity struct {
	Email    string      `yaml:"email"`
	Password string      `yaml:"password"`
	Role     domain.Role `yaml:"role"`
	Name     string      `yaml:"name"`
}

type seedLog struct {
	Message string            `yaml:"message"`
	Entries []domain.LogEntry `yaml:"entries"`
}

// LoadSeed reads the seed from path, or the embedded default when path is empty.
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
		data = raw
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates a YAML seed document.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

func (s *Seed) validate() error {
	seen := make(map[string]struct{}, len(s.Identities))
	for i, identity := range s.Identities {
		email := strings.TrimSpace(identity.Email)
		if email == "" {
			return fmt.Errorf("seed identity %d: email required", i)
		}
		if _, dup := seen[email]; dup {
			return fmt.Errorf("seed identity %s: duplicate email", email)
		}
		seen[email] = struct{}{}
		if identity.Password == "" {
			return fmt.Errorf("seed identity %s: password required", email)
		}
		if !identity.Role.Valid() {
			return fmt.Errorf("seed identity %s: unknown role %q", email, identity.Role)
		}
	}
	for role := range s.Logs {
		if !role.Valid() {
			return fmt.Errorf("seed logs: unknown role %q", role)
		}
	}
	return nil
}
