package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/corpkit/company-portal/internal/auth"
	"github.com/corpkit/company-portal/internal/config"
	"github.com/corpkit/company-portal/internal/domain"
	"github.com/corpkit/company-portal/internal/events"
	"github.com/corpkit/company-portal/internal/repository"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates the login flow.
type AuthService struct {
	credentials repository.CredentialRepository
	dispatcher  events.Dispatcher
	tokenMgr    *auth.TokenManager
	now         func() time.Time
}

// AuthDependencies encapsulates collaborators of the auth service.
type AuthDependencies struct {
	CredentialRepo repository.CredentialRepository
	// Dispatcher is optional; login events are dropped when nil.
	Dispatcher   events.Dispatcher
	TokenOptions []auth.TokenOption
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		credentials: deps.CredentialRepo,
		dispatcher:  deps.Dispatcher,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL(), deps.TokenOptions...),
		now:         time.Now,
	}
}

// Login authenticates an identity and returns a freshly signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Identity, string, time.Time, error) {
	identity, err := s.credentials.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.publish(ctx, events.EventLoginFailed, email, "", events.LoginFailedPayload{Reason: "unknown email"})
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !auth.ComparePassword(identity.Password, password) {
		s.publish(ctx, events.EventLoginFailed, email, identity.Role, events.LoginFailedPayload{Reason: "password mismatch"})
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.tokenMgr.Issue(identity)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	s.publish(ctx, events.EventLoginSucceeded, identity.Email, identity.Role, nil)
	return identity, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// publish emits an audit event. Handler failures never affect the login outcome.
func (s *AuthService) publish(ctx context.Context, eventType events.EventType, email string, role domain.Role, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Email:     email,
		Role:      role,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	})
}
