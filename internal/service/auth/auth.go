// internal/service/auth/auth_service.go
package auth

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"rentsmart-service/internal/domain/auth"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/token"
	"rentsmart-service/internal/repository/redisstore"
)

// DemoPassword is the single secret accepted for every identity in the
// fixed demo table. The gate still performs an exact, case-sensitive match
// on both email and password; hardening beyond that is a non-goal.
const DemoPassword = "password"

type identity struct {
	user auth.User
	hash []byte
}

// AuthService resolves the session gate: Login moves an unauthenticated
// caller to authenticated and persists the identity; Logout clears it;
// Resolve answers who a presented token belongs to, or that nobody does.
type AuthService struct {
	store      *redisstore.Store
	tokens     *token.Manager
	sessionTTL time.Duration
	identities []identity
	logger     *zap.Logger
}

func NewAuthService(store *redisstore.Store, tokens *token.Manager, sessionTTL time.Duration, logger *zap.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	var identities []identity
	for _, u := range redisstore.SeedDataset().Users {
		identities = append(identities, identity{user: u, hash: hash})
	}

	return &AuthService{
		store:      store,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		identities: identities,
		logger:     logger,
	}, nil
}

// Login checks credentials against the fixed identity table. Both sides are
// exact and case-sensitive. A mismatch is the expected rejection
// ErrInvalidCredentials, never a fault; on success the identity is persisted
// under the new session's key and a signed token returned.
func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	var found *auth.User
	var hash []byte
	for _, id := range s.identities {
		if id.user.Email == req.Email {
			u := id.user
			found = &u
			hash = id.hash
			break
		}
	}
	if found == nil {
		return nil, xerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(req.Password)); err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}

	signed, jti, err := s.tokens.Generate(found.ID, string(found.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	found.LastLogin = time.Now().UTC()
	if err := s.store.PutSession(ctx, jti, *found, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("login successful",
		zap.String("user_id", found.ID),
		zap.String("role", string(found.Role)),
	)

	return &auth.LoginResponse{Token: signed, User: *found}, nil
}

// Logout clears the persisted session; the caller is unauthenticated
// afterwards. Unknown sessions are a no-op.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	if err := s.store.DeleteSession(ctx, jti); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("logout", zap.String("jti", jti))
	return nil
}

// Resolve parses a presented token and loads its persisted session. A valid
// token whose session was cleared resolves to ErrSessionExpired.
func (s *AuthService) Resolve(ctx context.Context, tokenStr string) (*auth.User, string, error) {
	claims, err := s.tokens.Parse(tokenStr)
	if err != nil {
		return nil, "", xerrors.ErrUnauthorized
	}
	user, err := s.store.Session(ctx, claims.ID)
	if err != nil {
		return nil, "", fmt.Errorf("session lookup: %w", err)
	}
	if user == nil {
		return nil, "", xerrors.ErrSessionExpired
	}
	return user, claims.ID, nil
}
