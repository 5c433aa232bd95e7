// Package services contains server-side business logic. AuthService handles
// registration, login and the lifecycle of server-side sessions.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/dmitrijs2005/notekeeper/internal/cryptox"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
	"github.com/dmitrijs2005/notekeeper/internal/server/auth"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

// sessionIDSize is the number of random bytes in a session id (hex-encoded).
const sessionIDSize = 32

// IssuedSession is what the client receives after a successful login: the
// signed cookie value and the moment it stops being accepted.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

type AuthService struct {
	users            users.Repository
	sessions         sessions.Repository
	secretKey        []byte
	sessionValidity  time.Duration
	logger           logging.Logger
	dummyDigestOnce  sync.Once
	dummyDigestValue string
}

func NewAuthService(u users.Repository, s sessions.Repository, secretKey string, validity time.Duration, logger logging.Logger) *AuthService {
	return &AuthService{
		users:           u,
		sessions:        s,
		secretKey:       []byte(secretKey),
		sessionValidity: validity,
		logger:          logger.With("module", "auth"),
	}
}

// Register creates an account and logs it in. A taken email yields
// common.ErrorAlreadyExists. If the account is stored but no session can be
// opened, the user is returned with a nil session and the caller has to log
// in separately.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, *IssuedSession, error) {
	digest, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.users.Create(ctx, &models.User{Email: email, PasswordHash: digest})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, nil, common.ErrorAlreadyExists
		}
		return nil, nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", u.ID)

	sess, err := s.startSession(ctx, u.ID)
	if err != nil {
		s.logger.Warn(ctx, "session not started after registration", "user_id", u.ID, "error", err)
		return u, nil, nil
	}
	return u, sess, nil
}

// Login verifies the credentials and opens a new session. An unknown email
// and a wrong password both yield common.ErrorInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *IssuedSession, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Hash anyway to avoid leaking existence through timing.
			cryptox.VerifyPassword(password, s.dummyDigest())
			return nil, nil, common.ErrorInvalidCredentials
		}
		return nil, nil, fmt.Errorf("error searching user: %w", err)
	}

	if !cryptox.VerifyPassword(password, u.PasswordHash) {
		return nil, nil, common.ErrorInvalidCredentials
	}

	sess, err := s.startSession(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}
	return u, sess, nil
}

// Authenticate resolves a cookie value to its user. A bad signature, an
// unknown or expired session, or a vanished user all yield
// common.ErrorUnauthorized; storage failures are returned wrapped.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	sessionID, err := auth.GetSessionIDFromToken(token, s.secretKey)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	sess, err := s.sessions.Find(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching session: %w", err)
	}

	if sess.Expired(timex.Now()) {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			s.logger.Warn(ctx, "error deleting expired session", "error", err)
		}
		return nil, common.ErrorUnauthorized
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}
	return u, nil
}

// Logout revokes the session behind token. Unknown, expired or malformed
// tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	sessionID, err := auth.GetSessionIDFromToken(token, s.secretKey)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// SweepExpired removes sessions that have already expired.
func (s *AuthService) SweepExpired(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpired(ctx, timex.Now())
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	return n, nil
}

// --- helpers below ---

func (s *AuthService) startSession(ctx context.Context, userID int64) (*IssuedSession, error) {
	id, err := common.MakeRandHexString(sessionIDSize)
	if err != nil {
		return nil, common.ErrorInternal
	}

	now := timex.Now()
	sess := &models.Session{
		Token:     id,
		UserID:    userID,
		ExpiresAt: now.Add(s.sessionValidity),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	token, err := auth.GenerateToken(id, s.secretKey, sess.ExpiresAt)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &IssuedSession{Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

func (s *AuthService) dummyDigest() string {
	s.dummyDigestOnce.Do(func() {
		d, err := cryptox.HashPassword(string(common.GenerateRandByteArray(16)))
		if err == nil {
			s.dummyDigestValue = d
		}
	})
	return s.dummyDigestValue
}
