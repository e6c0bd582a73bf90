// Package services contains the application services of the Pixelmart
// client: the session store, the cart reconciler, the favorites and
// downloads trackers and the thin catalog/vendor/admin views.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	"github.com/dmitrijs2005/pixelmart/internal/client/repositories/session"
	"github.com/dmitrijs2005/pixelmart/internal/common"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

// Storage keys. The names match what the original web client kept in
// localStorage so a backend inspecting X-Client-Id sees stable values.
const (
	keyAuthToken = "authToken"
	keyUser      = "user"
	keyClientID  = "clientId"
)

// SessionService owns the session: the persisted bearer token and the
// cached user summary. Other components read the session through it and
// never mutate it directly.
//
// Storage failures never propagate to callers: the service degrades to an
// in-memory-only session for the rest of the process and logs the problem.
type SessionService struct {
	repo   session.Repository
	logger logging.Logger

	mu       sync.RWMutex
	token    string
	user     *models.UserSummary
	clientID string
	memOnly  bool
}

func NewSessionService(repo session.Repository, logger logging.Logger) *SessionService {
	return &SessionService{repo: repo, logger: logger}
}

// Hydrate loads the persisted session into memory. Call once at startup.
// A missing session is not an error; a broken store flips the service
// into memory-only mode.
func (s *SessionService) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.repo.Get(ctx, keyAuthToken)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		s.logger.Warn(ctx, "session storage unavailable, using in-memory session", "error", err)
		s.memOnly = true
		return
	}
	s.token = token

	// A cached user without a token is never trusted.
	if s.token == "" {
		return
	}

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "failed to read cached user", "error", err)
		}
		return
	}
	var u models.UserSummary
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn(ctx, "cached user is malformed, ignoring", "error", err)
		return
	}
	s.user = &u
}

// Token returns the persisted bearer token, or "" for an anonymous
// session. Implements api.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ClientID returns the stable client installation id, generating and
// persisting one on first use. Implements api.TokenSource.
func (s *SessionService) ClientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.clientID != "" {
		return s.clientID
	}

	ctx := context.Background()
	if !s.memOnly {
		if id, err := s.repo.Get(ctx, keyClientID); err == nil && id != "" {
			s.clientID = id
			return s.clientID
		}
	}
	s.clientID = uuid.NewString()
	if !s.memOnly {
		if err := s.repo.Set(ctx, keyClientID, s.clientID); err != nil {
			s.logger.Warn(ctx, "failed to persist client id", "error", err)
		}
	}
	return s.clientID
}

// CurrentUser returns the cached user summary without validating it
// against the server. Nil for anonymous sessions.
func (s *SessionService) CurrentUser() *models.UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionService) IsAuthenticated() bool {
	return s.Token() != ""
}

// Set replaces the session. The token is persisted before the user so a
// crash in between can never leave a trusted user without a token.
func (s *SessionService) Set(ctx context.Context, token string, user *models.UserSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user

	if s.memOnly {
		return
	}
	if err := s.repo.Set(ctx, keyAuthToken, token); err != nil {
		s.logger.Warn(ctx, "failed to persist token, session is in-memory only", "error", err)
		s.memOnly = true
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		s.logger.Warn(ctx, "failed to encode user for storage", "error", err)
		return
	}
	if err := s.repo.Set(ctx, keyUser, string(data)); err != nil {
		s.logger.Warn(ctx, "failed to persist user", "error", err)
	}
}

// Clear destroys the session. Idempotent; the client id survives.
func (s *SessionService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if s.memOnly {
		return
	}
	if err := s.repo.Delete(ctx, keyAuthToken); err != nil {
		s.logger.Warn(ctx, "failed to delete stored token", "error", err)
	}
	if err := s.repo.Delete(ctx, keyUser); err != nil {
		s.logger.Warn(ctx, "failed to delete stored user", "error", err)
	}
}

// TokenExpiry peeks at the bearer token's exp claim without verifying the
// signature. Expiry is the backend's call; this is display only.
func (s *SessionService) TokenExpiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
