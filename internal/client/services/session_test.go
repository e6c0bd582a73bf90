package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/pixelmart/internal/client/repositories/session"
	"github.com/dmitrijs2005/pixelmart/internal/logging"
)

func TestSessionService_SetAndHydrate(t *testing.T) {
	ctx := context.Background()
	repo := newMemSessionRepo()
	s := NewSessionService(repo, logging.NewNopLogger())

	user := &models.UserSummary{ID: "u1", Name: "Alice", Email: "a@b.c", Role: models.RoleUser}
	s.Set(ctx, "tok-1", user)
	require.Equal(t, "tok-1", s.Token())
	require.True(t, s.IsAuthenticated())

	// A new service over the same storage hydrates the same session.
	s2 := NewSessionService(repo, logging.NewNopLogger())
	s2.Hydrate(ctx)
	require.Equal(t, "tok-1", s2.Token())
	got := s2.CurrentUser()
	require.NotNil(t, got)
	require.Equal(t, "Alice", got.Name)
}

func TestSessionService_UserWithoutTokenIsNotTrusted(t *testing.T) {
	ctx := context.Background()
	repo := newMemSessionRepo()
	require.NoError(t, repo.Set(ctx, keyUser, `{"id":"u1","name":"Ghost"}`))

	s := NewSessionService(repo, logging.NewNopLogger())
	s.Hydrate(ctx)
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.CurrentUser())
}

func TestSessionService_ClearIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewSessionService(newMemSessionRepo(), logging.NewNopLogger())

	s.Set(ctx, "tok", &models.UserSummary{ID: "u1"})
	s.Clear(ctx)
	s.Clear(ctx)
	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.CurrentUser())
}

func TestSessionService_ClientIDStable(t *testing.T) {
	repo := newMemSessionRepo()
	s := NewSessionService(repo, logging.NewNopLogger())

	id := s.ClientID()
	require.NotEmpty(t, id)
	require.Equal(t, id, s.ClientID())

	s2 := NewSessionService(repo, logging.NewNopLogger())
	require.Equal(t, id, s2.ClientID(), "client id must survive restarts")
}

func TestSessionService_TokenPersistedBeforeUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Expectations are ordered: the token write must come first so a
	// crash in between never leaves a trusted user without a token.
	mock.ExpectExec("INSERT INTO session").
		WithArgs(keyAuthToken, "tok-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO session").
		WithArgs(keyUser, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	s := NewSessionService(sessionrepo.NewSQLiteRepository(db), logging.NewNopLogger())
	s.Set(context.Background(), "tok-1", &models.UserSummary{ID: "u1"})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionService_StorageFailureDegradesToMemory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("storage disabled")
	mock.ExpectQuery("SELECT value FROM session").WillReturnError(boom)

	ctx := context.Background()
	s := NewSessionService(sessionrepo.NewSQLiteRepository(db), logging.NewNopLogger())
	s.Hydrate(ctx)

	// No session, but also no panic or error surfaced to callers; the
	// in-memory session still works for this process.
	require.False(t, s.IsAuthenticated())
	s.Set(ctx, "tok-mem", &models.UserSummary{ID: "u1"})
	require.Equal(t, "tok-mem", s.Token())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionService_TokenExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewSessionService(newMemSessionRepo(), logging.NewNopLogger())

	_, ok := s.TokenExpiry()
	require.False(t, ok, "no token, no expiry")

	s.Set(ctx, "not-a-jwt", &models.UserSummary{ID: "u1"})
	_, ok = s.TokenExpiry()
	require.False(t, ok, "opaque tokens have no readable expiry")

	// Unsigned JWT with exp=4102444800 (2100-01-01).
	s.Set(ctx, "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1MSIsImV4cCI6NDEwMjQ0NDgwMH0.", &models.UserSummary{ID: "u1"})
	exp, ok := s.TokenExpiry()
	require.True(t, ok)
	require.Equal(t, int64(4102444800), exp.Unix())
}
