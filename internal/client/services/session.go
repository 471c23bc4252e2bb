// Package services contains the application services of the QuizBoard
// client. This file holds the persisted session: token, expiry and the
// cached current user.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/client/repositories/storage"
	"github.com/dmitrijs2005/quizboard/internal/common"
	"github.com/dmitrijs2005/quizboard/internal/dbx"
)

// Persisted storage keys.
const (
	KeyToken       = "token"
	KeyTokenExp    = "tokenExp"
	KeyCurrentUser = "currentUser"
)

// SessionStore is the persisted session.
//
// Contract:
//   - Valid: a token is stored and its expiry is after the current time.
//   - Token: the stored token, "" when there is none.
//   - Save: persist token and expiry together.
//   - CurrentUser / SetCurrentUser: the cached user snapshot.
//   - Clear: drop all session keys.
type SessionStore interface {
	Valid(ctx context.Context) (bool, error)
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string, expiresAt time.Time) error
	CurrentUser(ctx context.Context) (*models.User, error)
	SetCurrentUser(ctx context.Context, u *models.User) error
	Clear(ctx context.Context) error
}

type sessionStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSessionStore binds the session to the local database. now is the clock
// used for expiry checks; nil means time.Now.
func NewSessionStore(db *sql.DB, now func() time.Time) SessionStore {
	if now == nil {
		now = time.Now
	}
	return &sessionStore{db: db, now: now}
}

func (s *sessionStore) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

func (s *sessionStore) Token(ctx context.Context) (string, error) {
	token, _, err := s.repo().Get(ctx, KeyToken)
	return token, err
}

func (s *sessionStore) expiresAt(ctx context.Context) (time.Time, error) {
	raw, ok, err := s.repo().Get(ctx, KeyTokenExp)
	if err != nil || !ok {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", common.ErrInvalidTokenExp, raw)
	}
	return t, nil
}

// Valid mirrors the start-up check: token present and expiry in the future.
// A missing or unreadable expiry counts as expired.
func (s *sessionStore) Valid(ctx context.Context) (bool, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}

	exp, err := s.expiresAt(ctx)
	if err != nil {
		if errors.Is(err, common.ErrInvalidTokenExp) {
			return false, nil
		}
		return false, err
	}
	return exp.After(s.now()), nil
}

func (s *sessionStore) Save(ctx context.Context, token string, expiresAt time.Time) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyTokenExp, expiresAt.UTC().Format(time.RFC3339))
	})
}

func (s *sessionStore) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.repo().Get(ctx, KeyCurrentUser)
	if err != nil || !ok {
		return nil, err
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode cached user: %w", err)
	}
	return &u, nil
}

func (s *sessionStore) SetCurrentUser(ctx context.Context, u *models.User) error {
	if u == nil {
		return s.repo().Delete(ctx, KeyCurrentUser)
	}
	snapshot := *u
	snapshot.Password = ""
	b, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	return s.repo().Set(ctx, KeyCurrentUser, string(b))
}

func (s *sessionStore) Clear(ctx context.Context) error {
	return s.repo().Delete(ctx, KeyToken, KeyTokenExp, KeyCurrentUser)
}
