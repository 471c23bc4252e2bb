package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/client/repositories/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SaveMakesSessionValid(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStore(setupDB(t), func() time.Time { return now })

	valid, err := s.Valid(ctx)
	require.NoError(t, err)
	assert.False(t, valid)

	require.NoError(t, s.Save(ctx, "abc", now.Add(time.Minute)))

	valid, err = s.Valid(ctx)
	require.NoError(t, err)
	assert.True(t, valid)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	exp := storedExpiry(t, s)
	assert.True(t, exp.Equal(now.Add(time.Minute)))
}

func TestSessionStore_Valid_ExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{name: "future", exp: now.Add(time.Second), want: true},
		{name: "equal to now", exp: now, want: false},
		{name: "past", exp: now.Add(-time.Hour), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSessionStore(setupDB(t), func() time.Time { return now })
			require.NoError(t, s.Save(ctx, "tok", tt.exp))

			got, err := s.Valid(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionStore_Valid_MissingOrBrokenExpiry(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSessionStore(db, nil)
	repo := storage.NewSQLiteRepository(db)

	require.NoError(t, repo.Set(ctx, KeyToken, "tok"))
	valid, err := s.Valid(ctx)
	require.NoError(t, err)
	assert.False(t, valid, "token without expiry")

	require.NoError(t, repo.Set(ctx, KeyTokenExp, "someday"))
	valid, err = s.Valid(ctx)
	require.NoError(t, err)
	assert.False(t, valid, "unparseable expiry")
}

func TestSessionStore_CurrentUser_StripsPassword(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(setupDB(t), nil)

	u, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	in := &models.User{UserID: 7, Email: "ada@example.org", FirstName: "Ada", LastName: "Lovelace", Password: "secret"}
	require.NoError(t, s.SetCurrentUser(ctx, in))

	got, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "Ada Lovelace", got.FullName())
	assert.Empty(t, got.Password)
	assert.Equal(t, "secret", in.Password, "caller's value is untouched")

	require.NoError(t, s.SetCurrentUser(ctx, nil))
	got, err = s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSessionStore(db, nil)

	require.NoError(t, s.Save(ctx, "tok", time.Now().Add(time.Hour)))
	require.NoError(t, s.SetCurrentUser(ctx, &models.User{UserID: 1}))
	require.NoError(t, storage.NewSQLiteRepository(db).Set(ctx, "theme", "dark"))

	require.NoError(t, s.Clear(ctx))

	repo := storage.NewSQLiteRepository(db)
	for _, key := range []string{KeyToken, KeyTokenExp, KeyCurrentUser} {
		_, ok, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, key)
	}
	v, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	valid, err := s.Valid(ctx)
	require.NoError(t, err)
	assert.False(t, valid)
}
