package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/client/client"
	"github.com/dmitrijs2005/quizboard/internal/client/fakeapi"
	"github.com/dmitrijs2005/quizboard/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "quizboard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type testEnv struct {
	api       *fakeapi.Server
	client    *client.HTTPClient
	session   SessionStore
	clock     *fixedClock
	auth      AuthService
	questions QuestionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	api := fakeapi.New()
	t.Cleanup(api.Close)

	c, err := client.NewHTTPClient(api.URL, logging.Discard())
	require.NoError(t, err)

	clock := &fixedClock{t: time.Now().UTC().Truncate(time.Second)}
	session := NewSessionStore(setupDB(t), clock.Now)

	auth := NewAuthService(c, session, logging.Discard(), time.Hour).(*authService)
	auth.now = clock.Now

	return &testEnv{
		api:       api,
		client:    c,
		session:   session,
		clock:     clock,
		auth:      auth,
		questions: NewQuestionService(c, session, logging.Discard()),
	}
}

func storedExpiry(t *testing.T, s SessionStore) time.Time {
	t.Helper()
	exp, err := s.(*sessionStore).expiresAt(context.Background())
	require.NoError(t, err)
	return exp
}
