package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/client/client"
	"github.com/dmitrijs2005/quizboard/internal/client/models"
	"github.com/dmitrijs2005/quizboard/internal/common"
	"github.com/dmitrijs2005/quizboard/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// AuthService defines account and session operations for the CLI.
//
// Contract:
//   - Register: create an account; the password must be typed twice alike.
//   - Login: exchange email/password for a bearer token and persist it.
//   - Restore: start-up check; loads the current user for a valid session.
//   - Logout: drop the persisted session.
//   - UpdateUser / DeleteUser: manage the logged-in account.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, form models.UserForm) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) error
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, form models.UserForm) (*models.User, error)
	DeleteUser(ctx context.Context) (string, error)
}

type authService struct {
	client     client.Client
	session    SessionStore
	log        logging.Logger
	defaultTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs an AuthService. defaultTTL is the token lifetime
// assumed when neither the login response nor the token states an expiry.
func NewAuthService(c client.Client, session SessionStore, log logging.Logger, defaultTTL time.Duration) AuthService {
	return &authService{client: c, session: session, log: log.With("component", "auth"), defaultTTL: defaultTTL, now: time.Now}
}

func (a *authService) Register(ctx context.Context, form models.UserForm) (*models.User, error) {
	if !form.PasswordsMatch() {
		return nil, common.ErrPasswordMismatch
	}
	return a.client.Register(ctx, form)
}

// Login authenticates with basic auth and persists the token with its
// resolved expiry. The caller wipes password.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	tok, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	if raw := tok.Expiration.Unrecognised; raw != "" {
		a.log.Warn(ctx, "unrecognised token expiration, falling back", "token_expiration", raw)
	}
	exp := resolveExpiry(tok.Token, tok.Expiration.Time, a.now(), a.defaultTTL)
	if err := a.session.Save(ctx, tok.Token, exp); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	a.log.Info(ctx, "logged in", "email", email, "expires_at", exp)
	return nil
}

// Restore checks the persisted session. An absent or expired session yields
// common.ErrNotLoggedIn / common.ErrSessionExpired. A valid one is confirmed
// with GetMe, whose result is cached; if the server rejects the token the
// session is cleared and the API error returned.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	token, err := a.session.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, common.ErrNotLoggedIn
	}

	valid, err := a.session.Valid(ctx)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, common.ErrSessionExpired
	}

	u, err := a.client.GetMe(ctx, token)
	if err != nil {
		a.log.Warn(ctx, "stored session rejected", "error", err)
		if errors.Is(err, client.ErrUnauthorized) {
			if cerr := a.session.Clear(ctx); cerr != nil {
				return nil, cerr
			}
		}
		return nil, err
	}

	if err := a.session.SetCurrentUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return a.session.CurrentUser(ctx)
}

// UpdateUser sends the profile changes and refreshes the cached user.
func (a *authService) UpdateUser(ctx context.Context, form models.UserForm) (*models.User, error) {
	if !form.PasswordsMatch() {
		return nil, common.ErrPasswordMismatch
	}
	token, err := a.session.Token(ctx)
	if err != nil {
		return nil, err
	}

	u, err := a.client.UpdateUser(ctx, token, form)
	if err != nil {
		return nil, err
	}
	if err := a.session.SetCurrentUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes the account and, on success, the local session.
func (a *authService) DeleteUser(ctx context.Context) (string, error) {
	token, err := a.session.Token(ctx)
	if err != nil {
		return "", err
	}

	msg, err := a.client.DeleteUser(ctx, token)
	if err != nil {
		return "", err
	}
	if err := a.session.Clear(ctx); err != nil {
		return "", err
	}
	return msg, nil
}

// resolveExpiry picks the token expiry: the server-sent value, else the JWT
// exp claim, else now+ttl.
func resolveExpiry(token string, sent time.Time, now time.Time, ttl time.Duration) time.Time {
	if !sent.IsZero() {
		return sent
	}
	if exp, ok := jwtExpiry(token); ok {
		return exp
	}
	return now.Add(ttl)
}

// jwtExpiry reads the exp claim without verifying the signature.
func jwtExpiry(token string) (time.Time, bool) {
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
