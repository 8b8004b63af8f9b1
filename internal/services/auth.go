package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"mockadmin/internal/common"
	"mockadmin/internal/logging"
	"mockadmin/internal/models"
	"mockadmin/internal/storage"
	"mockadmin/internal/token"
)

// Auth holds the single persisted session pair. There is no expiry handling
// beyond token validity and no multi-session support: a new login silently
// replaces any prior session.
type Auth struct {
	storage  storage.Store
	delay    *Latency
	log      logging.Logger
	secret   []byte
	validity time.Duration
}

// NewAuth binds the session store to a storage medium and token parameters.
func NewAuth(st storage.Store, delay *Latency, secret string, validity time.Duration, log logging.Logger) *Auth {
	return &Auth{
		storage:  st,
		delay:    delay,
		log:      log,
		secret:   []byte(secret),
		validity: validity,
	}
}

// Login checks the credentials against the fixed demo rule, mints a fresh
// opaque token, and persists the token/user pair, overwriting any previous
// session.
func (a *Auth) Login(ctx context.Context, username, password string) (*models.Session, error) {
	a.delay.Wait()

	if !acceptLogin(username, password) {
		a.log.Info(ctx, "login rejected", "username", username)
		return nil, common.ErrorInvalidLoginPassword
	}

	tok, err := token.Generate(username, a.secret, a.validity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	sess := models.Session{
		Token: tok,
		User: models.User{
			ID:        1,
			Username:  username,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		},
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}
	if err := a.storage.Set(ctx, sessionKey, data); err != nil {
		a.log.Error(ctx, "failed to save session", "error", err.Error())
		return nil, err
	}

	a.log.Info(ctx, "login succeeded", "username", username)
	return &sess, nil
}

// Logout clears the persisted pair. Logging out with no session is not an
// error.
func (a *Auth) Logout(ctx context.Context) error {
	a.delay.Wait()

	if err := a.storage.Delete(ctx, sessionKey); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err.Error())
		return err
	}

	a.log.Info(ctx, "logged out")
	return nil
}

// GetSession returns the persisted pair, or (nil, nil) when logged out.
// A blob that cannot be decoded or whose token no longer verifies behaves
// like an absent session.
func (a *Auth) GetSession(ctx context.Context) (*models.Session, error) {
	a.delay.Wait()

	data, err := a.storage.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		a.log.Warn(ctx, "discarding unreadable session blob")
		return nil, nil
	}

	if _, err := token.Verify(sess.Token, a.secret); err != nil {
		a.log.Warn(ctx, "discarding session with unverifiable token")
		return nil, nil
	}

	return &sess, nil
}

// acceptLogin is the fixed demo acceptance rule: the admin credentials, or
// any username longer than two characters.
func acceptLogin(username, password string) bool {
	if username == "admin" && password == "123456" {
		return true
	}
	return utf8.RuneCountInString(username) > 2
}
