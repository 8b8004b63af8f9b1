package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockadmin/internal/common"
	"mockadmin/internal/logging"
	"mockadmin/internal/storage"
)

func newAuthService(t *testing.T) (*Auth, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	a := NewAuth(mem, NewLatency(0), "test-secret", time.Hour, logging.NewDiscard())
	return a, mem
}

func TestLogin_AdminCredentials(t *testing.T) {
	a, _ := newAuthService(t)

	sess, err := a.Login(context.Background(), "admin", "123456")
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "admin", sess.User.Username)
	assert.True(t, sess.User.Active)
}

func TestLogin_ShortUsername_Rejected(t *testing.T) {
	a, _ := newAuthService(t)

	_, err := a.Login(context.Background(), "ab", "whatever")
	assert.ErrorIs(t, err, common.ErrorInvalidLoginPassword)
}

func TestLogin_ReplacesPriorSession(t *testing.T) {
	a, _ := newAuthService(t)
	ctx := context.Background()

	first, err := a.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	second, err := a.Login(ctx, "carol", "pw")
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	sess, err := a.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "carol", sess.User.Username)
}

func TestGetSession_LoggedOut_ReturnsNil(t *testing.T) {
	a, _ := newAuthService(t)
	ctx := context.Background()

	sess, err := a.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	_, err = a.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx))

	sess, err = a.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLogout_WithoutSession_IsNoError(t *testing.T) {
	a, _ := newAuthService(t)
	assert.NoError(t, a.Logout(context.Background()))
}

func TestGetSession_TamperedBlob_BehavesLoggedOut(t *testing.T) {
	a, mem := newAuthService(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	require.NoError(t, mem.Set(ctx, sessionKey, []byte(`{"token":"forged","user":{"id":1}}`)))

	sess, err := a.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)

	require.NoError(t, mem.Set(ctx, sessionKey, []byte(`{ not json`)))

	sess, err = a.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
