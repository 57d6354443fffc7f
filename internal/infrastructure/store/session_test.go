package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SessionStoreTestSuite struct {
	suite.Suite
	path  string
	store *SessionStore
}

func (s *SessionStoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "session.db")
	store, err := Open(s.path)
	require.NoError(s.T(), err, "failed to open session store")
	s.store = store
}

func (s *SessionStoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.store.Close()
	}
}

func (s *SessionStoreTestSuite) TestStartsEmpty() {
	assert.Empty(s.T(), s.store.Token())
	assert.Empty(s.T(), s.store.ManagedClientID())
}

func (s *SessionStoreTestSuite) TestTokenRoundTrip() {
	require.NoError(s.T(), s.store.SetToken("tok123"))
	assert.Equal(s.T(), "tok123", s.store.Token())

	require.NoError(s.T(), s.store.SetToken("tok456"))
	assert.Equal(s.T(), "tok456", s.store.Token(), "second write should overwrite")
}

func (s *SessionStoreTestSuite) TestSurvivesReopen() {
	require.NoError(s.T(), s.store.SetToken("tok123"))
	require.NoError(s.T(), s.store.SetManagedClientID("42"))
	require.NoError(s.T(), s.store.Close())

	reopened, err := Open(s.path)
	require.NoError(s.T(), err)
	defer reopened.Close()

	assert.Equal(s.T(), "tok123", reopened.Token())
	assert.Equal(s.T(), "42", reopened.ManagedClientID())
}

func (s *SessionStoreTestSuite) TestClearWipesBothEntries() {
	require.NoError(s.T(), s.store.SetToken("tok123"))
	require.NoError(s.T(), s.store.SetManagedClientID("42"))

	require.NoError(s.T(), s.store.Clear())

	assert.Empty(s.T(), s.store.Token())
	assert.Empty(s.T(), s.store.ManagedClientID())

	// And it stays cleared on disk.
	require.NoError(s.T(), s.store.Close())
	reopened, err := Open(s.path)
	require.NoError(s.T(), err)
	defer reopened.Close()
	assert.Empty(s.T(), reopened.Token())
}

func (s *SessionStoreTestSuite) TestClearManagedClientKeepsToken() {
	require.NoError(s.T(), s.store.SetToken("tok123"))
	require.NoError(s.T(), s.store.SetManagedClientID("42"))

	require.NoError(s.T(), s.store.ClearManagedClientID())

	assert.Empty(s.T(), s.store.ManagedClientID())
	assert.Equal(s.T(), "tok123", s.store.Token(), "stopping impersonation must not log out")
}

func TestSessionStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreTestSuite))
}
