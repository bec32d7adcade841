package session

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestTokenLifecycle(t *testing.T) {
	store := openTestStore(t)

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token, "fresh store holds no token")

	require.NoError(t, store.SaveToken("abc123"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	// Saving again replaces, not duplicates.
	require.NoError(t, store.SaveToken("def456"))
	token, err = store.Token()
	require.NoError(t, err)
	assert.Equal(t, "def456", token)

	require.NoError(t, store.ClearToken())
	token, err = store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestTranscriptAppendAndTrim(t *testing.T) {
	store := openTestStore(t)

	transcript, err := store.Transcript()
	require.NoError(t, err)
	assert.Nil(t, transcript)

	for i := 0; i < TranscriptLimit+3; i++ {
		transcript, err = store.AppendMessage(models.ChatMessage{
			Sender: models.ChatSenderUser,
			Text:   fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	require.Len(t, transcript, TranscriptLimit)
	assert.Equal(t, "message 3", transcript[0].Text, "oldest entries trimmed first")
	assert.Equal(t, fmt.Sprintf("message %d", TranscriptLimit+2), transcript[TranscriptLimit-1].Text)

	// The trimmed transcript is what got persisted.
	stored, err := store.Transcript()
	require.NoError(t, err)
	assert.Equal(t, transcript, stored)
}

func TestTranscriptClear(t *testing.T) {
	store := openTestStore(t)

	_, err := store.AppendMessage(models.ChatMessage{Sender: models.ChatSenderBot, Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, store.ClearTranscript())

	transcript, err := store.Transcript()
	require.NoError(t, err)
	assert.Nil(t, transcript)
}

func TestTranscriptSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := Open(path)
	require.NoError(t, err)
	_, err = store.AppendMessage(models.ChatMessage{Sender: models.ChatSenderUser, Text: "persist me"})
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("tok"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	transcript, err := reopened.Transcript()
	require.NoError(t, err)
	require.Len(t, transcript, 1)
	assert.Equal(t, "persist me", transcript[0].Text)

	token, err := reopened.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}
