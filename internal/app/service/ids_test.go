package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordID(t *testing.T) {
	assert.Equal(t, "my-id", NewRecordID("my-id"))

	generated := NewRecordID("")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	assert.NotEqual(t, generated, NewRecordID(""))
}

func TestAssetFilenames(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	primary, thumb := AssetFilenames("alice", "abc", now)
	assert.Equal(t, "alice_abc_20240309_140506.gif", primary)
	assert.Equal(t, "alice_abc_20240309_140506_thumb.gif", thumb)
}
