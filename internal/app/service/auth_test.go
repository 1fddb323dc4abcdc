package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chlee-dev/gif-catalog/internal/app/service"
)

func TestUserIDFromTokenRoundTrip(t *testing.T) {
	auth := service.NewAuth()

	token, err := auth.BuildJWTString("alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", auth.UserIDFromToken(token))
}

func TestUserIDFromOpaqueToken(t *testing.T) {
	auth := service.NewAuth()

	// Anything that is not one of our tokens is used verbatim.
	assert.Equal(t, "some-opaque-caller-id", auth.UserIDFromToken("some-opaque-caller-id"))
}
