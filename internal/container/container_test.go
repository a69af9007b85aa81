package container

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaienhofen/user-onboarding/config"
	"github.com/gaienhofen/user-onboarding/internal/infrastructure/memory"
	"github.com/gaienhofen/user-onboarding/pkg/helpers"
)

func TestContainer_MemoryDefaults(t *testing.T) {
	c := &Container{Config: &config.Config{PasswordEncoding: "legacy"}}

	_, ok := c.UserRepository().(*memory.UserRepository)
	require.True(t, ok)

	svc, err := c.UserService()
	require.NoError(t, err)
	require.Equal(t, helpers.DigestLegacy, svc.Encoding)
	require.Nil(t, svc.Events)
	require.Nil(t, svc.Index)
	require.False(t, svc.StrictHash)
}

func TestContainer_StrictHash(t *testing.T) {
	c := &Container{Config: &config.Config{PasswordHashStrict: true}}
	svc, err := c.UserService()
	require.NoError(t, err)
	require.True(t, svc.StrictHash)
}

func TestContainer_BadEncoding(t *testing.T) {
	c := &Container{Config: &config.Config{PasswordEncoding: "rot13"}}
	_, err := c.UserService()
	require.Error(t, err)
}
