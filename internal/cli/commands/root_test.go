package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		cmd := NewRootCommand()
		assert.Equal(t, "brp-extras", cmd.Use)
		assert.NotEmpty(t, cmd.Short)
		assert.NotEmpty(t, cmd.Long)
	})

	t.Run("has all subcommands", func(t *testing.T) {
		cmd := NewRootCommand()

		for _, name := range []string{"version", "discover", "types"} {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		cmd := NewRootCommand()

		for _, name := range []string{"registry", "format", "verbose", "no-color"} {
			flag := cmd.PersistentFlags().Lookup(name)
			require.NotNil(t, flag, name)
		}
	})
}

func TestDiscoverCommand(t *testing.T) {
	t.Run("has correct usage", func(t *testing.T) {
		cmd := NewDiscoverCommand()
		assert.Equal(t, "discover [types...]", cmd.Use)
		assert.NotEmpty(t, cmd.Example)
	})

	t.Run("has flags", func(t *testing.T) {
		cmd := NewDiscoverCommand()

		commonFlag := cmd.Flags().Lookup("common")
		require.NotNil(t, commonFlag)
		assert.Equal(t, "false", commonFlag.DefValue)

		debugFlag := cmd.Flags().Lookup("debug")
		require.NotNil(t, debugFlag)
		assert.Equal(t, "false", debugFlag.DefValue)
	})
}

func TestTypesCommand(t *testing.T) {
	cmd := NewTypesCommand()
	assert.Equal(t, "types", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
}
