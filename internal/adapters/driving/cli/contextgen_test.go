package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func TestContextGenerateCmd_OutputsValidContext(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"context", "generate", "--seed", "3"})
	defer func() {
		rootCmd.SetArgs(nil)
		contextSeed = 42
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var user domain.UserContext
	require.NoError(t, json.Unmarshal(buf.Bytes(), &user))
	assert.NoError(t, user.Validate())
}

func TestContextGenerateCmd_DeterministicPerSeed(t *testing.T) {
	run := func() string {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetArgs([]string{"context", "generate", "--seed", "9"})
		defer rootCmd.SetArgs(nil)
		if err := rootCmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	assert.Equal(t, run(), run())
}
