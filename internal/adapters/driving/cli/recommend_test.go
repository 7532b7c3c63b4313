package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeContextFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "context.json")
	content := `{
  "user_id": "u1",
  "occasion": ["coffee"],
  "weather": {"temp_c": 28, "condition": "sunny"},
  "preferences": {"styles": ["casual"], "colors": []}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRecommendCmd_Use(t *testing.T) {
	assert.Equal(t, "recommend [context.json]", recommendCmd.Use)
}

func TestRecommendCmd_RequiresContextFile(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRecommendCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", writeContextFile(t)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Outfits for u1")
	assert.Contains(t, buf.String(), "white linen shirt")
}

func TestRecommendCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "--json", writeContextFile(t)})
	defer func() {
		rootCmd.SetArgs(nil)
		recommendJSON = false // Reset flag
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"request_id\"")
	assert.Contains(t, buf.String(), "\"recommendations\"")
}

func TestRecommendCmd_MissingContextFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend", filepath.Join(t.TempDir(), "absent.json")})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read context file")
}

func TestRecommendCmd_InvalidContextRejected(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "context.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_id": ""}`), 0o600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")
}

func TestRecommendCmd_TopNFlag(t *testing.T) {
	flag := recommendCmd.Flags().Lookup("top-n")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
}
