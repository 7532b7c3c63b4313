package ollama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBullets(t *testing.T) {
	text := "Here you go:\n• Light linen keeps you cool.\n- Colours sit in one palette.\n\nnot a bullet"

	bullets := parseBullets(text)
	require.Len(t, bullets, 2)
	assert.Equal(t, "Light linen keeps you cool.", bullets[0])
	assert.Equal(t, "Colours sit in one palette.", bullets[1])
}

func TestParseBulletsEmpty(t *testing.T) {
	assert.Empty(t, parseBullets("no bullets here"))
}

func TestParseJSONArray(t *testing.T) {
	items, err := parseJSONArray(`Sure! ["leather belt", "silver watch"] hope that helps`)
	require.NoError(t, err)
	assert.Equal(t, []string{"leather belt", "silver watch"}, items)
}

func TestParseJSONArrayMissing(t *testing.T) {
	_, err := parseJSONArray("nothing structured")
	assert.Error(t, err)
}
