package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslations(t *testing.T) {
	require.NoError(t, Initialize("en"))

	assert.Equal(t, "Product not found", T("en", KeyProductNotFound))
	assert.Equal(t, "找不到商品", T("zh_TW", KeyProductNotFound))
	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))

	// Unknown languages fall back to the default, unknown keys to the key itself
	assert.Equal(t, "Product not found", T("fr", KeyProductNotFound))
	assert.Equal(t, "missing.key", T("en", "missing.key"))

	assert.True(t, IsSupported("zh_TW"))
	assert.False(t, IsSupported("fr"))
	assert.Equal(t, "en", DefaultLanguage())
}

func TestLocalesShareKeys(t *testing.T) {
	require.NoError(t, Initialize("en"))

	en := instance.translations["en"]
	zh := instance.translations["zh_TW"]
	require.NotEmpty(t, en)
	for key := range en {
		assert.Contains(t, zh, key)
	}
}
