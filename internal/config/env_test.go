package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	raw, err := FromEnv(map[string]string{
		"HLX_WSK_HOST":     "myruntime.net",
		"HLX_WSK_AUTH":     "foobar",
		"HLX_DRY_RUN":      "true",
		"HLX_GITHUB_TOKEN": "token",
		"WSK_AUTH":         "unprefixed",
	})
	require.NoError(t, err)

	require.NotNil(t, raw.WskHost)
	assert.Equal(t, "myruntime.net", *raw.WskHost)
	assert.Equal(t, "foobar", *raw.WskAuth)
	require.NotNil(t, raw.DryRun)
	assert.True(t, *raw.DryRun)
	assert.Equal(t, "token", *raw.GithubToken)
	assert.Nil(t, raw.WskNamespace)
	assert.Nil(t, raw.UpdateBotConfig)
	assert.Nil(t, raw.ConfigPurgeAPI)
}

func TestFromEnvInvalidBool(t *testing.T) {
	_, err := FromEnv(map[string]string{"HLX_DRY_RUN": "maybe"})
	assert.Error(t, err)
}

func TestFromEnvNil(t *testing.T) {
	raw, err := FromEnv(nil)
	require.NoError(t, err)
	assert.Equal(t, Raw{}, raw)
}

func TestEnvironReadsFile(t *testing.T) {
	t.Setenv("HLX_WSK_AUTH", "from-process")

	environ, err := Environ(filepath.Join("testdata", "all.env"))
	require.NoError(t, err)

	assert.Equal(t, "myruntime.net", environ["HLX_WSK_HOST"])
	assert.Equal(t, "foobar.api", environ["HLX_PUBLISH_API"])
	assert.Equal(t, "from-process", environ["HLX_WSK_AUTH"], "process env wins over env file")
}

func TestEnvironEmptyProcessValueKeepsFile(t *testing.T) {
	t.Setenv("HLX_WSK_NAMESPACE", "")

	environ, err := Environ(filepath.Join("testdata", "all.env"))
	require.NoError(t, err)
	assert.Equal(t, "1234", environ["HLX_WSK_NAMESPACE"])
}

func TestEnvironMissingFile(t *testing.T) {
	environ, err := Environ(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.NotNil(t, environ)
}

func TestSettingsFromEnv(t *testing.T) {
	s, err := SettingsFromEnv(map[string]string{
		"HLX_RECEIPT_BUCKET": "receipts",
		"AWS_REGION":         "eu-west-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, "receipts", s.ReceiptBucket)
	assert.Equal(t, "hlx/receipts", s.ReceiptPrefix)
	assert.Equal(t, "eu-west-1", s.Region)
}
