package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `name = "my-worker"
type = "webpack"
account_id = "abc123"

kv-namespaces = [
  { binding = "KV", id = "ns-1" },
  { binding = "ASSETS", id = "ns-2", bucket = "./public" },
]
`

func TestLoadTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	target, err := LoadTarget(path)
	require.NoError(t, err)
	assert.Equal(t, "my-worker", target.Name)
	assert.Equal(t, "abc123", target.AccountID)
	require.Len(t, target.KvNamespaces, 2)
	assert.Equal(t, "KV", target.KvNamespaces[0].Binding)
	assert.Equal(t, "ns-1", target.KvNamespaces[0].ID)
	assert.Equal(t, "./public", target.KvNamespaces[1].Bucket)
}

func TestLoadTarget_EnvOverridesAccount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	t.Setenv("CF_ACCOUNT_ID", "env-account")
	target, err := LoadTarget(path)
	require.NoError(t, err)
	assert.Equal(t, "env-account", target.AccountID)
}

func TestLoadTarget_FindsManifestInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ManifestFileName), []byte(sampleManifest), 0o644))
	child := filepath.Join(root, "src", "deep")
	require.NoError(t, os.MkdirAll(child, 0o755))

	found := findManifest(child)
	assert.Equal(t, filepath.Join(root, ManifestFileName), found)
}

func TestLoadTarget_MissingManifest(t *testing.T) {
	_, err := LoadTarget(filepath.Join(t.TempDir(), "nope", ManifestFileName))
	assert.Error(t, err)
}

func TestLoadTarget_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFileName)
	require.NoError(t, os.WriteFile(path, []byte("name = [unclosed"), 0o644))

	_, err := LoadTarget(path)
	assert.Error(t, err)
}
