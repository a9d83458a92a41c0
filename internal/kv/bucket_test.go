package kv

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectBucketPairs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))

	pairs, err := collectBucketPairs(dir)
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	byKey := map[string]string{}
	for _, pair := range pairs {
		assert.True(t, pair.Base64)
		byKey[pair.Key] = pair.Value
	}
	// Keys are slash-separated relative paths regardless of platform.
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("body{}")), byKey["css/site.css"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("<html>")), byKey["index.html"])
}

func TestCollectBucketPairs_MissingDir(t *testing.T) {
	_, err := collectBucketPairs(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
