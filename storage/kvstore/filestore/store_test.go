package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := Open(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set("students", []byte(`[]`)))
	b, err := os.ReadFile(filepath.Join(dir, "students.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")

	for _, key := range []string{"", "../students", "a/b", "a.json"} {
		_, err = s.Get(key)
		assert.Error(t, err, key)
		assert.Error(t, s.Set(key, nil), key)
	}
}
