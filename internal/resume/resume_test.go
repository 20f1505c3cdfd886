package resume

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ExtractText(t *testing.T) {
	r, err := NewReader(context.Background())
	require.NoError(t, err)

	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := r.ExtractText(context.Background(), filepath.Join(dir, "nope.pdf"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("plain text resume", func(t *testing.T) {
		path := filepath.Join(dir, "resume.txt")
		require.NoError(t, os.WriteFile(path, []byte("Backend Developer with Python"), 0644))
		text, err := r.ExtractText(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "Backend Developer with Python", text)
	})

	t.Run("garbage pdf is a parse error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.pdf")
		require.NoError(t, os.WriteFile(path, []byte("definitely not a pdf"), 0644))
		_, err := r.ExtractText(context.Background(), path)
		assert.ErrorIs(t, err, ErrParse)
	})
}
