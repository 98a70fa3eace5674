package script_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/storekeeper/pkg/script"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	t.Run("short text is unchanged", func(t *testing.T) {
		require.Equal(t, "SELECT 1", script.Preview("SELECT 1"))
	})

	t.Run("exactly the preview width", func(t *testing.T) {
		text := strings.Repeat("x", script.PreviewWidth)
		require.Equal(t, text, script.Preview(text))
	})

	t.Run("long text is truncated", func(t *testing.T) {
		text := strings.Repeat("a", script.PreviewWidth) + "bcd"
		require.Equal(t, strings.Repeat("a", script.PreviewWidth)+"...", script.Preview(text))
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		require.Equal(t, "SELECT 1 FROM t", script.Preview("SELECT 1\nFROM t"))
	})

	t.Run("multi-byte characters count once", func(t *testing.T) {
		text := strings.Repeat("é", script.PreviewWidth+1)
		require.Equal(t, strings.Repeat("é", script.PreviewWidth)+"...", script.Preview(text))
	})
}

func TestNewStatement(t *testing.T) {
	stmt := script.NewStatement(3, "SELECT 1")
	require.Equal(t, 3, stmt.Index)
	require.Equal(t, "SELECT 1", stmt.Text)
	require.Equal(t, "SELECT 1", stmt.Preview)
	require.Equal(t, script.KindQuery, stmt.Kind())
}
