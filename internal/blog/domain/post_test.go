package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPost_ShortSnippet(t *testing.T) {
	t.Parallel()

	t.Run("short contents pass through with trailing newline", func(t *testing.T) {
		p := Post{Contents: "This is some short contents"}
		require.Equal(t, "This is some short contents\n", p.ShortSnippet())
	})

	t.Run("stops after the line that passes the cap", func(t *testing.T) {
		long := strings.Repeat("a", 450)
		p := Post{Contents: long + "\nsecond line\nthird line"}
		require.Equal(t, long+"\n", p.ShortSnippet())
	})

	t.Run("accumulates whole lines until the cap", func(t *testing.T) {
		line := strings.Repeat("b", 150)
		p := Post{Contents: strings.Join([]string{line, line, line, line}, "\n")}

		// Three 150-char lines pass 400; the fourth is dropped.
		want := line + "\n" + line + "\n" + line + "\n"
		require.Equal(t, want, p.ShortSnippet())
	})
}
