package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderNotesBlank(t *testing.T) {
	t.Parallel()

	require.Empty(t, RenderNotes(""))
	require.Empty(t, RenderNotes("  \n\t"))
}

func TestRenderNotesMarkdown(t *testing.T) {
	t.Parallel()

	out := string(RenderNotes("## Roadmap\n\n- live scores\n- ~~beta~~ schedule"))
	require.Contains(t, out, "<h2")
	require.Contains(t, out, "<li>live scores</li>")
	require.Contains(t, out, "<del>beta</del>")
}

func TestRenderNotesStripsUnsafeMarkup(t *testing.T) {
	t.Parallel()

	out := string(RenderNotes("hello <script>alert(1)</script> [x](javascript:alert(1))"))
	require.NotContains(t, out, "<script")
	require.False(t, strings.Contains(out, "javascript:"), "unsafe link scheme must be removed: %s", out)
	require.Contains(t, out, "hello")
}
