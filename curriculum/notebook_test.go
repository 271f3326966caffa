package curriculum_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
)

// TestNotebookHeadingShape: every heading is a 64-rune rule regardless of
// title length.
func TestNotebookHeadingShape(t *testing.T) {
	for _, title := range []string{"Pointers", "A", "Concurrency patterns"} {
		var buf strings.Builder
		nb := curriculum.NewNotebook(&buf)
		nb.Heading(title)
		require.NoError(t, nb.Err())

		line := strings.TrimSuffix(buf.String(), "\n")
		assert.True(t, strings.HasPrefix(line, "── "+title+" "), "line %q", line)
		assert.Equal(t, 64, utf8.RuneCountInString(line), "line %q", line)
	}
}

// TestNotebookStepsNumberSequentially: the counter is per-Notebook state.
func TestNotebookStepsNumberSequentially(t *testing.T) {
	var buf strings.Builder
	nb := curriculum.NewNotebook(&buf)
	nb.Step("first")
	nb.Stepf("second (%s)", "formatted")
	nb.Step("third")
	require.NoError(t, nb.Err())

	out := buf.String()
	assert.Contains(t, out, " 1) first\n")
	assert.Contains(t, out, " 2) second (formatted)\n")
	assert.Contains(t, out, " 3) third\n")
}

// TestNotebookShowAlignment: Show pads labels into a 26-column table.
func TestNotebookShowAlignment(t *testing.T) {
	var buf strings.Builder
	nb := curriculum.NewNotebook(&buf)
	nb.Show("len(s)", 5)
	nb.Show("cap(s)", 8)
	require.NoError(t, nb.Err())

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "=> ")
		// "   " + 26-char label field + " => value"
		assert.Equal(t, strings.Index(lines[0], "=>"), strings.Index(line, "=>"))
	}
}

// failAfter is an io.Writer that fails on the nth write.
type failAfter struct {
	n   int
	err error
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, f.err
	}
	f.n--
	return len(p), nil
}

// TestNotebookStickyError: after a write failure every method is a no-op and
// Err reports the original failure.
func TestNotebookStickyError(t *testing.T) {
	sink := &failAfter{n: 1, err: errors.New("disk full")}
	nb := curriculum.NewNotebook(sink)

	nb.Say("lands")            // write 1: succeeds
	nb.Say("fails")            // write 2: fails, becomes sticky
	nb.Step("ignored")         // no-op
	nb.Takeaways("ignored too") // no-op

	require.Error(t, nb.Err())
	assert.Equal(t, "disk full", nb.Err().Error())
}

// TestNotebookTakeaways renders the closing block with one dash per point.
func TestNotebookTakeaways(t *testing.T) {
	var buf strings.Builder
	nb := curriculum.NewNotebook(&buf)
	nb.Takeaways("read the error", "wrap with %w")
	require.NoError(t, nb.Err())

	out := buf.String()
	assert.Contains(t, out, "Key takeaways:\n")
	assert.Contains(t, out, "   - read the error\n")
	assert.Contains(t, out, "   - wrap with %w\n")
}
