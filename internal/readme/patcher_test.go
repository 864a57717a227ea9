package readme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `# Hello

intro text

<!-- ACTIVITY_START -->
old activity
<!-- ACTIVITY_END -->

middle text

<!-- STATS_START -->
old stats
<!-- STATS_END -->

Last updated: <!-- DATE_START -->never<!-- DATE_END -->

outro text
`

func allSections(activity, stats, date string) []Section {
	return []Section{
		{StartMarker: ActivityStart, EndMarker: ActivityEnd, Content: activity},
		{StartMarker: StatsStart, EndMarker: StatsEnd, Content: stats},
		{StartMarker: DateStart, EndMarker: DateEnd, Content: date},
	}
}

func TestPatch(t *testing.T) {
	t.Run("replaces every region and preserves surrounding text byte-for-byte", func(t *testing.T) {
		out, err := Patch(sampleDoc, allSections("NEW ACTIVITY", "NEW STATS", "2026-08-25 12:00 UTC"))
		require.NoError(t, err)

		expected := `# Hello

intro text

<!-- ACTIVITY_START -->
NEW ACTIVITY
<!-- ACTIVITY_END -->

middle text

<!-- STATS_START -->
NEW STATS
<!-- STATS_END -->

Last updated: <!-- DATE_START -->
2026-08-25 12:00 UTC
<!-- DATE_END -->

outro text
`
		assert.Equal(t, expected, out)
	})

	t.Run("is idempotent", func(t *testing.T) {
		sections := allSections("A", "B", "C")
		once, err := Patch(sampleDoc, sections)
		require.NoError(t, err)
		twice, err := Patch(once, sections)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("missing start marker is a hard error", func(t *testing.T) {
		_, err := Patch("no markers here", []Section{
			{StartMarker: ActivityStart, EndMarker: ActivityEnd, Content: "x"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), ActivityStart)
	})

	t.Run("end marker before start marker is a hard error", func(t *testing.T) {
		doc := ActivityEnd + "\ncontent\n" + ActivityStart
		_, err := Patch(doc, []Section{
			{StartMarker: ActivityStart, EndMarker: ActivityEnd, Content: "x"},
		})
		assert.Error(t, err)
	})

	t.Run("replacement spans line boundaries", func(t *testing.T) {
		doc := StatsStart + "\nline one\nline two\nline three\n" + StatsEnd
		out, err := Patch(doc, []Section{
			{StartMarker: StatsStart, EndMarker: StatsEnd, Content: "fresh"},
		})
		require.NoError(t, err)
		assert.Equal(t, StatsStart+"\nfresh\n"+StatsEnd, out)
	})
}

func TestUpdateFile(t *testing.T) {
	t.Run("rewrites the file in place", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

		err := UpdateFile(path, allSections("A", "B", "C"))
		require.NoError(t, err)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), ActivityStart+"\nA\n"+ActivityEnd)
		assert.Contains(t, string(raw), "outro text")
	})

	t.Run("missing file propagates the error", func(t *testing.T) {
		err := UpdateFile(filepath.Join(t.TempDir(), "absent.md"), nil)
		assert.Error(t, err)
	})

	t.Run("missing marker leaves the file untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("plain file"), 0o644))

		err := UpdateFile(path, allSections("A", "B", "C"))
		assert.Error(t, err)

		raw, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "plain file", string(raw))
	})
}
