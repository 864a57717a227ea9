// Package readme rewrites the marker-delimited regions of the profile
// README.
package readme

import (
	"fmt"
	"os"
	"strings"
)

// Marker pairs expected verbatim in the README.
const (
	ActivityStart = "<!-- ACTIVITY_START -->"
	ActivityEnd   = "<!-- ACTIVITY_END -->"
	StatsStart    = "<!-- STATS_START -->"
	StatsEnd      = "<!-- STATS_END -->"
	DateStart     = "<!-- DATE_START -->"
	DateEnd       = "<!-- DATE_END -->"
)

// Section pairs a marker-delimited region with its replacement content.
type Section struct {
	StartMarker string
	EndMarker   string
	Content     string
}

// Patch replaces each section's region — markers included — with
// start + newline + content + newline + end. Text outside the regions
// is untouched. A missing or reversed marker is a hard error rather
// than a silent no-op, so a README that lost a marker fails the run
// instead of quietly going stale.
func Patch(doc string, sections []Section) (string, error) {
	for _, s := range sections {
		var err error
		doc, err = replaceRegion(doc, s.StartMarker, s.EndMarker, s.Content)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func replaceRegion(doc, start, end, content string) (string, error) {
	i := strings.Index(doc, start)
	if i < 0 {
		return "", fmt.Errorf("marker %q not found in document", start)
	}
	rest := doc[i+len(start):]
	j := strings.Index(rest, end)
	if j < 0 {
		return "", fmt.Errorf("marker %q not found after %q", end, start)
	}
	tail := rest[j+len(end):]
	return doc[:i] + start + "\n" + content + "\n" + end + tail, nil
}

// UpdateFile reads the README at path, patches all sections, and
// writes it back in place. Any failure is returned to the caller;
// file errors here are fatal to the run.
func UpdateFile(path string, sections []Section) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	patched, err := Patch(string(raw), sections)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(patched), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
