// Package songfile reads and writes the song JSON files the player
// consumes. The on-disk layout is fixed: 2-space indented metadata keys in
// a set order, then one compact line per note, so diffs stay readable and
// hand edits stay easy.
package songfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/MartyIce/songplayer/model"
)

// Load reads a song JSON file.
func Load(path string) (model.Song, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Song{}, fmt.Errorf("could not read song file: %w", err)
	}
	var song model.Song
	if err := json.Unmarshal(data, &song); err != nil {
		return model.Song{}, fmt.Errorf("could not parse song file %v: %w", path, err)
	}
	return song, nil
}

// Save writes a song in the fixed layout. The file is written to a
// temporary sibling first and renamed into place, so a crash mid-write
// never leaves a truncated song behind.
func Save(song model.Song, path string) error {
	tmp := path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, []byte(Format(song)), 0666); err != nil {
		return fmt.Errorf("could not write song file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not replace song file: %w", err)
	}
	return nil
}

// Format renders a song in the canonical file layout.
func Format(song model.Song) string {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"title\": " + marshalString(song.Title) + ",\n")
	b.WriteString("  \"artist\": " + marshalString(song.Artist) + ",\n")
	b.WriteString("  \"bpm\": " + formatNumber(song.BPM) + ",\n")
	b.WriteString(fmt.Sprintf("  \"timeSignature\": [%d, %d],\n", song.TimeSignature[0], song.TimeSignature[1]))
	b.WriteString("  \"tuning\": " + formatTuning(song.Tuning) + ",\n")
	b.WriteString("  \"notes\": [\n")

	for i, note := range song.Notes {
		var line string
		if note.Rest {
			line = fmt.Sprintf("    { \"rest\": true, \"time\": %s, \"duration\": %s, \"measure\": %d }",
				formatNumber(note.Time), formatNumber(note.Duration), note.Measure)
		} else {
			line = fmt.Sprintf("    { \"note\": %s, \"time\": %s, \"duration\": %s, \"measure\": %d }",
				marshalString(note.Pitch), formatNumber(note.Time), formatNumber(note.Duration), note.Measure)
		}
		if i < len(song.Notes)-1 {
			line += ","
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("  ]\n")
	b.WriteString("}\n")
	return b.String()
}

func marshalString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

// formatNumber prints whole values without a trailing ".0", matching how
// the files have always been written.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatTuning(tuning []string) string {
	parts := make([]string, len(tuning))
	for i, t := range tuning {
		parts[i] = marshalString(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// SongName derives the on-disk base name for a song file.
func SongName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
