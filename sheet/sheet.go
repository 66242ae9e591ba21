// Package sheet turns OCR-produced score-partwise documents into songs.
// A piece may span several files (one per page or movement) sharing a base
// name; the importer flattens all of them into one timeline. Bad files and
// bad notes are warned about and skipped, never fatal: a scanned score with
// one unreadable page should still import the rest.
package sheet

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/MartyIce/songplayer/model"
	"github.com/MartyIce/songplayer/musicxml"
)

// Fallbacks used when the first document of a piece doesn't declare the
// corresponding metadata.
var (
	DefaultBPM           = 90.0
	DefaultTimeSignature = [2]int{4, 4}
	DefaultTuning        = []string{"E2", "A2", "D3", "G3", "B3", "E4"}
)

// Movement files follow the OCR's naming convention, e.g. "song.mvt2.xml".
var movementRe = regexp.MustCompile(`^(.+)\.mvt(\d+)$`)

type scoreFile struct {
	path     string
	movement int
}

// GatherPieces walks dir for .xml score files and groups them into pieces
// by shared base name. Within a piece, files order by their numeric
// movement suffix; a file without one comes first.
func GatherPieces(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]scoreFile)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xml") {
			continue
		}
		base := strings.TrimSuffix(name, ".xml")
		movement := 0
		if m := movementRe.FindStringSubmatch(base); m != nil {
			base = m[1]
			movement, _ = strconv.Atoi(m[2])
		}
		grouped[base] = append(grouped[base], scoreFile{
			path:     filepath.Join(dir, name),
			movement: movement,
		})
	}

	pieces := make(map[string][]string, len(grouped))
	for base, files := range grouped {
		sort.Slice(files, func(i, j int) bool {
			if files[i].movement != files[j].movement {
				return files[i].movement < files[j].movement
			}
			return files[i].path < files[j].path
		})
		var paths []string
		for _, f := range files {
			paths = append(paths, f.path)
		}
		pieces[base] = paths
	}
	return pieces, nil
}

// ImportPiece flattens the documents of one piece into a single song.
// Measure numbers run sequentially across every measure of every document
// in input order; each part's time cursor restarts at 0, so concurrent
// voices merge purely by their independently computed onsets. A piece with
// zero extractable notes still comes back as a valid empty song.
func ImportPiece(paths []string) model.Song {
	song := model.Song{
		BPM:           DefaultBPM,
		TimeSignature: DefaultTimeSignature,
		Tuning:        DefaultTuning,
	}

	measureNum := 0
	haveMetadata := false
	var notes []model.Note

	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			logrus.Warnf("Skipping %v because: %v", path, err)
			continue
		}

		if !haveMetadata {
			applyMetadata(&song, doc)
			haveMetadata = true
		}

		divisions := doc.FindDivisions()
		if divisions == 0 {
			logrus.Warnf("Skipping %v because it declares no divisions", path)
			continue
		}

		for _, part := range doc.Parts {
			cursor := 0.0
			lastOnset := 0.0
			haveOnset := false
			for _, measure := range part.Measures {
				measureNum++
				for _, elem := range measure.Notes {
					note, ok := extractNote(path, elem, divisions)
					if !ok {
						continue
					}
					if elem.IsChord() && haveOnset {
						// Chord notes sound with the preceding note
						// and occupy no time of their own.
						note.Time = lastOnset
					} else {
						note.Time = cursor
						lastOnset = cursor
						haveOnset = true
						cursor += note.Duration
					}
					note.Measure = measureNum
					notes = append(notes, note)
				}
			}
		}
	}

	song.Notes = notes
	return song
}

func readDocument(path string) (*musicxml.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return musicxml.Decode(f)
}

// applyMetadata reads piece-level metadata from the first document only.
func applyMetadata(song *model.Song, doc *musicxml.Document) {
	song.Title = doc.MovementTitle
	song.Artist = doc.Identification.Composer
	if ts := doc.FindTimeSignature(); ts.Beats != 0 && ts.BeatType != 0 {
		song.TimeSignature = [2]int{ts.Beats, ts.BeatType}
	}
}

// extractNote converts one note element into an event in quarter-note
// beats. Elements missing a duration, or a pitch on a non-rest, are
// recoverable omissions: warn and move on.
func extractNote(path string, elem musicxml.Note, divisions int) (model.Note, bool) {
	if elem.Duration <= 0 {
		logrus.Warnf("Skipping a note in %v because it has no duration", path)
		return model.Note{}, false
	}
	duration := float64(elem.Duration) / float64(divisions)

	if elem.IsRest() {
		return model.Note{Rest: true, Duration: duration}, true
	}

	if elem.Pitch.Step == "" {
		logrus.Warnf("Skipping a note in %v because it has neither pitch nor rest", path)
		return model.Note{}, false
	}
	pitch := model.PitchString(elem.Pitch.Step, elem.Pitch.Alter, elem.Pitch.Octave)
	return model.Note{Pitch: pitch, Duration: duration}, true
}
