// Package quantize snaps imported note timings onto the grid the notation
// can actually express and puts simultaneous notes into canonical order.
package quantize

import (
	"math"
	"sort"

	"github.com/MartyIce/songplayer/model"
)

// tripletTolerance is how close a duration must land to a third-of-a-beat
// multiple to be treated as a triplet value rather than a straight one.
const tripletTolerance = 0.01

// Time rounds an onset to the nearest half beat.
func Time(t float64) float64 {
	return math.Round(t*2) / 2
}

// Duration rounds to the nearest third of a beat when the raw value sits
// within the triplet tolerance of one, otherwise to the nearest half beat.
// Straight note values and triplets are the only durations the notation
// produces, so this absorbs accumulated division error from the importer.
func Duration(d float64) float64 {
	triplet := math.Round(d*3) / 3
	if math.Abs(d-triplet) <= tripletTolerance {
		return triplet
	}
	return math.Round(d*2) / 2
}

// Apply returns a copy of the song with every note's timing snapped to the
// grid and simultaneous notes ordered by descending pitch height, rests
// last. Ordering ignores accidentals (C#4 and C4 at the same instant rank
// equal and keep their incoming order); applying twice is a no-op.
func Apply(song model.Song) model.Song {
	notes := make([]model.Note, len(song.Notes))
	for i, note := range song.Notes {
		note.Time = Time(note.Time)
		note.Duration = Duration(note.Duration)
		notes[i] = note
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Time != notes[j].Time {
			return notes[i].Time < notes[j].Time
		}
		return model.PitchHeight(notes[i]) > model.PitchHeight(notes[j])
	})

	song.Notes = notes
	return song
}
