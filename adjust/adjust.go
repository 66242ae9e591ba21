// Package adjust edits song timelines one measure (or time range) at a
// time. Every operation is a pure transformation: the input song is never
// modified and a fully consistent copy comes back, or an error comes back
// before anything is produced.
package adjust

import (
	"fmt"

	"github.com/MartyIce/songplayer/model"
)

func validateInput(song model.Song, measureIndex int) error {
	if measureIndex < 0 {
		return fmt.Errorf("measure index %v is negative", measureIndex)
	}
	return song.Validate()
}

// ShiftMeasures moves every note at or after the 0-based measure index one
// measure later, opening an empty measure's worth of time. Notes in earlier
// measures are untouched.
func ShiftMeasures(song model.Song, measureIndex int) (model.Song, error) {
	if err := validateInput(song, measureIndex); err != nil {
		return model.Song{}, err
	}

	beatsPerMeasure := song.BeatsPerMeasure()
	adjusted := make([]model.Note, 0, len(song.Notes))
	for _, note := range song.Notes {
		if note.Measure >= measureIndex+1 {
			note.Time += beatsPerMeasure
			note.Measure++
		}
		adjusted = append(adjusted, note)
	}

	song.Notes = adjusted
	return song, nil
}

// AddMeasureWithNote opens a new measure at the 0-based index and places the
// given note at its start. The note must carry a pitch or a rest flag and a
// positive duration; it is validated before anything shifts.
func AddMeasureWithNote(song model.Song, measureIndex int, newNote model.Note) (model.Song, error) {
	if err := newNote.Validate(); err != nil {
		return model.Song{}, fmt.Errorf("new note: %w", err)
	}

	shifted, err := ShiftMeasures(song, measureIndex)
	if err != nil {
		return model.Song{}, err
	}

	beatsPerMeasure := shifted.BeatsPerMeasure()
	newNote.Time = float64(measureIndex) * beatsPerMeasure
	newNote.Measure = measureIndex + 1

	// Insert directly before the first note of any later measure, so the
	// new note lands after everything now occupying its own measure.
	insertAt := len(shifted.Notes)
	for i, note := range shifted.Notes {
		if note.Measure > measureIndex+1 {
			insertAt = i
			break
		}
	}

	notes := make([]model.Note, 0, len(shifted.Notes)+1)
	notes = append(notes, shifted.Notes[:insertAt]...)
	notes = append(notes, newNote)
	notes = append(notes, shifted.Notes[insertAt:]...)
	shifted.Notes = notes
	return shifted, nil
}

// RemoveMeasure deletes the measure at the 0-based index and pulls every
// later note one measure earlier.
//
// Any notes inside the removed measure are discarded. That loss is the
// operation's contract, not an accident: removing an occupied measure is
// how you cut its contents.
func RemoveMeasure(song model.Song, measureIndex int) (model.Song, error) {
	if err := validateInput(song, measureIndex); err != nil {
		return model.Song{}, err
	}

	beatsPerMeasure := song.BeatsPerMeasure()
	adjusted := make([]model.Note, 0, len(song.Notes))
	for _, note := range song.Notes {
		switch {
		case note.Measure < measureIndex+1:
			adjusted = append(adjusted, note)
		case note.Measure > measureIndex+1:
			note.Time -= beatsPerMeasure
			note.Measure--
			adjusted = append(adjusted, note)
		}
	}

	song.Notes = adjusted
	return song, nil
}

// ShiftTime moves every note at or after startTime by offset beats (either
// direction) and recomputes its measure number. Notes starting earlier are
// untouched. No reordering or clamping happens: a large negative offset can
// legitimately produce negative times or out-of-order notes, and callers
// own the consequences.
func ShiftTime(song model.Song, startTime, offset float64) (model.Song, error) {
	if err := song.Validate(); err != nil {
		return model.Song{}, err
	}

	beatsPerMeasure := song.BeatsPerMeasure()
	adjusted := make([]model.Note, 0, len(song.Notes))
	for _, note := range song.Notes {
		if note.Time >= startTime {
			note.Time += offset
			note.Measure = model.MeasureForTime(note.Time, beatsPerMeasure)
		}
		adjusted = append(adjusted, note)
	}

	song.Notes = adjusted
	return song, nil
}
