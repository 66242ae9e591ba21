package adjust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartyIce/songplayer/model"
)

func twoMeasureSong() model.Song {
	return model.Song{
		Title:         "Test Song",
		BPM:           90,
		TimeSignature: [2]int{4, 4},
		Tuning:        []string{"E2", "A2", "D3", "G3", "B3", "E4"},
		Notes: []model.Note{
			{Pitch: "C4", Time: 0, Duration: 2, Measure: 1},
			{Rest: true, Time: 2, Duration: 2, Measure: 1},
			{Pitch: "E4", Time: 4, Duration: 4, Measure: 2},
		},
	}
}

func assertMeasuresConsistent(t *testing.T, song model.Song) {
	t.Helper()
	for i, note := range song.Notes {
		assert.Equal(t, model.MeasureForTime(note.Time, song.BeatsPerMeasure()), note.Measure,
			"note %v at time %v has measure %v", i, note.Time, note.Measure)
	}
}

func TestShiftMeasuresMovesLaterNotes(t *testing.T) {
	song := twoMeasureSong()
	shifted, err := ShiftMeasures(song, 1)
	require.NoError(t, err)

	assert := assert.New(t)
	// measure 1 untouched
	assert.Equal(0.0, shifted.Notes[0].Time)
	assert.Equal(1, shifted.Notes[0].Measure)
	// measure 2 is now measure 3, a full measure later
	assert.Equal(8.0, shifted.Notes[2].Time)
	assert.Equal(3, shifted.Notes[2].Measure)

	assertMeasuresConsistent(t, shifted)
}

func TestShiftMeasuresDoesNotMutateInput(t *testing.T) {
	song := twoMeasureSong()
	_, err := ShiftMeasures(song, 0)
	require.NoError(t, err)

	assert.Equal(t, twoMeasureSong(), song)
}

func TestShiftThenRemoveRoundTrips(t *testing.T) {
	song := twoMeasureSong()
	shifted, err := ShiftMeasures(song, 1)
	require.NoError(t, err)
	restored, err := RemoveMeasure(shifted, 1)
	require.NoError(t, err)

	assert.Equal(t, song.Notes, restored.Notes)
}

func TestAddMeasureWithNote(t *testing.T) {
	song := twoMeasureSong()
	added, err := AddMeasureWithNote(song, 1, model.Note{Pitch: "G4", Duration: 1})
	require.NoError(t, err)

	assert := assert.New(t)
	require.Len(t, added.Notes, 4)

	// the new note lands at the start of the opened measure
	g4 := added.Notes[2]
	assert.Equal("G4", g4.Pitch)
	assert.Equal(4.0, g4.Time)
	assert.Equal(2, g4.Measure)

	// the old measure-2 note got pushed to measure 3
	assert.Equal("E4", added.Notes[3].Pitch)
	assert.Equal(3, added.Notes[3].Measure)

	assertMeasuresConsistent(t, added)
}

func TestAddMeasureAtEndAppends(t *testing.T) {
	song := twoMeasureSong()
	added, err := AddMeasureWithNote(song, 2, model.Note{Rest: true, Duration: 4})
	require.NoError(t, err)

	last := added.Notes[len(added.Notes)-1]
	assert := assert.New(t)
	assert.True(last.Rest)
	assert.Equal(8.0, last.Time)
	assert.Equal(3, last.Measure)
}

func TestAddMeasureValidatesNoteBeforeShifting(t *testing.T) {
	song := twoMeasureSong()

	_, err := AddMeasureWithNote(song, 0, model.Note{Duration: 1})
	assert.ErrorContains(t, err, "missing both pitch and rest")

	_, err = AddMeasureWithNote(song, 0, model.Note{Pitch: "G4", Duration: 0})
	assert.ErrorContains(t, err, "not positive")

	_, err = AddMeasureWithNote(song, 0, model.Note{Pitch: "G4", Rest: true, Duration: 1})
	assert.ErrorContains(t, err, "both pitch")
}

func TestRemoveMeasureDropsItsNotes(t *testing.T) {
	song := twoMeasureSong()
	removed, err := RemoveMeasure(song, 0)
	require.NoError(t, err)

	// both measure-1 notes are gone, by design
	require.Len(t, removed.Notes, 1)
	assert := assert.New(t)
	assert.Equal("E4", removed.Notes[0].Pitch)
	assert.Equal(0.0, removed.Notes[0].Time)
	assert.Equal(1, removed.Notes[0].Measure)

	assertMeasuresConsistent(t, removed)
}

func TestShiftTimeLeavesEarlierNotesAlone(t *testing.T) {
	song := twoMeasureSong()
	shifted, err := ShiftTime(song, 2, 1.5)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(0.0, shifted.Notes[0].Time)
	assert.Equal(3.5, shifted.Notes[1].Time)
	assert.Equal(5.5, shifted.Notes[2].Time)
	assert.Equal(2, shifted.Notes[2].Measure)
}

func TestShiftTimeNegativeOffsetDoesNotClamp(t *testing.T) {
	song := twoMeasureSong()
	shifted, err := ShiftTime(song, 0, -6)
	require.NoError(t, err)

	// negative times and measures below 1 are the caller's problem
	assert := assert.New(t)
	assert.Equal(-6.0, shifted.Notes[0].Time)
	assert.Equal(-1, shifted.Notes[0].Measure)
	assert.Equal(-2.0, shifted.Notes[2].Time)
	assert.Equal(0, shifted.Notes[2].Measure)
}

func TestNegativeMeasureIndexRejected(t *testing.T) {
	song := twoMeasureSong()

	_, err := ShiftMeasures(song, -1)
	assert.ErrorContains(t, err, "negative")

	_, err = RemoveMeasure(song, -1)
	assert.ErrorContains(t, err, "negative")
}

func TestMalformedSongRejected(t *testing.T) {
	song := twoMeasureSong()
	song.TimeSignature = [2]int{0, 4}
	_, err := ShiftMeasures(song, 0)
	assert.ErrorContains(t, err, "time signature")

	song = twoMeasureSong()
	song.Notes[1].Duration = -1
	_, err = RemoveMeasure(song, 0)
	assert.ErrorContains(t, err, "duration")
}
