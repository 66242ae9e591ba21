package musicxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="3.1">
  <movement-title>Etude</movement-title>
  <identification>
    <creator type="composer">Carcassi</creator>
  </identification>
  <part id="P1">
    <measure number="1">
      <attributes>
        <divisions>4</divisions>
        <time><beats>4</beats><beat-type>4</beat-type></time>
      </attributes>
      <note>
        <pitch><step>E</step><octave>4</octave></pitch>
        <duration>4</duration>
      </note>
      <note>
        <rest/>
        <duration>4</duration>
      </note>
    </measure>
    <measure number="2">
      <note>
        <pitch><step>A</step><alter>-1</alter><octave>3</octave></pitch>
        <duration>8</duration>
      </note>
    </measure>
  </part>
</score-partwise>
`

func TestDecode(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("Etude", doc.MovementTitle)
	assert.Equal("Carcassi", doc.Identification.Composer)

	require.Len(t, doc.Parts, 1)
	require.Len(t, doc.Parts[0].Measures, 2)

	first := doc.Parts[0].Measures[0]
	require.Len(t, first.Notes, 2)
	assert.Equal("E", first.Notes[0].Pitch.Step)
	assert.Equal(4, first.Notes[0].Pitch.Octave)
	assert.False(first.Notes[0].IsRest())
	assert.True(first.Notes[1].IsRest())

	second := doc.Parts[0].Measures[1]
	require.Len(t, second.Notes, 1)
	assert.Equal(-1, second.Notes[0].Pitch.Alter)
	assert.Equal(8, second.Notes[0].Duration)
}

func TestFindDivisionsAndTimeSignature(t *testing.T) {
	doc, err := Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(4, doc.FindDivisions())
	assert.Equal(TimeSignature{Beats: 4, BeatType: 4}, doc.FindTimeSignature())
}

func TestDecodeNonUTF8Encoding(t *testing.T) {
	latin := `<?xml version="1.0" encoding="ISO-8859-1"?>
<score-partwise>
  <movement-title>Pr` + "\xe9" + `lude</movement-title>
</score-partwise>
`
	doc, err := Decode(strings.NewReader(latin))
	require.NoError(t, err)
	assert.Equal(t, "Prélude", doc.MovementTitle)
}

func TestDecodeChordMarker(t *testing.T) {
	doc, err := Decode(strings.NewReader(`<score-partwise><part id="P1"><measure number="1">
  <note><pitch><step>C</step><octave>4</octave></pitch><duration>1</duration></note>
  <note><chord/><pitch><step>E</step><octave>4</octave></pitch><duration>1</duration></note>
</measure></part></score-partwise>`))
	require.NoError(t, err)

	notes := doc.Parts[0].Measures[0].Notes
	require.Len(t, notes, 2)
	assert.False(t, notes[0].IsChord())
	assert.True(t, notes[1].IsChord())
}

func TestFindDivisionsMissing(t *testing.T) {
	doc, err := Decode(strings.NewReader(`<score-partwise><part id="P1"><measure number="1"/></part></score-partwise>`))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.FindDivisions())
}
