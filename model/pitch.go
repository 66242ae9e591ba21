package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Semitone offsets of the natural letter names within an octave.
var pitchClasses = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// Alter values from score notation mapped to accidental suffixes.
var accidentals = map[int]string{
	2:  "##",
	1:  "#",
	0:  "",
	-1: "b",
	-2: "bb",
}

// PitchString builds a pitch token like "G#4" from a letter name, an alter
// value and an octave number. Unknown alters fall back to no accidental.
func PitchString(step string, alter int, octave int) string {
	return step + accidentals[alter] + strconv.Itoa(octave)
}

// ParsePitch splits a token like "Gb4" into its letter, accidental and
// octave parts.
func ParsePitch(pitch string) (letter byte, accidental string, octave int, err error) {
	if len(pitch) < 2 {
		return 0, "", 0, fmt.Errorf("pitch %q is too short", pitch)
	}
	letter = pitch[0]
	if _, ok := pitchClasses[letter]; !ok {
		return 0, "", 0, fmt.Errorf("pitch %q has unknown letter %q", pitch, string(letter))
	}
	rest := pitch[1:]
	for strings.HasPrefix(rest, "#") || strings.HasPrefix(rest, "b") {
		accidental += rest[:1]
		rest = rest[1:]
	}
	octave, convErr := strconv.Atoi(rest)
	if convErr != nil {
		return 0, "", 0, fmt.Errorf("pitch %q has invalid octave %q", pitch, rest)
	}
	return letter, accidental, octave, nil
}

// PitchHeight is the ordering key used when simultaneous notes are sorted:
// octave*12 plus the natural letter's semitone class. Accidentals do not
// participate, so C4 and C#4 compare equal. Rests rank below every pitch.
func PitchHeight(n Note) int {
	if n.Rest {
		return -1 << 30
	}
	letter, _, octave, err := ParsePitch(n.Pitch)
	if err != nil {
		return -1 << 30
	}
	return octave*12 + pitchClasses[letter]
}

// MIDIKey converts a pitch token to its MIDI key number, accidentals
// included. C4 maps to 60.
func MIDIKey(pitch string) (uint8, error) {
	letter, accidental, octave, err := ParsePitch(pitch)
	if err != nil {
		return 0, err
	}
	key := (octave+1)*12 + pitchClasses[letter]
	for i := 0; i < len(accidental); i++ {
		switch accidental[i] {
		case '#':
			key++
		case 'b':
			key--
		}
	}
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("pitch %q is outside the MIDI key range", pitch)
	}
	return uint8(key), nil
}
