// Package gm renders a song as a Standard MIDI File so it can be auditioned
// in any player.
package gm

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/MartyIce/songplayer/model"
)

// TicksPerQuarter is the timing resolution of exported files.
const TicksPerQuarter = 480

// midiEvent pairs a message with its absolute tick time so the track can
// be assembled out of order and delta-encoded at the end.
type midiEvent struct {
	tick    uint32
	noteOff bool
	message smf.Message
}

// Export writes the song as an SMF1 file: a meta track carrying tempo and
// meter, and one note track. Rests occupy time but emit nothing. Notes
// whose pitch can't be mapped to a MIDI key are skipped with a warning.
func Export(song model.Song, w io.Writer) error {
	out := smf.NewSMF1()
	out.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var meta smf.Track
	meta = append(meta, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(song.Title))})
	meta = append(meta, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTempo(song.BPM))})
	meta = append(meta, smf.Event{Delta: 0, Message: smf.Message(smf.MetaMeter(uint8(song.TimeSignature[0]), uint8(song.TimeSignature[1])))})
	meta.Close(0)
	out.Add(meta)

	var events []midiEvent
	for _, note := range song.Notes {
		if note.Rest {
			continue
		}
		key, err := model.MIDIKey(note.Pitch)
		if err != nil {
			logrus.Warnf("Skipping %v at beat %v: %v", note.Pitch, note.Time, err)
			continue
		}
		on := beatsToTicks(note.Time)
		off := beatsToTicks(note.Time + note.Duration)
		events = append(events, midiEvent{tick: on, message: smf.Message(midi.NoteOn(0, key, 100))})
		events = append(events, midiEvent{tick: off, noteOff: true, message: smf.Message(midi.NoteOff(0, key))})
	}

	// Note-offs first at equal ticks so repeated pitches don't retrigger.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].noteOff && !events[j].noteOff
	})

	var track smf.Track
	var lastTick uint32
	for _, evt := range events {
		track = append(track, smf.Event{Delta: evt.tick - lastTick, Message: evt.message})
		lastTick = evt.tick
	}
	track.Close(0)
	out.Add(track)

	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}

func beatsToTicks(beats float64) uint32 {
	if beats < 0 {
		return 0
	}
	return uint32(math.Round(beats * TicksPerQuarter))
}
