package model

import (
	"fmt"
	"math"
)

// Song is one piece: metadata plus a flat, time-ordered list of notes.
type Song struct {
	Title         string   `json:"title"`
	Artist        string   `json:"artist"`
	BPM           float64  `json:"bpm"`
	TimeSignature [2]int   `json:"timeSignature"`
	Tuning        []string `json:"tuning"`
	Notes         []Note   `json:"notes"`
}

// BeatsPerMeasure reads the numerator of the time signature. A single time
// signature applies to the whole song.
func (s *Song) BeatsPerMeasure() float64 {
	return float64(s.TimeSignature[0])
}

// MeasureForTime computes the 1-based measure number holding the given onset.
func MeasureForTime(time, beatsPerMeasure float64) int {
	return int(math.Floor(time/beatsPerMeasure)) + 1
}

// Validate checks that the song structure is usable for measure math.
func (s *Song) Validate() error {
	if s.TimeSignature[0] <= 0 {
		return fmt.Errorf("song %q: time signature has %v beats per measure", s.Title, s.TimeSignature[0])
	}
	for i := range s.Notes {
		if err := s.Notes[i].Validate(); err != nil {
			return fmt.Errorf("song %q: note %v: %w", s.Title, i, err)
		}
	}
	return nil
}
