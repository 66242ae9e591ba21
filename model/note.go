package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Note is one musical occurrence: either a pitched note or a rest.
// Time and Duration are in quarter-note beats from the start of the piece.
// Measure is 1-based and always derivable as floor(Time/beatsPerMeasure)+1.
type Note struct {
	Pitch    string
	Rest     bool
	Time     float64
	Duration float64
	Measure  int
}

// Validate checks the one-of pitch/rest contract and the duration sign.
func (n *Note) Validate() error {
	if n.Rest && n.Pitch != "" {
		return fmt.Errorf("has both pitch %q and a rest flag", n.Pitch)
	}
	if !n.Rest && n.Pitch == "" {
		return errors.New("missing both pitch and rest flag")
	}
	if n.Duration <= 0 {
		return fmt.Errorf("duration %v is not positive", n.Duration)
	}
	return nil
}

// noteJSON is the wire shape: exactly one of "note"/"rest" appears.
type noteJSON struct {
	Pitch    *string `json:"note,omitempty"`
	Rest     *bool   `json:"rest,omitempty"`
	Time     float64 `json:"time"`
	Duration float64 `json:"duration"`
	Measure  int     `json:"measure"`
}

func (n Note) MarshalJSON() ([]byte, error) {
	j := noteJSON{
		Time:     n.Time,
		Duration: n.Duration,
		Measure:  n.Measure,
	}
	if n.Rest {
		t := true
		j.Rest = &t
	} else {
		p := n.Pitch
		j.Pitch = &p
	}
	return json.Marshal(j)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var j noteJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	n.Time = j.Time
	n.Duration = j.Duration
	n.Measure = j.Measure
	n.Rest = j.Rest != nil && *j.Rest
	if j.Pitch != nil {
		n.Pitch = *j.Pitch
	} else {
		n.Pitch = ""
	}
	return nil
}
