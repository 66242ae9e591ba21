// Package musicxml decodes score-partwise documents, the interchange format
// the sheet-music OCR emits. Only the elements the importer consumes are
// mapped; everything else is ignored by the XML decoder.
package musicxml

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// Document is one score-partwise file.
type Document struct {
	XMLName        xml.Name       `xml:"score-partwise"`
	MovementTitle  string         `xml:"movement-title"`
	Identification Identification `xml:"identification"`
	Parts          []Part         `xml:"part"`
}

type Identification struct {
	Composer string `xml:"creator"`
}

type Part struct {
	ID       string    `xml:"id,attr"`
	Measures []Measure `xml:"measure"`
}

type Measure struct {
	Number     string     `xml:"number,attr"`
	Attributes Attributes `xml:"attributes"`
	Notes      []Note     `xml:"note"`
}

// Attributes carries the measure-level declarations: the subdivision count
// per quarter note and the time signature.
type Attributes struct {
	Divisions int           `xml:"divisions"`
	Time      TimeSignature `xml:"time"`
}

type TimeSignature struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type Note struct {
	Pitch    Pitch    `xml:"pitch"`
	Rest     xml.Name `xml:"rest"`
	Chord    xml.Name `xml:"chord"`
	Duration int      `xml:"duration"`
}

// IsRest reports whether the note element carries a <rest/> marker.
func (n *Note) IsRest() bool {
	return n.Rest.Local != ""
}

// IsChord reports whether the note element carries a <chord/> marker,
// meaning it sounds together with the preceding note instead of after it.
func (n *Note) IsChord() bool {
	return n.Chord.Local != ""
}

type Pitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter"`
	Octave int    `xml:"octave"`
}

// FindDivisions returns the document's subdivision ticks per quarter note,
// or 0 when no measure declares them.
func (d *Document) FindDivisions() int {
	for _, part := range d.Parts {
		for _, measure := range part.Measures {
			if measure.Attributes.Divisions != 0 {
				return measure.Attributes.Divisions
			}
		}
	}
	return 0
}

// FindTimeSignature returns the first declared time signature, or zero
// values when none is present.
func (d *Document) FindTimeSignature() TimeSignature {
	for _, part := range d.Parts {
		for _, measure := range part.Measures {
			if measure.Attributes.Time.Beats != 0 {
				return measure.Attributes.Time
			}
		}
	}
	return TimeSignature{}
}

// Decode parses a score-partwise document. OCR output declares a variety of
// encodings, so the decoder goes through a charset-aware reader.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
