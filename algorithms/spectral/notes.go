package spectral

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// C1Hz is the lowest frequency accepted by octave and log band scales,
// C1 rounded to three decimals.
var C1Hz = math.Round(mustNoteToHz("C1")*1000) / 1000

var noteOffsets = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// MidiToHz converts a (possibly fractional) MIDI note number to Hz, A4 = 440
func MidiToHz(midi float64) float64 {
	return 440.0 * math.Pow(2.0, (midi-69.0)/12.0)
}

// NoteToHz parses scientific pitch notation ("C1", "A#4", "Bb2") into Hz
func NoteToHz(note string) (float64, error) {
	s := strings.TrimSpace(note)
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid note %q", note)
	}

	offset, ok := noteOffsets[strings.ToUpper(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note name in %q", note)
	}
	rest := s[1:]
	for len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		if rest[0] == '#' {
			offset++
		} else {
			offset--
		}
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in %q: %w", note, err)
	}

	midi := float64((octave+1)*12 + offset)
	return MidiToHz(midi), nil
}

func mustNoteToHz(note string) float64 {
	hz, err := NoteToHz(note)
	if err != nil {
		panic(err)
	}
	return hz
}
