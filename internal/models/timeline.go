package models

// NoteEvent represents a single musical note with timing and pitch information
type NoteEvent struct {
	MidiNoteNumber int     `json:"midiNoteNumber"`
	Velocity       int     `json:"velocity"`
	StartBeats     float64 `json:"startBeats"`
	DurationBeats  float64 `json:"durationBeats"`
}

// Timeline aligns both voices on a shared beat grid
type Timeline struct {
	CantusFirmus []NoteEvent `json:"cantus_firmus"`
	Counterpoint []NoteEvent `json:"counterpoint"`
	TotalBeats   float64     `json:"total_beats"`
}
