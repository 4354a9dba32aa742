package services

import (
	"github.com/Conceptual-Machines/counterpoint-api/internal/models"
	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
)

const defaultVelocity = 100

// VoiceToNoteEvents places a voice on the beat grid. Durations are quarter
// lengths, so one quarter note is one beat. Rests produce no event but
// advance time.
func VoiceToNoteEvents(v music.Voice, velocity int) []models.NoteEvent {
	events := make([]models.NoteEvent, 0, len(v))
	start := 0.0
	for _, p := range v {
		if midi, err := p.MIDI(); err == nil {
			events = append(events, models.NoteEvent{
				MidiNoteNumber: midi,
				Velocity:       velocity,
				StartBeats:     start,
				DurationBeats:  p.Duration(),
			})
		}
		start += p.Duration()
	}
	return events
}

// BuildTimeline aligns the cantus firmus and counterpoint
func BuildTimeline(cantusFirmus, counterpoint music.Voice) models.Timeline {
	return models.Timeline{
		CantusFirmus: VoiceToNoteEvents(cantusFirmus, defaultVelocity),
		Counterpoint: VoiceToNoteEvents(counterpoint, defaultVelocity),
		TotalBeats:   max(cantusFirmus.TotalDuration(), counterpoint.TotalDuration()),
	}
}
