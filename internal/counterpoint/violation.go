package counterpoint

import (
	"fmt"
	"strings"
)

// RuleKind names a voice-leading rule
type RuleKind string

const (
	RuleInadmissiblePitch RuleKind = "inadmissible-pitch"
	RuleExposedTritone    RuleKind = "exposed-tritone"
	RuleRepeatedNote      RuleKind = "repeated-note"
	RuleParallelFifth     RuleKind = "parallel-fifth"
	RuleParallelOctave    RuleKind = "parallel-octave"
	RuleDissonance        RuleKind = "dissonance-without-step"
	RuleBigLeap           RuleKind = "big-leap"
	RuleUnrecoveredLeap   RuleKind = "unrecovered-leap"
	RuleImperfectCadence  RuleKind = "imperfect-cadence"
)

// Rules lists every rule kind in evaluation order
var Rules = []RuleKind{
	RuleInadmissiblePitch,
	RuleExposedTritone,
	RuleRepeatedNote,
	RuleParallelFifth,
	RuleParallelOctave,
	RuleDissonance,
	RuleBigLeap,
	RuleUnrecoveredLeap,
	RuleImperfectCadence,
}

// Violation is the reason a candidate line was rejected. It is diagnostic
// only and never affects which lines are accepted.
type Violation struct {
	Rule      RuleKind `json:"rule"`
	Positions []int    `json:"positions"`
	Detail    string   `json:"detail"`
}

func (v Violation) String() string {
	pos := make([]string, len(v.Positions))
	for i, p := range v.Positions {
		pos[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%s at [%s]: %s", v.Rule, strings.Join(pos, ","), v.Detail)
}

// Verdict is the outcome of validating one candidate line. Trace holds the
// per-candidate diagnostic log when tracing is enabled.
type Verdict struct {
	Accepted  bool       `json:"accepted"`
	Violation *Violation `json:"violation,omitempty"`
	Trace     []string   `json:"trace,omitempty"`
}
