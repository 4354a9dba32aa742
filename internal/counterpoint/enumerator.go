package counterpoint

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"slices"
	"time"

	"github.com/Conceptual-Machines/counterpoint-api/internal/music"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many candidates a worker validates between
// context checks
const cancelCheckInterval = 4096

// Stats summarises one enumeration
type Stats struct {
	SearchSpaceSize *big.Int         `json:"-"`
	Examined        uint64           `json:"examined"`
	Accepted        uint64           `json:"accepted"`
	Rejected        map[RuleKind]int `json:"rejected"`
	Workers         int              `json:"workers"`
	Duration        time.Duration    `json:"-"`
}

// SearchSpaceSizeString renders the exact space size
func (s Stats) SearchSpaceSizeString() string {
	if s.SearchSpaceSize == nil {
		return "0"
	}
	return s.SearchSpaceSize.String()
}

// Enumerator validates every line of a search space across a worker pool
type Enumerator struct {
	validator *Validator
	workers   int
	maxSpace  uint64
}

// NewEnumerator creates an enumerator. workers <= 0 uses runtime.NumCPU();
// maxSpace 0 disables the size ceiling.
func NewEnumerator(validator *Validator, workers int, maxSpace uint64) *Enumerator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Enumerator{
		validator: validator,
		workers:   workers,
		maxSpace:  maxSpace,
	}
}

type accepted struct {
	index uint64
	line  music.Voice
}

type partial struct {
	examined uint64
	accepted []accepted
	rejected map[RuleKind]int
}

// Enumerate returns every accepted line of space in index order. The result
// does not depend on the number of workers.
func (e *Enumerator) Enumerate(ctx context.Context, ref music.Voice, space *SearchSpace) ([]music.Voice, Stats, error) {
	start := time.Now()
	stats := Stats{
		SearchSpaceSize: space.Size(),
		Rejected:        make(map[RuleKind]int),
	}

	count, ok := space.Count()
	if !ok || (e.maxSpace > 0 && count > e.maxSpace) {
		return nil, stats, fmt.Errorf("%w: %s candidates, limit %d",
			ErrSearchSpaceTooLarge, stats.SearchSpaceSizeString(), e.maxSpace)
	}

	workers := e.workers
	if uint64(workers) > count {
		workers = int(count)
	}
	stats.Workers = workers

	parts := make([]partial, workers)
	chunk := count / uint64(workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		from := uint64(w) * chunk
		to := from + chunk
		if w == workers-1 {
			to = count
		}

		g.Go(func() error {
			part := partial{rejected: make(map[RuleKind]int)}
			for idx, line := range space.Range(from, to) {
				if part.examined%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				part.examined++

				verdict, err := e.validator.Validate(ref, line)
				if err != nil {
					return err
				}
				if verdict.Accepted {
					part.accepted = append(part.accepted, accepted{index: idx, line: line})
				} else {
					part.rejected[verdict.Violation.Rule]++
				}
			}
			parts[w] = part
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		stats.Duration = time.Since(start)
		return nil, stats, err
	}

	var all []accepted
	for _, part := range parts {
		stats.Examined += part.examined
		all = append(all, part.accepted...)
		for rule, n := range part.rejected {
			stats.Rejected[rule] += n
		}
	}
	slices.SortFunc(all, func(a, b accepted) int {
		switch {
		case a.index < b.index:
			return -1
		case a.index > b.index:
			return 1
		default:
			return 0
		}
	})

	solutions := make([]music.Voice, len(all))
	for i, a := range all {
		solutions[i] = a.line
	}
	stats.Accepted = uint64(len(solutions))
	stats.Duration = time.Since(start)
	return solutions, stats, nil
}
