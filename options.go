package raylink

import (
	"log"

	"github.com/lucentgraph/raylink/illuminate"
)

// Option configures ambient concerns of a LinkDistance call (logging,
// progress hooks, a round budget). It never changes query semantics,
// matching spec.md §6's note that Option only carries ambient behavior.
type Option func(*settings)

type settings struct {
	igOpts []illuminate.Option
}

// WithLogger routes one progress line per illumination round to l instead
// of discarding it, mirroring illuminate.WithLogger.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.igOpts = append(s.igOpts, illuminate.WithLogger(l)) }
}

// WithOnRound installs a callback invoked once per round, mirroring
// bfs.WithOnVisit's hook shape.
func WithOnRound(fn func(round int)) Option {
	return func(s *settings) { s.igOpts = append(s.igOpts, illuminate.WithOnRound(fn)) }
}

// WithMaxRounds bounds the number of illumination rounds attempted before
// LinkDistance returns illuminate.ErrRoundBudgetExceeded, mirroring
// dijkstra.WithMaxDistance as a safety valve against malformed obstacle
// sets that would otherwise loop until the frontier empties on its own.
func WithMaxRounds(n int) Option {
	return func(s *settings) { s.igOpts = append(s.igOpts, illuminate.WithMaxRounds(n)) }
}
