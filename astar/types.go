package astar

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridpath/path"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrIterationLimit indicates the caller-imposed iteration cap was hit
	// before the search converged. The partial result is returned alongside.
	ErrIterationLimit = errors.New("astar: iteration limit reached")
)

// State is the lifecycle stage of a search session.
type State int

const (
	// Initialized: the pool holds only the single-node start path.
	Initialized State = iota

	// Expanding: at least one expansion step has run and enabled paths remain.
	Expanding

	// Converged: no enabled path remains; Best is final.
	Converged
)

// String returns the lower-case name of the state.
func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Expanding:
		return "expanding"
	case Converged:
		return "converged"
	default:
		return "unknown"
	}
}

// Options configures a search session.
//
// Logger        – receives session start/finish at Info and every trace event at Debug.
// MaxIterations – 0 means unbounded; otherwise Step fails with ErrIterationLimit
//
//	once that many expansions have run without converging.
type Options struct {
	Logger        *slog.Logger
	MaxIterations int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns a discard logger and no iteration cap.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(discardHandler{}),
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("astar: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxIterations caps the number of expansion steps. Zero removes the cap.
// Panics if n < 0.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("astar: WithMaxIterations must be non-negative")
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// Result is the outcome of a search session.
type Result struct {
	// SessionID uniquely identifies the run in logs and traces.
	SessionID string

	// Best is the cheapest path found, or the empty infinite-length sentinel
	// when the goal is unreachable.
	Best *path.Path

	// Found reports whether Best is a real route.
	Found bool

	// Iterations is the number of expansion steps executed.
	Iterations int

	// PathsDiscovered is the final pool size, the start path included.
	PathsDiscovered int

	// Trace lists every decision in order.
	Trace Trace
}

// Snapshot is the state of a Stepper after one call to Step.
// Best is shared with the session and must not be modified.
type Snapshot struct {
	Iteration int
	SourceID  int
	Active    int
	Best      *path.Path
	State     State
}
