package astar

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/path"
)

// Stepper is one search session driven an expansion at a time.
// Search is a loop over Step; use a Stepper directly to render progress.
type Stepper struct {
	g    *core.Graph
	opts Options
	log  *slog.Logger
	id   string

	startNode *core.Node
	goalNode  *core.Node

	pool       *pool
	best       *path.Path
	source     int
	iterations int
	state      State
	trace      Trace
	observed   bool
}

// NewStepper validates g and opens a session whose pool holds the start path.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have a start (core.ErrNoStart) and a goal (core.ErrNoGoal).
//  3. both must resolve to nodes (core.ErrNodeNotFound).
//
// When start equals goal the session converges immediately with a single-node
// best path of length 0.
func NewStepper(g *core.Graph, opts ...Option) (*Stepper, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	startPos, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("astar: %w", core.ErrNoStart)
	}
	goalPos, ok := g.Goal()
	if !ok {
		return nil, fmt.Errorf("astar: %w", core.ErrNoGoal)
	}
	startNode, err := g.Node(startPos)
	if err != nil {
		return nil, fmt.Errorf("astar: start: %w", err)
	}
	goalNode, err := g.Node(goalPos)
	if err != nil {
		return nil, fmt.Errorf("astar: goal: %w", err)
	}

	id := uuid.New().String()
	s := &Stepper{
		g:         g,
		opts:      cfg,
		log:       cfg.Logger.With("session", id),
		id:        id,
		startNode: startNode,
		goalNode:  goalNode,
		pool:      newPool(),
		best:      path.Empty(),
		state:     Initialized,
	}

	s.source = s.pool.add(path.Single(startNode, 0))
	s.record(EventInit, s.source, 0, "Starting at %v, looking for %v", startNode, goalNode)

	if startPos == goalPos {
		s.best = s.pool.get(s.source)
		s.best.Enabled = false
		s.record(EventGoalFound, s.source, 0, "The start is the goal")
		s.converge()
	}
	return s, nil
}

// ID returns the session id.
func (s *Stepper) ID() string { return s.id }

// State returns the current lifecycle stage.
func (s *Stepper) State() State { return s.state }

// Best returns the best path known so far.
func (s *Stepper) Best() *path.Path { return s.best }

// Path returns the pooled path with the given id.
func (s *Stepper) Path(id int) (*path.Path, bool) {
	return s.pool.paths.Get(id)
}

// PoolSize returns how many paths have been discovered, the start path included.
func (s *Stepper) PoolSize() int { return s.pool.len() }

// Step expands the current source path and selects the next one.
//
// After convergence Step is a no-op returning the final snapshot. A lookup
// failure on the graph aborts the session with a wrapped core.ErrNodeNotFound.
// When the iteration cap is hit, Step returns ErrIterationLimit without
// expanding.
func (s *Stepper) Step() (Snapshot, error) {
	if s.state == Converged {
		return s.snapshot(), nil
	}
	if s.opts.MaxIterations > 0 && s.iterations >= s.opts.MaxIterations {
		s.observe(outcomeAborted)
		return s.snapshot(), fmt.Errorf("%w: %d", ErrIterationLimit, s.iterations)
	}

	s.state = Expanding
	s.iterations++
	src := s.pool.get(s.source)
	s.record(EventIteration, -1, 0, "ITERATION %d", s.iterations)
	s.record(EventPathTested, s.source, src.Length,
		"Testing %v from %v, %d active paths", src, src.LastNode(), s.pool.active())

	if err := s.expand(src); err != nil {
		s.observe(outcomeError)
		return s.snapshot(), err
	}

	src.Enabled = false
	s.record(EventExpansionDisable, s.source, src.Length,
		"%v has been fully expanded and is now disabled", src)

	next, ok := s.pool.lightest()
	if !ok {
		s.converge()
		return s.snapshot(), nil
	}
	if s.best.IsFinite() {
		s.record(EventBestReport, -1, s.best.Length, "The current best path to the goal is %v", s.best)
	} else {
		s.record(EventBestReport, -1, path.Infinity, "There is no known path to the goal")
	}
	s.source = next
	return s.snapshot(), nil
}

// expand runs the per-neighbour steps for src.
func (s *Stepper) expand(src *path.Path) error {
	from := src.LastNode()
	links, err := s.g.Neighbors(from.Pos)
	if err != nil {
		return fmt.Errorf("astar: expanding %s: %w", from.Pos, err)
	}

	for _, l := range links {
		m, err := s.g.Node(l.To)
		if err != nil {
			return fmt.Errorf("astar: link %s->%s: %w", from.Pos, l.To, err)
		}
		s.record(EventLinkTested, s.source, src.Length, "  Testing a link to %v of length %d", m, l.Weight)

		if src.Contains(m) {
			s.record(EventSkipCycle, s.source, src.Length, "    %s is already on this path, skipped", m.Label)
			continue
		}

		cand := src.Concat(path.Single(m, l.Weight))
		if cand.Length >= s.best.Length {
			s.record(EventSkipPrune, -1, cand.Length,
				"    not shorter than the best path to the goal (%d >= %s), skipped",
				cand.Length, path.FormatLength(s.best.Length))
			continue
		}

		if m.Pos == s.goalNode.Pos {
			s.reachGoal(cand)
		}
		s.dominate(cand, m)

		id := s.pool.add(cand)
		s.record(EventPathAdded, id, cand.Length, "    %v has been added to the pool", cand)
	}
	return nil
}

// reachGoal makes cand the best path, disables the enabled paths it beats and
// parks cand itself.
func (s *Stepper) reachGoal(cand *path.Path) {
	pending := s.pool.len()
	s.best = cand
	s.record(EventGoalFound, pending, cand.Length, "    it reaches the goal")

	limit := s.best.Weight()
	s.pool.scan(func(id int, p *path.Path) bool {
		if p.Enabled && p.Length > limit {
			p.Enabled = false
			s.record(EventGoalDisable, id, p.Length,
				"    %v is disabled, longer than the new best path to the goal (%d > %d)", p, p.Length, limit)
		}
		return true
	})

	cand.Enabled = false
	s.record(EventGoalPark, pending, cand.Length, "    the new path to the goal is disabled, it will not be expanded")
}

// dominate compares cand against every pooled path ending at m, oldest first,
// keeping a running shortest length. Longer paths are disabled; a path at most
// as long as the running length disables cand instead.
func (s *Stepper) dominate(cand *path.Path, m *core.Node) {
	pending := s.pool.len()
	bestLen := cand.Length
	for _, id := range s.pool.endingAt(m.Pos) {
		p := s.pool.get(id)
		if p.Length > bestLen {
			p.Enabled = false
			s.record(EventDominanceExisting, id, p.Length,
				"    %v is disabled, a shorter path reaches %s", p, m.Label)
			continue
		}
		cand.Enabled = false
		bestLen = p.Length
		s.record(EventDominanceCandidate, pending, cand.Length,
			"    this path is disabled, %v reaches %s at least as fast", p, m.Label)
	}
}

func (s *Stepper) converge() {
	s.state = Converged
	s.record(EventConverged, -1, s.best.Length, "The path-finding was successfully completed")
	if s.best.IsFinite() {
		s.record(EventSummary, -1, s.best.Length, "The fastest path from %v to %v is through the %v",
			s.startNode, s.goalNode, s.best)
		s.observe(outcomeFound)
	} else {
		s.record(EventSummary, -1, path.Infinity, "There is no path from %v to %v", s.startNode, s.goalNode)
		s.observe(outcomeUnreachable)
	}
}

// observe reports the session to metrics once.
func (s *Stepper) observe(outcome string) {
	if s.observed {
		return
	}
	s.observed = true
	searchesTotal.WithLabelValues(outcome).Inc()
	searchIterations.Observe(float64(s.iterations))
	searchPoolSize.Observe(float64(s.pool.len()))
}

// Result returns the session outcome so far. The trace is copied; Best is shared.
func (s *Stepper) Result() *Result {
	tr := make(Trace, len(s.trace))
	copy(tr, s.trace)
	return &Result{
		SessionID:       s.id,
		Best:            s.best,
		Found:           s.best.IsFinite(),
		Iterations:      s.iterations,
		PathsDiscovered: s.pool.len(),
		Trace:           tr,
	}
}

func (s *Stepper) snapshot() Snapshot {
	return Snapshot{
		Iteration: s.iterations,
		SourceID:  s.source,
		Active:    s.pool.active(),
		Best:      s.best,
		State:     s.state,
	}
}

func (s *Stepper) record(kind EventKind, pathID int, length int64, format string, args ...any) {
	e := Event{
		Kind:      kind,
		Iteration: s.iterations,
		PathID:    pathID,
		Length:    length,
		Message:   fmt.Sprintf(format, args...),
	}
	s.trace = append(s.trace, e)
	s.log.Debug(e.Message, "kind", kind.String(), "iteration", e.Iteration, "path", pathID)
}
