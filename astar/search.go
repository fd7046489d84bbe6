package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/path"
)

// Search runs a session on g from g.Start() to g.Goal() until it converges.
//
// Returns:
//
//   - res: the best path (or the infinite sentinel with Found=false when the
//     goal is unreachable), iteration count, pool size and the full trace.
//   - err: ErrNilGraph, core.ErrNoStart, core.ErrNoGoal, or a wrapped
//     core.ErrNodeNotFound for a malformed graph (res is nil). With
//     WithMaxIterations, ErrIterationLimit is returned together with the
//     partial result.
//
// An unreachable goal is not an error.
func Search(g *core.Graph, opts ...Option) (*Result, error) {
	s, err := NewStepper(g, opts...)
	if err != nil {
		searchesTotal.WithLabelValues(outcomeError).Inc()
		return nil, err
	}

	s.log.Info("search started",
		"start", s.startNode.Pos.String(),
		"goal", s.goalNode.Pos.String(),
		"nodes", g.Len())

	for s.State() != Converged {
		if _, err = s.Step(); err != nil {
			if errors.Is(err, ErrIterationLimit) {
				s.log.Warn("search aborted", "iterations", s.iterations, "error", err)
				return s.Result(), err
			}
			s.log.Error("search failed", "error", err)
			return nil, err
		}
	}

	res := s.Result()
	s.log.Info("search finished",
		"found", res.Found,
		"length", path.FormatLength(res.Best.Length),
		"iterations", res.Iterations,
		"paths", res.PathsDiscovered)
	return res, nil
}
