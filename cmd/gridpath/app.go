package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/converters"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/graphfile"
	"github.com/katalvlaran/gridpath/path"
)

// run is the whole program minus process exit. The report goes to outW and
// logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	g, err := loadGraph(cfg, log)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	if cfg.Export != "" {
		if err = exportGraph(cfg.Export, g); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
		log.Info("graph exported", "path", cfg.Export)
	}
	describeGraph(outW, g)

	res, err := astar.Search(g,
		astar.WithLogger(log),
		astar.WithMaxIterations(cfg.MaxIterations))
	if err != nil {
		if errors.Is(err, astar.ErrIterationLimit) && res != nil {
			report(outW, cfg, res)
			return &ExitError{Code: 3, Message: err.Error()}
		}
		return &ExitError{Code: 1, Message: err.Error()}
	}
	report(outW, cfg, res)

	if cfg.Verify {
		return verify(outW, g, res)
	}
	return nil
}

func loadGraph(cfg Config, log *slog.Logger) (*core.Graph, error) {
	if cfg.Graph != "" {
		log.Debug("loading graph", "path", cfg.Graph)
		return graphfile.Load(cfg.Graph)
	}
	log.Debug("generating graph", "width", cfg.Width, "height", cfg.Height, "seed", cfg.Seed)
	return builder.BuildGrid(cfg.Width, cfg.Height, builder.WithSeed(cfg.Seed))
}

func exportGraph(name string, g *core.Graph) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err = graphfile.Write(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func describeGraph(w io.Writer, g *core.Graph) {
	width, height := g.Bounds()
	start, _ := g.Start()
	goal, _ := g.Goal()
	fmt.Fprintf(w, "graph: %dx%d, %d nodes, %d links, start %s, goal %s\n",
		width, height, g.Len(), g.LinkCount(), start, goal)
}

func report(w io.Writer, cfg Config, res *astar.Result) {
	if cfg.Trace {
		for _, line := range res.Trace.Lines() {
			fmt.Fprintln(w, line)
		}
	}
	fmt.Fprintf(w, "found: %t\n", res.Found)
	fmt.Fprintf(w, "length: %s\n", path.FormatLength(res.Best.Length))
	if res.Found {
		fmt.Fprintf(w, "path: %s\n", joinPositions(res.Best.Positions()))
	}
	fmt.Fprintf(w, "iterations: %d, paths discovered: %d\n", res.Iterations, res.PathsDiscovered)
}

// verify compares the result against both reference shortest-path solvers
// and a hop-count reachability check.
func verify(w io.Writer, g *core.Graph, res *astar.Result) error {
	start, _ := g.Start()
	goal, _ := g.Goal()

	_, dj, err := dijkstra.ShortestPath(g, start, goal)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	_, gn, ok, err := converters.GonumShortestPath(g, start, goal)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	if !ok {
		gn = path.Infinity
	}
	reachable, err := bfs.Reachable(g, start, goal)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	fmt.Fprintf(w, "verify: dijkstra %s, gonum %s, reachable %t\n",
		path.FormatLength(dj), path.FormatLength(gn), reachable)
	if dj != res.Best.Length || gn != res.Best.Length || reachable != res.Found {
		return &ExitError{Code: 4, Message: fmt.Sprintf(
			"verification failed: search %s, dijkstra %s, gonum %s, reachable %t",
			path.FormatLength(res.Best.Length), path.FormatLength(dj), path.FormatLength(gn), reachable)}
	}
	return nil
}

func joinPositions(ps []core.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}
