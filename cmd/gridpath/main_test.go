package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/graphfile"
)

const (
	testMap  = "../../graphfile/testdata/testmap.hcl"
	testMap2 = "../../graphfile/testdata/testmap2.hcl"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(&out, &logs, args)
	return out.String(), logs.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *ExitError {
	t.Helper()
	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr), "want *ExitError, got %v", err)
	assert.Equal(t, code, exitErr.Code)
	return exitErr
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun_Help(t *testing.T) {
	out, _, err := runCLI(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "-max-iterations")
}

func TestRun_ParseError(t *testing.T) {
	_, _, err := runCLI(t, "--no-such-flag")
	exitErr := requireExitCode(t, err, 2)
	assert.Contains(t, exitErr.Message, "flag provided but not defined: -no-such-flag")
}

func TestRun_GraphFile(t *testing.T) {
	out, _, err := runCLI(t, "-graph", testMap, "-verify")
	require.NoError(t, err)

	assert.Contains(t, out, "graph: 3x3, 9 nodes, 13 links, start (0,0), goal (2,0)\n")
	assert.Contains(t, out, "found: true\n")
	assert.Contains(t, out, "length: 18\n")
	assert.Contains(t, out, "path: (0,0) -> (1,0) -> (1,1) -> (2,0)\n")
	assert.Contains(t, out, "iterations: 4, paths discovered: 6\n")
	assert.Contains(t, out, "verify: dijkstra 18, gonum 18, reachable true\n")
	assert.NotContains(t, out, "ITERATION", "trace is off by default")
}

func TestRun_PositionalGraphAndTrace(t *testing.T) {
	out, _, err := runCLI(t, "-trace", testMap2)
	require.NoError(t, err)

	assert.Contains(t, out, "length: 54\n")
	assert.Contains(t, out, "ITERATION 1\n")
	assert.Contains(t, out, "The fastest path from")
}

func TestRun_IterationLimit(t *testing.T) {
	out, _, err := runCLI(t, "-graph", testMap, "-max-iterations", "1")
	requireExitCode(t, err, 3)
	assert.Contains(t, out, "iterations: 1,")
}

func TestRun_MissingGraph(t *testing.T) {
	_, _, err := runCLI(t, "-graph", filepath.Join(t.TempDir(), "none.hcl"))
	exitErr := requireExitCode(t, err, 1)
	assert.Contains(t, exitErr.Message, "graphfile")
}

func TestRun_GenerateAndExport(t *testing.T) {
	exported := filepath.Join(t.TempDir(), "grid.hcl")
	out, logs, err := runCLI(t,
		"-width", "4", "-height", "3", "-seed", "7",
		"-export", exported, "-verify", "-log-format", "json")
	require.NoError(t, err)

	assert.Contains(t, out, "graph: 4x3, 12 nodes,")
	assert.Contains(t, out, "verify: dijkstra ")
	assert.Contains(t, logs, `"msg":"graph exported"`)
	assert.Contains(t, logs, `"msg":"search finished"`)

	g, err := graphfile.Load(exported)
	require.NoError(t, err)
	assert.Equal(t, 12, g.Len())

	again, _, err := runCLI(t, "-graph", exported)
	require.NoError(t, err)
	assert.Contains(t, again, "graph: 4x3, 12 nodes,")
}

func TestRun_ConfigFile(t *testing.T) {
	cfgPath := writeFile(t, "run.yaml", "graph: "+testMap2+"\nverify: true\nmax_iterations: 1\nlog_level: warn\n")

	_, _, err := runCLI(t, "-config", cfgPath)
	requireExitCode(t, err, 3)

	out, logs, err := runCLI(t, "-config", cfgPath, "-max-iterations", "0")
	require.NoError(t, err, "an explicit flag overrides the file")
	assert.Contains(t, out, "verify: dijkstra 54, gonum 54, reachable true\n")
	assert.NotContains(t, logs, "search finished", "info is below warn")
}

func TestRun_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "widht: 4\n"},
		{"bad type", "width: wide\n"},
		{"bad level", "log_level: loud\n"},
		{"bad format", "log_format: xml\n"},
		{"negative cap", "max_iterations: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "-config", writeFile(t, "bad.yaml", tt.yaml))
			requireExitCode(t, err, 2)
		})
	}

	_, _, err := runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	requireExitCode(t, err, 2)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeFile(t, "partial.yaml", "seed: 42\n"))
	require.NoError(t, err)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, 5, cfg.Width, "unset keys keep their defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger("warn", "json", &buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))

	buf.Reset()
	newLogger("bogus", "text", &buf).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
