package main

import (
	"bytes"
	"os"
	"path/filepath"
	"statesearch/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the command line with a config path that does not exist, so defaults apply.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"}, args...))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveJugs(t *testing.T) {
	t.Run("solving the default instance", func(t *testing.T) {
		out, err := execute(t, "", "solve", "jugs")

		require.NoError(t, err)
		require.Contains(t, out, "Start: [3/3] [5/5] [0/8]")
		require.Contains(t, out, "Solved in 7 moves")
	})

	t.Run("solving an instance from flags", func(t *testing.T) {
		out, err := execute(t, "", "solve", "jugs", "--capacities", "4,9", "--contents", "0,9", "--goal", "0,9")

		require.NoError(t, err)
		require.Contains(t, out, "Solved in 0 moves")
	})

	t.Run("reporting an unreachable goal", func(t *testing.T) {
		out, err := execute(t, "", "solve", "jugs", "--capacities", "2,4", "--contents", "2,0", "--goal", "1,1")

		require.NoError(t, err)
		require.Contains(t, out, "No solution exists")
	})

	t.Run("failing when the budget runs out", func(t *testing.T) {
		out, err := execute(t, "", "solve", "jugs", "--max-expansions", "1")

		require.ErrorIs(t, err, searcher.ErrBudgetExceeded)
		require.Contains(t, out, "Gave up")
	})

	t.Run("rejecting an inconsistent instance", func(t *testing.T) {
		_, err := execute(t, "", "solve", "jugs", "--goal", "1,1,1")

		require.Error(t, err)
	})

	t.Run("writing the chart and records", func(t *testing.T) {
		dir := t.TempDir()
		chart := filepath.Join(dir, "levels.html")
		records := filepath.Join(dir, "records")

		_, err := execute(t, "", "solve", "jugs", "--chart", chart, "--records", records)

		require.NoError(t, err)
		require.FileExists(t, chart)
		written, err := filepath.Glob(filepath.Join(records, "*", "search_records.csv"))
		require.NoError(t, err)
		require.Len(t, written, 1)
		content, err := os.ReadFile(written[0])
		require.NoError(t, err)
		require.Contains(t, string(content), "solved,7,")
	})
}

func TestPlay(t *testing.T) {
	t.Run("playing nim between two people", func(t *testing.T) {
		out, err := execute(t, "3\n2\n", "play", "nim", "--objects", "5", "--limit", "3", "--opponent", "human")

		require.NoError(t, err)
		require.Contains(t, out, "Player 2 wins")
	})

	t.Run("playing nim against the computer", func(t *testing.T) {
		out, err := execute(t, strings.Repeat("1\n", 10), "play", "nim", "--objects", "6", "--limit", "2", "--opponent", "random", "--seed", "3")

		require.NoError(t, err)
		require.Contains(t, out, "wins")
	})

	t.Run("playing coins between two people", func(t *testing.T) {
		input := "0 0\n1 1\n4 4\n3 3\n1 1\n2 2\n"

		out, err := execute(t, input, "play", "coins", "--opponent", "human")

		require.NoError(t, err)
		require.Contains(t, out, "Player 1 wins")
	})

	t.Run("stopping when the player leaves", func(t *testing.T) {
		_, err := execute(t, "", "play", "coins", "--opponent", "human")

		require.Error(t, err)
	})

	t.Run("rejecting an unknown opponent", func(t *testing.T) {
		_, err := execute(t, "", "play", "nim", "--opponent", "robot")

		require.Error(t, err)
	})
}

func TestLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-level", "loud", "solve", "jugs"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()

	require.ErrorContains(t, err, "invalid log level")
}
