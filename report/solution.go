// Package report presents search results: the solution path on a terminal,
// search statistics as CSV, and states discovered per depth as a chart.
package report

import (
	"errors"
	"fmt"
	"io"
	"statesearch/game"
	"statesearch/searcher"

	"github.com/logrusorgru/aurora"
)

// PrintSolution replays moves from initial and prints every intermediate state.
// searchErr is the error returned by the solver, if any; it is reported instead of a path.
func PrintSolution[S game.Puzzle[S, M], M any](w io.Writer, initial S, moves []M, searchErr error) error {
	fmt.Fprintf(w, "Start: %v\n", initial)

	switch {
	case errors.Is(searchErr, searcher.ErrNotSolvable):
		fmt.Fprintln(w, aurora.Red("No solution exists"))
		return nil
	case errors.Is(searchErr, searcher.ErrBudgetExceeded):
		fmt.Fprintln(w, aurora.Red(fmt.Sprintf("Gave up: %v", searchErr)))
		return nil
	case searchErr != nil:
		fmt.Fprintln(w, aurora.Red(fmt.Sprintf("Search failed: %v", searchErr)))
		return nil
	}

	state := initial
	for i, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			fmt.Fprintln(w, aurora.Red(fmt.Sprintf("%d. %v is illegal", i+1, move)))
			return fmt.Errorf("replaying move %d: %w", i+1, err)
		}
		state = next
		fmt.Fprintf(w, "%d. %v => %v\n", i+1, move, state)
	}

	if !state.IsSolved() {
		fmt.Fprintln(w, aurora.Red("Final state is not a goal"))
		return fmt.Errorf("%v after %d moves: %w", state, len(moves), game.ErrInvalidState)
	}
	fmt.Fprintln(w, aurora.Green(fmt.Sprintf("Solved in %d moves", len(moves))))
	return nil
}
