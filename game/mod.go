package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned by Play when the move is not legal in the receiver state.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidState is returned by constructors of concrete states given invalid parameters.
	ErrInvalidState = errors.New("invalid state")
)

type StateHash uint64

// Puzzle is a single-agent state that can be solved by a searcher.
//
// States should be immutable - Play always returns a new copy and never
// modifies the receiver. Equal states must report equal hashes.
type Puzzle[S any, M any] interface {
	LegalMoves() []M
	IsSolved() bool
	Play(M) (S, error)
	Hash() StateHash
	Equal(S) bool
}

// Ordered is implemented by move types that define a stable processing order.
type Ordered[M any] interface {
	Compare(M) int
}

// TwoPhasePuzzle is a puzzle whose moves are (source, target) pairs. The
// source can be checked on its own before the full move is validated.
type TwoPhasePuzzle[S any, T comparable] interface {
	Puzzle[S, TwoPhaseMove[T]]
	IsLegalToMoveFrom(from T) bool
	IsLegalMove(move TwoPhaseMove[T]) bool
}

// Replay plays the moves in order starting from initial and returns the final state.
func Replay[S Puzzle[S, M], M any](initial S, moves []M) (S, error) {
	state := initial
	for i, move := range moves {
		next, err := state.Play(move)
		if err != nil {
			return state, fmt.Errorf("replaying move %d (%v): %w", i, move, err)
		}
		state = next
	}
	return state, nil
}
