// Package jugs implements the water pouring puzzle.
//
// A number of jugs of known capacities hold some water. In a move, water is
// poured from a non-empty jug into another one that is not full, until the
// source is empty or the target is full. The puzzle is solved when every jug
// holds its goal amount. The classic instance has jugs of 3, 5 and 8 liters,
// starts with the two smaller jugs full, and asks for 4 liters in each of the
// two larger jugs.
package jugs

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"
	"statesearch/game"
	"strings"
)

// Move pours jug From into jug To. Jugs are identified by their index.
type Move = game.TwoPhaseMove[int]

// State is an immutable configuration of the jugs.
type State struct {
	capacities []int // Shared between states, never modified
	goal       []int // Shared between states, never modified
	contents   []int
}

var _ game.TwoPhasePuzzle[*State, int] = (*State)(nil)

// New validates the parameters and returns the initial state.
func New(capacities, contents, goal []int) (*State, error) {
	if len(capacities) < 2 {
		return nil, fmt.Errorf("%w: need at least two jugs, got %d", game.ErrInvalidState, len(capacities))
	}
	if len(contents) != len(capacities) || len(goal) != len(capacities) {
		return nil, fmt.Errorf("%w: got %d capacities, %d contents and %d goal amounts",
			game.ErrInvalidState, len(capacities), len(contents), len(goal))
	}

	totalContents, totalGoal := 0, 0
	for i, capacity := range capacities {
		if capacity <= 0 {
			return nil, fmt.Errorf("%w: jug %d has non-positive capacity %d", game.ErrInvalidState, i, capacity)
		}
		if contents[i] < 0 || contents[i] > capacity {
			return nil, fmt.Errorf("%w: jug %d holds %d, capacity is %d", game.ErrInvalidState, i, contents[i], capacity)
		}
		if goal[i] < 0 || goal[i] > capacity {
			return nil, fmt.Errorf("%w: jug %d goal %d, capacity is %d", game.ErrInvalidState, i, goal[i], capacity)
		}
		totalContents += contents[i]
		totalGoal += goal[i]
	}
	// Pouring preserves the total amount of water
	if totalContents != totalGoal {
		return nil, fmt.Errorf("%w: jugs hold %d in total but the goal needs %d", game.ErrInvalidState, totalContents, totalGoal)
	}

	return &State{
		capacities: slices.Clone(capacities),
		goal:       slices.Clone(goal),
		contents:   slices.Clone(contents),
	}, nil
}

// Classic returns the 3/5/8 liter instance.
func Classic() *State {
	s, err := New([]int{3, 5, 8}, []int{3, 5, 0}, []int{0, 4, 4})
	if err != nil {
		panic(err)
	}
	return s
}

func (s *State) Capacities() []int {
	return slices.Clone(s.capacities)
}

func (s *State) Contents() []int {
	return slices.Clone(s.contents)
}

func (s *State) Goal() []int {
	return slices.Clone(s.goal)
}

func (s *State) IsSolved() bool {
	return slices.Equal(s.contents, s.goal)
}

// IsLegalToMoveFrom reports whether jug from exists and holds any water.
func (s *State) IsLegalToMoveFrom(from int) bool {
	return s.isJug(from) && s.contents[from] > 0
}

func (s *State) IsLegalMove(move Move) bool {
	return s.IsLegalToMoveFrom(move.From) &&
		s.isJug(move.To) &&
		move.From != move.To &&
		s.contents[move.To] < s.capacities[move.To]
}

// LegalMoves returns the legal moves ordered by source, then target.
func (s *State) LegalMoves() []Move {
	var moves []Move
	for from := range s.contents {
		if !s.IsLegalToMoveFrom(from) {
			continue
		}
		for to := range s.contents {
			if move := game.NewTwoPhaseMove(from, to); s.IsLegalMove(move) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// Play pours as much water as possible and returns the resulting state.
func (s *State) Play(move Move) (*State, error) {
	if !s.IsLegalMove(move) {
		return s, fmt.Errorf("cannot pour %v in %v: %w", move, s, game.ErrIllegalMove)
	}

	contents := slices.Clone(s.contents)
	change := min(contents[move.From], s.capacities[move.To]-contents[move.To])
	contents[move.From] -= change
	contents[move.To] += change

	return &State{
		capacities: s.capacities,
		goal:       s.goal,
		contents:   contents,
	}, nil
}

func (s *State) Hash() game.StateHash {
	h := fnv.New64a()
	buf := make([]byte, binary.MaxVarintLen64)
	for _, c := range s.contents {
		n := binary.PutVarint(buf, int64(c))
		h.Write(buf[:n])
	}
	return game.StateHash(h.Sum64())
}

// Equal compares the jug contents. States of differently shaped puzzles are never equal.
func (s *State) Equal(other *State) bool {
	return slices.Equal(s.contents, other.contents) &&
		slices.Equal(s.capacities, other.capacities)
}

func (s *State) String() string {
	parts := make([]string, len(s.contents))
	for i, c := range s.contents {
		parts[i] = fmt.Sprintf("[%d/%d]", c, s.capacities[i])
	}
	return strings.Join(parts, " ")
}

func (s *State) isJug(i int) bool {
	return 0 <= i && i < len(s.contents)
}
