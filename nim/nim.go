// Package nim implements the subtraction game: two players take turns removing
// between 1 and a fixed limit of objects from a single pile. Whoever takes the
// last object wins.
package nim

import (
	"fmt"
	"statesearch/game"
	"strconv"
	"strings"
)

type State struct {
	objects int
	limit   int
	player  game.Player
}

var _ game.Game[State, int] = State{}

// New returns the initial state. Both objects and limit must be positive.
func New(objects, limit int) (State, error) {
	if objects < 1 || limit < 1 {
		return State{}, fmt.Errorf("%w: objects=%d limit=%d, both must be positive", game.ErrInvalidState, objects, limit)
	}
	return State{objects: objects, limit: limit, player: game.Player1}, nil
}

func (s State) Objects() int {
	return s.objects
}

func (s State) Limit() int {
	return s.limit
}

func (s State) NextPlayer() game.Player {
	return s.player
}

func (s State) IsGameOver() bool {
	return s.objects == 0
}

func (s State) Status() game.Status {
	if !s.IsGameOver() {
		return game.InProgress
	}
	// The player who took the last object already handed the turn over
	return game.StatusAfter(s.player.Opponent())
}

// IsLegalMove reports whether n objects can be removed.
func (s State) IsLegalMove(n int) bool {
	return 0 < n && n <= s.limit && n <= s.objects
}

func (s State) LegalMoves() []int {
	moves := []int{}
	for n := 1; s.IsLegalMove(n); n++ {
		moves = append(moves, n)
	}
	return moves
}

// Play removes n objects and passes the turn.
func (s State) Play(n int) (State, error) {
	if !s.IsLegalMove(n) {
		return s, fmt.Errorf("cannot remove %d of %d objects (limit %d): %w", n, s.objects, s.limit, game.ErrIllegalMove)
	}
	s.objects -= n
	s.player = s.player.Opponent()
	return s, nil
}

func (s State) String() string {
	return fmt.Sprintf("%d: [ %s]", s.objects, strings.Repeat("O ", s.objects))
}

// ParseMove reads the number of objects to remove.
func ParseMove(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("expected a number of objects: %w", err)
	}
	return n, nil
}
