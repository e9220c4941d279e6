package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sumState adds moves to a running total; negative moves are illegal.
type sumState struct {
	total int
}

func (s sumState) LegalMoves() []int {
	return []int{1, 2}
}

func (s sumState) IsSolved() bool {
	return s.total == 3
}

func (s sumState) Play(n int) (sumState, error) {
	if n < 0 {
		return s, ErrIllegalMove
	}
	return sumState{total: s.total + n}, nil
}

func (s sumState) Hash() StateHash {
	return StateHash(s.total)
}

func (s sumState) Equal(other sumState) bool {
	return s == other
}

type orderedLocus int

func (o orderedLocus) Compare(other orderedLocus) int {
	// Reverse order to tell it apart from the int fallback
	return int(other) - int(o)
}

func TestReplay(t *testing.T) {
	t.Run("applying every move", func(t *testing.T) {
		final, err := Replay(sumState{}, []int{1, 2})

		require.NoError(t, err)
		require.Equal(t, 3, final.total)
		require.True(t, final.IsSolved())
	})

	t.Run("stopping at the first illegal move", func(t *testing.T) {
		final, err := Replay(sumState{}, []int{1, -1, 2})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorContains(t, err, "move 1")
		require.Equal(t, 1, final.total, "Should return the last legal state")
	})

	t.Run("returning the initial state for no moves", func(t *testing.T) {
		final, err := Replay(sumState{total: 3}, nil)

		require.NoError(t, err)
		require.True(t, final.IsSolved())
	})
}

func TestTwoPhaseMove(t *testing.T) {
	t.Run("ordering by source, then target", func(t *testing.T) {
		require.Negative(t, NewTwoPhaseMove(0, 2).Compare(NewTwoPhaseMove(1, 0)))
		require.Negative(t, NewTwoPhaseMove(1, 0).Compare(NewTwoPhaseMove(1, 2)))
		require.Zero(t, NewTwoPhaseMove(1, 2).Compare(NewTwoPhaseMove(1, 2)))
		require.Positive(t, NewTwoPhaseMove("b", "a").Compare(NewTwoPhaseMove("a", "z")))
	})

	t.Run("ordering loci by their own Compare", func(t *testing.T) {
		low := NewTwoPhaseMove(orderedLocus(5), orderedLocus(0))
		high := NewTwoPhaseMove(orderedLocus(1), orderedLocus(0))

		require.Negative(t, low.Compare(high), "Locus Compare should take precedence")
	})

	t.Run("comparing as a value", func(t *testing.T) {
		moves := map[TwoPhaseMove[int]]bool{NewTwoPhaseMove(0, 1): true}

		require.True(t, moves[TwoPhaseMove[int]{From: 0, To: 1}])
	})

	t.Run("formatting", func(t *testing.T) {
		require.Equal(t, "0 -> 2", NewTwoPhaseMove(0, 2).String())
	})
}

func TestPlayer(t *testing.T) {
	require.Equal(t, Player2, Player1.Opponent())
	require.Equal(t, Player1, Player2.Opponent())
	require.Equal(t, "Player 1", Player1.String())
	require.Equal(t, Player1Wins, StatusAfter(Player1))
	require.Equal(t, Player2Wins, StatusAfter(Player2))
	require.Equal(t, "Player 2 wins", Player2Wins.String())
	require.Equal(t, "in progress", InProgress.String())
}
