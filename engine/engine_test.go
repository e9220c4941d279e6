package engine

import (
	"bytes"
	"statesearch/coins"
	"statesearch/game"
	"statesearch/nim"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedAgent plays a fixed sequence of moves.
type scriptedAgent[M any] struct {
	moves []M
}

func (a *scriptedAgent[M]) FindMove(nim.State) (M, error) {
	move := a.moves[0]
	a.moves = a.moves[1:]
	return move, nil
}

func newNim(t *testing.T, objects, limit int) nim.State {
	t.Helper()
	s, err := nim.New(objects, limit)
	require.NoError(t, err)
	return s
}

func TestEnginePlay(t *testing.T) {
	t.Run("recording a legal move", func(t *testing.T) {
		e := LocalEngine[nim.State, int](newNim(t, 10, 3), []Agent[nim.State, int]{nil, nil}, &bytes.Buffer{})

		err := e.Play(2)

		require.NoError(t, err)
		require.Equal(t, 8, e.State.Objects())
		require.Equal(t, []Update[int]{{Turn: 1, Player: game.Player1, Move: 2}}, e.History)
	})

	t.Run("refusing an illegal move", func(t *testing.T) {
		e := LocalEngine[nim.State, int](newNim(t, 10, 3), []Agent[nim.State, int]{nil, nil}, &bytes.Buffer{})

		err := e.Play(4)

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, 10, e.State.Objects(), "State should not change")
		require.Empty(t, e.History)
	})

	t.Run("refusing moves after the game is over", func(t *testing.T) {
		e := LocalEngine[nim.State, int](newNim(t, 1, 3), []Agent[nim.State, int]{nil, nil}, &bytes.Buffer{})
		require.NoError(t, e.Play(1))

		err := e.Play(1)

		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("panicking without two agents", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine[nim.State, int](newNim(t, 1, 1), nil, &bytes.Buffer{})
		})
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("alternating turns until someone wins", func(t *testing.T) {
		var out bytes.Buffer
		agents := []Agent[nim.State, int]{
			&scriptedAgent[int]{moves: []int{3, 3}},
			&scriptedAgent[int]{moves: []int{1}},
		}
		e := LocalEngine(newNim(t, 7, 3), agents, &out)

		status, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Player1Wins, status)
		require.Equal(t, []Update[int]{
			{Turn: 1, Player: game.Player1, Move: 3},
			{Turn: 2, Player: game.Player2, Move: 1},
			{Turn: 3, Player: game.Player1, Move: 3},
		}, e.History)
		require.Contains(t, out.String(), "Player 1 wins")
	})

	t.Run("stopping an illegal agent", func(t *testing.T) {
		agents := []Agent[nim.State, int]{
			&scriptedAgent[int]{moves: []int{5}},
			&scriptedAgent[int]{},
		}
		e := LocalEngine(newNim(t, 7, 3), agents, &bytes.Buffer{})

		status, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.InProgress, status)
	})

	t.Run("stopping at the turn limit", func(t *testing.T) {
		agents := []Agent[nim.State, int]{
			NewRandomAgent[nim.State, int](1),
			NewRandomAgent[nim.State, int](2),
		}
		e := LocalEngine(newNim(t, 10, 1), agents, &bytes.Buffer{})
		e.MaxTurns = 4

		status, err := e.Run()

		require.ErrorIs(t, err, ErrTooManyTurns)
		require.Equal(t, game.InProgress, status)
		require.Len(t, e.History, 4)
	})

	t.Run("playing random agents against each other", func(t *testing.T) {
		play := func() (game.Status, []Update[int]) {
			agents := []Agent[nim.State, int]{
				NewRandomAgent[nim.State, int](7),
				NewRandomAgent[nim.State, int](8),
			}
			e := LocalEngine(newNim(t, 20, 4), agents, &bytes.Buffer{})
			status, err := e.Run()
			require.NoError(t, err)
			return status, e.History
		}

		status, history := play()
		againStatus, againHistory := play()

		require.NotEqual(t, game.InProgress, status)
		require.Equal(t, status, againStatus, "Same seeds should replay the same game")
		require.Equal(t, history, againHistory, "Same seeds should replay the same game")
	})
}

func TestHumanAgent(t *testing.T) {
	t.Run("prompting until a legal move is entered", func(t *testing.T) {
		var out bytes.Buffer
		console := NewConsole(strings.NewReader("x\n5\n2\n"), &out)
		agent := NewHumanAgent[nim.State, int](console, nim.ParseMove)

		move, err := agent.FindMove(newNim(t, 10, 3))

		require.NoError(t, err)
		require.Equal(t, 2, move)
		require.Contains(t, out.String(), "Invalid input")
		require.Contains(t, out.String(), "Illegal move: 5")
	})

	t.Run("failing when input runs out", func(t *testing.T) {
		console := NewConsole(strings.NewReader("9\n"), &bytes.Buffer{})
		agent := NewHumanAgent[nim.State, int](console, nim.ParseMove)

		_, err := agent.FindMove(newNim(t, 10, 3))

		require.ErrorIs(t, err, ErrNoInput)
	})
}

func TestTwoPhaseHumanAgent(t *testing.T) {
	t.Run("asking for source then target", func(t *testing.T) {
		var out bytes.Buffer
		input := strings.Join([]string{
			"2 2", // Empty square
			"nonsense",
			"0 0",
			"0 2", // Not adjacent, start over
			"0 0",
			"1 1",
		}, "\n")
		console := NewConsole(strings.NewReader(input), &out)
		agent := NewTwoPhaseHumanAgent[coins.State, coins.Position](console, coins.ParsePosition)

		move, err := agent.FindMove(coins.New())

		require.NoError(t, err)
		require.Equal(t, game.NewTwoPhaseMove(coins.Position{Row: 0, Col: 0}, coins.Position{Row: 1, Col: 1}), move)
		require.Contains(t, out.String(), "Cannot move from (2,2)")
		require.Contains(t, out.String(), "Invalid input")
		require.Contains(t, out.String(), "Illegal move: (0,0) -> (0,2)")
	})

	t.Run("failing when input runs out after the source", func(t *testing.T) {
		console := NewConsole(strings.NewReader("0 0\n"), &bytes.Buffer{})
		agent := NewTwoPhaseHumanAgent[coins.State, coins.Position](console, coins.ParsePosition)

		_, err := agent.FindMove(coins.New())

		require.ErrorIs(t, err, ErrNoInput)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("choosing only legal moves", func(t *testing.T) {
		agent := NewRandomAgent[coins.State, coins.Move](3)
		state := coins.New()
		for i := 0; i < 50; i++ {
			move, err := agent.FindMove(state)
			require.NoError(t, err)
			require.True(t, state.IsLegalMove(move), "Move %v should be legal", move)
		}
	})

	t.Run("failing without legal moves", func(t *testing.T) {
		agent := NewRandomAgent[nim.State, int](3)
		s := newNim(t, 1, 1)
		s, err := s.Play(1)
		require.NoError(t, err)

		_, err = agent.FindMove(s)

		require.Error(t, err)
	})
}
