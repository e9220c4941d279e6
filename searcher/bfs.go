package searcher

import (
	"errors"
	"fmt"
	"slices"
	"statesearch/game"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotSolvable means the whole reachable state space was explored without finding a goal.
	ErrNotSolvable = errors.New("not solvable: no goal state is reachable")
	// ErrBudgetExceeded means the search stopped on an expansion ceiling or time budget before finishing.
	ErrBudgetExceeded = errors.New("search budget exceeded")
)

type Option func(c *config)

type config struct {
	maxExpansions int
	duration      time.Duration
	newCollector  func() MetricsCollector
}

// WithMaxExpansions stops the search with ErrBudgetExceeded once n nodes have been expanded.
func WithMaxExpansions(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxExpansions = n
		}
	}
}

// WithDuration stops the search with ErrBudgetExceeded once d has elapsed.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.duration = d
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.newCollector = NewMetricsCollector
	}
}

// Solution is the result of a successful search.
type Solution[M any] struct {
	Moves   []M
	Metrics SearchMetric
}

// Solver finds shortest move sequences with breadth-first search. A Solver
// holds configuration only and can be reused; each Solve call owns its own
// frontier and visited set.
type Solver[S game.Puzzle[S, M], M any] struct {
	config
}

func NewSolver[S game.Puzzle[S, M], M any](options ...Option) *Solver[S, M] {
	s := &Solver[S, M]{config: config{ // Default values
		newCollector: NewNoMetricsCollector,
	}}
	for _, option := range options {
		option(&s.config)
	}
	return s
}

// Solve is shorthand for NewSolver(options...).Solve(initial).
func Solve[S game.Puzzle[S, M], M any](initial S, options ...Option) (Solution[M], error) {
	return NewSolver[S, M](options...).Solve(initial)
}

// Solve returns a shortest sequence of moves leading from initial to a solved
// state. When several shortest sequences exist, the one found first while
// processing moves in their Compare order (or LegalMoves order for unordered
// move types) is returned, so repeated calls agree.
func (s *Solver[S, M]) Solve(initial S) (Solution[M], error) {
	metrics := s.newCollector()
	metrics.Start()
	metrics.AddDiscovered(0)

	if initial.IsSolved() {
		log.Debug().Msg("initial state is already solved")
		return Solution[M]{Moves: []M{}, Metrics: metrics.Complete(Solved, 0)}, nil
	}

	var deadline time.Time
	if s.duration > 0 {
		deadline = time.Now().Add(s.duration)
	}

	visited := newVisitedSet[S, M]()
	visited.add(initial)
	frontier := &queue[S, M]{}
	frontier.push(newRoot[S, M](initial))
	expanded := 0

	for frontier.len() > 0 {
		if err := s.checkBudget(expanded, deadline); err != nil {
			log.Warn().Msgf("search stopped after %d expansions with %d states visited: %v", expanded, visited.len(), err)
			return Solution[M]{Metrics: metrics.Complete(BudgetExceeded, -1)}, err
		}

		metrics.AddExpansion(frontier.len())
		current := frontier.pop()
		expanded++

		for _, move := range orderMoves(current.state.LegalMoves()) {
			successor, err := current.state.Play(move)
			if err != nil {
				return Solution[M]{Metrics: metrics.Complete(NotSolvable, -1)},
					fmt.Errorf("playing legal move %v at depth %d: %w", move, current.depth, err)
			}
			metrics.AddGenerated()

			if !visited.add(successor) { // Already reached by an equal or shorter path
				metrics.AddDuplicate()
				continue
			}
			metrics.AddDiscovered(current.depth + 1)

			next := current.child(successor, move)
			if successor.IsSolved() {
				moves := next.path()
				log.Debug().Msgf("found solution of %d moves after %d expansions, %d states visited", len(moves), expanded, visited.len())
				return Solution[M]{Moves: moves, Metrics: metrics.Complete(Solved, len(moves))}, nil
			}
			frontier.push(next)
		}
	}

	log.Debug().Msgf("state space exhausted after %d expansions, %d states visited", expanded, visited.len())
	return Solution[M]{Metrics: metrics.Complete(NotSolvable, -1)}, ErrNotSolvable
}

func (s *Solver[S, M]) checkBudget(expanded int, deadline time.Time) error {
	if s.maxExpansions > 0 && expanded >= s.maxExpansions {
		return fmt.Errorf("%w: reached %d expansions", ErrBudgetExceeded, s.maxExpansions)
	}
	if !deadline.IsZero() && time.Now().After(deadline) {
		return fmt.Errorf("%w: exceeded %s", ErrBudgetExceeded, s.duration)
	}
	return nil
}

// orderMoves sorts moves that implement game.Ordered and leaves others in LegalMoves order.
func orderMoves[M any](moves []M) []M {
	if len(moves) < 2 {
		return moves
	}
	if _, ok := any(moves[0]).(game.Ordered[M]); !ok {
		return moves
	}
	sorted := slices.Clone(moves)
	slices.SortStableFunc(sorted, func(a, b M) int {
		return any(a).(game.Ordered[M]).Compare(b)
	})
	return sorted
}
