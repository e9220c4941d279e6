package searcher

import "statesearch/game"

// visitedSet holds every state discovered during one search, bucketed by hash
// and resolved with Equal so that hash collisions never merge distinct states.
type visitedSet[S game.Puzzle[S, M], M any] struct {
	buckets map[game.StateHash][]S
	size    int
}

func newVisitedSet[S game.Puzzle[S, M], M any]() *visitedSet[S, M] {
	return &visitedSet[S, M]{buckets: make(map[game.StateHash][]S)}
}

func (v *visitedSet[S, M]) contains(state S) bool {
	for _, other := range v.buckets[state.Hash()] {
		if state.Equal(other) {
			return true
		}
	}
	return false
}

// add inserts state and reports whether it was not already present.
func (v *visitedSet[S, M]) add(state S) bool {
	hash := state.Hash()
	for _, other := range v.buckets[hash] {
		if state.Equal(other) {
			return false
		}
	}
	v.buckets[hash] = append(v.buckets[hash], state)
	v.size++
	return true
}

func (v *visitedSet[S, M]) len() int {
	return v.size
}
