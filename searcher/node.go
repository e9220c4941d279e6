package searcher

import "slices"

// node pairs a state with the move that produced it and the node it was produced from.
type node[S any, M any] struct {
	state  S
	move   M
	parent *node[S, M] // nil for the root
	depth  int
}

func newRoot[S any, M any](state S) *node[S, M] {
	return &node[S, M]{state: state}
}

func (n *node[S, M]) child(state S, move M) *node[S, M] {
	return &node[S, M]{
		state:  state,
		move:   move,
		parent: n,
		depth:  n.depth + 1,
	}
}

// path returns the moves from the root to this node. The root contributes no move.
func (n *node[S, M]) path() []M {
	moves := make([]M, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	slices.Reverse(moves)
	return moves
}

// queue is a FIFO of search nodes.
type queue[S any, M any] struct {
	items []*node[S, M]
	head  int
}

func (q *queue[S, M]) push(n *node[S, M]) {
	q.items = append(q.items, n)
}

func (q *queue[S, M]) pop() *node[S, M] {
	n := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.items) {
		q.items = slices.Clone(q.items[q.head:])
		q.head = 0
	}
	return n
}

func (q *queue[S, M]) len() int {
	return len(q.items) - q.head
}
