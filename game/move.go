package game

import (
	"cmp"
	"fmt"
)

// TwoPhaseMove moves something from a source locus to a target locus.
type TwoPhaseMove[T comparable] struct {
	From T
	To   T
}

func NewTwoPhaseMove[T comparable](from, to T) TwoPhaseMove[T] {
	return TwoPhaseMove[T]{From: from, To: to}
}

// Compare orders moves by source, then by target.
func (m TwoPhaseMove[T]) Compare(other TwoPhaseMove[T]) int {
	if c := compareLoci(m.From, other.From); c != 0 {
		return c
	}
	return compareLoci(m.To, other.To)
}

func (m TwoPhaseMove[T]) String() string {
	return fmt.Sprintf("%v -> %v", m.From, m.To)
}

// compareLoci orders loci that either implement Ordered or are plain ints or strings.
// Anything else falls back to comparing the formatted values.
func compareLoci[T comparable](a, b T) int {
	switch x := any(a).(type) {
	case Ordered[T]:
		return x.Compare(b)
	case int:
		return cmp.Compare(x, any(b).(int))
	case string:
		return cmp.Compare(x, any(b).(string))
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
