// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"strconv"
	"strings"
)

// Equivalence is a partition of {0,…,n-1} given by a class id per element.
// Ids are arbitrary ints; only the induced grouping matters.
type Equivalence struct {
	ids []int // class id of each element
}

// NewEquivalence returns the partition grouping elements with equal ids.
// The slice is copied.
func NewEquivalence(ids ...int) Equivalence {
	c := make([]int, len(ids))
	copy(c, ids)

	return Equivalence{ids: c}
}

// DiscreteEquivalence returns the finest partition: every element alone.
func DiscreteEquivalence(n int) Equivalence {
	if n < 0 {
		n = 0
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return Equivalence{ids: ids}
}

// IndiscreteEquivalence returns the coarsest partition: a single class.
func IndiscreteEquivalence(n int) Equivalence {
	if n < 0 {
		n = 0
	}

	return Equivalence{ids: make([]int, n)}
}

// EquivalenceFromClasses builds a partition of {0,…,n-1} from explicit
// classes. Elements not listed end up in singleton classes.
func EquivalenceFromClasses(n int, classes ...[]int) (Equivalence, error) {
	if n < 0 {
		return Equivalence{}, fmt.Errorf("EquivalenceFromClasses(%d): %w", n, ErrBadSize)
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = -1
	}
	for c, members := range classes {
		for _, v := range members {
			if v < 0 || v >= n {
				return Equivalence{}, fmt.Errorf("EquivalenceFromClasses: element %d: %w", v, ErrOutOfRange)
			}
			ids[v] = c
		}
	}
	fresh := len(classes)
	for i := range ids {
		if ids[i] < 0 {
			ids[i] = fresh
			fresh++
		}
	}

	return Equivalence{ids: ids}, nil
}

// Size returns the domain size.
func (e Equivalence) Size() int { return len(e.ids) }

// ClassID returns the raw class id of element i.
func (e Equivalence) ClassID(i int) int { return e.ids[i] }

// Same reports whether i and j are in the same class.
func (e Equivalence) Same(i, j int) bool { return e.ids[i] == e.ids[j] }

// IDs returns a copy of the class id slice.
func (e Equivalence) IDs() []int {
	c := make([]int, len(e.ids))
	copy(c, e.ids)

	return c
}

// Leq reports whether e refines o, i.e. every class of e lies inside a class of o.
func (e Equivalence) Leq(o Equivalence) bool {
	if len(e.ids) != len(o.ids) {
		return false
	}
	// map each e-class to the o-class of its first member
	rep := make(map[int]int, len(e.ids))
	for i, id := range e.ids {
		oc, ok := rep[id]
		if !ok {
			rep[id] = o.ids[i]
			continue
		}
		if oc != o.ids[i] {
			return false
		}
	}

	return true
}

// Equal reports whether e and o induce the same grouping.
func (e Equivalence) Equal(o Equivalence) bool {
	return e.Leq(o) && o.Leq(e)
}

// Normalized returns the restricted-growth labelling of e: the class of
// element 0 is 0, and each new class gets the next unused id.
func (e Equivalence) Normalized() Equivalence {
	return Equivalence{ids: normalize(e.ids)}
}

// NumClasses returns the number of classes.
func (e Equivalence) NumClasses() int {
	seen := make(map[int]struct{}, len(e.ids))
	for _, id := range e.ids {
		seen[id] = struct{}{}
	}

	return len(seen)
}

// Classes lists the classes, each sorted ascending, ordered by smallest member.
func (e Equivalence) Classes() [][]int {
	norm := normalize(e.ids)
	k := 0
	for _, id := range norm {
		if id+1 > k {
			k = id + 1
		}
	}
	out := make([][]int, k)
	for i, id := range norm {
		out[id] = append(out[id], i)
	}

	return out
}

// Merge returns the partition in which the classes of i and j are joined.
func (e Equivalence) Merge(i, j int) Equivalence {
	ids := make([]int, len(e.ids))
	from, to := e.ids[j], e.ids[i]
	for k, id := range e.ids {
		if id == from {
			ids[k] = to
		} else {
			ids[k] = id
		}
	}

	return Equivalence{ids: ids}
}

// Relation returns the equivalence as a binary relation.
func (e Equivalence) Relation() Relation {
	n := len(e.ids)
	c := make([]bool, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = e.ids[i] == e.ids[j]
		}
	}

	return Relation{n: n, cells: c}
}

// String renders e as its classes, e.g. "{0 2}{1}".
func (e Equivalence) String() string {
	var b strings.Builder
	for _, cls := range e.Classes() {
		b.WriteByte('{')
		for k, v := range cls {
			if k > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte('}')
	}

	return b.String()
}

// normalize relabels ids as a restricted-growth string.
func normalize(ids []int) []int {
	out := make([]int, len(ids))
	label := make(map[int]int, len(ids))
	for i, id := range ids {
		l, ok := label[id]
		if !ok {
			l = len(label)
			label[id] = l
		}
		out[i] = l
	}

	return out
}
