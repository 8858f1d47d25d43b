// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"

	"github.com/katalvlaran/rolelattice/lattice"
)

// classView is the quotient of a ranking by its indifference classes.
type classView struct {
	parent  lattice.Ranking
	classes [][]int
	le      [][]bool // le[a][b]: class a ranked at most class b
}

func newClassView(parent lattice.Ranking) classView {
	classes, _ := parent.IndifferenceClasses()
	k := len(classes)
	le := make([][]bool, k)
	for a := range le {
		le[a] = make([]bool, k)
		for b := range le[a] {
			le[a][b] = parent.Has(classes[a][0], classes[b][0])
		}
	}

	return classView{parent: parent, classes: classes, le: le}
}

// rankingUpper adds one block A×B between distinct classes when the result
// is transitive as is. Valid class pairs are fixed at construction.
type rankingUpper struct {
	classView
	pairs [][2]int // valid (A, B) in lexicographic order
	pos   int
}

// RankingUpper returns the adapter of the upper covers of parent: every
// ranking parent ∪ A×B for indifference classes A ≠ B with A not below B,
// such that adding the block forces no further pair by transitivity.
func RankingUpper(parent lattice.Ranking) Adapter[lattice.Ranking] {
	v := newClassView(parent)
	k := len(v.classes)
	var pairs [][2]int
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			if a == b || v.le[a][b] {
				continue
			}
			if v.addsOnlyBlock(a, b) {
				pairs = append(pairs, [2]int{a, b})
			}
		}
	}

	return &rankingUpper{classView: v, pairs: pairs}
}

// addsOnlyBlock: everything strictly below a is below b, and everything
// strictly above b is above a.
func (v classView) addsOnlyBlock(a, b int) bool {
	for c := range v.classes {
		if c != a && v.le[c][a] && !v.le[c][b] {
			return false
		}
		if c != b && v.le[b][c] && !v.le[a][c] {
			return false
		}
	}

	return true
}

func (u *rankingUpper) HasNext() bool { return u.pos < len(u.pairs) }

func (u *rankingUpper) Next() lattice.Ranking {
	if !u.HasNext() {
		panic(ErrExhausted)
	}
	p := u.pairs[u.pos]
	u.pos++

	return u.parent.AddPair(u.classes[p[0]][0], u.classes[p[1]][0])
}

func (u *rankingUpper) DescendsFromEarlier(candidate, reference lattice.Ranking) bool {
	for _, p := range u.pairs {
		a, b := u.classes[p[0]][0], u.classes[p[1]][0]
		if reference.Has(a, b) {
			return false
		}
		if candidate.Has(a, b) {
			return true
		}
	}

	return false
}

// rankingLower first removes covering blocks A×B (A directly below B in the
// quotient), then splits classes C into S below T: bit j of the mask puts
// C[j] into T, masks run 1 … 2^m-2.
type rankingLower struct {
	classView
	removals [][2]int // covering class pairs in lexicographic order
	pos      int      // next removal
	ci       int      // current class for splits
	mask     uint64
}

// RankingLower returns the adapter of the lower covers of parent.
func RankingLower(parent lattice.Ranking) Adapter[lattice.Ranking] {
	v := newClassView(parent)
	k := len(v.classes)
	var removals [][2]int
	for a := 0; a < k; a++ {
		for b := 0; b < k; b++ {
			if a != b && v.le[a][b] && v.covering(a, b) {
				removals = append(removals, [2]int{a, b})
			}
		}
	}
	for _, c := range v.classes {
		if len(c) > maxSplitClass {
			panic(ErrClassTooLarge)
		}
	}
	l := &rankingLower{classView: v, removals: removals, mask: 1}
	l.seek()

	return l
}

// covering reports that no class lies strictly between a and b.
func (v classView) covering(a, b int) bool {
	for c := range v.classes {
		if c != a && c != b && v.le[a][c] && v.le[c][b] {
			return false
		}
	}

	return true
}

func (l *rankingLower) seek() {
	for l.ci < len(l.classes) {
		m := len(l.classes[l.ci])
		if m >= 2 && l.mask < uint64(1)<<m-1 {
			return
		}
		l.ci++
		l.mask = 1
	}
}

func (l *rankingLower) HasNext() bool {
	return l.pos < len(l.removals) || l.ci < len(l.classes)
}

func (l *rankingLower) Next() lattice.Ranking {
	if l.pos < len(l.removals) {
		p := l.removals[l.pos]
		l.pos++

		return l.mustRemove(l.classes[p[0]], l.classes[p[1]])
	}
	if l.ci >= len(l.classes) {
		panic(ErrExhausted)
	}
	cls := l.classes[l.ci]
	var s, t []int
	for j, v := range cls {
		if l.mask&(uint64(1)<<j) != 0 {
			t = append(t, v)
		} else {
			s = append(s, v)
		}
	}
	l.mask++
	l.seek()

	return l.mustRemove(t, s)
}

func (l *rankingLower) mustRemove(from, to []int) lattice.Ranking {
	k, err := l.parent.RemoveBlock(from, to)
	if err != nil {
		// covers are built to stay transitive; reaching here is a bug
		panic(fmt.Errorf("cover: lower ranking cover: %w", err))
	}

	return k
}

// DescendsFromEarlier scans removals and then splits in generation order.
//   - removal (A,B) before reference: candidate holds no pair of A×B.
//   - split class before reference's class: candidate is not complete on it.
//   - reference's own class: the earliest split candidate refines has the
//     mask of one of candidate's top classes inside C; compare the smallest.
func (l *rankingLower) DescendsFromEarlier(candidate, reference lattice.Ranking) bool {
	for _, p := range l.removals {
		as, bs := l.classes[p[0]], l.classes[p[1]]
		if !reference.Has(as[0], bs[0]) {
			return false
		}
		if !anyPair(candidate, as, bs) {
			return true
		}
	}
	for _, cls := range l.classes {
		if len(cls) < 2 {
			continue
		}
		refMask := upperPartMask(reference, cls)
		if refMask == 0 {
			if !complete(candidate, cls) {
				return true
			}
			continue
		}
		if complete(candidate, cls) {
			return false
		}

		return minTopMask(candidate, cls) < refMask
	}

	return false
}

func anyPair(k lattice.Ranking, as, bs []int) bool {
	for _, a := range as {
		for _, b := range bs {
			if k.Has(a, b) {
				return true
			}
		}
	}

	return false
}

func complete(k lattice.Ranking, cls []int) bool {
	for _, x := range cls {
		for _, y := range cls {
			if !k.Has(x, y) {
				return false
			}
		}
	}

	return true
}

// upperPartMask returns the mask of members of cls that miss some pair
// inside cls, i.e. the upper part T of a split; 0 when cls is intact.
func upperPartMask(k lattice.Ranking, cls []int) uint64 {
	var m uint64
	for j, x := range cls {
		for _, y := range cls {
			if !k.Has(x, y) {
				m |= uint64(1) << j
				break
			}
		}
	}

	return m
}

// minTopMask returns the smallest mask among the maximal indifference
// classes of k restricted to cls.
func minTopMask(k lattice.Ranking, cls []int) uint64 {
	masks := make(map[int]uint64) // keyed by position of the class's first member
	for j, x := range cls {
		top := true
		for _, y := range cls {
			if k.Has(x, y) && !k.Has(y, x) {
				top = false
				break
			}
		}
		if !top {
			continue
		}
		lead := j
		for i, y := range cls[:j] {
			if k.Indifferent(x, y) {
				lead = i
				break
			}
		}
		masks[lead] |= uint64(1) << j
	}
	best := ^uint64(0)
	for _, m := range masks {
		if m < best {
			best = m
		}
	}

	return best
}
