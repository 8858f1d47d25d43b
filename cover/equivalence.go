// SPDX-License-Identifier: MIT

package cover

import "github.com/katalvlaran/rolelattice/lattice"

// equivalenceUpper merges class pairs (a, b), a < b, in lexicographic order.
type equivalenceUpper struct {
	parent  lattice.Equivalence
	classes [][]int
	a, b    int
}

// EquivalenceUpper returns the adapter of the upper covers of parent: every
// partition obtained by merging exactly two classes.
func EquivalenceUpper(parent lattice.Equivalence) Adapter[lattice.Equivalence] {
	return &equivalenceUpper{parent: parent, classes: parent.Classes(), a: 0, b: 1}
}

func (u *equivalenceUpper) HasNext() bool {
	return u.b < len(u.classes)
}

func (u *equivalenceUpper) Next() lattice.Equivalence {
	if !u.HasNext() {
		panic(ErrExhausted)
	}
	c := u.parent.Merge(u.classes[u.a][0], u.classes[u.b][0])
	u.b++
	if u.b == len(u.classes) {
		u.a++
		u.b = u.a + 1
	}

	return c
}

// DescendsFromEarlier scans class pairs in generation order; the pair joined
// by reference ends the scan, an earlier pair joined by candidate answers true.
func (u *equivalenceUpper) DescendsFromEarlier(candidate, reference lattice.Equivalence) bool {
	k := len(u.classes)
	for a := 0; a < k; a++ {
		ra := u.classes[a][0]
		for b := a + 1; b < k; b++ {
			rb := u.classes[b][0]
			if reference.Same(ra, rb) {
				return false
			}
			if candidate.Same(ra, rb) {
				return true
			}
		}
	}

	return false
}

// equivalenceLower splits one class C = {c0, c1, …} into two parts. For each
// class, masks 1 … 2^(m-1)-1 over c1…c(m-1) select the part that leaves c0;
// bit j-1 stands for c_j.
type equivalenceLower struct {
	parent  lattice.Equivalence
	classes [][]int
	fresh   int    // class id unused by parent
	ci      int    // current class
	mask    uint64 // next mask within the current class
}

// EquivalenceLower returns the adapter of the lower covers of parent: every
// partition obtained by splitting one class into two non-empty parts.
// Singleton classes yield no cover.
func EquivalenceLower(parent lattice.Equivalence) Adapter[lattice.Equivalence] {
	classes := parent.Classes()
	fresh := 0
	for i := 0; i < parent.Size(); i++ {
		if id := parent.ClassID(i); id >= fresh {
			fresh = id + 1
		}
	}
	for _, c := range classes {
		if len(c) > maxSplitClass+1 {
			panic(ErrClassTooLarge)
		}
	}
	l := &equivalenceLower{parent: parent, classes: classes, fresh: fresh, mask: 1}
	l.seek()

	return l
}

// seek moves to the first class that still has a split left.
func (l *equivalenceLower) seek() {
	for l.ci < len(l.classes) {
		m := len(l.classes[l.ci])
		if m >= 2 && l.mask < uint64(1)<<(m-1) {
			return
		}
		l.ci++
		l.mask = 1
	}
}

func (l *equivalenceLower) HasNext() bool { return l.ci < len(l.classes) }

func (l *equivalenceLower) Next() lattice.Equivalence {
	if !l.HasNext() {
		panic(ErrExhausted)
	}
	ids := l.parent.IDs()
	cls := l.classes[l.ci]
	for j := 1; j < len(cls); j++ {
		if l.mask&(uint64(1)<<(j-1)) != 0 {
			ids[cls[j]] = l.fresh
		}
	}
	l.mask++
	l.seek()

	return lattice.NewEquivalence(ids...)
}

// DescendsFromEarlier walks the classes in generation order. A class before
// the one split by reference answers true as soon as candidate splits it.
// Within the reference class, the earliest split candidate refines is the
// candidate block (away from c0) with the smallest mask.
func (l *equivalenceLower) DescendsFromEarlier(candidate, reference lattice.Equivalence) bool {
	for _, cls := range l.classes {
		if len(cls) < 2 {
			continue
		}
		c0 := cls[0]
		var refMask uint64
		for j := 1; j < len(cls); j++ {
			if !reference.Same(c0, cls[j]) {
				refMask |= uint64(1) << (j - 1)
			}
		}
		if refMask == 0 {
			if splits(candidate, cls) {
				return true
			}
			continue
		}

		// reference splits this class: compare against candidate's blocks
		blockMask := make(map[int]uint64)
		for j := 1; j < len(cls); j++ {
			if candidate.Same(c0, cls[j]) {
				continue
			}
			blockMask[candidate.ClassID(cls[j])] |= uint64(1) << (j - 1)
		}
		for _, bm := range blockMask {
			if bm < refMask {
				return true
			}
		}

		return false
	}

	return false
}

// splits reports whether e separates some members of cls.
func splits(e lattice.Equivalence, cls []int) bool {
	for j := 1; j < len(cls); j++ {
		if !e.Same(cls[0], cls[j]) {
			return true
		}
	}

	return false
}
