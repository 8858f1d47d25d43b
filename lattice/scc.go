// SPDX-License-Identifier: MIT

package lattice

import "sort"

// sccWalker carries Tarjan state over a dense relation.
// The walk is iterative; frames replace the recursion stack.
type sccWalker struct {
	rel     Relation
	index   []int  // discovery index, -1 = White
	low     []int  // lowest index reachable
	onStack []bool // Gray vertices still on the component stack
	stack   []int  // component stack
	counter int
	comps   [][]int
}

type sccFrame struct {
	v    int // vertex being explored
	next int // next neighbour column to inspect
}

// StronglyConnected computes the strongly connected components of r viewed
// as a directed graph. Components are sorted ascending internally and ordered
// by their smallest member; comp[v] is the component index of v.
//
// Complexity: O(n²) time, O(n) memory.
func StronglyConnected(r Relation) ([][]int, []int) {
	n := r.n
	w := &sccWalker{
		rel:     r,
		index:   make([]int, n),
		low:     make([]int, n),
		onStack: make([]bool, n),
	}
	for i := range w.index {
		w.index[i] = -1
	}
	for v := 0; v < n; v++ {
		if w.index[v] < 0 {
			w.visit(v)
		}
	}

	// 1. Canonical order: members ascending, components by smallest member
	for _, c := range w.comps {
		sort.Ints(c)
	}
	sort.Slice(w.comps, func(a, b int) bool { return w.comps[a][0] < w.comps[b][0] })

	// 2. Element -> component index
	comp := make([]int, n)
	for ci, c := range w.comps {
		for _, v := range c {
			comp[v] = ci
		}
	}

	return w.comps, comp
}

func (w *sccWalker) visit(root int) {
	n := w.rel.n
	frames := []sccFrame{{v: root}}
	w.open(root)
	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		v := f.v
		descended := false
		for f.next < n {
			u := f.next
			f.next++
			if u == v || !w.rel.Has(v, u) {
				continue
			}
			if w.index[u] < 0 {
				w.open(u)
				frames = append(frames, sccFrame{v: u})
				descended = true
				break
			}
			if w.onStack[u] && w.index[u] < w.low[v] {
				w.low[v] = w.index[u]
			}
		}
		if descended {
			continue
		}

		// post-order: close component rooted at v, propagate low-link
		if w.low[v] == w.index[v] {
			var c []int
			for {
				top := w.stack[len(w.stack)-1]
				w.stack = w.stack[:len(w.stack)-1]
				w.onStack[top] = false
				c = append(c, top)
				if top == v {
					break
				}
			}
			w.comps = append(w.comps, c)
		}
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			p := frames[len(frames)-1].v
			if w.low[v] < w.low[p] {
				w.low[p] = w.low[v]
			}
		}
	}
}

func (w *sccWalker) open(v int) {
	w.index[v] = w.counter
	w.low[v] = w.counter
	w.counter++
	w.stack = append(w.stack, v)
	w.onStack[v] = true
}
