package canon

import "slices"

// partition is an ordered list of disjoint cells covering all vertices.
// Cells are treated as immutable once created.
type partition [][]int

func (p partition) discrete() bool {
	for _, c := range p {
		if len(c) > 1 {
			return false
		}
	}
	return true
}

// target returns the index of the first smallest non-singleton cell, or -1.
func (p partition) target() int {
	best := -1
	for i, c := range p {
		if len(c) > 1 && (best < 0 || len(c) < len(p[best])) {
			best = i
		}
	}
	return best
}

// offset returns the number of vertices in cells before index i.
func (p partition) offset(i int) int {
	n := 0
	for _, c := range p[:i] {
		n += len(c)
	}
	return n
}

// individualize splits cell ti into [v] followed by the remaining vertices.
func (p partition) individualize(ti, v int) partition {
	rest := make([]int, 0, len(p[ti])-1)
	for _, w := range p[ti] {
		if w != v {
			rest = append(rest, w)
		}
	}
	out := make(partition, 0, len(p)+1)
	out = append(out, p[:ti]...)
	out = append(out, []int{v}, rest)
	out = append(out, p[ti+1:]...)
	return out
}

// flatten returns the vertices in partition order.
func (p partition) flatten() []int {
	out := make([]int, 0, len(p))
	for _, c := range p {
		out = append(out, c...)
	}
	return out
}

// refine splits cells until the partition is equitable. A vertex's signature
// is the sorted list of cell indices of its neighbors; each cell is replaced
// in place by its sub-cells ordered by signature. Cell order never depends on
// vertex ids, so the result is invariant under relabeling.
func (s *searcher) refine(p partition) partition {
	cellOf := make([]int, s.n)
	sigs := make([][]int, s.n)
	for {
		for i, c := range p {
			for _, v := range c {
				cellOf[v] = i
			}
		}

		out := make(partition, 0, len(p))
		for _, c := range p {
			if len(c) == 1 {
				out = append(out, c)
				continue
			}
			for _, v := range c {
				sig := sigs[v][:0]
				for _, w := range s.g.Neighbors(v) {
					sig = append(sig, cellOf[w])
				}
				slices.Sort(sig)
				sigs[v] = sig
			}

			sorted := slices.Clone(c)
			slices.SortFunc(sorted, func(a, b int) int {
				if d := slices.Compare(sigs[a], sigs[b]); d != 0 {
					return d
				}
				return a - b
			})

			start := 0
			for i := 1; i <= len(sorted); i++ {
				if i == len(sorted) || slices.Compare(sigs[sorted[i-1]], sigs[sorted[i]]) != 0 {
					out = append(out, sorted[start:i:i])
					start = i
				}
			}
		}
		if len(out) == len(p) {
			return out
		}
		p = out
	}
}
