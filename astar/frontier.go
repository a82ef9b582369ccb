package astar

// entry is one frontier record. seq is the insertion sequence number used to
// break key ties deterministically; idx is the cell's row-major index.
type entry struct {
	key float64
	seq uint64
	idx int
}

// frontier is a min-heap of entries ordered by (key, seq).
// Duplicates for the same cell are allowed; stale ones are filtered on pop
// via the closed flags ("lazy decrease-key").
type frontier []entry

func (f frontier) Len() int { return len(f) }

// Less orders by key, then by earlier insertion.
func (f frontier) Less(i, j int) bool {
	if f[i].key != f[j].key {
		return f[i].key < f[j].key
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
