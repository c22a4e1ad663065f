package search

// frontierItem is one admission of an entity to the frontier.
type frontierItem struct {
	id       string
	priority float64
	seq      uint64 // admission order; breaks priority ties
}

// frontier is a min-heap of *frontierItem ordered by (priority, seq).
// Decrease-key is lazy: a better label pushes a fresh item and the stale one
// is skipped when popped because its entity is already settled.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
