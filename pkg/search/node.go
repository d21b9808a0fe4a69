package search

// arenaBlockSize is the number of nodes allocated per underlying block. Nodes
// are handed out as pointers into these blocks, never into a slice that can
// be reallocated, so a Node's address is stable for the lifetime of the
// Arena that owns it (data-model invariant 1).
const arenaBlockSize = 4096

// Node is the unit of search: one per (state, insertion occurrence). G, F,
// and Parent are mutated in place only by duplicate resolution for this
// node's state (§4.2); the thread that expands the node writes only its
// successors and status. Parent is a back-reference only, never an
// ownership edge.
type Node[S comparable] struct {
	State  S
	G, H, F Cost
	Parent *Node[S]

	status     nodeStatus
	successors []*Node[S]

	// heapIndex is the node's current slot in a FrontierHeap, or -1 when the
	// node is not currently in any heap. It is the "stable handle" the
	// frontier needs for decrease-key: because the node's address never
	// moves, the heap can always find and fix this field directly instead of
	// through an iterator that sibling operations could invalidate.
	heapIndex int

	// windowSlot is not written by any engine; it stays zero. CAFE workers
	// locate window entries by slot index through LookaheadWindow.Get.
	windowSlot int
}

// newNode constructs a Node with f = g + h (data-model invariant 6) and no
// heap membership.
func newNode[S comparable](state S, g, h Cost, parent *Node[S]) Node[S] {
	return Node[S]{
		State:     state,
		G:         g,
		H:         h,
		F:         g + h,
		Parent:    parent,
		heapIndex: -1,
	}
}

// Successors returns the node's computed successor list. Callers must only
// call this after observing isDone() == true with the happens-before
// ordering that acquire-load provides (see status.go); it is undefined to
// read Successors concurrently with a writer still in the Working state.
func (n *Node[S]) Successors() []*Node[S] {
	return n.successors
}

// Arena is an append-only store of nodes owned by exactly one writer.
// Because blocks are never reallocated once allocated, every *Node handed
// out remains valid for the arena's lifetime — the "no relocation" half of
// the arena-ownership design (see DESIGN.md). Parallel engines that need
// more than one writer (CAFE's speculative workers) simply use one Arena per
// writer; references between arenas are legal because both are append-only.
type Arena[S comparable] struct {
	blocks [][]Node[S]
	count  int
}

// NewArena returns an empty arena ready to hand out nodes.
func NewArena[S comparable]() *Arena[S] {
	return &Arena[S]{}
}

// New allocates and returns a pointer to a freshly constructed node. The
// returned pointer is stable: it is never invalidated by subsequent calls to
// New on the same Arena.
func (a *Arena[S]) New(state S, g, h Cost, parent *Node[S]) *Node[S] {
	blockIdx := a.count / arenaBlockSize
	if blockIdx == len(a.blocks) {
		a.blocks = append(a.blocks, make([]Node[S], arenaBlockSize))
	}
	offset := a.count % arenaBlockSize
	block := a.blocks[blockIdx]
	block[offset] = newNode(state, g, h, parent)
	n := &block[offset]
	a.count++
	return n
}

// Len reports how many nodes have been allocated from this arena.
func (a *Arena[S]) Len() int {
	return a.count
}
