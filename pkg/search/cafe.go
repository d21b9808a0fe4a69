package search

import (
	"context"
	"runtime"

	"github.com/google/uuid"
)

// CAFE is the coordinator-plus-speculative-workers engine (§4.9). A single
// coordinator goroutine owns the closed table and frontier outright — no
// locking needed, since it is the only goroutine that ever touches them —
// while Threads worker goroutines race ahead of the coordinator, speculating
// on nodes the coordinator has not reached yet by reading a LookaheadWindow.
// Each worker claims a node via its atomic status (tryClaim) before touching
// it, so a node that both a worker and the coordinator reach at the same
// moment is expanded by whichever wins the CAS, never both.
type CAFE[S comparable] struct {
	cfg Config
}

// NewCAFE constructs a CAFE engine. Threads (via WithThreads) is the
// speculative worker count; 0 degenerates to sequential A* (§8), since the
// coordinator alone then does every expansion manually.
func NewCAFE[S comparable](opts ...Option) *CAFE[S] {
	return &CAFE[S]{cfg: newConfig(opts)}
}

func (e *CAFE[S]) Run(ctx context.Context, problem Problem[S]) (Result[S], error) {
	workers := e.cfg.Threads
	if workers < 0 {
		workers = 0
	}
	width := e.cfg.WindowSize
	if width < 1 {
		width = 1
	}

	var stats Stats
	stats.StartClock()

	runID := uuid.NewString()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "cafe", Msg: "start"})

	coordArena := NewArena[S]()
	closed := NewClosedTable[S]()
	frontier := NewFrontierHeap[S]()
	window := NewLookaheadWindow[S](width)

	initial := problem.InitialState()
	start := coordArena.New(initial, 0, problem.Heuristic(initial), nil)
	closed.Put(start)
	frontier.Push(start)
	window.Push(start)

	stopped := make(chan struct{})
	for i := 0; i < workers; i++ {
		go e.speculate(runID, i, width, stopped, window, problem, &stats)
	}

	// Workers only precompute expansions for nodes the coordinator has
	// already pushed; they never add new frontier entries themselves, so the
	// coordinator's termination condition depends only on its own frontier,
	// exactly as in sequential A* (§4.6).
	var goal *Node[S]
	for !frontier.Empty() {
		if err := ctx.Err(); err != nil {
			close(stopped)
			return Result[S]{}, err
		}

		current := frontier.Pop()
		if current.H == 0 {
			goal = current
			e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "cafe", Msg: "goal", Meta: map[string]any{"g": current.G}})
			break
		}

		if !current.isDone() {
			e.expandNode(runID, current, coordArena, problem, &stats, true)
		}
		// A worker may have won the claim race instead of the coordinator's
		// own expandNode call above; either way, wait for whoever holds the
		// claim to publish before reading Successors(), so this read always
		// happens-after the matching publishDone.
		for !current.isDone() {
			runtime.Gosched()
		}

		for _, succ := range current.Successors() {
			stats.incGenerated()
			res, node := closed.Resolve(succ)
			switch res {
			case ResolveNew:
				frontier.Push(node)
				window.Push(node)
			case ResolveDiscard:
				stats.decGenerated()
			case ResolveUpdate:
				frontier.Update(node)
				stats.incDuplicated()
				e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "cafe", Msg: "duplicate", Meta: map[string]any{"f": node.F}})
				if node.isDone() {
					// the canonical node's g changed, so its children were
					// computed from a stale g: force re-expansion.
					node.resetForRequeue(nil)
				}
			}
		}
	}

	close(stopped)

	stats.StopClock()
	var path []S
	if goal != nil {
		stats.pathFound = true
		stats.pathLength = goal.G
		path = reconstructPath(goal)
	}

	snap := stats.Snapshot("cafe", workers, e.cfg.ExtraExpansionTime, true)
	e.cfg.Metrics.Observe(snap)
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "cafe", Msg: "finish"})
	persistRun(ctx, e.cfg, runID, "cafe", path, snap)

	return Result[S]{RunID: runID, Path: path, Stats: stats}, nil
}

// speculate is a worker's loop: it watches one sliding slot of the
// lookahead window and expands whatever node currently occupies it,
// provided no one has claimed that node yet. Each worker owns a private
// arena so its speculative allocations never race the coordinator's or
// another worker's.
func (e *CAFE[S]) speculate(runID string, id, width int, stopped <-chan struct{}, window *LookaheadWindow[S], problem Problem[S], stats *Stats) {
	arena := NewArena[S]()
	slot := id % width
	for {
		select {
		case <-stopped:
			return
		default:
		}
		n, ok := window.Get(slot)
		if !ok {
			runtime.Gosched()
			continue
		}
		e.expandNode(runID, n, arena, problem, stats, false)
		runtime.Gosched()
	}
}

// expandNode performs the actual expansion: claim the node, compute every
// successor's g/h/f into arena, and publish. If another goroutine already
// claimed n (tryClaim fails), expandNode is a no-op — the caller's current
// view of n.Successors() (possibly still empty) is simply not this node's
// concern.
func (e *CAFE[S]) expandNode(runID string, n *Node[S], arena *Arena[S], problem Problem[S], stats *Stats, manual bool) {
	if !n.tryClaim() {
		return
	}
	stats.incExpanded()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "cafe", Msg: "expand", Meta: map[string]any{"g": n.G, "h": n.H, "manual": manual}})
	succStates := problem.Successors(n.State)
	successors := make([]*Node[S], 0, problem.MaxActionCount())
	for _, succState := range succStates {
		if succState == n.State {
			continue
		}
		g := n.G + problem.StepCost(n.State, succState)
		h := problem.Heuristic(succState)
		successors = append(successors, arena.New(succState, g, h, n))
	}
	wasteTime(e.cfg.ExtraExpansionTime)
	n.publishDone(successors)
	if manual {
		stats.incManualExpanded()
	} else {
		stats.incSpeculated()
	}
}
