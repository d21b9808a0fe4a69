package search

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// SPAStar is the shared-pool parallel engine (§4.8): Threads worker
// goroutines share one arena, one closed table, and one frontier, each
// guarded by its own mutex. Every critical section that needs more than one
// lock acquires them in the fixed order nodes -> closed -> frontier (expand
// takes the frontier lock while still holding closed), so the order alone
// rules out deadlock without needing a single combined lock.
type SPAStar[S comparable] struct {
	cfg Config
}

// NewSPAStar constructs an SPA* engine. Threads (via WithThreads) is the
// worker count; the default is 1, which degenerates to sequential A* (§8).
func NewSPAStar[S comparable](opts ...Option) *SPAStar[S] {
	return &SPAStar[S]{cfg: newConfig(opts)}
}

func (e *SPAStar[S]) Run(ctx context.Context, problem Problem[S]) (Result[S], error) {
	threads := e.cfg.Threads
	if threads < 1 {
		threads = 1
	}

	var stats Stats
	stats.StartClock()

	runID := uuid.NewString()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "spastar", Msg: "start"})

	arena := NewArena[S]()
	closed := NewClosedTable[S]()
	frontier := NewFrontierHeap[S]()

	var nodesMu sync.Mutex
	var frontierMu sync.Mutex

	initial := problem.InitialState()
	start := arena.New(initial, 0, problem.Heuristic(initial), nil)
	closed.Put(start)
	frontier.Push(start)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	finishes := make([]*Node[S], threads)
	var busy atomic.Int64 // workers between Pop and the end of their expand
	var wg sync.WaitGroup

	worker := func(id int) {
		defer wg.Done()
		for runCtx.Err() == nil {
			frontierMu.Lock()
			if frontier.Empty() {
				idle := busy.Load() == 0
				frontierMu.Unlock()
				if idle {
					break
				}
				runtime.Gosched()
				continue
			}
			current := frontier.Pop()
			busy.Add(1)
			frontierMu.Unlock()

			if current.H == 0 {
				finishes[id] = current
				e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "spastar", Msg: "goal", Meta: map[string]any{"g": current.G, "worker": id}})
				cancel()
				break
			}
			e.expand(runID, current, arena, &nodesMu, closed, frontier, &frontierMu, problem, &stats)
			busy.Add(-1)
		}
	}

	wg.Add(threads)
	for i := 0; i < threads; i++ {
		go worker(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result[S]{}, err
	}

	var goal *Node[S]
	for _, n := range finishes {
		if n == nil || n.H != 0 {
			continue
		}
		if goal == nil || n.F < goal.F || (n.F == goal.F && n.G < goal.G) {
			goal = n
		}
	}

	stats.StopClock()
	var path []S
	if goal != nil {
		stats.pathFound = true
		stats.pathLength = goal.G
		path = reconstructPath(goal)
	}

	snap := stats.Snapshot("spastar", threads, e.cfg.ExtraExpansionTime, false)
	e.cfg.Metrics.Observe(snap)
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "spastar", Msg: "finish"})
	persistRun(ctx, e.cfg, runID, "spastar", path, snap)

	return Result[S]{RunID: runID, Path: path, Stats: stats}, nil
}

func (e *SPAStar[S]) expand(runID string, n *Node[S], arena *Arena[S], nodesMu *sync.Mutex, closed *ClosedTable[S], frontier *FrontierHeap[S], frontierMu *sync.Mutex, problem Problem[S], stats *Stats) {
	stats.incExpanded()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "spastar", Msg: "expand", Meta: map[string]any{"g": n.G, "h": n.H}})
	for _, succState := range problem.Successors(n.State) {
		if succState == n.State {
			continue
		}
		g := n.G + problem.StepCost(n.State, succState)
		h := problem.Heuristic(succState)

		nodesMu.Lock()
		child := arena.New(succState, g, h, n)
		nodesMu.Unlock()

		stats.incGenerated()

		// closed stays locked across the whole resolve-then-(push|update)
		// sequence, frontierMu nested inside it (lock order nodes -> closed ->
		// frontier), so no other goroutine can observe child registered as
		// canonical before it is actually in the frontier.
		closed.Lock()
		res, node := closed.Resolve(child)
		switch res {
		case ResolveNew:
			frontierMu.Lock()
			frontier.Push(node)
			frontierMu.Unlock()
		case ResolveUpdate:
			frontierMu.Lock()
			frontier.Update(node)
			frontierMu.Unlock()
		}
		closed.Unlock()

		if res == ResolveDiscard {
			stats.decGenerated()
			continue
		}
		if res == ResolveUpdate {
			stats.incDuplicated()
			e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "spastar", Msg: "duplicate", Meta: map[string]any{"f": node.F}})
		}
	}
	wasteTime(e.cfg.ExtraExpansionTime)
}
