package search

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// KBFS is the bulk-synchronous parallel engine (§4.7): each round pops up to
// Threads nodes off the frontier, expands them concurrently, then folds
// every successor back through §4.2 serially on the calling goroutine.
// Workers never touch the closed table, the frontier, or the shared arena —
// they only compute successor states, costs, and heuristics — so the round
// barrier is the only synchronization the design needs.
type KBFS[S comparable] struct {
	cfg Config
}

// NewKBFS constructs a KBFS engine. Threads (via WithThreads) is the batch
// size k; the default is 1, which degenerates to sequential A* (§8).
func NewKBFS[S comparable](opts ...Option) *KBFS[S] {
	return &KBFS[S]{cfg: newConfig(opts)}
}

// kbfsCandidate is a successor computed by a worker but not yet folded into
// the shared arena, closed table, or frontier. Keeping worker output as
// plain data (rather than having workers allocate Nodes directly) is what
// lets "preallocate slots, dispatch workers, fold serially" hold without any
// worker ever writing into a structure another goroutine can see.
type kbfsCandidate[S comparable] struct {
	state S
	g, h  Cost
}

func (e *KBFS[S]) Run(ctx context.Context, problem Problem[S]) (Result[S], error) {
	k := e.cfg.Threads
	if k < 1 {
		k = 1
	}

	var stats Stats
	stats.StartClock()

	runID := uuid.NewString()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "kbfs", Msg: "start"})

	arena := NewArena[S]()
	closed := NewClosedTable[S]()
	frontier := NewFrontierHeap[S]()

	initial := problem.InitialState()
	start := arena.New(initial, 0, problem.Heuristic(initial), nil)
	closed.Put(start)
	frontier.Push(start)

	var goal *Node[S]

roundLoop:
	for !frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return Result[S]{}, err
		}

		batch := make([]*Node[S], 0, k)
		for len(batch) < k && !frontier.Empty() {
			batch = append(batch, frontier.Pop())
		}

		for _, n := range batch {
			if n.H == 0 {
				goal = n
				e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "kbfs", Msg: "goal", Meta: map[string]any{"g": n.G}})
				break roundLoop
			}
		}

		allSuccessors := make([][]kbfsCandidate[S], len(batch))
		g, _ := errgroup.WithContext(ctx)
		for i, n := range batch {
			i, n := i, n
			g.Go(func() error {
				allSuccessors[i] = e.expandWorker(n, problem)
				return nil
			})
		}
		_ = g.Wait() // workers never return errors; Wait only provides the barrier

		for i, n := range batch {
			stats.incExpanded()
			e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "kbfs", Msg: "expand", Meta: map[string]any{"g": n.G, "h": n.H}})
			for _, c := range allSuccessors[i] {
				child := arena.New(c.state, c.g, c.h, n)
				stats.incGenerated()
				res, node := closed.Resolve(child)
				if res == ResolveUpdate {
					e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "kbfs", Msg: "duplicate", Meta: map[string]any{"f": node.F}})
				}
				applyResolution(res, node, frontier, &stats)
			}
		}
	}

	stats.StopClock()
	var path []S
	if goal != nil {
		stats.pathFound = true
		stats.pathLength = goal.G
		path = reconstructPath(goal)
	}

	snap := stats.Snapshot("kbfs", k, e.cfg.ExtraExpansionTime, false)
	e.cfg.Metrics.Observe(snap)
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "kbfs", Msg: "finish"})
	persistRun(ctx, e.cfg, runID, "kbfs", path, snap)

	return Result[S]{RunID: runID, Path: path, Stats: stats}, nil
}

// expandWorker computes n's successor candidates without touching any
// shared structure. maxActionCount sizes the preallocation so a worker never
// reallocates its own output slice mid-expansion.
func (e *KBFS[S]) expandWorker(n *Node[S], problem Problem[S]) []kbfsCandidate[S] {
	out := make([]kbfsCandidate[S], 0, problem.MaxActionCount())
	for _, succState := range problem.Successors(n.State) {
		if succState == n.State {
			continue
		}
		out = append(out, kbfsCandidate[S]{
			state: succState,
			g:     n.G + problem.StepCost(n.State, succState),
			h:     problem.Heuristic(succState),
		})
	}
	wasteTime(e.cfg.ExtraExpansionTime)
	return out
}
