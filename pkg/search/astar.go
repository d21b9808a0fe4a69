package search

import (
	"context"

	"github.com/google/uuid"
)

// AStar is the serial baseline engine (§4.6): pop the minimum-(f, g) node,
// return it if it is a goal, otherwise expand it and fold every successor
// through the duplicate-resolution protocol.
type AStar[S comparable] struct {
	cfg Config
}

// NewAStar constructs a sequential A* engine. Threads-related options are
// accepted for API symmetry with the parallel engines but have no effect.
func NewAStar[S comparable](opts ...Option) *AStar[S] {
	return &AStar[S]{cfg: newConfig(opts)}
}

// Run executes sequential A* to completion. It never returns a non-nil error
// except for ctx cancellation; "no path found" is reported via an empty
// Result.Path, not an error.
func (e *AStar[S]) Run(ctx context.Context, problem Problem[S]) (Result[S], error) {
	var stats Stats
	stats.StartClock()

	runID := uuid.NewString()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "astar", Msg: "start"})

	arena := NewArena[S]()
	closed := NewClosedTable[S]()
	frontier := NewFrontierHeap[S]()

	initial := problem.InitialState()
	start := arena.New(initial, 0, problem.Heuristic(initial), nil)
	closed.Put(start)
	frontier.Push(start)

	var goal *Node[S]
	for !frontier.Empty() {
		if err := ctx.Err(); err != nil {
			return Result[S]{}, err
		}

		current := frontier.Pop()
		if current.H == 0 {
			goal = current
			e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "astar", Msg: "goal", Meta: map[string]any{"g": current.G}})
			break
		}
		e.expand(runID, current, arena, closed, frontier, problem, &stats)
	}

	stats.StopClock()
	var path []S
	if goal != nil {
		stats.pathFound = true
		stats.pathLength = goal.G
		path = reconstructPath(goal)
	}

	snap := stats.Snapshot("astar", 1, e.cfg.ExtraExpansionTime, false)
	e.cfg.Metrics.Observe(snap)
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "astar", Msg: "finish"})
	persistRun(ctx, e.cfg, runID, "astar", path, snap)

	return Result[S]{RunID: runID, Path: path, Stats: stats}, nil
}

func (e *AStar[S]) expand(runID string, n *Node[S], arena *Arena[S], closed *ClosedTable[S], frontier *FrontierHeap[S], problem Problem[S], stats *Stats) {
	stats.incExpanded()
	e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "astar", Msg: "expand", Meta: map[string]any{"g": n.G, "h": n.H}})
	for _, succState := range problem.Successors(n.State) {
		if succState == n.State {
			continue
		}
		g := n.G + problem.StepCost(n.State, succState)
		h := problem.Heuristic(succState)
		child := arena.New(succState, g, h, n)

		stats.incGenerated()
		res, node := closed.Resolve(child)
		if res == ResolveUpdate {
			e.cfg.Emitter.Emit(Event{RunID: runID, Algorithm: "astar", Msg: "duplicate", Meta: map[string]any{"f": node.F}})
		}
		applyResolution(res, node, frontier, stats)
	}
	wasteTime(e.cfg.ExtraExpansionTime)
}
