// Package pathfind implements the grid pathfinding Problem Instance with
// multi-goal pickup: an actor moves 4-connected around a grid, collecting
// every goal marker before the search's goal predicate is satisfied.
package pathfind

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

const (
	cellGoal  = '*'
	cellWall  = '#'
	cellActor = 'V'
)

// State is the actor's position plus a bitmask of which of the instance's
// goals remain uncollected. Bit i of Remaining corresponds to Problem.goals[i].
// A struct of two comparable scalars satisfies Go's comparable constraint
// without a custom hash function, same rationale as tiles.State.
type State struct {
	Pos       int
	Remaining uint64
}

// Problem is a pathfinding instance: grid dimensions, the set of wall
// cells, and the list of goal cells a full solve must visit.
type Problem struct {
	rows, cols int
	walls      map[int]bool
	goals      []int // cell index per goal bit
	initial    State
}

// Parse reads a problem instance in the §6 pathfinding format: an "R C"
// dimension line, then R lines of C characters. 'V' marks the actor's
// start, '*' marks a goal, '#' marks a wall; any other character is free
// ground.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows, cols int
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing dimension line", search.ErrUsage)
	}
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &rows, &cols); err != nil {
		return nil, fmt.Errorf("%w: bad dimension line: %v", search.ErrUsage, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d", search.ErrUsage, rows, cols)
	}

	p := &Problem{rows: rows, cols: cols, walls: make(map[int]bool)}
	actorFound := false
	var remaining uint64

	for row := 0; row < rows; row++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d grid rows, got %d", search.ErrUsage, rows, row)
		}
		line := sc.Text()
		for col := 0; col < cols; col++ {
			var ch byte = ' '
			if col < len(line) {
				ch = line[col]
			}
			idx := row*p.cols + col
			switch ch {
			case cellWall:
				p.walls[idx] = true
			case cellGoal:
				bit := uint(len(p.goals))
				p.goals = append(p.goals, idx)
				remaining |= 1 << bit
			case cellActor:
				p.initial.Pos = idx
				actorFound = true
			}
		}
	}
	if !actorFound {
		return nil, fmt.Errorf("%w: grid has no actor ('V') cell", search.ErrUsage)
	}
	p.initial.Remaining = remaining
	return p, nil
}

// InitialState returns the actor's start position with every goal still
// uncollected.
func (p *Problem) InitialState() State { return p.initial }

var _ search.Problem[State] = (*Problem)(nil)

// Successors returns the up-to-four cells reachable by one 4-connected move
// into a non-wall, in-bounds cell, each with Remaining updated to clear any
// goal bit the move collects.
func (p *Problem) Successors(s State) []State {
	row, col := s.Pos/p.cols, s.Pos%p.cols
	succ := make([]State, 0, 4)
	moves := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, m := range moves {
		nr, nc := row+m[0], col+m[1]
		if nr < 0 || nr >= p.rows || nc < 0 || nc >= p.cols {
			continue
		}
		idx := nr*p.cols + nc
		if p.walls[idx] {
			continue
		}
		succ = append(succ, State{Pos: idx, Remaining: p.clearGoal(s.Remaining, idx)})
	}
	return succ
}

func (p *Problem) clearGoal(remaining uint64, idx int) uint64 {
	for bit, goalIdx := range p.goals {
		if goalIdx == idx {
			remaining &^= 1 << uint(bit)
		}
	}
	return remaining
}

// StepCost is 1 for every move.
func (p *Problem) StepCost(State, State) search.Cost { return 1 }

// Heuristic is the Manhattan distance to the nearest remaining goal, or 0
// once every goal has been collected (the goal predicate). This is
// admissible for reaching any single goal but, like the reference
// implementation it is grounded on, does not account for the cost of
// visiting every remaining goal in sequence.
func (p *Problem) Heuristic(s State) search.Cost {
	if s.Remaining == 0 {
		return 0
	}
	row, col := s.Pos/p.cols, s.Pos%p.cols
	min := math.MaxInt32
	for bit, goalIdx := range p.goals {
		if s.Remaining&(1<<uint(bit)) == 0 {
			continue
		}
		gr, gc := goalIdx/p.cols, goalIdx%p.cols
		dist := absInt(gr-row) + absInt(gc-col)
		if dist < min {
			min = dist
		}
	}
	return search.Cost(min)
}

// MaxActionCount is 4: at most up/down/left/right.
func (p *Problem) MaxActionCount() int { return 4 }

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
