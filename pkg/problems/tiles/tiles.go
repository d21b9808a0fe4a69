// Package tiles implements the sliding-tile puzzle Problem Instance: a 4x4
// board of tiles 0-15 (0 is the empty slot), state packed into a single
// uint64 so it can be used directly as a search.Problem state type and a
// map key without a separate hash function.
package tiles

import (
	"bufio"
	"fmt"
	"io"

	"github.com/autumnippert/spbfs-go/pkg/search"
)

const (
	size      = 4
	cellCount = size * size
	emptyTile = 0
)

// State is 16 tiles packed 4 bits each into a uint64, tile i occupying bits
// [4i, 4i+4). Packing the whole board into one comparable scalar is what
// lets State satisfy Go's comparable constraint with zero custom hashing
// (§6: "positions are packed into a 64-bit word (4 bits per tile)").
type State uint64

func (s State) at(i int) int {
	return int((s >> (4 * uint(i))) & 0xF)
}

func (s State) with(i, v int) State {
	mask := ^(State(0xF) << (4 * uint(i)))
	return (s & mask) | (State(v) << (4 * uint(i)))
}

func pack(board [cellCount]int) State {
	var s State
	for i, v := range board {
		s = s.with(i, v)
	}
	return s
}

func (s State) emptyIndex() int {
	for i := 0; i < cellCount; i++ {
		if s.at(i) == emptyTile {
			return i
		}
	}
	return -1
}

// Problem is a sliding-tile puzzle instance: a fixed goal board plus the
// per-tile-value goal index lookup used by the Manhattan-distance
// heuristic.
type Problem struct {
	initial State
	goal    State
	// goalIndex[tileValue] = index of tileValue on the goal board.
	goalIndex [cellCount]int
}

// Parse reads a problem instance in the §6 sliding-tile format: a "W H"
// dimension line (must be "4 4"), a header line, 16 starting positions (one
// per line), a header line, and 16 goal positions.
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
	if rows != size || cols != size {
		return nil, fmt.Errorf("%w: sliding-tile requires a %dx%d board, got %dx%d", search.ErrUsage, size, size, rows, cols)
	}

	start, err := readBoard(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading start board: %v", search.ErrUsage, err)
	}
	goal, err := readBoard(sc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading goal board: %v", search.ErrUsage, err)
	}

	p := &Problem{initial: pack(start), goal: pack(goal)}
	for i, v := range goal {
		p.goalIndex[v] = i
	}
	return p, nil
}

// readBoard skips the header line preceding a block of positions, then
// reads cellCount integers, one per line.
func readBoard(sc *bufio.Scanner) ([cellCount]int, error) {
	var board [cellCount]int
	if !sc.Scan() {
		return board, fmt.Errorf("missing header line")
	}
	for i := 0; i < cellCount; i++ {
		if !sc.Scan() {
			return board, fmt.Errorf("expected %d positions, got %d", cellCount, i)
		}
		var v int
		if _, err := fmt.Sscanf(sc.Text(), "%d", &v); err != nil {
			return board, fmt.Errorf("bad position at line %d: %v", i, err)
		}
		board[i] = v
	}
	return board, nil
}

// InitialState returns the packed starting board.
func (p *Problem) InitialState() State { return p.initial }

var _ search.Problem[State] = (*Problem)(nil)

// Successors returns up to four boards reachable by sliding one tile into
// the empty slot: up, down, left, right, whichever stay on the board.
func (p *Problem) Successors(s State) []State {
	empty := s.emptyIndex()
	row, col := empty/size, empty%size
	succ := make([]State, 0, 4)
	if row > 0 {
		succ = append(succ, swap(s, empty, empty-size))
	}
	if col > 0 {
		succ = append(succ, swap(s, empty, empty-1))
	}
	if col < size-1 {
		succ = append(succ, swap(s, empty, empty+1))
	}
	if row < size-1 {
		succ = append(succ, swap(s, empty, empty+size))
	}
	return succ
}

func swap(s State, a, b int) State {
	va, vb := s.at(a), s.at(b)
	return s.with(a, vb).with(b, va)
}

// StepCost is 1 for every move: the puzzle has unit-cost transitions.
func (p *Problem) StepCost(State, State) search.Cost { return 1 }

// Heuristic is the sum of Manhattan distances of every non-empty tile from
// its goal position, admissible because each move displaces exactly one
// tile by one cell.
func (p *Problem) Heuristic(s State) search.Cost {
	var dist search.Cost
	for i := 0; i < cellCount; i++ {
		v := s.at(i)
		if v == emptyTile {
			continue
		}
		goalIdx := p.goalIndex[v]
		dr := abs(goalIdx/size - i/size)
		dc := abs(goalIdx%size - i%size)
		dist += search.Cost(dr + dc)
	}
	return dist
}

// MaxActionCount is 4: at most up/down/left/right for the empty slot.
func (p *Problem) MaxActionCount() int { return 4 }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
