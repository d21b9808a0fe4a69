package search

// numberProblem is the "count from start to target" instance from the
// teacher's grounding example (pietv-astar/astar.go's doc comment): states
// are integers, a move is +1 or -1, cost is 1, and the heuristic is the
// absolute distance remaining. Small, deterministic, and infinite-domain
// enough to exercise real frontier/closed-table churn without a bespoke
// fixture file.
type numberProblem struct {
	start, target int
}

func (p numberProblem) InitialState() int { return p.start }

func (p numberProblem) Successors(n int) []int {
	return []int{n - 1, n + 1}
}

func (p numberProblem) StepCost(int, int) Cost { return 1 }

func (p numberProblem) Heuristic(n int) Cost {
	d := p.target - n
	if d < 0 {
		d = -d
	}
	return Cost(d)
}

func (p numberProblem) MaxActionCount() int { return 2 }

var _ Problem[int] = numberProblem{}

// gridProblem is a small 4-connected grid with optional walls, used to
// exercise goal-found/no-path-found symmetry and multi-step optimal paths.
type gridProblem struct {
	rows, cols  int
	walls       map[[2]int]bool
	start, goal [2]int
}

func (p gridProblem) InitialState() [2]int { return p.start }

func (p gridProblem) Successors(s [2]int) [][2]int {
	moves := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	out := make([][2]int, 0, 4)
	for _, m := range moves {
		n := [2]int{s[0] + m[0], s[1] + m[1]}
		if n[0] < 0 || n[0] >= p.rows || n[1] < 0 || n[1] >= p.cols {
			continue
		}
		if p.walls[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (p gridProblem) StepCost([2]int, [2]int) Cost { return 1 }

func (p gridProblem) Heuristic(s [2]int) Cost {
	dr := s[0] - p.goal[0]
	if dr < 0 {
		dr = -dr
	}
	dc := s[1] - p.goal[1]
	if dc < 0 {
		dc = -dc
	}
	return Cost(dr + dc)
}

func (p gridProblem) MaxActionCount() int { return 4 }

var _ Problem[[2]int] = gridProblem{}

// validGridPath checks that every consecutive pair of states in path is a
// legal 4-connected move, i.e. one that Successors would have produced.
func validGridPath(p gridProblem, path [][2]int) bool {
	for i := 1; i < len(path); i++ {
		ok := false
		for _, succ := range p.Successors(path[i-1]) {
			if succ == path[i] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
