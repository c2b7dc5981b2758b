package milp

import (
	"context"
	"errors"
	"math"
)

const (
	defaultSimplexTol = 1e-9
	defaultIntTol     = 1e-6
	defaultMaxNodes   = 200000

	// pruneEps keeps equal-objective siblings from replacing an incumbent,
	// which keeps repeated solves deterministic.
	pruneEps = 1e-9
)

// BranchBound is an exact solver for small mixed-integer models: depth-first
// dives on fractional binaries, LP relaxations via gonum's simplex, bound
// pruning against the incumbent.
type BranchBound struct {
	SimplexTol float64
	IntTol     float64
	MaxNodes   int
}

// NewBranchBound creates a solver with default tolerances
func NewBranchBound() *BranchBound {
	return &BranchBound{
		SimplexTol: defaultSimplexTol,
		IntTol:     defaultIntTol,
		MaxNodes:   defaultMaxNodes,
	}
}

// Verify interface compliance
var _ Solver = (*BranchBound)(nil)

// bbNode is one open subproblem: the variable bounds after branching
type bbNode struct {
	lower []float64
	upper []float64
}

// Solve runs branch and bound on m. Context expiry surfaces as
// StatusTimeLimit; only malformed models and simplex breakdowns are errors.
func (bb *BranchBound) Solve(ctx context.Context, m Model) (Solution, error) {
	if err := m.Validate(); err != nil {
		return Solution{}, err
	}

	n := len(m.Variables)
	root := bbNode{lower: make([]float64, n), upper: make([]float64, n)}
	for j, v := range m.Variables {
		root.lower[j] = v.Lower
		root.upper[j] = v.Upper
	}

	incumbent := Solution{Status: StatusInfeasible, Objective: math.Inf(1)}
	stack := []bbNode{root}
	atRoot := true
	explored := 0

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return Solution{Status: StatusTimeLimit}, nil
		}
		explored++
		if explored > bb.maxNodes() {
			return Solution{Status: StatusUnknown}, nil
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		obj, x, err := solveRelaxation(&m, node.lower, node.upper, bb.simplexTol())
		switch {
		case errors.Is(err, errNodeInfeasible):
			atRoot = false
			continue
		case errors.Is(err, errNodeUnbounded):
			if atRoot {
				return Solution{Status: StatusUnbounded}, nil
			}
			atRoot = false
			continue
		case err != nil:
			return Solution{}, err
		}
		atRoot = false

		if incumbent.Status == StatusOptimal && obj >= incumbent.Objective-pruneEps {
			continue
		}

		branchVar := bb.pickBranchVariable(&m, x)
		if branchVar < 0 {
			incumbent = Solution{
				Status:    StatusOptimal,
				Objective: obj,
				Values:    bb.snap(&m, x),
			}
			continue
		}

		down := cloneNode(node)
		down.upper[branchVar] = 0
		up := cloneNode(node)
		up.lower[branchVar] = 1

		// Dive toward the relaxation's rounded value first (last pushed is
		// explored next).
		if x[branchVar] >= 0.5 {
			stack = append(stack, down, up)
		} else {
			stack = append(stack, up, down)
		}
	}

	return incumbent, nil
}

// pickBranchVariable returns the most fractional binary, first index on ties,
// or -1 when the point is integral.
func (bb *BranchBound) pickBranchVariable(m *Model, x []float64) int {
	branchVar := -1
	maxFrac := bb.intTol()
	for j, v := range m.Variables {
		if v.Kind != Binary {
			continue
		}
		frac := math.Abs(x[j] - math.Round(x[j]))
		if frac > maxFrac {
			maxFrac = frac
			branchVar = j
		}
	}
	return branchVar
}

// snap cleans an integral relaxation point: binaries to exact 0/1, continuous
// values clamped into their model bounds to absorb simplex round-off.
func (bb *BranchBound) snap(m *Model, x []float64) []float64 {
	values := make([]float64, len(x))
	for j, v := range m.Variables {
		switch v.Kind {
		case Binary:
			values[j] = math.Round(x[j])
		default:
			values[j] = math.Min(math.Max(x[j], v.Lower), v.Upper)
		}
	}
	return values
}

func (bb *BranchBound) simplexTol() float64 {
	if bb.SimplexTol > 0 {
		return bb.SimplexTol
	}
	return defaultSimplexTol
}

func (bb *BranchBound) intTol() float64 {
	if bb.IntTol > 0 {
		return bb.IntTol
	}
	return defaultIntTol
}

func (bb *BranchBound) maxNodes() int {
	if bb.MaxNodes > 0 {
		return bb.MaxNodes
	}
	return defaultMaxNodes
}

func cloneNode(node bbNode) bbNode {
	lower := make([]float64, len(node.lower))
	upper := make([]float64, len(node.upper))
	copy(lower, node.lower)
	copy(upper, node.upper)
	return bbNode{lower: lower, upper: upper}
}
