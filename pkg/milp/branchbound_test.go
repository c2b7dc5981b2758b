package milp

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchBound_PureLP(t *testing.T) {
	var m Model
	x := m.AddVariable(Variable{Name: "x", Lower: 0, Upper: 5, Cost: 1})
	y := m.AddVariable(Variable{Name: "y", Lower: 0, Upper: 5, Cost: 1})
	m.AddConstraint(Constraint{
		Name:  "demand",
		Terms: []Term{{Var: x, Coeff: 1}, {Var: y, Coeff: 1}},
		Sense: GreaterEq,
		RHS:   2,
	})

	sol, err := NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 2.0, sol.Objective, 1e-6)
	assert.InDelta(t, 2.0, sol.Values[x]+sol.Values[y], 1e-6)
}

func TestBranchBound_BranchesToIntegerOptimum(t *testing.T) {
	// Knapsack: values 5,4,3, weights 2,3,4, capacity 6. The LP relaxation
	// is fractional; the integer optimum takes the first two items.
	var m Model
	a := m.AddVariable(Variable{Name: "a", Kind: Binary, Lower: 0, Upper: 1, Cost: -5})
	b := m.AddVariable(Variable{Name: "b", Kind: Binary, Lower: 0, Upper: 1, Cost: -4})
	c := m.AddVariable(Variable{Name: "c", Kind: Binary, Lower: 0, Upper: 1, Cost: -3})
	m.AddConstraint(Constraint{
		Name:  "capacity",
		Terms: []Term{{Var: a, Coeff: 2}, {Var: b, Coeff: 3}, {Var: c, Coeff: 4}},
		Sense: LessEq,
		RHS:   6,
	})

	sol, err := NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, -9.0, sol.Objective, 1e-6)
	assert.Equal(t, 1.0, sol.Values[a])
	assert.Equal(t, 1.0, sol.Values[b])
	assert.Equal(t, 0.0, sol.Values[c])
}

// minBatchModel is the allocation shape: two lanes with activation binaries,
// a demand equality, and minimum-batch links.
func minBatchModel() Model {
	var m Model
	x1 := m.AddVariable(Variable{Name: "x1", Lower: 0, Upper: math.Inf(1), Cost: 0.2})
	x2 := m.AddVariable(Variable{Name: "x2", Lower: 0, Upper: math.Inf(1), Cost: 0.8})
	y1 := m.AddVariable(Variable{Name: "y1", Kind: Binary, Lower: 0, Upper: 1})
	y2 := m.AddVariable(Variable{Name: "y2", Kind: Binary, Lower: 0, Upper: 1})

	m.AddConstraint(Constraint{Name: "demand", Terms: []Term{{x1, 1}, {x2, 1}}, Sense: Equal, RHS: 1000})
	m.AddConstraint(Constraint{Name: "cap1", Terms: []Term{{x1, 1}}, Sense: LessEq, RHS: 600})
	m.AddConstraint(Constraint{Name: "cap2", Terms: []Term{{x2, 1}}, Sense: LessEq, RHS: 600})
	m.AddConstraint(Constraint{Name: "act1", Terms: []Term{{x1, 1}, {y1, -1000}}, Sense: LessEq, RHS: 0})
	m.AddConstraint(Constraint{Name: "act2", Terms: []Term{{x2, 1}, {y2, -1000}}, Sense: LessEq, RHS: 0})
	m.AddConstraint(Constraint{Name: "batch1", Terms: []Term{{x1, 1}, {y1, -500}}, Sense: GreaterEq, RHS: 0})
	m.AddConstraint(Constraint{Name: "batch2", Terms: []Term{{x2, 1}, {y2, -500}}, Sense: GreaterEq, RHS: 0})

	return m
}

func TestBranchBound_MinimumBatchForcesEvenSplit(t *testing.T) {
	// The cheap lane is capped at 600, but taking all 600 would leave 400 on
	// the other lane, below the 500 minimum batch. The optimum is 500/500.
	sol, err := NewBranchBound().Solve(context.Background(), minBatchModel())
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, sol.Status)
	assert.InDelta(t, 500.0, sol.Values[0], 1e-4)
	assert.InDelta(t, 500.0, sol.Values[1], 1e-4)
	assert.Equal(t, 1.0, sol.Values[2])
	assert.Equal(t, 1.0, sol.Values[3])
	assert.InDelta(t, 500.0, sol.Objective, 1e-4)
}

func TestBranchBound_IntegerInfeasible(t *testing.T) {
	// Demand below the minimum batch: the LP relaxation is feasible with a
	// fractional activation, but both integer branches are infeasible.
	var m Model
	x := m.AddVariable(Variable{Name: "x", Lower: 0, Upper: math.Inf(1)})
	y := m.AddVariable(Variable{Name: "y", Kind: Binary, Lower: 0, Upper: 1})
	m.AddConstraint(Constraint{Name: "demand", Terms: []Term{{x, 1}}, Sense: Equal, RHS: 300})
	m.AddConstraint(Constraint{Name: "act", Terms: []Term{{x, 1}, {y, -1000}}, Sense: LessEq, RHS: 0})
	m.AddConstraint(Constraint{Name: "batch", Terms: []Term{{x, 1}, {y, -500}}, Sense: GreaterEq, RHS: 0})

	sol, err := NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestBranchBound_Unbounded(t *testing.T) {
	var m Model
	x := m.AddVariable(Variable{Name: "x", Lower: 0, Upper: math.Inf(1), Cost: -1})
	m.AddConstraint(Constraint{Name: "floor", Terms: []Term{{x, 1}}, Sense: GreaterEq, RHS: 1})

	sol, err := NewBranchBound().Solve(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, sol.Status)
}

func TestBranchBound_ContextExpiryIsTimeLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := NewBranchBound().Solve(ctx, minBatchModel())
	require.NoError(t, err)
	assert.Equal(t, StatusTimeLimit, sol.Status)
	assert.Nil(t, sol.Values)
}

func TestBranchBound_MalformedModelIsError(t *testing.T) {
	var m Model
	m.AddVariable(Variable{Name: "x", Lower: 0, Upper: 1})
	m.AddConstraint(Constraint{Name: "bad", Terms: []Term{{Var: 7, Coeff: 1}}, Sense: LessEq, RHS: 1})

	_, err := NewBranchBound().Solve(context.Background(), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "references variable")
}

func TestBranchBound_Deterministic(t *testing.T) {
	first, err := NewBranchBound().Solve(context.Background(), minBatchModel())
	require.NoError(t, err)
	second, err := NewBranchBound().Solve(context.Background(), minBatchModel())
	require.NoError(t, err)

	require.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.Objective, second.Objective)
	assert.Equal(t, first.Values, second.Values)
}
