// Package milp provides a small mixed-integer linear programming model and a
// branch-and-bound solver over gonum's simplex. The Solver interface is the
// only coupling point: any engine that accepts the model form can be swapped
// in without touching callers' constraint construction.
package milp

import (
	"context"
	"fmt"
	"math"
)

// VarKind distinguishes continuous from binary decision variables
type VarKind int

const (
	Continuous VarKind = iota
	Binary
)

// Variable is one decision variable: bounds and objective coefficient.
// Upper may be math.Inf(1) for no upper bound.
type Variable struct {
	Name  string
	Kind  VarKind
	Lower float64
	Upper float64
	Cost  float64
}

// Sense of a linear constraint row
type Sense int

const (
	LessEq Sense = iota
	GreaterEq
	Equal
)

// Term is one coefficient on one variable in a constraint row
type Term struct {
	Var   int
	Coeff float64
}

// Constraint is a sparse linear row: Σ Coeff·x  Sense  RHS
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Model is a minimization mixed-integer linear program
type Model struct {
	Variables   []Variable
	Constraints []Constraint
}

// AddVariable appends a variable and returns its index
func (m *Model) AddVariable(v Variable) int {
	m.Variables = append(m.Variables, v)
	return len(m.Variables) - 1
}

// AddConstraint appends a constraint row
func (m *Model) AddConstraint(c Constraint) {
	m.Constraints = append(m.Constraints, c)
}

// Validate checks the model is well formed. A failing model is malformed
// input, not an infeasible program.
func (m *Model) Validate() error {
	for i, v := range m.Variables {
		if math.IsNaN(v.Cost) || math.IsInf(v.Cost, 0) {
			return fmt.Errorf("milp: variable %d (%s): cost must be finite", i, v.Name)
		}
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) {
			return fmt.Errorf("milp: variable %d (%s): bounds must not be NaN", i, v.Name)
		}
		if v.Lower > v.Upper {
			return fmt.Errorf("milp: variable %d (%s): lower bound %g above upper bound %g", i, v.Name, v.Lower, v.Upper)
		}
		if v.Kind == Binary && (v.Lower < 0 || v.Upper > 1) {
			return fmt.Errorf("milp: variable %d (%s): binary bounds must stay within [0,1]", i, v.Name)
		}
	}
	for i, c := range m.Constraints {
		if len(c.Terms) == 0 {
			return fmt.Errorf("milp: constraint %d (%s): empty row", i, c.Name)
		}
		if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("milp: constraint %d (%s): rhs must be finite", i, c.Name)
		}
		for _, t := range c.Terms {
			if t.Var < 0 || t.Var >= len(m.Variables) {
				return fmt.Errorf("milp: constraint %d (%s): term references variable %d of %d", i, c.Name, t.Var, len(m.Variables))
			}
			if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
				return fmt.Errorf("milp: constraint %d (%s): coefficient must be finite", i, c.Name)
			}
		}
	}

	return nil
}

// Status is the terminal state of a solve
type Status int

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
	StatusUnbounded
	StatusTimeLimit
)

// String method for Status enum
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusTimeLimit:
		return "TimeLimit"
	default:
		return "Unknown"
	}
}

// Solution carries the solve status and, when optimal, the assignment
// aligned with Model.Variables. Values is nil for any non-optimal status.
type Solution struct {
	Status    Status
	Objective float64
	Values    []float64
}

// Solver is the narrow solving capability. Implementations must honor the
// context deadline and report expiry as StatusTimeLimit, not as an error.
type Solver interface {
	Solve(ctx context.Context, model Model) (Solution, error)
}
