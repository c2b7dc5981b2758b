package milp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	errNodeInfeasible = errors.New("milp: relaxation infeasible")
	errNodeUnbounded  = errors.New("milp: relaxation unbounded")
)

// solveRelaxation solves the LP relaxation of m under the given variable
// bounds using gonum's simplex. Conversion to standard form splits every
// variable into positive and negative parts, which discards sign information,
// so all bounds (including plain x >= 0) are emitted as explicit inequality
// rows before the conversion.
func solveRelaxation(m *Model, lower, upper []float64, tol float64) (float64, []float64, error) {
	n := len(m.Variables)

	var nEq, nIneq int
	for _, c := range m.Constraints {
		if c.Sense == Equal {
			nEq++
		} else {
			nIneq++
		}
	}
	for j := 0; j < n; j++ {
		nIneq++
		if !math.IsInf(upper[j], 1) {
			nIneq++
		}
	}

	c := make([]float64, n)
	for j, v := range m.Variables {
		c[j] = v.Cost
	}

	g := mat.NewDense(nIneq, n, nil)
	h := make([]float64, nIneq)

	var aDense *mat.Dense
	var b []float64
	if nEq > 0 {
		aDense = mat.NewDense(nEq, n, nil)
		b = make([]float64, nEq)
	}

	ei, gi := 0, 0
	for _, con := range m.Constraints {
		switch con.Sense {
		case Equal:
			for _, t := range con.Terms {
				aDense.Set(ei, t.Var, aDense.At(ei, t.Var)+t.Coeff)
			}
			b[ei] = con.RHS
			ei++
		case LessEq:
			for _, t := range con.Terms {
				g.Set(gi, t.Var, g.At(gi, t.Var)+t.Coeff)
			}
			h[gi] = con.RHS
			gi++
		case GreaterEq:
			for _, t := range con.Terms {
				g.Set(gi, t.Var, g.At(gi, t.Var)-t.Coeff)
			}
			h[gi] = -con.RHS
			gi++
		}
	}
	for j := 0; j < n; j++ {
		g.Set(gi, j, -1)
		h[gi] = -lower[j]
		gi++
		if !math.IsInf(upper[j], 1) {
			g.Set(gi, j, 1)
			h[gi] = upper[j]
			gi++
		}
	}

	var a mat.Matrix
	if aDense != nil {
		a = aDense
	}

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	obj, xStd, err := lp.Simplex(cStd, aStd, bStd, tol, nil)
	if err != nil {
		switch {
		case errors.Is(err, lp.ErrInfeasible):
			return 0, nil, errNodeInfeasible
		case errors.Is(err, lp.ErrUnbounded):
			return 0, nil, errNodeUnbounded
		default:
			return 0, nil, fmt.Errorf("milp: simplex: %w", err)
		}
	}

	// Standard-form order is [x+, x-, slacks]; recover x = x+ - x-.
	x := make([]float64, n)
	for j := 0; j < n; j++ {
		x[j] = xStd[j] - xStd[n+j]
	}

	return obj, x, nil
}
