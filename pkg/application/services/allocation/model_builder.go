package allocation

import (
	"fmt"

	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
	"github.com/vsinha/supplyflow/pkg/milp"
)

// variableIndex maps model variable positions back to the scored flow slice
type variableIndex struct {
	quantity []int
	active   []int
}

// buildModel constructs the mixed-integer allocation model: one continuous
// quantity per flow, one activation binary per flow when a minimum batch is
// set, demand equality, per-factory and per-hub capacity rows, and the
// activation/minimum-batch links. The activation bound is tightened from the
// requested volume to each flow's own factory capacity and hub throughput,
// which keeps the relaxation close to the integer hull.
//
// A factory present in the flow set but absent from the capacity table is
// treated as zero capacity, matching the pre-check's view of it.
func buildModel(
	scored []scoring.ScoredFlow,
	capacities map[entities.FactoryID]entities.Units,
	throughputs map[entities.HubID]entities.Units,
	volume, minBatch entities.Units,
) (milp.Model, variableIndex) {
	var m milp.Model
	idx := variableIndex{
		quantity: make([]int, len(scored)),
		active:   make([]int, len(scored)),
	}

	vol := float64(volume)
	batch := float64(minBatch)

	// Flow quantity variables, bounded by the tightest cap the flow can see.
	flowBound := make([]float64, len(scored))
	for i, sf := range scored {
		bound := vol
		if c, ok := capacities[sf.Flow.Factory]; !ok {
			bound = 0
		} else if float64(c) < bound {
			bound = float64(c)
		}
		if t, ok := throughputs[sf.Flow.Hub]; ok && float64(t) < bound {
			bound = float64(t)
		}
		flowBound[i] = bound

		idx.quantity[i] = m.AddVariable(milp.Variable{
			Name:  fmt.Sprintf("x[%s:%s]", sf.Flow.Factory, sf.Flow.Hub),
			Kind:  milp.Continuous,
			Lower: 0,
			Upper: bound,
			Cost:  sf.Score,
		})
		idx.active[i] = -1
	}

	if minBatch > 0 {
		for i, sf := range scored {
			idx.active[i] = m.AddVariable(milp.Variable{
				Name:  fmt.Sprintf("y[%s:%s]", sf.Flow.Factory, sf.Flow.Hub),
				Kind:  milp.Binary,
				Lower: 0,
				Upper: 1,
			})
		}
	}

	// Exact demand satisfaction.
	demand := milp.Constraint{Name: "demand", Sense: milp.Equal, RHS: vol}
	for i := range scored {
		demand.Terms = append(demand.Terms, milp.Term{Var: idx.quantity[i], Coeff: 1})
	}
	m.AddConstraint(demand)

	// Per-factory capacity, grouped in first-appearance order so the model
	// layout is identical across repeated builds.
	factoryOrder, factoryFlows := groupByFactory(scored)
	for _, factory := range factoryOrder {
		row := milp.Constraint{
			Name:  fmt.Sprintf("cap[%s]", factory),
			Sense: milp.LessEq,
			RHS:   float64(capacities[factory]),
		}
		for _, i := range factoryFlows[factory] {
			row.Terms = append(row.Terms, milp.Term{Var: idx.quantity[i], Coeff: 1})
		}
		m.AddConstraint(row)
	}

	// Per-hub throughput.
	hubOrder, hubFlows := groupByHub(scored)
	for _, hub := range hubOrder {
		throughput, ok := throughputs[hub]
		if !ok {
			continue
		}
		row := milp.Constraint{
			Name:  fmt.Sprintf("thr[%s]", hub),
			Sense: milp.LessEq,
			RHS:   float64(throughput),
		}
		for _, i := range hubFlows[hub] {
			row.Terms = append(row.Terms, milp.Term{Var: idx.quantity[i], Coeff: 1})
		}
		m.AddConstraint(row)
	}

	// Activation and minimum-batch links make the model mixed-integer.
	if minBatch > 0 {
		for i := range scored {
			m.AddConstraint(milp.Constraint{
				Name:  fmt.Sprintf("act[%d]", i),
				Terms: []milp.Term{{Var: idx.quantity[i], Coeff: 1}, {Var: idx.active[i], Coeff: -flowBound[i]}},
				Sense: milp.LessEq,
				RHS:   0,
			})
			m.AddConstraint(milp.Constraint{
				Name:  fmt.Sprintf("batch[%d]", i),
				Terms: []milp.Term{{Var: idx.quantity[i], Coeff: 1}, {Var: idx.active[i], Coeff: -batch}},
				Sense: milp.GreaterEq,
				RHS:   0,
			})
		}
	}

	return m, idx
}

func groupByFactory(scored []scoring.ScoredFlow) ([]entities.FactoryID, map[entities.FactoryID][]int) {
	var order []entities.FactoryID
	groups := make(map[entities.FactoryID][]int)
	for i, sf := range scored {
		if _, seen := groups[sf.Flow.Factory]; !seen {
			order = append(order, sf.Flow.Factory)
		}
		groups[sf.Flow.Factory] = append(groups[sf.Flow.Factory], i)
	}
	return order, groups
}

func groupByHub(scored []scoring.ScoredFlow) ([]entities.HubID, map[entities.HubID][]int) {
	var order []entities.HubID
	groups := make(map[entities.HubID][]int)
	for i, sf := range scored {
		if _, seen := groups[sf.Flow.Hub]; !seen {
			order = append(order, sf.Flow.Hub)
		}
		groups[sf.Flow.Hub] = append(groups[sf.Flow.Hub], i)
	}
	return order, groups
}
