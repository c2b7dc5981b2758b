package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/supplyflow/pkg/application/services/scoring"
	testhelpers "github.com/vsinha/supplyflow/pkg/application/services/testing"
	"github.com/vsinha/supplyflow/pkg/domain/entities"
)

func feasibleFixtureFlows(t *testing.T) []entities.Flow {
	t.Helper()
	store := testhelpers.BuildSupplyNetworkFixture()
	flows, err := store.FeasibleFlows("CAT01", "US")
	require.NoError(t, err)
	require.Len(t, flows, 5)
	return flows
}

func TestScore_FixtureValues(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	flows := feasibleFixtureFlows(t)

	scores, err := scoring.Score(flows, store, "US", scoring.DefaultWeights())
	require.NoError(t, err)
	require.Len(t, scores, 5)

	// Load order: VN→VN, VN→US, IN→VN, IN→US, MX→US. Hand-computed with
	// cost span 21.75, day span 17, weights 8/5/3.
	expected := []float64{
		0.9264705882,
		0.7350532454,
		0.9620689655,
		0.7591742732,
		0.0,
	}
	for i, want := range expected {
		assert.InDelta(t, want, scores[i], 1e-9, "flow %d (%s→%s)", i, flows[i].Factory, flows[i].Hub)
	}

	// Scores stay within [0,1].
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "flow %d", i)
		assert.LessOrEqual(t, s, 1.0, "flow %d", i)
	}
}

func TestScore_RegionalPenaltyTiers(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	flows := feasibleFixtureFlows(t)

	// Region-only weights expose the raw penalty: factory in destination
	// region → 0, hub in destination region → 0.5, neither → 1.
	scores, err := scoring.Score(flows, store, "US", scoring.Weights{Region: 1})
	require.NoError(t, err)

	byRoute := map[string]float64{}
	for i, f := range flows {
		byRoute[string(f.Factory)+"/"+string(f.Hub)] = scores[i]
	}
	assert.Equal(t, 0.0, byRoute["F_MX_01/H_US_01"])
	assert.Equal(t, 0.5, byRoute["F_VN_01/H_US_01"])
	assert.Equal(t, 0.5, byRoute["F_IN_01/H_US_01"])
	assert.Equal(t, 1.0, byRoute["F_VN_01/H_VN_01"])
	assert.Equal(t, 1.0, byRoute["F_IN_01/H_VN_01"])
}

func TestScore_ConstantDimensionContributesZero(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()

	flows := []entities.Flow{}
	for _, f := range feasibleFixtureFlows(t)[:3] {
		f.LandedCost = 300.00
		flows = append(flows, f)
	}

	// With identical costs the cost dimension must contribute zero, not
	// divide by zero; time and region still differentiate.
	scores, err := scoring.Score(flows, store, "US", scoring.Weights{Cost: 1})
	require.NoError(t, err)
	for i, s := range scores {
		assert.Equal(t, 0.0, s, "flow %d", i)
	}

	scores, err = scoring.Score(flows, store, "US", scoring.DefaultWeights())
	require.NoError(t, err)
	// VN→VN (22d, pen 1), VN→US (18d, pen 0.5), IN→VN (26d, pen 1).
	assert.InDelta(t, (5.0*0.5+3.0*1.0)/16.0, scores[0], 1e-9)
	assert.InDelta(t, (5.0*0.0+3.0*0.5)/16.0, scores[1], 1e-9)
	assert.InDelta(t, (5.0*1.0+3.0*1.0)/16.0, scores[2], 1e-9)
}

func TestScore_InvalidWeights(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	flows := feasibleFixtureFlows(t)

	_, err := scoring.Score(flows, store, "US", scoring.Weights{Cost: -1, Time: 5, Region: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")

	_, err = scoring.Score(flows, store, "US", scoring.Weights{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight sum must be positive")
}

func TestScore_EmptySet(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	scores, err := scoring.Score(nil, store, "US", scoring.DefaultWeights())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestScoreFlows_PairsAndPreservesOrder(t *testing.T) {
	store := testhelpers.BuildSupplyNetworkFixture()
	flows := feasibleFixtureFlows(t)

	scored, err := scoring.ScoreFlows(flows, store, "US", scoring.DefaultWeights())
	require.NoError(t, err)
	require.Len(t, scored, len(flows))
	for i := range flows {
		assert.Equal(t, flows[i].Factory, scored[i].Flow.Factory)
		assert.Equal(t, flows[i].Hub, scored[i].Flow.Hub)
	}
}
