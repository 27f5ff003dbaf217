// Package neighbor_test exercises ranking determinism, criterion degradation
// and the MaxNeighbors cap through the public API.
package neighbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stigmer/field"
	"github.com/katalvlaran/stigmer/neighbor"
	"github.com/katalvlaran/stigmer/value"
)

// similarityOnly zeroes every criterion except value similarity so tests can
// reason about one signal at a time.
func similarityOnly() neighbor.Options {
	o := neighbor.DefaultOptions()
	o.ProximityWeight = 0
	o.TagWeight = 0
	o.PheromoneWeight = 0

	return o
}

func addScalar(t *testing.T, c *field.Collection, name string, v float64) *field.Dimension {
	t.Helper()
	d, err := c.AddDimension(name, value.NewScalar(v))
	require.NoError(t, err)

	return d
}

// TestSelect_RanksBySimilarity verifies closest-value-first ordering and
// target exclusion.
func TestSelect_RanksBySimilarity(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 10)
	addScalar(t, c, "far", 100)
	addScalar(t, c, "near", 11)
	addScalar(t, c, "mid", 20)

	sel, err := neighbor.NewSelector(similarityOnly())
	require.NoError(t, err)

	got, err := sel.Select(target, c)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Dim.Name)
	assert.Equal(t, "mid", got[1].Dim.Name)
	assert.Equal(t, "far", got[2].Dim.Name)
	assert.Greater(t, got[0].Weight, got[1].Weight)

	for _, w := range got {
		assert.NotEqual(t, "t", w.Dim.Name, "target must never select itself")
	}
}

// TestSelect_TieBreakInsertionOrder locks the stable tie-break contract.
func TestSelect_TieBreakInsertionOrder(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 0)
	// Equidistant candidates, inserted in a deliberate order.
	addScalar(t, c, "second", 5)
	addScalar(t, c, "first", -5)

	sel, err := neighbor.NewSelector(similarityOnly())
	require.NoError(t, err)

	got, err := sel.Select(target, c)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Dim.Name, "equal scores must keep insertion order")
	assert.Equal(t, "first", got[1].Dim.Name)
	assert.Equal(t, got[0].Weight, got[1].Weight)
}

// TestSelect_MaxNeighborsCap verifies the subset cap.
func TestSelect_MaxNeighborsCap(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 0)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		addScalar(t, c, name, 1)
	}

	opts := similarityOnly()
	opts.MaxNeighbors = 2
	sel, err := neighbor.NewSelector(opts)
	require.NoError(t, err)

	got, err := sel.Select(target, c)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

// TestSelect_CriterionDegradation verifies that missing coords/tags and
// cross-variant values contribute zero instead of erroring.
func TestSelect_CriterionDegradation(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 0)

	// Cross-variant candidate: similarity contributes nothing, but the
	// target's trail still ranks it.
	spec, err := c.AddDimension("spec", value.NewSpectrum(map[float64]float64{500: 1}))
	require.NoError(t, err)
	target.Reinforce(spec.Name, 0.8)

	sel, err := neighbor.NewSelector(neighbor.DefaultOptions())
	require.NoError(t, err)

	got, err := sel.Select(target, c)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "spec", got[0].Dim.Name)
	assert.InDelta(t, neighbor.DefaultPheromoneWeight*0.8, got[0].Weight, 1e-12,
		"only the pheromone criterion should fire")
}

// TestSelect_SpatialAndTags verifies the proximity and overlap criteria when
// their preconditions hold.
func TestSelect_SpatialAndTags(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 0)
	target.Coords = &field.Coordinates{X: 0, Y: 0, Z: 0}
	target.Tag("alpha", "beta")

	near := addScalar(t, c, "near", 1000) // value-dissimilar on purpose
	near.Coords = &field.Coordinates{X: 1, Y: 0, Z: 0}
	near.Tag("alpha")

	lonely := addScalar(t, c, "lonely", 1000) // no coords, no tags

	opts := neighbor.DefaultOptions()
	opts.SimilarityWeight = 0
	opts.PheromoneWeight = 0
	sel, err := neighbor.NewSelector(opts)
	require.NoError(t, err)

	got, err := sel.Select(target, c)
	require.NoError(t, err)
	require.Len(t, got, 1, "candidate with no firing criterion must be excluded")
	assert.Equal(t, "near", got[0].Dim.Name)
	_ = lonely
}

// TestSelect_InputValidation covers nil inputs and bad options.
func TestSelect_InputValidation(t *testing.T) {
	sel, err := neighbor.NewSelector(neighbor.DefaultOptions())
	require.NoError(t, err)

	c := field.NewCollection()
	_, err = sel.Select(nil, c)
	assert.ErrorIs(t, err, neighbor.ErrNilTarget)

	d := field.NewDimension("t", value.NewScalar(0))
	_, err = sel.Select(d, nil)
	assert.ErrorIs(t, err, neighbor.ErrNilCollection)

	bad := neighbor.DefaultOptions()
	bad.MaxNeighbors = 0
	_, err = neighbor.NewSelector(bad)
	assert.ErrorIs(t, err, neighbor.ErrBadOptions)

	bad = neighbor.DefaultOptions()
	bad.ProximityScale = -1
	_, err = neighbor.NewSelector(bad)
	assert.ErrorIs(t, err, neighbor.ErrBadOptions)

	bad = neighbor.DefaultOptions()
	bad.TagWeight = -0.1
	_, err = neighbor.NewSelector(bad)
	assert.ErrorIs(t, err, neighbor.ErrBadOptions)
}

// TestSelect_DoesNotMutate verifies the read-only contract.
func TestSelect_DoesNotMutate(t *testing.T) {
	c := field.NewCollection()
	target := addScalar(t, c, "t", 1)
	addScalar(t, c, "n", 2)

	sel, err := neighbor.NewSelector(similarityOnly())
	require.NoError(t, err)
	_, err = sel.Select(target, c)
	require.NoError(t, err)

	assert.Equal(t, []string{"t", "n"}, c.Names())
	d, _ := c.Get("n")
	assert.Equal(t, field.DefaultPheromone, d.Pheromone)
}
