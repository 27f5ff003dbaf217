// Package value_test exercises the tagged union through the public API only.
// Focus: variant strictness (no silent coercion), deep-copy ownership,
// Euclidean distance semantics, Combine/Scale/arith contracts.
package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stigmer/value"
)

const eps = 1e-12

// TestKinds verifies that each constructor activates exactly one variant and
// that the AsX accessors reject every other variant.
func TestKinds(t *testing.T) {
	s := value.NewScalar(3.5)
	f := value.NewFractional(2, 0.25)
	sp := value.NewSpectrum(map[float64]float64{500: 0.8})
	n := value.NewNested(s, f)

	assert.Equal(t, value.KindScalar, s.Kind())
	assert.Equal(t, value.KindFractional, f.Kind())
	assert.Equal(t, value.KindSpectrum, sp.Kind())
	assert.Equal(t, value.KindNested, n.Kind())

	_, ok := s.AsSpectrum()
	assert.False(t, ok, "scalar must not expose a spectrum payload")
	_, ok = sp.AsScalar()
	assert.False(t, ok, "spectrum must not expose a scalar payload")

	got, ok := s.AsScalar()
	require.True(t, ok)
	assert.Equal(t, 3.5, got)
}

// TestDeepCopyOwnership verifies that Values never alias caller maps/slices.
func TestDeepCopyOwnership(t *testing.T) {
	src := map[float64]float64{500: 0.8, 600: 1.0}
	sp := value.NewSpectrum(src)

	// Mutating the source map after construction must not leak in.
	src[500] = 99

	got, ok := sp.AsSpectrum()
	require.True(t, ok)
	assert.Equal(t, 0.8, got[500], "constructor must deep-copy the input map")

	// Mutating the exported copy must not leak back.
	got[600] = -1
	i, err := sp.Intensity(600)
	require.NoError(t, err)
	assert.Equal(t, 1.0, i, "accessor must return a defensive copy")
}

// TestDistance_SameKind verifies Euclidean distances per variant.
func TestDistance_SameKind(t *testing.T) {
	d, err := value.NewScalar(1).DistanceTo(value.NewScalar(4))
	require.NoError(t, err)
	assert.InDelta(t, 3, d, eps)

	d, err = value.NewFractional(0, 3).DistanceTo(value.NewFractional(4, 0))
	require.NoError(t, err)
	assert.InDelta(t, 5, d, eps)

	a := value.NewSpectrum(map[float64]float64{500: 1, 600: 2, 700: 9})
	b := value.NewSpectrum(map[float64]float64{500: 4, 600: 6, 800: -3})
	d, err = a.DistanceTo(b)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, eps, "unmatched wavelengths (700, 800) must be ignored")

	n1 := value.NewNested(value.NewScalar(0), value.NewScalar(0))
	n2 := value.NewNested(value.NewScalar(3), value.NewScalar(4), value.NewScalar(777))
	d, err = n1.DistanceTo(n2)
	require.NoError(t, err)
	assert.InDelta(t, 5, d, eps, "extra child on the longer side must be ignored")
}

// TestDistance_CrossKind locks the strict no-coercion contract.
func TestDistance_CrossKind(t *testing.T) {
	_, err := value.NewScalar(1).DistanceTo(value.NewSpectrum(nil))
	assert.ErrorIs(t, err, value.ErrTypeMismatch)

	// Nested children of mismatched kinds must also fail, recursively.
	n1 := value.NewNested(value.NewScalar(1))
	n2 := value.NewNested(value.NewFractional(1, 0))
	_, err = n1.DistanceTo(n2)
	assert.ErrorIs(t, err, value.ErrTypeMismatch)
}

// TestCombine verifies blend endpoints, the Spectrum carry-through rule and
// weight validation.
func TestCombine(t *testing.T) {
	a, b := value.NewScalar(2), value.NewScalar(10)

	got, err := a.Combine(b, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(a), "weight 0 must reproduce the receiver")

	got, err = a.Combine(b, 1)
	require.NoError(t, err)
	assert.True(t, got.Equal(b), "weight 1 must reproduce the other operand")

	got, err = a.Combine(b, 0.25)
	require.NoError(t, err)
	s, _ := got.AsScalar()
	assert.InDelta(t, 4, s, eps)

	_, err = a.Combine(b, 1.5)
	assert.ErrorIs(t, err, value.ErrBadWeight)
	_, err = a.Combine(b, math.NaN())
	assert.ErrorIs(t, err, value.ErrBadWeight)
	_, err = a.Combine(value.NewFractional(1, 0), 0.5)
	assert.ErrorIs(t, err, value.ErrTypeMismatch)

	sp1 := value.NewSpectrum(map[float64]float64{500: 0, 600: 4})
	sp2 := value.NewSpectrum(map[float64]float64{500: 2, 700: 7})
	got, err = sp1.Combine(sp2, 0.5)
	require.NoError(t, err)
	m, _ := got.AsSpectrum()
	assert.InDelta(t, 1, m[500], eps, "matched wavelength averaged")
	assert.InDelta(t, 4, m[600], eps, "receiver-only wavelength carried unscaled")
	assert.InDelta(t, 7, m[700], eps, "other-only wavelength carried unscaled")

	// Length-mismatched Nested: the receiver's extra children survive the
	// blend, so weight 0 reproduces the receiver exactly.
	long := value.NewNested(value.NewScalar(2), value.NewScalar(8))
	short := value.NewNested(value.NewScalar(10))
	got, err = long.Combine(short, 0)
	require.NoError(t, err)
	assert.True(t, got.Equal(long), "weight 0 must reproduce the receiver")

	got, err = long.Combine(short, 0.5)
	require.NoError(t, err)
	kids, _ := got.AsNested()
	require.Len(t, kids, 2)
	k0, _ := kids[0].AsScalar()
	k1, _ := kids[1].AsScalar()
	assert.InDelta(t, 6, k0, eps, "aligned child blended")
	assert.InDelta(t, 8, k1, eps, "receiver's extra child kept")

	// The other operand's extras stay ignored.
	got, err = short.Combine(long, 1)
	require.NoError(t, err)
	kids, _ = got.AsNested()
	assert.Len(t, kids, 1)
}

// TestScale verifies scaling across variants, including recursion.
func TestScale(t *testing.T) {
	n := value.NewNested(
		value.NewScalar(2),
		value.NewSpectrum(map[float64]float64{500: 3}),
	)
	got := n.Scale(2)

	kids, ok := got.AsNested()
	require.True(t, ok)
	require.Len(t, kids, 2)

	s, _ := kids[0].AsScalar()
	assert.Equal(t, 4.0, s)
	m, _ := kids[1].AsSpectrum()
	assert.Equal(t, 6.0, m[500])
}

// TestArith verifies the elementwise kernels and the whole-op-fails policy.
func TestArith(t *testing.T) {
	a, b := value.NewScalar(6), value.NewScalar(3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(value.NewScalar(9)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Equal(value.NewScalar(3)))

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.True(t, prod.Equal(value.NewScalar(18)))

	quot, err := a.Div(b)
	require.NoError(t, err)
	assert.True(t, quot.Equal(value.NewScalar(2)))

	_, err = a.Div(value.NewScalar(0))
	assert.ErrorIs(t, err, value.ErrDivisionByZero)

	// A zero anywhere in a nested divisor must fail the whole operation.
	n1 := value.NewNested(value.NewScalar(1), value.NewScalar(2))
	n2 := value.NewNested(value.NewScalar(5), value.NewScalar(0))
	_, err = n1.Div(n2)
	assert.ErrorIs(t, err, value.ErrDivisionByZero)

	_, err = a.Add(value.NewSpectrum(nil))
	assert.ErrorIs(t, err, value.ErrTypeMismatch)
}

// TestSpectrumArithKeyPolicy locks the merge-vs-intersect key policy:
// Add/Sub carry single-sided wavelengths, Mul/Div intersect.
func TestSpectrumArithKeyPolicy(t *testing.T) {
	a := value.NewSpectrum(map[float64]float64{500: 2, 600: 4})
	b := value.NewSpectrum(map[float64]float64{500: 3, 700: 5})

	sum, err := a.Add(b)
	require.NoError(t, err)
	m, _ := sum.AsSpectrum()
	assert.Equal(t, 5.0, m[500])
	assert.Equal(t, 4.0, m[600])
	assert.Equal(t, 5.0, m[700])

	diff, err := a.Sub(b)
	require.NoError(t, err)
	m, _ = diff.AsSpectrum()
	assert.Equal(t, -1.0, m[500])
	assert.Equal(t, 4.0, m[600], "receiver-only wavelength keeps its intensity")
	assert.Equal(t, -5.0, m[700], "other-only wavelength is negated")

	prod, err := a.Mul(b)
	require.NoError(t, err)
	m, _ = prod.AsSpectrum()
	assert.Equal(t, 6.0, m[500])
	assert.Len(t, m, 1, "Mul must intersect wavelength sets")
}

// TestIntensityLookup verifies the strict exact-match sentinel.
func TestIntensityLookup(t *testing.T) {
	sp := value.NewSpectrum(map[float64]float64{500: 0.8, 600: 1.0})

	i, err := sp.Intensity(500)
	require.NoError(t, err)
	assert.Equal(t, 0.8, i)

	_, err = sp.Intensity(550)
	assert.ErrorIs(t, err, value.ErrWavelengthNotFound)

	_, err = value.NewScalar(1).Intensity(500)
	assert.ErrorIs(t, err, value.ErrTypeMismatch)
}

// TestMagnitude verifies the per-variant Euclidean norms.
func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 2.5, value.NewScalar(-2.5).Magnitude(), eps)
	assert.InDelta(t, 5, value.NewFractional(3, 4).Magnitude(), eps)
	assert.InDelta(t, 5, value.NewSpectrum(map[float64]float64{1: 3, 2: -4}).Magnitude(), eps)
	assert.InDelta(t, 5,
		value.NewNested(value.NewScalar(3), value.NewScalar(4)).Magnitude(), eps)
	assert.Zero(t, value.NewSpectrum(nil).Magnitude())
}
