package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownCodes(t *testing.T) {
	cases := []struct {
		code   string
		values []float64
		want   string
	}{
		{CodeRunning, []float64{15000, 1, 75}, "Running"},
		{CodeWalking, []float64{9000, 1, 75, 180}, "Walking"},
		{CodeSwimming, []float64{720, 1, 80, 25, 40}, "Swimming"},
	}

	for _, tc := range cases {
		c, err := Resolve(tc.code, tc.values)
		require.NoError(t, err, tc.code)
		assert.Equal(t, tc.want, c.Summary().TrainingType)
	}
}

func TestResolve_UnknownType(t *testing.T) {
	_, err := Resolve("XYZ", []float64{1, 2, 3})
	require.Error(t, err)

	var unknown *UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "XYZ", unknown.Code)

	// Message must enumerate the valid codes.
	assert.Contains(t, err.Error(), CodeRunning)
	assert.Contains(t, err.Error(), CodeWalking)
	assert.Contains(t, err.Error(), CodeSwimming)
}

func TestResolve_ArityMismatch(t *testing.T) {
	_, err := Resolve(CodeRunning, []float64{1, 2})
	require.Error(t, err)

	var mismatch *ArityMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, CodeRunning, mismatch.Code)
	assert.Equal(t, 2, mismatch.Given)
	assert.Equal(t, 3, mismatch.Required)

	assert.Contains(t, err.Error(), "got 2 values")
	assert.Contains(t, err.Error(), "requires 3")
}

func TestResolve_ArityPerVariant(t *testing.T) {
	cases := []struct {
		code     string
		required int
	}{
		{CodeRunning, 3},
		{CodeWalking, 4},
		{CodeSwimming, 5},
	}

	for _, tc := range cases {
		_, err := Resolve(tc.code, make([]float64, tc.required+1))
		var mismatch *ArityMismatchError
		require.ErrorAs(t, err, &mismatch, tc.code)
		assert.Equal(t, tc.required, mismatch.Required)
		assert.Equal(t, tc.required+1, mismatch.Given)
	}
}

func TestResolve_PositionalAssignment(t *testing.T) {
	c, err := Resolve(CodeSwimming, []float64{720, 2, 80, 50, 20})
	require.NoError(t, err)

	s := c.Summary()
	assert.Equal(t, 2.0, s.Duration)
	// 50 m pool * 20 laps / 1000 / 2 h
	assert.InDelta(t, 0.5, s.Speed, 1e-9)
}
