package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForName(t *testing.T) {
	assert.Equal(t, KindSquare, KindForName("Square"))
	assert.Equal(t, KindCircle, KindForName("  circle "))
	assert.Equal(t, KindTrapezoid, KindForName("TRAPEZOID"))
	assert.Equal(t, KindUnknown, KindForName("Pentagon"))
}

func TestParseDifficulty(t *testing.T) {
	for _, label := range []string{"easy", "Easy", "EASY", " easy "} {
		d, ok := ParseDifficulty(label)
		assert.True(t, ok, label)
		assert.Equal(t, DifficultyEasy, d)
	}

	_, ok := ParseDifficulty("impossible")
	assert.False(t, ok)
}

func TestDifficultyFromLevel(t *testing.T) {
	d, ok := DifficultyFromLevel(3)
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, d)

	_, ok = DifficultyFromLevel(7)
	assert.False(t, ok)
}

func TestArea(t *testing.T) {
	cases := []struct {
		kind   ShapeKind
		params map[string]float64
		want   float64
	}{
		{KindSquare, map[string]float64{"side": 4}, 16},
		{KindRectangle, map[string]float64{"length": 3, "width": 5}, 15},
		{KindTriangle, map[string]float64{"base": 6, "height": 7}, 21},
		{KindCircle, map[string]float64{"radius": 5}, math.Pi * 25},
		{KindTrapezoid, map[string]float64{"base1": 3, "base2": 5, "height": 4}, 16},
		{KindParallelogram, map[string]float64{"base": 8, "height": 2}, 16},
		{KindUnknown, map[string]float64{"side": 4}, 0},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.kind.Area(tc.params), 1e-12)
		})
	}
}

func TestBuildParams(t *testing.T) {
	linear := ParameterRange{Min: 1, Max: 20}
	radius := ParameterRange{Min: 1, Max: 15}

	t.Run("radial parameters use radius range", func(t *testing.T) {
		params := KindCircle.BuildParams(linear, radius)
		assert.Len(t, params, 1)
		assert.Equal(t, "radius", params[0].Name)
		assert.True(t, params[0].Radial)
		assert.Equal(t, radius, params[0].Range)
	})

	t.Run("linear parameters use linear range", func(t *testing.T) {
		params := KindTrapezoid.BuildParams(linear, radius)
		assert.Equal(t, []string{"base1", "base2", "height"}, paramNames(params))
		for _, p := range params {
			assert.Equal(t, linear, p.Range)
		}
	})

	t.Run("unknown kind has no parameters", func(t *testing.T) {
		assert.Empty(t, KindUnknown.BuildParams(linear, radius))
	})
}

func paramNames(params []Parameter) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}
