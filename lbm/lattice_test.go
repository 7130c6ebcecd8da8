package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirections_OppositeIsInvolution(t *testing.T) {
	for d, dir := range Directions {
		opp := Directions[dir.Opposite]
		assert.Equal(t, d, opp.Opposite, "direction %d: opposite of opposite", d)
		assert.Equal(t, -dir.DX, opp.DX, "direction %d: x offset must negate", d)
		assert.Equal(t, -dir.DY, opp.DY, "direction %d: y offset must negate", d)
	}
}

func TestDirections_WeightClasses(t *testing.T) {
	for d, dir := range Directions {
		switch {
		case dir.DX == 0 && dir.DY == 0:
			assert.Equal(t, W0, dir.Weight, "rest direction %d", d)
		case dir.DX == 0 || dir.DY == 0:
			assert.Equal(t, W1, dir.Weight, "axis direction %d", d)
		default:
			assert.Equal(t, W2, dir.Weight, "diagonal direction %d", d)
		}
	}
}

func TestDirections_WeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, dir := range Directions {
		sum += dir.Weight
	}
	assert.InDelta(t, 1.0, sum, 1e-15)
}
