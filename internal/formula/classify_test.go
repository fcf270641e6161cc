package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleFirstMatchWins(t *testing.T) {
	// Deliberately overlapping bands: declaration order must decide.
	scale := Scale{
		BandBelow(10, true, "first"),
		BandBelow(20, true, "second"),
	}

	assert.Equal(t, "first", scale.Classify(5))
	assert.Equal(t, "second", scale.Classify(15))
}

func TestScaleBoundaryInclusivity(t *testing.T) {
	scale := Scale{
		BandBelow(135, false, "low"),
		BandRange(135, true, 145, true, "normal"),
		BandAbove(145, false, "high"),
	}

	tests := []struct {
		value float64
		want  string
	}{
		{134.999, "low"},
		{135, "normal"},
		{140, "normal"},
		{145, "normal"},
		{145.001, "high"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, scale.Classify(tc.value), "value %v", tc.value)
	}
}

func TestScaleExclusiveBoundaries(t *testing.T) {
	scale := Scale{
		BandAbove(90, true, "G1"),
		BandRange(60, true, 90, false, "G2"),
	}

	assert.Equal(t, "G1", scale.Classify(90))
	assert.Equal(t, "G2", scale.Classify(89.999))
	assert.Equal(t, "G2", scale.Classify(60))
}

func TestScaleReturnsEmptyWhenNoBandMatches(t *testing.T) {
	scale := Scale{BandAbove(100, true, "high")}

	assert.Equal(t, "", scale.Classify(50))
}

func TestScaleEvaluatesInDeclaredOrderNotSorted(t *testing.T) {
	// Bands declared high-to-low; a sorted or binary-search implementation
	// would get this wrong.
	scale := Scale{
		BandAbove(90, true, "G1"),
		BandRange(60, true, 90, false, "G2"),
		BandRange(45, true, 60, false, "G3a"),
		BandRange(30, true, 45, false, "G3b"),
		BandRange(15, true, 30, false, "G4"),
		BandBelow(15, false, "G5"),
	}

	tests := []struct {
		value float64
		want  string
	}{
		{120, "G1"}, {90, "G1"},
		{89.9, "G2"}, {60, "G2"},
		{59.9, "G3a"}, {45, "G3a"},
		{44.9, "G3b"}, {30, "G3b"},
		{29.9, "G4"}, {15, "G4"},
		{14.9, "G5"}, {3, "G5"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, scale.Classify(tc.value), "value %v", tc.value)
	}
}
