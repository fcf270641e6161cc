package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnionGapElevated(t *testing.T) {
	result, err := Evaluate("anion-gap", map[string]string{
		"sodium":      "140",
		"chloride":    "100",
		"bicarbonate": "14",
	})
	require.NoError(t, err)

	gap, ok := result.Output("anionGap")
	require.True(t, ok)
	assert.InDelta(t, 26.0, *gap.Value, 1e-9)
	assert.Equal(t, "Elevated anion gap", gap.Label)

	// Albumin defaults to 4.0, so the corrected gap equals the raw gap.
	corrected, ok := result.Output("correctedAnionGap")
	require.True(t, ok)
	assert.InDelta(t, 26.0, *corrected.Value, 1e-9)

	// (26-12) / (24-14) = 1.4: pure high anion gap acidosis
	ratio, ok := result.Output("deltaRatio")
	require.True(t, ok)
	assert.InDelta(t, 1.4, *ratio.Value, 1e-9)
	assert.Equal(t, "Pure high anion gap metabolic acidosis", ratio.Label)
}

func TestAnionGapNormalOmitsDeltaRatio(t *testing.T) {
	result, err := Evaluate("anion-gap", map[string]string{
		"sodium":      "140",
		"chloride":    "104",
		"bicarbonate": "26",
	})
	require.NoError(t, err)

	gap, ok := result.Output("anionGap")
	require.True(t, ok)
	assert.InDelta(t, 10.0, *gap.Value, 1e-9)
	assert.Equal(t, "Normal anion gap", gap.Label)

	_, ok = result.Output("deltaRatio")
	assert.False(t, ok, "delta ratio must be absent when the gap is not elevated")
}

func TestAnionGapZeroDeltaDenominatorIsDomainViolation(t *testing.T) {
	// AG = 16 (elevated) but 24 - HCO3 = 0: must be a domain violation,
	// never a division by zero.
	_, err := Evaluate("anion-gap", map[string]string{
		"sodium":      "140",
		"chloride":    "100",
		"bicarbonate": "24",
	})
	require.Error(t, err)

	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, DomainViolation, evalErr.Kind)
	assert.Contains(t, evalErr.Reason, "non-zero")
}

func TestAnionGapAlbuminCorrection(t *testing.T) {
	result, err := Evaluate("anion-gap", map[string]string{
		"sodium":      "140",
		"chloride":    "104",
		"bicarbonate": "26",
		"albumin":     "2.0",
	})
	require.NoError(t, err)

	// 10 + 2.5 * (4 - 2) = 15
	corrected, ok := result.Output("correctedAnionGap")
	require.True(t, ok)
	assert.InDelta(t, 15.0, *corrected.Value, 1e-9)
}

func TestBicarbonateDeficit(t *testing.T) {
	result, err := Evaluate("bicarbonate-deficit", map[string]string{
		"bicarbonate": "10",
		"weight":      "70",
	})
	require.NoError(t, err)

	// Desired defaults to 24: (24-10) * 0.5 * 70 = 490 mEq
	deficit, ok := result.Output("bicarbonateDeficit")
	require.True(t, ok)
	assert.InDelta(t, 490.0, *deficit.Value, 1e-9)
}

func TestBicarbonateDeficitRequiresCurrentBelowDesired(t *testing.T) {
	_, err := Evaluate("bicarbonate-deficit", map[string]string{
		"bicarbonate": "24",
		"weight":      "70",
	})
	require.Error(t, err)

	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, DomainViolation, evalErr.Kind)
}

func TestUrineAnionGap(t *testing.T) {
	tests := []struct {
		name      string
		na, k, cl string
		want      float64
		wantLabel string
	}{
		{"negative gap", "40", "20", "80", -20, "Negative: suggests gastrointestinal bicarbonate loss"},
		{"positive gap", "40", "20", "30", 30, "Positive: suggests impaired urinary ammonium excretion (distal RTA)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Evaluate("urine-anion-gap", map[string]string{
				"urineSodium":    tc.na,
				"urinePotassium": tc.k,
				"urineChloride":  tc.cl,
			})
			require.NoError(t, err)

			gap, ok := result.Output("urineAnionGap")
			require.True(t, ok)
			assert.InDelta(t, tc.want, *gap.Value, 1e-9)
			assert.Equal(t, tc.wantLabel, gap.Label)
		})
	}
}

func TestUrineOsmolalGap(t *testing.T) {
	result, err := Evaluate("urine-osmolal-gap", map[string]string{
		"urineSodium":        "40",
		"urinePotassium":     "20",
		"urineUrea":          "280",
		"measuredOsmolality": "400",
	})
	require.NoError(t, err)

	// Urine glucose defaults to 0:
	// calc = 2*(40+20) + 280/2.8 = 220; gap = 180; NH4 = 90
	calculated, ok := result.Output("calculatedOsmolality")
	require.True(t, ok)
	assert.InDelta(t, 220.0, *calculated.Value, 1e-9)

	gap, ok := result.Output("osmolalGap")
	require.True(t, ok)
	assert.InDelta(t, 180.0, *gap.Value, 1e-9)

	ammonium, ok := result.Output("ammonium")
	require.True(t, ok)
	assert.InDelta(t, 90.0, *ammonium.Value, 1e-9)
}
