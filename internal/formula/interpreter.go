package formula

import "calc.renalmetrics.org/internal/models"

// Chronicity choice values for respiratory compensation rules.
const (
	ChronicityAcute   = "acute"
	ChronicityChronic = "chronic"
)

const (
	normalBicarbonate = 24.0
	normalPCO2        = 40.0

	// Observed compensation within this additive band of the expected
	// value is considered adequate; outside it a secondary disorder is
	// flagged.
	compensationTolerance = 2.0
)

// Primary and secondary disorder labels.
const (
	labelNormal = "Normal Acid-Base Status"

	labelMetabolicAcidosis    = "Metabolic Acidosis"
	labelMetabolicAlkalosis   = "Metabolic Alkalosis"
	labelRespAcidosisAcute    = "Acute Respiratory Acidosis"
	labelRespAcidosisChronic  = "Chronic Respiratory Acidosis"
	labelRespAlkalosisAcute   = "Acute Respiratory Alkalosis"
	labelRespAlkalosisChronic = "Chronic Respiratory Alkalosis"

	labelMixedAcidosis  = "Mixed Metabolic and Respiratory Acidosis"
	labelMixedAlkalosis = "Mixed Metabolic and Respiratory Alkalosis"
	labelIndeterminate  = "Indeterminate: pH deviation without a consistent primary process"

	secondaryRespAcid = "Concurrent Respiratory Acidosis"
	secondaryRespAlk  = "Concurrent Respiratory Alkalosis"
	secondaryMetAcid  = "Concurrent Metabolic Acidosis"
	secondaryMetAlk   = "Concurrent Metabolic Alkalosis"
)

func acidBaseInterpretation() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "acid-base",
			Name:        "Acid-Base Interpretation",
			Category:    models.CategoryAcidBase,
			Description: "Classifies the primary acid-base disorder from pH, bicarbonate, and PCO2, checks compensation adequacy against the matching empirical rule, and flags secondary or concurrent disorders.",
			Equation:    "Winter's: expected PCO2 = 1.5 x HCO3 + 8 +/- 2 (metabolic acidosis); linear offset rules for the other primary disorders",
			Variables: []models.Variable{
				models.NewVariable("ph", "Arterial pH", ""),
				models.NewVariable("bicarbonate", "Serum bicarbonate", "mEq/L"),
				models.NewVariable("pco2", "Arterial PCO2", "mmHg"),
				models.NewVariable("chronicity", "Acute or chronic", ""),
			},
			References: []models.Citation{
				{Title: "Albert MS, Dell RB, Winters RW. Quantitative displacement of acid-base equilibrium in metabolic acidosis. Ann Intern Med. 1967"},
				{Title: "Berend K, de Vries AP, Gans RO. Physiological approach to assessment of acid-base disturbances. N Engl J Med. 2014"},
			},
		},
		Fields: []Field{
			{Name: "ph", Label: "Arterial pH", Positive: true},
			{Name: "bicarbonate", Label: "Serum bicarbonate", Unit: "mEq/L", Positive: true},
			{Name: "pco2", Label: "Arterial PCO2", Unit: "mmHg", Positive: true},
			{Name: "chronicity", Label: "Acute or chronic", Kind: Choice, Default: ChronicityAcute, Choices: []string{ChronicityAcute, ChronicityChronic}},
		},
		Compute: interpretAcidBase,
	}
}

// interpretAcidBase is a flat decision tree: determine the primary pH
// deviation, find which of bicarbonate and PCO2 are abnormal in the
// consistent direction, then either check compensation adequacy against
// the matching empirical rule or report a mixed/concurrent pairing.
// Each call is independent and stateless.
func interpretAcidBase(v Values) ([]models.Output, *EvalError) {
	ph := v.Num("ph")
	hco3 := v.Num("bicarbonate")
	pco2 := v.Num("pco2")
	chronic := v.Choice("chronicity") == ChronicityChronic

	switch {
	case ph < 7.35:
		return interpretAcidemia(hco3, pco2, chronic), nil
	case ph > 7.45:
		return interpretAlkalemia(hco3, pco2, chronic), nil
	default:
		return interpretNormalPH(hco3, pco2), nil
	}
}

func interpretAcidemia(hco3, pco2 float64, chronic bool) []models.Output {
	metabolic := hco3 < normalBicarbonate
	respiratory := pco2 > normalPCO2

	switch {
	case metabolic && respiratory:
		return []models.Output{models.NewQualitativeOutput("primaryDisorder", labelMixedAcidosis)}

	case metabolic:
		// Winter's formula
		expected := 1.5*hco3 + 8
		outputs := []models.Output{
			models.NewQualitativeOutput("primaryDisorder", labelMetabolicAcidosis),
			models.NewNumericOutput("expectedPCO2", expected, "mmHg"),
		}
		if secondary := compareToExpected(pco2, expected, secondaryRespAcid, secondaryRespAlk); secondary != "" {
			outputs = append(outputs, models.NewQualitativeOutput("secondaryDisorder", secondary))
		}
		return outputs

	case respiratory:
		// Expected metabolic compensation: bicarbonate rises 1 mEq/L per
		// 10 mmHg PCO2 acutely, 3.5 mEq/L per 10 mmHg when chronic.
		primary, slope := labelRespAcidosisAcute, 1.0
		if chronic {
			primary, slope = labelRespAcidosisChronic, 3.5
		}
		expected := normalBicarbonate + slope*(pco2-normalPCO2)/10
		outputs := []models.Output{
			models.NewQualitativeOutput("primaryDisorder", primary),
			models.NewNumericOutput("expectedBicarbonate", expected, "mEq/L"),
		}
		if secondary := compareToExpected(hco3, expected, secondaryMetAlk, secondaryMetAcid); secondary != "" {
			outputs = append(outputs, models.NewQualitativeOutput("secondaryDisorder", secondary))
		}
		return outputs

	default:
		return []models.Output{models.NewQualitativeOutput("primaryDisorder", labelIndeterminate)}
	}
}

func interpretAlkalemia(hco3, pco2 float64, chronic bool) []models.Output {
	metabolic := hco3 > normalBicarbonate
	respiratory := pco2 < normalPCO2

	switch {
	case metabolic && respiratory:
		return []models.Output{models.NewQualitativeOutput("primaryDisorder", labelMixedAlkalosis)}

	case metabolic:
		// Expected respiratory compensation: PCO2 rises 0.7 mmHg per
		// mEq/L of bicarbonate above normal.
		expected := normalPCO2 + 0.7*(hco3-normalBicarbonate)
		outputs := []models.Output{
			models.NewQualitativeOutput("primaryDisorder", labelMetabolicAlkalosis),
			models.NewNumericOutput("expectedPCO2", expected, "mmHg"),
		}
		if secondary := compareToExpected(pco2, expected, secondaryRespAcid, secondaryRespAlk); secondary != "" {
			outputs = append(outputs, models.NewQualitativeOutput("secondaryDisorder", secondary))
		}
		return outputs

	case respiratory:
		// Expected metabolic compensation: bicarbonate falls 2 mEq/L per
		// 10 mmHg PCO2 acutely, 4 mEq/L per 10 mmHg when chronic.
		primary, slope := labelRespAlkalosisAcute, 2.0
		if chronic {
			primary, slope = labelRespAlkalosisChronic, 4.0
		}
		expected := normalBicarbonate - slope*(normalPCO2-pco2)/10
		outputs := []models.Output{
			models.NewQualitativeOutput("primaryDisorder", primary),
			models.NewNumericOutput("expectedBicarbonate", expected, "mEq/L"),
		}
		if secondary := compareToExpected(hco3, expected, secondaryMetAlk, secondaryMetAcid); secondary != "" {
			outputs = append(outputs, models.NewQualitativeOutput("secondaryDisorder", secondary))
		}
		return outputs

	default:
		return []models.Output{models.NewQualitativeOutput("primaryDisorder", labelIndeterminate)}
	}
}

// interpretNormalPH reports a concurrent disorder pairing when both
// variables are abnormal despite a normal pH. Compensation adequacy is
// deliberately not checked here, matching the reference behavior.
func interpretNormalPH(hco3, pco2 float64) []models.Output {
	bicarbonateAbnormal := hco3 != normalBicarbonate
	pco2Abnormal := pco2 != normalPCO2

	if !bicarbonateAbnormal || !pco2Abnormal {
		return []models.Output{models.NewQualitativeOutput("primaryDisorder", labelNormal)}
	}

	metabolic := labelMetabolicAlkalosis
	if hco3 < normalBicarbonate {
		metabolic = labelMetabolicAcidosis
	}
	respiratory := "Respiratory Acidosis"
	if pco2 < normalPCO2 {
		respiratory = "Respiratory Alkalosis"
	}

	return []models.Output{
		models.NewQualitativeOutput("primaryDisorder", "Concurrent "+metabolic+" and "+respiratory),
	}
}

// compareToExpected flags a secondary disorder when the observed value
// falls outside the expected value plus or minus the tolerance band.
func compareToExpected(observed, expected float64, aboveLabel, belowLabel string) string {
	switch {
	case observed > expected+compensationTolerance:
		return aboveLabel
	case observed < expected-compensationTolerance:
		return belowLabel
	default:
		return ""
	}
}
