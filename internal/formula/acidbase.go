package formula

import "calc.renalmetrics.org/internal/models"

func anionGap() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "anion-gap",
			Name:        "Anion Gap",
			Category:    models.CategoryAcidBase,
			Description: "Serum anion gap with albumin correction and, when the gap is elevated, the delta-delta ratio for detecting mixed metabolic disorders.",
			Equation:    "AG = Na - (Cl + HCO3); Corrected AG = AG + 2.5 x (4 - Albumin); Delta ratio = (AG - 12) / (24 - HCO3)",
			Variables: []models.Variable{
				models.NewVariable("sodium", "Serum sodium", "mEq/L"),
				models.NewVariable("chloride", "Serum chloride", "mEq/L"),
				models.NewVariable("bicarbonate", "Serum bicarbonate", "mEq/L"),
				models.NewVariable("albumin", "Serum albumin", "g/dL"),
			},
			References: []models.Citation{
				{Title: "Kraut JA, Madias NE. Serum anion gap: its uses and limitations in clinical medicine. Clin J Am Soc Nephrol. 2007"},
				{Title: "Rastegar A. Use of the deltaAG/deltaHCO3- ratio in the diagnosis of mixed acid-base disorders. J Am Soc Nephrol. 2007"},
			},
		},
		Fields: []Field{
			{Name: "sodium", Label: "Serum sodium", Unit: "mEq/L", Positive: true},
			{Name: "chloride", Label: "Serum chloride", Unit: "mEq/L", Positive: true},
			{Name: "bicarbonate", Label: "Serum bicarbonate", Unit: "mEq/L", Positive: true},
			{Name: "albumin", Label: "Serum albumin", Unit: "g/dL", Default: "4.0", Positive: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			hco3 := v.Num("bicarbonate")
			gap := v.Num("sodium") - (v.Num("chloride") + hco3)
			corrected := gap + 2.5*(4.0-v.Num("albumin"))

			outputs := []models.Output{
				models.NewNumericOutput("anionGap", gap, "mEq/L"),
				models.NewNumericOutput("correctedAnionGap", corrected, "mEq/L"),
			}

			// The delta-delta ratio only carries meaning for an elevated gap.
			if gap > 12 {
				denominator := 24 - hco3
				if denominator == 0 {
					return nil, domainViolation("delta-delta denominator (24 - bicarbonate) must be non-zero")
				}
				ratio := (gap - 12) / denominator
				outputs = append(outputs, models.NewNumericOutput("deltaRatio", ratio, ""))
			}
			return outputs, nil
		},
		Scales: map[string]Scale{
			"anionGap": {
				BandBelow(8, false, "Low anion gap"),
				BandRange(8, true, 12, true, "Normal anion gap"),
				BandAbove(12, false, "Elevated anion gap"),
			},
			"deltaRatio": {
				BandBelow(1, false, "Concurrent normal anion gap metabolic acidosis"),
				BandRange(1, true, 2, true, "Pure high anion gap metabolic acidosis"),
				BandAbove(2, false, "Concurrent metabolic alkalosis or chronic respiratory acidosis"),
			},
		},
	}
}

func bicarbonateDeficit() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "bicarbonate-deficit",
			Name:        "Bicarbonate Deficit",
			Category:    models.CategoryAcidBase,
			Description: "Total body bicarbonate deficit to replete from the current to the desired serum bicarbonate.",
			Equation:    "Deficit = (HCO3 desired - HCO3 current) x 0.5 x Weight",
			Variables: []models.Variable{
				models.NewVariable("bicarbonate", "Current serum bicarbonate", "mEq/L"),
				models.NewVariable("desiredBicarbonate", "Desired serum bicarbonate", "mEq/L"),
				models.NewVariable("weight", "Body weight", "kg"),
			},
			References: []models.Citation{
				{Title: "Sabatini S, Kurtzman NA. Bicarbonate therapy in severe metabolic acidosis. J Am Soc Nephrol. 2009"},
			},
		},
		Fields: []Field{
			{Name: "bicarbonate", Label: "Current serum bicarbonate", Unit: "mEq/L", Positive: true},
			{Name: "desiredBicarbonate", Label: "Desired serum bicarbonate", Unit: "mEq/L", Default: "24", Positive: true},
			weightField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			current := v.Num("bicarbonate")
			desired := v.Num("desiredBicarbonate")
			if current >= desired {
				return nil, domainViolation("current bicarbonate must be below desired bicarbonate")
			}

			deficit := (desired - current) * 0.5 * v.Num("weight")
			return []models.Output{models.NewNumericOutput("bicarbonateDeficit", deficit, "mEq")}, nil
		},
	}
}

func urineAnionGap() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "urine-anion-gap",
			Name:        "Urine Anion Gap",
			Category:    models.CategoryAcidBase,
			Description: "Indirect index of urinary ammonium excretion for working up a normal anion gap metabolic acidosis.",
			Equation:    "UAG = (Urine Na + Urine K) - Urine Cl",
			Variables: []models.Variable{
				models.NewVariable("urineSodium", "Urine sodium", "mEq/L"),
				models.NewVariable("urinePotassium", "Urine potassium", "mEq/L"),
				models.NewVariable("urineChloride", "Urine chloride", "mEq/L"),
			},
			References: []models.Citation{
				{Title: "Batlle DC et al. The use of the urinary anion gap in the diagnosis of hyperchloremic metabolic acidosis. N Engl J Med. 1988"},
			},
		},
		Fields: []Field{
			{Name: "urineSodium", Label: "Urine sodium", Unit: "mEq/L", NonNegative: true},
			{Name: "urinePotassium", Label: "Urine potassium", Unit: "mEq/L", NonNegative: true},
			{Name: "urineChloride", Label: "Urine chloride", Unit: "mEq/L", NonNegative: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			gap := v.Num("urineSodium") + v.Num("urinePotassium") - v.Num("urineChloride")
			return []models.Output{models.NewNumericOutput("urineAnionGap", gap, "mEq/L")}, nil
		},
		Scales: map[string]Scale{
			"urineAnionGap": {
				BandBelow(0, false, "Negative: suggests gastrointestinal bicarbonate loss"),
				BandAbove(0, true, "Positive: suggests impaired urinary ammonium excretion (distal RTA)"),
			},
		},
	}
}

func urineOsmolalGap() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "urine-osmolal-gap",
			Name:        "Urine Osmolal Gap",
			Category:    models.CategoryAcidBase,
			Description: "Estimates urinary ammonium excretion from the gap between measured and calculated urine osmolality.",
			Equation:    "Calc = 2 x (Na + K) + Urea/2.8 + Glucose/18; Gap = Measured - Calc; NH4 = Gap/2",
			Variables: []models.Variable{
				models.NewVariable("urineSodium", "Urine sodium", "mEq/L"),
				models.NewVariable("urinePotassium", "Urine potassium", "mEq/L"),
				models.NewVariable("urineUrea", "Urine urea nitrogen", "mg/dL"),
				models.NewVariable("urineGlucose", "Urine glucose", "mg/dL"),
				models.NewVariable("measuredOsmolality", "Measured urine osmolality", "mOsm/kg"),
			},
			References: []models.Citation{
				{Title: "Halperin ML et al. Urine ammonium: the key to the diagnosis of distal renal tubular acidosis. Nephron. 1988"},
			},
		},
		Fields: []Field{
			{Name: "urineSodium", Label: "Urine sodium", Unit: "mEq/L", NonNegative: true},
			{Name: "urinePotassium", Label: "Urine potassium", Unit: "mEq/L", NonNegative: true},
			{Name: "urineUrea", Label: "Urine urea nitrogen", Unit: "mg/dL", NonNegative: true},
			{Name: "urineGlucose", Label: "Urine glucose", Unit: "mg/dL", Default: "0", NonNegative: true},
			{Name: "measuredOsmolality", Label: "Measured urine osmolality", Unit: "mOsm/kg", Positive: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			calculated := 2*(v.Num("urineSodium")+v.Num("urinePotassium")) +
				v.Num("urineUrea")/2.8 + v.Num("urineGlucose")/18
			gap := v.Num("measuredOsmolality") - calculated

			return []models.Output{
				models.NewNumericOutput("calculatedOsmolality", calculated, "mOsm/kg"),
				models.NewNumericOutput("osmolalGap", gap, "mOsm/kg"),
				models.NewNumericOutput("ammonium", gap/2, "mEq/L"),
			}, nil
		},
	}
}
