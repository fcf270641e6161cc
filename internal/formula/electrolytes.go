package formula

import "calc.renalmetrics.org/internal/models"

func correctedCalcium() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "corrected-calcium",
			Name:        "Albumin-Corrected Calcium",
			Category:    models.CategoryElectrolytes,
			Description: "Corrects the total serum calcium for hypoalbuminemia.",
			Equation:    "Corrected Ca = Ca + 0.8 x (4.0 - Albumin)",
			Variables: []models.Variable{
				models.NewVariable("calcium", "Total serum calcium", "mg/dL"),
				models.NewVariable("albumin", "Serum albumin", "g/dL"),
			},
			References: []models.Citation{
				{Title: "Payne RB et al. Interpretation of serum calcium in patients with abnormal serum proteins. Br Med J. 1973"},
			},
		},
		Fields: []Field{
			{Name: "calcium", Label: "Total serum calcium", Unit: "mg/dL", Positive: true},
			{Name: "albumin", Label: "Serum albumin", Unit: "g/dL", Positive: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			corrected := v.Num("calcium") + 0.8*(4.0-v.Num("albumin"))
			return []models.Output{models.NewNumericOutput("correctedCalcium", corrected, "mg/dL")}, nil
		},
		Scales: map[string]Scale{
			"correctedCalcium": {
				BandBelow(8.5, false, "Hypocalcemia"),
				BandRange(8.5, true, 10.5, true, "Normal"),
				BandAbove(10.5, false, "Hypercalcemia"),
			},
		},
	}
}

func serumOsmolality() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "serum-osmolality",
			Name:        "Serum Osmolality",
			Category:    models.CategoryElectrolytes,
			Description: "Calculated serum osmolality from sodium, glucose, and urea nitrogen. Supplying a measured osmolality also yields the osmolal gap.",
			Equation:    "Osm = 2 x Na + Glucose/18 + BUN/2.8; Gap = Measured - Calculated",
			Variables: []models.Variable{
				models.NewVariable("sodium", "Serum sodium", "mEq/L"),
				models.NewVariable("glucose", "Serum glucose", "mg/dL"),
				models.NewVariable("bun", "Blood urea nitrogen", "mg/dL"),
				models.NewVariable("measuredOsmolality", "Measured osmolality (optional)", "mOsm/kg"),
			},
			References: []models.Citation{
				{Title: "Rasouli M. Basic concepts and practical equations on osmolality. Clin Biochem. 2016"},
			},
		},
		Fields: []Field{
			{Name: "sodium", Label: "Serum sodium", Unit: "mEq/L", Positive: true},
			{Name: "glucose", Label: "Serum glucose", Unit: "mg/dL", Positive: true},
			{Name: "bun", Label: "Blood urea nitrogen", Unit: "mg/dL", Positive: true},
			{Name: "measuredOsmolality", Label: "Measured osmolality", Unit: "mOsm/kg", Optional: true, Positive: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			calculated := 2*v.Num("sodium") + v.Num("glucose")/18 + v.Num("bun")/2.8
			outputs := []models.Output{models.NewNumericOutput("calculatedOsmolality", calculated, "mOsm/kg")}

			if measured, ok := v.OptionalNum("measuredOsmolality"); ok {
				outputs = append(outputs, models.NewNumericOutput("osmolalGap", measured-calculated, "mOsm/kg"))
			}
			return outputs, nil
		},
		Scales: map[string]Scale{
			"calculatedOsmolality": {
				BandBelow(275, false, "Hypoosmolar"),
				BandRange(275, true, 295, true, "Normal"),
				BandAbove(295, false, "Hyperosmolar"),
			},
			"osmolalGap": {
				BandAbove(10, false, "Elevated osmolal gap: consider unmeasured osmoles"),
				BandBelow(10, true, "Normal osmolal gap"),
			},
		},
	}
}
