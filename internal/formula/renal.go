package formula

import (
	"math"

	"calc.renalmetrics.org/internal/models"
)

// Sex choice values shared by the CKD-EPI and body-water formulas.
const (
	SexMale   = "male"
	SexFemale = "female"
)

const egfrUnit = "mL/min/1.73m2"

func sexField() Field {
	return Field{Name: "sex", Label: "Sex", Kind: Choice, Choices: []string{SexMale, SexFemale}}
}

func ageField() Field {
	return Field{Name: "age", Label: "Age", Unit: "years", Positive: true}
}

// egfrScale maps eGFR to KDIGO GFR categories, highest first.
func egfrScale() Scale {
	return Scale{
		BandAbove(90, true, "G1: Normal or high"),
		BandRange(60, true, 90, false, "G2: Mildly decreased"),
		BandRange(45, true, 60, false, "G3a: Mildly to moderately decreased"),
		BandRange(30, true, 45, false, "G3b: Moderately to severely decreased"),
		BandRange(15, true, 30, false, "G4: Severely decreased"),
		BandBelow(15, false, "G5: Kidney failure"),
	}
}

func ckdEpiCreatinine() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "ckd-epi-creatinine",
			Name:        "CKD-EPI 2021 (Creatinine)",
			Category:    models.CategoryKidneyFunction,
			Description: "Estimated glomerular filtration rate from serum creatinine, age, and sex, using the 2021 race-free CKD-EPI equation.",
			Equation:    "eGFR = 142 x (Scr/k)^a x 0.9938^Age x 1.012 [if female]",
			Variables: []models.Variable{
				models.NewVariable("creatinine", "Serum creatinine", "mg/dL"),
				models.NewVariable("age", "Age", "years"),
				models.NewVariable("sex", "Sex", ""),
			},
			References: []models.Citation{
				{Title: "Inker LA et al. New creatinine- and cystatin C-based equations to estimate GFR without race. N Engl J Med. 2021"},
			},
		},
		Fields: []Field{
			{Name: "creatinine", Label: "Serum creatinine", Unit: "mg/dL", Positive: true},
			ageField(),
			sexField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			scr := v.Num("creatinine")
			age := v.Num("age")

			kappa, sexFactor := 0.9, 1.0
			if v.Choice("sex") == SexFemale {
				kappa, sexFactor = 0.7, 1.012
			}
			alpha := -1.200
			if scr <= kappa {
				alpha = -0.241
			}

			egfr := 142 * math.Pow(scr/kappa, alpha) * math.Pow(0.9938, age) * sexFactor
			return []models.Output{models.NewNumericOutput("egfr", egfr, egfrUnit)}, nil
		},
		Scales: map[string]Scale{"egfr": egfrScale()},
	}
}

func ckdEpiCystatin() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "ckd-epi-cystatin",
			Name:        "CKD-EPI 2021 (Cystatin C)",
			Category:    models.CategoryKidneyFunction,
			Description: "Estimated glomerular filtration rate from serum cystatin C, age, and sex.",
			Equation:    "eGFR = 133 x (Scys/0.8)^a x 0.996^Age x 0.932 [if female]",
			Variables: []models.Variable{
				models.NewVariable("cystatin", "Serum cystatin C", "mg/L"),
				models.NewVariable("age", "Age", "years"),
				models.NewVariable("sex", "Sex", ""),
			},
			References: []models.Citation{
				{Title: "Inker LA et al. New creatinine- and cystatin C-based equations to estimate GFR without race. N Engl J Med. 2021"},
			},
		},
		Fields: []Field{
			{Name: "cystatin", Label: "Serum cystatin C", Unit: "mg/L", Positive: true},
			ageField(),
			sexField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			scys := v.Num("cystatin")
			age := v.Num("age")

			sexFactor := 1.0
			if v.Choice("sex") == SexFemale {
				sexFactor = 0.932
			}
			alpha := -1.328
			if scys <= 0.8 {
				alpha = -0.499
			}

			egfr := 133 * math.Pow(scys/0.8, alpha) * math.Pow(0.996, age) * sexFactor
			return []models.Output{models.NewNumericOutput("egfr", egfr, egfrUnit)}, nil
		},
		Scales: map[string]Scale{"egfr": egfrScale()},
	}
}

func ckdEpiCombined() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "ckd-epi-combined",
			Name:        "CKD-EPI 2021 (Creatinine-Cystatin C)",
			Category:    models.CategoryKidneyFunction,
			Description: "Estimated glomerular filtration rate combining serum creatinine and cystatin C.",
			Equation:    "eGFR = 135 x (Scr/k)^a1 x (Scys/0.8)^a2 x 0.9961^Age x 0.963 [if female]",
			Variables: []models.Variable{
				models.NewVariable("creatinine", "Serum creatinine", "mg/dL"),
				models.NewVariable("cystatin", "Serum cystatin C", "mg/L"),
				models.NewVariable("age", "Age", "years"),
				models.NewVariable("sex", "Sex", ""),
			},
			References: []models.Citation{
				{Title: "Inker LA et al. New creatinine- and cystatin C-based equations to estimate GFR without race. N Engl J Med. 2021"},
			},
		},
		Fields: []Field{
			{Name: "creatinine", Label: "Serum creatinine", Unit: "mg/dL", Positive: true},
			{Name: "cystatin", Label: "Serum cystatin C", Unit: "mg/L", Positive: true},
			ageField(),
			sexField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			scr := v.Num("creatinine")
			scys := v.Num("cystatin")
			age := v.Num("age")

			kappa, sexFactor := 0.9, 1.0
			if v.Choice("sex") == SexFemale {
				kappa, sexFactor = 0.7, 0.963
			}
			alpha1 := -0.544
			if scr <= kappa {
				alpha1 = -0.219
			}
			alpha2 := -0.778
			if scys <= 0.8 {
				alpha2 = -0.323
			}

			egfr := 135 * math.Pow(scr/kappa, alpha1) * math.Pow(scys/0.8, alpha2) *
				math.Pow(0.9961, age) * sexFactor
			return []models.Output{models.NewNumericOutput("egfr", egfr, egfrUnit)}, nil
		},
		Scales: map[string]Scale{"egfr": egfrScale()},
	}
}
