package formula

import "calc.renalmetrics.org/internal/models"

// Patient categories driving the total-body-water fraction.
const (
	PatientChild         = "child"
	PatientAdultMale     = "adult-male"
	PatientAdultFemale   = "adult-female"
	PatientElderlyMale   = "elderly-male"
	PatientElderlyFemale = "elderly-female"
)

// tbwFraction is the fraction of body weight that is water, by patient
// category.
var tbwFraction = map[string]float64{
	PatientChild:         0.6,
	PatientAdultMale:     0.6,
	PatientAdultFemale:   0.5,
	PatientElderlyMale:   0.5,
	PatientElderlyFemale: 0.45,
}

func patientField() Field {
	return Field{
		Name:  "patient",
		Label: "Patient category",
		Kind:  Choice,
		Choices: []string{
			PatientChild, PatientAdultMale, PatientAdultFemale,
			PatientElderlyMale, PatientElderlyFemale,
		},
	}
}

func weightField() Field {
	return Field{Name: "weight", Label: "Body weight", Unit: "kg", Positive: true}
}

// totalBodyWater computes TBW in liters from the patient category and
// weight fields.
func totalBodyWater(v Values) float64 {
	return tbwFraction[v.Choice("patient")] * v.Num("weight")
}

// sodiumScale classifies a serum sodium concentration.
func sodiumScale() Scale {
	return Scale{
		BandBelow(135, false, "Hyponatremia"),
		BandRange(135, true, 145, true, "Normal"),
		BandAbove(145, false, "Hypernatremia"),
	}
}

func sodiumGlucoseCorrection() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "sodium-glucose-correction",
			Name:        "Sodium Correction for Hyperglycemia",
			Category:    models.CategorySodiumWater,
			Description: "Corrects the measured serum sodium for the dilutional effect of hyperglycemia. Both the classic 1.6 and the revised 2.4 mEq/L per 100 mg/dL correction factors are selectable.",
			Equation:    "Corrected Na = Na + factor x (Glucose - 100)",
			Variables: []models.Variable{
				models.NewVariable("sodium", "Measured serum sodium", "mEq/L"),
				models.NewVariable("glucose", "Serum glucose", "mg/dL"),
				models.NewVariable("factor", "Correction factor", ""),
			},
			References: []models.Citation{
				{Title: "Katz MA. Hyperglycemia-induced hyponatremia: calculation of expected serum sodium depression. N Engl J Med. 1973"},
				{Title: "Hillier TA, Abbott RD, Barrett EJ. Hyponatremia: evaluating the correction factor for hyperglycemia. Am J Med. 1999"},
			},
		},
		Fields: []Field{
			{Name: "sodium", Label: "Measured serum sodium", Unit: "mEq/L", Positive: true},
			{Name: "glucose", Label: "Serum glucose", Unit: "mg/dL", Positive: true},
			{Name: "factor", Label: "Correction factor", Kind: Choice, Choices: []string{"0.016", "0.024"}},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			factor := 0.016
			if v.Choice("factor") == "0.024" {
				factor = 0.024
			}
			corrected := v.Num("sodium") + factor*(v.Num("glucose")-100)
			return []models.Output{models.NewNumericOutput("correctedSodium", corrected, "mEq/L")}, nil
		},
		Scales: map[string]Scale{"correctedSodium": sodiumScale()},
	}
}

func adrogueMadias() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "adrogue-madias",
			Name:        "Adrogue-Madias Sodium Change",
			Category:    models.CategorySodiumWater,
			Description: "Expected change in serum sodium after infusing a given volume of a sodium-containing fluid.",
			Equation:    "Delta Na = (Na infusate - Na serum) x Volume / (TBW + 1)",
			Variables: []models.Variable{
				models.NewVariable("sodium", "Serum sodium", "mEq/L"),
				models.NewVariable("infusateSodium", "Infusate sodium", "mEq/L"),
				models.NewVariable("volume", "Infusate volume", "L"),
				models.NewVariable("weight", "Body weight", "kg"),
				models.NewVariable("patient", "Patient category", ""),
			},
			References: []models.Citation{
				{Title: "Adrogue HJ, Madias NE. Hyponatremia. N Engl J Med. 2000"},
			},
		},
		Fields: []Field{
			{Name: "sodium", Label: "Serum sodium", Unit: "mEq/L", Positive: true},
			{Name: "infusateSodium", Label: "Infusate sodium", Unit: "mEq/L", NonNegative: true},
			{Name: "volume", Label: "Infusate volume", Unit: "L", Positive: true},
			weightField(),
			patientField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			tbw := totalBodyWater(v)
			delta := (v.Num("infusateSodium") - v.Num("sodium")) * v.Num("volume") / (tbw + 1)
			return []models.Output{
				models.NewNumericOutput("sodiumChange", delta, "mEq/L"),
				models.NewNumericOutput("totalBodyWater", tbw, "L"),
			}, nil
		},
	}
}

func freeWaterDeficit() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "free-water-deficit",
			Name:        "Free Water Deficit",
			Category:    models.CategorySodiumWater,
			Description: "Free water volume needed to lower the serum sodium from its current value to the desired value in hypernatremia.",
			Equation:    "Deficit = TBW x (Na current - Na desired) / Na desired",
			Variables: []models.Variable{
				models.NewVariable("sodium", "Current serum sodium", "mEq/L"),
				models.NewVariable("desiredSodium", "Desired serum sodium", "mEq/L"),
				models.NewVariable("weight", "Body weight", "kg"),
				models.NewVariable("patient", "Patient category", ""),
			},
			References: []models.Citation{
				{Title: "Adrogue HJ, Madias NE. Hypernatremia. N Engl J Med. 2000"},
			},
		},
		Fields: []Field{
			{Name: "sodium", Label: "Current serum sodium", Unit: "mEq/L", Positive: true},
			{Name: "desiredSodium", Label: "Desired serum sodium", Unit: "mEq/L", Default: "140", Positive: true},
			weightField(),
			patientField(),
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			current := v.Num("sodium")
			desired := v.Num("desiredSodium")
			if current <= desired {
				return nil, domainViolation("current sodium must exceed desired sodium")
			}

			deficit := totalBodyWater(v) * (current - desired) / desired
			return []models.Output{models.NewNumericOutput("waterDeficit", deficit, "L")}, nil
		},
	}
}

func electrolyteFreeWaterClearance() *Definition {
	return &Definition{
		Spec: models.FormulaSpec{
			ID:          "electrolyte-free-water-clearance",
			Name:        "Electrolyte-Free Water Clearance",
			Category:    models.CategorySodiumWater,
			Description: "Volume of electrolyte-free water the kidneys clear per day, from the urine flow rate and urine and serum electrolytes.",
			Equation:    "EFWC = V x (1 - (Urine Na + Urine K) / Serum Na)",
			Variables: []models.Variable{
				models.NewVariable("urineFlow", "Urine flow rate", "mL/hr"),
				models.NewVariable("urineSodium", "Urine sodium", "mEq/L"),
				models.NewVariable("urinePotassium", "Urine potassium", "mEq/L"),
				models.NewVariable("sodium", "Serum sodium", "mEq/L"),
			},
			References: []models.Citation{
				{Title: "Rose BD. New approach to disturbances in the plasma sodium concentration. Am J Med. 1986"},
			},
		},
		Fields: []Field{
			// mL/hr to L/day
			{Name: "urineFlow", Label: "Urine flow rate", Unit: "mL/hr", Positive: true, Convert: 24.0 / 1000.0},
			{Name: "urineSodium", Label: "Urine sodium", Unit: "mEq/L", NonNegative: true},
			{Name: "urinePotassium", Label: "Urine potassium", Unit: "mEq/L", NonNegative: true},
			{Name: "sodium", Label: "Serum sodium", Unit: "mEq/L", Positive: true},
		},
		Compute: func(v Values) ([]models.Output, *EvalError) {
			clearance := v.Num("urineFlow") * (1 - (v.Num("urineSodium")+v.Num("urinePotassium"))/v.Num("sodium"))
			return []models.Output{models.NewNumericOutput("clearance", clearance, "L/day")}, nil
		},
		Scales: map[string]Scale{
			"clearance": {
				BandBelow(0, false, "Negative: net free water retention"),
				BandAbove(0, true, "Positive: net free water excretion"),
			},
		},
	}
}
