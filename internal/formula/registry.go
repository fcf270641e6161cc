package formula

import (
	"fmt"

	"calc.renalmetrics.org/internal/models"
)

// Definition binds a FormulaSpec to its input declarations, its pure
// compute function, and the classification scales applied to its named
// outputs. Definitions are registered once at init and never mutated.
type Definition struct {
	Spec    models.FormulaSpec
	Fields  []Field
	Compute func(v Values) ([]models.Output, *EvalError)
	Scales  map[string]Scale
}

var (
	registry     = make(map[string]*Definition)
	catalogOrder []string
)

func register(def *Definition) {
	id := def.Spec.ID
	if id == "" {
		panic("formula: definition registered without an ID")
	}
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("formula: duplicate definition %q", id))
	}
	registry[id] = def
	catalogOrder = append(catalogOrder, id)
}

// Catalog returns the FormulaSpec descriptors in registration order.
func Catalog() []models.FormulaSpec {
	specs := make([]models.FormulaSpec, 0, len(catalogOrder))
	for _, id := range catalogOrder {
		specs = append(specs, registry[id].Spec)
	}
	return specs
}

// Lookup returns the FormulaSpec for the given ID and whether it exists.
func Lookup(id string) (models.FormulaSpec, bool) {
	def, ok := registry[id]
	if !ok {
		return models.FormulaSpec{}, false
	}
	return def.Spec, true
}

// Fields returns the declared input fields for the given formula ID, for
// callers that render or pre-fill input forms. Unknown IDs panic, as in
// Evaluate.
func Fields(id string) []Field {
	def, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("formula: unknown formula ID %q", id))
	}
	fields := make([]Field, len(def.Fields))
	copy(fields, def.Fields)
	return fields
}

// Evaluate parses the raw text inputs for the named formula, checks its
// domain preconditions, computes its outputs, and classifies each output
// against the formula's declared scales. Evaluation is a pure function of
// its inputs: no I/O, no mutation of the catalog, no hidden state.
//
// Business-rule failures come back as a *EvalError (missing/invalid input
// or domain violation). An unknown formula ID is a caller bug and panics.
func Evaluate(formulaID string, rawInputs map[string]string) (models.EvaluationResult, error) {
	def, ok := registry[formulaID]
	if !ok {
		panic(fmt.Sprintf("formula: unknown formula ID %q", formulaID))
	}

	values, evalErr := parseInputs(def.Fields, rawInputs)
	if evalErr != nil {
		return models.EvaluationResult{}, evalErr
	}

	outputs, evalErr := def.Compute(values)
	if evalErr != nil {
		return models.EvaluationResult{}, evalErr
	}

	for i := range outputs {
		scale, ok := def.Scales[outputs[i].Name]
		if !ok || outputs[i].Value == nil || outputs[i].Label != "" {
			continue
		}
		outputs[i].Label = scale.Classify(*outputs[i].Value)
	}

	return models.EvaluationResult{FormulaID: formulaID, Outputs: outputs}, nil
}

func init() {
	register(ckdEpiCreatinine())
	register(ckdEpiCystatin())
	register(ckdEpiCombined())
	register(sodiumGlucoseCorrection())
	register(adrogueMadias())
	register(freeWaterDeficit())
	register(electrolyteFreeWaterClearance())
	register(correctedCalcium())
	register(serumOsmolality())
	register(anionGap())
	register(bicarbonateDeficit())
	register(urineAnionGap())
	register(urineOsmolalGap())
	register(acidBaseInterpretation())
}
