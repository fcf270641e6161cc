package models

// Output is a single named result produced by evaluating a formula.
// Numeric outputs carry a Value (and usually a Unit); qualitative outputs
// from threshold classification or the acid-base interpreter carry only a
// Label. An output may carry both when a numeric result has been
// classified into a clinical range.
type Output struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
	Label string   `json:"label,omitempty"`
}

// NewNumericOutput creates an Output holding a numeric value
func NewNumericOutput(name string, value float64, unit string) Output {
	return Output{
		Name:  name,
		Value: &value,
		Unit:  unit,
	}
}

// NewQualitativeOutput creates an Output holding only a categorical label
func NewQualitativeOutput(name, label string) Output {
	return Output{
		Name:  name,
		Label: label,
	}
}

// EvaluationResult is the full result of one evaluation call: one or more
// named outputs in declaration order.
type EvaluationResult struct {
	FormulaID string   `json:"formulaId"`
	Outputs   []Output `json:"outputs"`
}

// Output returns the named output and whether it exists.
func (r EvaluationResult) Output(name string) (Output, bool) {
	for _, out := range r.Outputs {
		if out.Name == name {
			return out, true
		}
	}
	return Output{}, false
}
