package models

// Formula categories used to group calculators in the catalog.
const (
	CategoryKidneyFunction = "Kidney Function"
	CategorySodiumWater    = "Sodium & Water"
	CategoryAcidBase       = "Acid-Base"
	CategoryElectrolytes   = "Electrolytes"
)

// FormulaSpec is the static descriptor for a single calculator: its
// identifier, grouping category, free-text description, display equation,
// named variables with units, and bibliographic references. Specs are
// defined once at startup and never mutated.
type FormulaSpec struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Equation    string     `json:"equation"`
	Variables   []Variable `json:"variables"`
	References  []Citation `json:"references"`
}

// Variable describes one named input of a formula as shown to callers.
type Variable struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

// Citation is a bibliographic reference backing a formula.
type Citation struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// NewVariable creates a new Variable instance with the provided values
func NewVariable(name, label, unit string) Variable {
	return Variable{
		Name:  name,
		Label: label,
		Unit:  unit,
	}
}
