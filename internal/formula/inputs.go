package formula

import (
	"math"
	"strconv"
	"strings"
)

// FieldKind identifies how a field's raw text is interpreted.
type FieldKind int

const (
	// Number fields parse to a floating-point value.
	Number FieldKind = iota
	// Choice fields must match one of the declared Choices exactly
	// (case-insensitive). They model categorical covariates such as sex
	// or the acute/chronic flag.
	Choice
)

// Field declares one named input of a formula: its kind, expected numeric
// domain, optional pre-filled default, and optional unit-conversion
// factor applied after parsing. Fields are immutable once declared.
type Field struct {
	Name    string
	Label   string
	Unit    string
	Kind    FieldKind
	Choices []string

	// Default is raw text pre-filled for the caller (e.g. desired
	// bicarbonate "24"). The caller may override it; all other empty
	// fields are an error, never silently defaulted.
	Default string

	// Optional fields may be omitted entirely (e.g. measured osmolality
	// when only the calculated value is wanted).
	Optional bool

	// Positive requires the parsed value to be > 0; NonNegative requires
	// >= 0. A violation is a DomainViolation, not a parse failure.
	Positive    bool
	NonNegative bool

	// Convert is a unit-conversion multiplier applied after the domain
	// check (e.g. mL/hr to L/day is 24.0/1000). Zero means no conversion.
	Convert float64
}

// Values holds the parsed, converted inputs handed to a Compute function.
type Values struct {
	nums    map[string]float64
	choices map[string]string
}

// Num returns the parsed numeric value of a required field. Calling it
// for a field the definition does not declare is a programmer error.
func (v Values) Num(name string) float64 {
	f, ok := v.nums[name]
	if !ok {
		panic("formula: numeric field not parsed: " + name)
	}
	return f
}

// OptionalNum returns the parsed value of an optional field and whether
// it was supplied.
func (v Values) OptionalNum(name string) (float64, bool) {
	f, ok := v.nums[name]
	return f, ok
}

// Choice returns the normalized value of a choice field.
func (v Values) Choice(name string) string {
	c, ok := v.choices[name]
	if !ok {
		panic("formula: choice field not parsed: " + name)
	}
	return c
}

// parseInputs turns raw user-typed text into Values per the field
// declarations. It fails on the first missing or unparseable field and
// on the first per-field domain breach, in declaration order.
func parseInputs(fields []Field, raw map[string]string) (Values, *EvalError) {
	vals := Values{
		nums:    make(map[string]float64, len(fields)),
		choices: make(map[string]string),
	}

	for _, field := range fields {
		text := strings.TrimSpace(raw[field.Name])
		if text == "" {
			if field.Default != "" {
				text = field.Default
			} else if field.Optional {
				continue
			} else {
				return Values{}, missingOrInvalidInput(field.Name)
			}
		}

		if field.Kind == Choice {
			choice, ok := matchChoice(field.Choices, text)
			if !ok {
				return Values{}, missingOrInvalidInput(field.Name)
			}
			vals.choices[field.Name] = choice
			continue
		}

		value, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return Values{}, missingOrInvalidInput(field.Name)
		}

		if field.Positive && value <= 0 {
			return Values{}, domainViolation("%s must be greater than zero", field.Name)
		}
		if field.NonNegative && value < 0 {
			return Values{}, domainViolation("%s must not be negative", field.Name)
		}

		if field.Convert != 0 {
			value *= field.Convert
		}
		vals.nums[field.Name] = value
	}

	return vals, nil
}

func matchChoice(choices []string, text string) (string, bool) {
	for _, choice := range choices {
		if strings.EqualFold(choice, text) {
			return choice, true
		}
	}
	return "", false
}
