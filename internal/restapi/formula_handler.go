package restapi

import (
	"net/http"

	"calc.renalmetrics.org/internal/formula"
	"calc.renalmetrics.org/internal/models"
	"calc.renalmetrics.org/internal/utils"
)

// inputDescriptor describes one input field of a formula for callers that
// build input forms: its kind, allowed choices, pre-filled default, and
// whether it may be omitted.
type inputDescriptor struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Unit     string   `json:"unit,omitempty"`
	Kind     string   `json:"kind"`
	Choices  []string `json:"choices,omitempty"`
	Default  string   `json:"default,omitempty"`
	Optional bool     `json:"optional,omitempty"`
}

// formulaEntry is the single-formula response payload: the static spec
// plus its input declarations.
type formulaEntry struct {
	models.FormulaSpec
	Inputs []inputDescriptor `json:"inputs"`
}

func (api *RestAPI) formulaHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)
	if err := utils.ValidateID(id); err != nil {
		api.sendNotFound(w, r)
		return
	}

	spec, ok := formula.Lookup(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	entry := formulaEntry{
		FormulaSpec: spec,
		Inputs:      transformFields(formula.Fields(id)),
	}
	api.sendResponse(w, r, models.NewEntryResponse(entry))
}

func transformFields(fields []formula.Field) []inputDescriptor {
	descriptors := make([]inputDescriptor, 0, len(fields))
	for _, field := range fields {
		kind := "number"
		if field.Kind == formula.Choice {
			kind = "choice"
		}
		descriptors = append(descriptors, inputDescriptor{
			Name:     field.Name,
			Label:    field.Label,
			Unit:     field.Unit,
			Kind:     kind,
			Choices:  field.Choices,
			Default:  field.Default,
			Optional: field.Optional,
		})
	}
	return descriptors
}
