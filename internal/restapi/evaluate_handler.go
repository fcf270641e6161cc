package restapi

import (
	"errors"
	"fmt"
	"net/http"

	"calc.renalmetrics.org/internal/formula"
	"calc.renalmetrics.org/internal/models"
	"calc.renalmetrics.org/internal/utils"
)

// evaluateHandler runs one formula against the raw query parameters. Every
// query parameter except the API key is passed through to the evaluator as
// raw text; parsing and domain checks happen there, not here.
func (api *RestAPI) evaluateHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r)
	if err := utils.ValidateID(id); err != nil {
		api.sendNotFound(w, r)
		return
	}
	if _, ok := formula.Lookup(id); !ok {
		api.sendNotFound(w, r)
		return
	}

	rawInputs := make(map[string]string)
	fieldErrors := make(map[string][]string)
	for key, values := range r.URL.Query() {
		if key == "key" || len(values) == 0 {
			continue
		}
		value := values[0]
		if err := utils.ValidateInputValue(value); err != nil {
			fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
			continue
		}
		rawInputs[key] = value
	}
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := formula.Evaluate(id, rawInputs)
	if err != nil {
		var evalErr *formula.EvalError
		if errors.As(err, &evalErr) {
			switch evalErr.Kind {
			case formula.MissingOrInvalidInput:
				api.validationErrorResponse(w, r, map[string][]string{
					evalErr.Field: {fmt.Sprintf("Invalid field value for field %q.", evalErr.Field)},
				})
			case formula.DomainViolation:
				api.domainViolationResponse(w, r, evalErr.Reason)
			}
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(result))
}
