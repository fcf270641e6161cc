package restapi

import (
	"net/http"

	"calc.renalmetrics.org/internal/formula"
	"calc.renalmetrics.org/internal/models"
)

func (api *RestAPI) formulasHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewListResponse(formula.Catalog())
	api.sendResponse(w, r, response)
}
