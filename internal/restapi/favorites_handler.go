package restapi

import (
	"net/http"

	"calc.renalmetrics.org/internal/formula"
	"calc.renalmetrics.org/internal/models"
	"calc.renalmetrics.org/internal/utils"
)

func (api *RestAPI) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	ids, err := api.Favorites.List(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(ids))
}

func (api *RestAPI) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.favoriteIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := api.Favorites.Add(r.Context(), id); err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(id))
}

func (api *RestAPI) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := api.favoriteIDFromRequest(w, r)
	if !ok {
		return
	}

	removed, err := api.Favorites.Remove(r.Context(), id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if !removed {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(id))
}

// favoriteIDFromRequest extracts and validates the formula ID for the
// favorite handlers. Unknown formulas cannot be favorited.
func (api *RestAPI) favoriteIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := utils.ExtractIDFromParams(r)
	if err := utils.ValidateID(id); err != nil {
		api.sendNotFound(w, r)
		return "", false
	}
	if _, ok := formula.Lookup(id); !ok {
		api.sendNotFound(w, r)
		return "", false
	}
	return id, true
}
