package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers the API routes on the given router. Every route is
// gated by the API key check.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/calc/formulas.json", validateAPIKey(api, api.formulasHandler))
	router.Handler(http.MethodGet, "/api/calc/formula/:id", validateAPIKey(api, api.formulaHandler))
	router.Handler(http.MethodGet, "/api/calc/evaluate/:id", validateAPIKey(api, api.evaluateHandler))
	router.Handler(http.MethodGet, "/api/calc/favorites.json", validateAPIKey(api, api.favoritesHandler))
	router.Handler(http.MethodPost, "/api/calc/favorite/:id", validateAPIKey(api, api.addFavoriteHandler))
	router.Handler(http.MethodDelete, "/api/calc/favorite/:id", validateAPIKey(api, api.removeFavoriteHandler))
}

// Handler returns the fully assembled API handler: routes wrapped in
// request logging, rate limiting, compression, and security headers.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	handler = api.rateLimiter(handler)
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	return handler
}
