package webui

import (
	"net/http"

	"calc.renalmetrics.org/internal/app"
)

// WebUI serves the human-readable debug pages.
type WebUI struct {
	App *app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{App: app}
}

func (webUI *WebUI) SetWebUIRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /debug/", webUI.debugIndexHandler)
}
