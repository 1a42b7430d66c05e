package main

import "net/http"

// HealthCheck godoc
//
//	@Summary		Health check
//	@Description	Reports service status, environment, and catalog readiness.
//	@Tags			Ops
//	@Produce		json
//	@Success		200	{object}	map[string]any	"Service status"
//	@Failure		500	{object}	error			"Internal server error"
//	@Security		BasicAuth
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"status":           "ok",
		"env":              app.config.env,
		"version":          version,
		"catalog_products": app.store.Len(),
		"catalog_degraded": app.store.Degraded(),
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
