package main

import (
	"net/http"

	"grlla/internal/content"
)

// ListPackages godoc
//
//	@Summary		List coaching packages
//	@Description	Returns the three coaching tiers with localized titles, durations, and feature lists, plus each tier's checkout link.
//	@Tags			Content
//	@Produce		json
//	@Param			lang	query		string	false	"en | ar"
//	@Success		200		{array}		content.PackageView	"Coaching packages"
//	@Failure		500		{object}	error				"Internal server error"
//	@Router			/packages [get]
func (app *application) listPackagesHandler(w http.ResponseWriter, r *http.Request) {
	packages := content.RenderPackages(getLangFromContext(r))

	if err := app.jsonResponse(w, http.StatusOK, packages); err != nil {
		app.internalServerError(w, r, err)
	}
}
