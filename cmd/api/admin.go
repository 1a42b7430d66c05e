package main

import (
	"context"
	"net/http"
	"time"
)

const adminSubject = "admin"

type tokenResponse struct {
	Token string `json:"token"`
}

type reloadResponse struct {
	Products int    `json:"products"`
	LoadedAt string `json:"loaded_at"`
}

// CreateAdminToken godoc
//
//	@Summary		Mint an operator token
//	@Description	Exchanges the basic-auth credentials for a short-lived bearer token that guards the catalog reload.
//	@Tags			Admin
//	@Produce		json
//	@Success		201	{object}	tokenResponse	"Bearer token"
//	@Failure		401	{object}	error			"Unauthorized"
//	@Failure		500	{object}	error			"Internal server error"
//	@Security		BasicAuth
//	@Router			/admin/token [post]
func (app *application) createAdminTokenHandler(w http.ResponseWriter, r *http.Request) {
	token, err := app.authenticator.GenerateToken(adminSubject, app.config.auth.token.exp)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, tokenResponse{Token: token}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ReloadCatalog godoc
//
//	@Summary		Reload the supplement catalog
//	@Description	Re-fetches the catalog document from the configured source. A failed reload keeps the previously loaded products.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	reloadResponse	"Reload result"
//	@Failure		401	{object}	error			"Unauthorized"
//	@Failure		502	{object}	error			"Catalog source unavailable"
//	@Security		ApiKeyAuth
//	@Router			/admin/catalog/reload [post]
func (app *application) reloadCatalogHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	products, err := app.loader.Load(ctx)
	if err != nil {
		app.store.SetLoadError(err)
		app.badGatewayResponse(w, r, err)
		return
	}

	app.store.SetProducts(products)
	app.logger.Infow("catalog reloaded", "products", len(products))

	resp := reloadResponse{
		Products: len(products),
		LoadedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
