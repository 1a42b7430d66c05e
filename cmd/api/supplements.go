package main

import (
	"fmt"
	"net/http"
	"strconv"

	"grlla/internal/catalog"
)

const showcaseSize = 4

// buildSession replays the request's query parameters through a fresh catalog
// session, in transition order: filters first (each resets the page), then
// sort, then the page jump.
func (app *application) buildSession(r *http.Request) (*catalog.Session, error) {
	q := r.URL.Query()

	pageSize := app.config.catalog.pageSize
	if raw := q.Get("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid page_size %q", raw)
		}
		if n > catalog.MaxPageSize {
			n = catalog.MaxPageSize
		}
		pageSize = n
	}

	session := catalog.NewSession(app.store, pageSize, getLangFromContext(r))

	if category := q.Get("category"); category != "" {
		session.SetCategory(category)
	}
	if search := q.Get("search"); search != "" {
		session.Search(search)
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid max_price %q", raw)
		}
		session.SetMaxPrice(maxPrice)
	}

	sortKey, ok := catalog.ParseSortKey(q.Get("sort"))
	if !ok {
		return nil, fmt.Errorf("invalid sort %q", q.Get("sort"))
	}
	session.SetSort(sortKey)

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", raw)
		}
		session.GoToPage(page)
	}

	return session, nil
}

// ListSupplements godoc
//
//	@Summary		Browse the supplement catalog
//	@Description	Filters by category tag, search text, and price ceiling, then sorts and paginates. Out-of-range pages are clamped, never an error.
//	@Tags			Supplements
//	@Produce		json
//	@Param			category	query		string	false	"Category tag ('all' for everything)"
//	@Param			search		query		string	false	"Case-insensitive search over name and description"
//	@Param			max_price	query		number	false	"Price ceiling; at or above the catalog maximum means no limit"
//	@Param			sort		query		string	false	"none | price-asc | price-desc | name-asc | name-desc"
//	@Param			page		query		int		false	"Page number (clamped into range)"
//	@Param			page_size	query		int		false	"Products per page (capped at 50)"
//	@Param			lang		query		string	false	"en | ar"
//	@Success		200			{object}	catalog.View	"Derived catalog page"
//	@Failure		400			{object}	error			"Invalid query parameter"
//	@Failure		503			{object}	error			"Catalog could not be loaded"
//	@Router			/supplements [get]
func (app *application) listSupplementsHandler(w http.ResponseWriter, r *http.Request) {
	if app.store.Degraded() && app.store.Len() == 0 {
		app.serviceUnavailableResponse(w, r, app.bundle.T(getLangFromContext(r), "catalogUnavailable"))
		return
	}

	session, err := app.buildSession(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view := session.View()

	type listResponse struct {
		catalog.View
		Message string `json:"message,omitempty"`
	}
	resp := listResponse{View: view}
	if view.Total == 0 {
		resp.Message = app.bundle.T(getLangFromContext(r), "noResults")
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetSupplement godoc
//
//	@Summary		Get one supplement
//	@Description	Looks a product up by its source URL, which doubles as its identity.
//	@Tags			Supplements
//	@Produce		json
//	@Param			product	query		string	true	"Product URL"
//	@Success		200		{object}	catalog.Product	"Product detail"
//	@Failure		400		{object}	error			"Missing product parameter"
//	@Failure		404		{object}	error			"Unknown product"
//	@Router			/supplements/detail [get]
func (app *application) getSupplementHandler(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("product")
	if url == "" {
		app.badRequestResponse(w, r, fmt.Errorf("product parameter is required"))
		return
	}

	product, ok := app.store.ByURL(url)
	if !ok {
		// The storefront shows this message and sends the visitor back to the list.
		type notFound struct {
			Message  string `json:"message"`
			Redirect string `json:"redirect"`
		}
		writeJSON(w, http.StatusNotFound, &notFound{
			Message:  app.bundle.T(getLangFromContext(r), "productNotFound"),
			Redirect: "/supplements",
		})
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListCategories godoc
//
//	@Summary		List filter categories
//	@Description	Returns the category tags for the filter bar: "all" first, then the known brand/type tags, then any extra tags found on products.
//	@Tags			Supplements
//	@Produce		json
//	@Success		200	{array}		string	"Category tags"
//	@Failure		500	{object}	error	"Internal server error"
//	@Router			/supplements/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.store.Categories()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// HomeShowcase godoc
//
//	@Summary		Home page product showcase
//	@Description	Returns a few random products for the landing page strip. Empty when the catalog is unavailable.
//	@Tags			Supplements
//	@Produce		json
//	@Success		200	{array}		catalog.Product	"Random products"
//	@Failure		500	{object}	error			"Internal server error"
//	@Router			/supplements/showcase [get]
func (app *application) homeShowcaseHandler(w http.ResponseWriter, r *http.Request) {
	type showcaseItem struct {
		catalog.Product
		Teaser string `json:"teaser"`
	}

	picks := app.store.Sample(showcaseSize)
	items := make([]showcaseItem, 0, len(picks))
	for _, p := range picks {
		items = append(items, showcaseItem{Product: p, Teaser: p.ShortText()})
	}

	if err := app.jsonResponse(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}
