package main

import (
	"net/http"

	"grlla/internal/content"
)

// ListFAQ godoc
//
//	@Summary		List FAQ entries
//	@Description	Returns the accordion question/answer pairs in the requested language.
//	@Tags			Content
//	@Produce		json
//	@Param			lang	query		string	false	"en | ar"
//	@Success		200		{array}		content.FAQView	"FAQ entries"
//	@Failure		500		{object}	error			"Internal server error"
//	@Router			/faq [get]
func (app *application) listFAQHandler(w http.ResponseWriter, r *http.Request) {
	faq := content.RenderFAQ(getLangFromContext(r))

	if err := app.jsonResponse(w, http.StatusOK, faq); err != nil {
		app.internalServerError(w, r, err)
	}
}
