package main

import (
	"net/http"

	"grlla/internal/content"
	"grlla/internal/i18n"
)

type languageResponse struct {
	Lang   string            `json:"lang"`
	Dir    string            `json:"dir"`
	Labels map[string]string `json:"labels"`
	Ticker []string          `json:"ticker"`
}

func (app *application) languagePayload(lang string) languageResponse {
	dir := "ltr"
	if lang == i18n.LangAR {
		dir = "rtl"
	}
	return languageResponse{
		Lang:   lang,
		Dir:    dir,
		Labels: app.bundle.Table(lang),
		Ticker: content.Ticker(lang),
	}
}

// GetLanguage godoc
//
//	@Summary		Current display language
//	@Description	Returns the active language with its text direction, the full label table, and the localized ticker lines so a client can render every labelled element.
//	@Tags			Language
//	@Produce		json
//	@Success		200	{object}	languageResponse	"Active language payload"
//	@Failure		500	{object}	error				"Internal server error"
//	@Router			/language [get]
func (app *application) getLanguageHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonResponse(w, http.StatusOK, app.languagePayload(app.lang.Current())); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ToggleLanguage godoc
//
//	@Summary		Toggle the display language
//	@Description	Flips between English and Arabic and returns the new language payload; a second toggle restores the original texts exactly.
//	@Tags			Language
//	@Produce		json
//	@Success		200	{object}	languageResponse	"New language payload"
//	@Failure		500	{object}	error				"Internal server error"
//	@Router			/language/toggle [post]
func (app *application) toggleLanguageHandler(w http.ResponseWriter, r *http.Request) {
	lang := app.lang.Toggle()

	if err := app.jsonResponse(w, http.StatusOK, app.languagePayload(lang)); err != nil {
		app.internalServerError(w, r, err)
	}
}
