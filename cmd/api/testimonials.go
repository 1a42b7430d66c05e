package main

import (
	"net/http"

	"grlla/internal/content"
)

// ListTestimonials godoc
//
//	@Summary		Testimonial carousels
//	@Description	Returns the success-story slides and the review carousel parameters for the landing page.
//	@Tags			Content
//	@Produce		json
//	@Param			lang	query		string	false	"en | ar"
//	@Success		200		{object}	content.TestimonialsView	"Carousel descriptors"
//	@Failure		500		{object}	error					"Internal server error"
//	@Router			/testimonials [get]
func (app *application) listTestimonialsHandler(w http.ResponseWriter, r *http.Request) {
	testimonials := content.RenderTestimonials(getLangFromContext(r))

	if err := app.jsonResponse(w, http.StatusOK, testimonials); err != nil {
		app.internalServerError(w, r, err)
	}
}
