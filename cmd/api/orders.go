package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"grlla/internal/checkout"
	"grlla/internal/mailer"
)

type CreateOrderPayload struct {
	ProductURL string `json:"product_url" validate:"required"`
	Quantity   int    `json:"quantity" validate:"omitempty,gte=1,lte=10"`
}

type orderResponse struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// CreateOrder godoc
//
//	@Summary		Submit a supplement order
//	@Description	Forwards the order to the external order endpoint, one shot. Nothing is persisted; the returned reference is diagnostic only.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOrderPayload	true	"Order payload"
//	@Success		201		{object}	orderResponse		"Order accepted"
//	@Failure		400		{object}	error				"Invalid payload"
//	@Failure		404		{object}	error				"Unknown product"
//	@Failure		502		{object}	error				"Order endpoint rejected the submission"
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateOrderPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	product, ok := app.store.ByURL(payload.ProductURL)
	if !ok {
		app.notFoundResponse(w, r, fmt.Errorf("unknown product %q", payload.ProductURL))
		return
	}

	order := checkout.Order{
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    payload.Quantity,
		ProductURL:  product.URL,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Total:       product.Price * float64(payload.Quantity),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.checkout.Submit(ctx, order); err != nil {
		app.logger.Warnw("order submission failed", "product", product.URL, "error", err)
		writeJSONError(w, http.StatusBadGateway, app.bundle.T(getLangFromContext(r), "orderFailed"))
		return
	}

	reference := app.refs.Generate()

	// Notify the coach off the request path; the customer already has their
	// confirmation.
	if app.mailer != nil {
		go app.notifyOrder(reference, order)
	}

	resp := orderResponse{
		Reference: reference,
		Message:   app.bundle.T(getLangFromContext(r), "orderReceived"),
	}
	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) notifyOrder(reference string, order checkout.Order) {
	vars := struct {
		Username    string
		Reference   string
		ProductName string
		Quantity    int
		Total       float64
		Timestamp   string
		ProductURL  string
	}{
		Username:    app.config.mail.notifyName,
		Reference:   reference,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		Total:       order.Total,
		Timestamp:   order.Timestamp,
		ProductURL:  order.ProductURL,
	}

	status, err := app.mailer.Send(mailer.OrderNotificationTemplate, app.config.mail.notifyName, app.config.mail.notifyEmail, vars)
	if err != nil {
		app.logger.Errorw("order notification mail failed", "reference", reference, "error", err)
		return
	}
	app.logger.Infow("order notification sent", "reference", reference, "status", status)
}
