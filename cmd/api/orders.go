package main

import (
	"net/http"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaceOrderRequest has no ready time fields; unknown fields are rejected.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	// cook id -> separate | combined
	TimingPreferences map[string]string `json:"timing_preferences" validate:"omitempty,dive,oneof=separate combined"`
}

type OrderItemRequest struct {
	OfferID  string `json:"offer_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// placeOrderHandler godoc
//
//	@Summary		Place order
//	@Description	Creates an order. Every item's ready time is computed on receipt in its cook's timezone and stored with the order.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlaceOrderRequest	true	"Cart"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders [post]
func (app *application) placeOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	in := service.PlaceOrderInput{
		Items:             make([]service.CartItem, 0, len(req.Items)),
		TimingPreferences: make(map[primitive.ObjectID]string, len(req.TimingPreferences)),
	}
	for _, item := range req.Items {
		offerID, err := primitive.ObjectIDFromHex(item.OfferID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		in.Items = append(in.Items, service.CartItem{OfferID: offerID, Quantity: item.Quantity})
	}
	for rawCookID, pref := range req.TimingPreferences {
		cookID, err := primitive.ObjectIDFromHex(rawCookID)
		if err != nil {
			app.badRequestResponse(w, r, ErrInvalidID)
			return
		}
		in.TimingPreferences[cookID] = pref
	}

	order, err := app.orderService.PlaceOrder(r.Context(), getSession(r).UserID, in)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID, err := objectIDParam(r, "order_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.GetOrder(r.Context(), orderID, getSession(r).UserID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
