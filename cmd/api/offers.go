package main

import (
	"net/http"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/domain"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/service"
)

type CreateOfferRequest struct {
	AdminDishID     string             `json:"admin_dish_id" validate:"required,max=64"`
	Name            string             `json:"name" validate:"required,max=200"`
	Price           float64            `json:"price" validate:"gte=0"`
	Stock           int                `json:"stock" validate:"gte=0"`
	PortionSize     string             `json:"portion_size" validate:"required,oneof=single small medium large family"`
	PrepReadyConfig *prepready.Config  `json:"prep_ready_config"`
	Fulfillment     domain.Fulfillment `json:"fulfillment"`
	DeliveryFee     float64            `json:"delivery_fee" validate:"gte=0"`
}

type UpdateOfferStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available not_available deleted"`
	Reason string `json:"reason" validate:"max=500"`
}

// createOfferHandler godoc
//
//	@Summary		Create dish offer
//	@Description	Creates an offer for the calling cook. A missing prep config defaults to fixed 45 minutes.
//	@Tags			offers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOfferRequest	true	"Offer"
//	@Success		201		{object}	domain.DishOffer
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		422		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/offers [post]
func (app *application) createOfferHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	offer, err := app.offerService.CreateOffer(r.Context(), getSession(r).UserID, service.CreateOfferInput{
		AdminDishID:     req.AdminDishID,
		Name:            req.Name,
		Price:           req.Price,
		Stock:           req.Stock,
		PortionSize:     req.PortionSize,
		PrepReadyConfig: req.PrepReadyConfig,
		Fulfillment:     req.Fulfillment,
		DeliveryFee:     req.DeliveryFee,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, offer); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOfferHandler godoc
//
//	@Summary		Get dish offer
//	@Tags			offers
//	@Produce		json
//	@Param			offer_id	path		string	true	"Offer ID"
//	@Success		200			{object}	domain.DishOffer
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/offers/{offer_id} [get]
func (app *application) getOfferHandler(w http.ResponseWriter, r *http.Request) {
	offerID, err := objectIDParam(r, "offer_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	offer, err := app.offerService.GetOffer(r.Context(), offerID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, offer); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOfferReadyTimeHandler godoc
//
//	@Summary		Preview offer ready time
//	@Description	Advisory ready time for an order placed now. The order endpoint recomputes it on receipt.
//	@Tags			offers
//	@Produce		json
//	@Param			offer_id	path		string	true	"Offer ID"
//	@Param			lang		query		string	false	"Display language (en, ar)"
//	@Success		200			{object}	prepready.Preview
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/offers/{offer_id}/ready-time [get]
func (app *application) getOfferReadyTimeHandler(w http.ResponseWriter, r *http.Request) {
	offerID, err := objectIDParam(r, "offer_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lang := prepready.ParseLanguage(r.URL.Query().Get("lang"))

	preview, err := app.offerService.PreviewReadyTime(r.Context(), offerID, lang)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, preview); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOfferStatusHandler godoc
//
//	@Summary		Update offer status
//	@Description	Queues a status change. The audit record is written when it is applied.
//	@Tags			offers
//	@Accept			json
//	@Produce		json
//	@Param			offer_id	path		string						true	"Offer ID"
//	@Param			request		body		UpdateOfferStatusRequest	true	"Status update request"
//	@Success		202			{object}	map[string]interface{}
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/offers/{offer_id}/status [patch]
func (app *application) updateOfferStatusHandler(w http.ResponseWriter, r *http.Request) {
	offerID, err := objectIDParam(r, "offer_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var req UpdateOfferStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.offerService.UpdateOfferStatus(r.Context(), offerID, req.Status, req.Reason, getSession(r).UserID); err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Status update queued",
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOfferAuditHandler godoc
//
//	@Summary		Get offer status audit
//	@Tags			offers
//	@Produce		json
//	@Param			offer_id	path		string	true	"Offer ID"
//	@Param			limit		query		int		false	"Max items (1-100)"
//	@Success		200			{array}		domain.OfferStatusAudit
//	@Failure		400			{object}	map[string]string
//	@Failure		401			{object}	map[string]string
//	@Failure		403			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/offers/{offer_id}/audit [get]
func (app *application) getOfferAuditHandler(w http.ResponseWriter, r *http.Request) {
	offerID, err := objectIDParam(r, "offer_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit, err := limitParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	audits, err := app.offerService.GetOfferAudit(r.Context(), offerID, getSession(r).UserID, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, audits); err != nil {
		app.internalServerError(w, r, err)
	}
}
