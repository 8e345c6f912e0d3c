package main

import (
	"net/http"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/service"
)

type CreateCookRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	StoreName   string `json:"store_name" validate:"required,max=100"`
	CountryCode string `json:"country_code" validate:"omitempty,len=2,alpha"`
}

// createCookHandler godoc
//
//	@Summary		Register cook
//	@Description	Creates the cook profile of the calling user. The country code picks the timezone cutoff rules run in.
//	@Tags			cooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateCookRequest	true	"Cook profile"
//	@Success		201		{object}	domain.Cook
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/cooks [post]
func (app *application) createCookHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateCookRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cook, err := app.cookService.CreateCook(r.Context(), getSession(r).UserID, service.CreateCookInput{
		Name:        req.Name,
		StoreName:   req.StoreName,
		CountryCode: req.CountryCode,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, cook); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCookHandler godoc
//
//	@Summary		Get cook
//	@Tags			cooks
//	@Produce		json
//	@Param			cook_id	path		string	true	"Cook ID"
//	@Success		200		{object}	domain.Cook
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cooks/{cook_id} [get]
func (app *application) getCookHandler(w http.ResponseWriter, r *http.Request) {
	cookID, err := objectIDParam(r, "cook_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cook, err := app.cookService.GetCook(r.Context(), cookID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, cook); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCookOffersHandler godoc
//
//	@Summary		List cook offers
//	@Description	Offers of a cook with a prep summary and an advisory ready time for an order placed now
//	@Tags			cooks
//	@Produce		json
//	@Param			cook_id	path		string	true	"Cook ID"
//	@Param			lang	query		string	false	"Display language (en, ar)"
//	@Success		200		{array}		service.OfferListing
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/cooks/{cook_id}/offers [get]
func (app *application) listCookOffersHandler(w http.ResponseWriter, r *http.Request) {
	cookID, err := objectIDParam(r, "cook_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lang := prepready.ParseLanguage(r.URL.Query().Get("lang"))

	offers, err := app.offerService.ListCookOffers(r.Context(), cookID, lang)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, offers); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCookNotificationsHandler godoc
//
//	@Summary		List cook notifications
//	@Tags			cooks
//	@Produce		json
//	@Param			cook_id	path		string	true	"Cook ID"
//	@Param			limit	query		int		false	"Max items (1-100)"
//	@Success		200		{array}		domain.Notification
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/cooks/{cook_id}/notifications [get]
func (app *application) listCookNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	cookID, err := objectIDParam(r, "cook_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit, err := limitParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	notifications, err := app.notificationService.ListCookNotifications(r.Context(), cookID, getSession(r).UserID, limit)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, notifications); err != nil {
		app.internalServerError(w, r, err)
	}
}
