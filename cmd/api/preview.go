package main

import (
	"errors"
	"net/http"

	"github.com/AhmedElbedeawy/marketplace2-sub001/internal/prepready"
)

type ReadyTimePreviewRequest struct {
	Config      prepready.Config `json:"config"`
	CountryCode string           `json:"country_code" validate:"omitempty,max=2"`
	Lang        string           `json:"lang" validate:"omitempty,oneof=en ar"`
}

type ReadyTimePreviewResponse struct {
	prepready.Preview
	Summary string   `json:"summary"`
	Errors  []string `json:"errors,omitempty"`
}

// readyTimePreviewHandler godoc
//
//	@Summary		Preview a prep config
//	@Description	Evaluates an unsaved prep config for an order placed now. Invalid configs return the placeholder text and the list of problems.
//	@Tags			ready-time
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReadyTimePreviewRequest	true	"Config to preview"
//	@Success		200		{object}	ReadyTimePreviewResponse
//	@Failure		400		{object}	map[string]string
//	@Router			/ready-time/preview [post]
func (app *application) readyTimePreviewHandler(w http.ResponseWriter, r *http.Request) {
	var req ReadyTimePreviewRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lang := prepready.ParseLanguage(req.Lang)

	response := ReadyTimePreviewResponse{
		Preview: app.offerService.PreviewConfig(req.Config, req.CountryCode, lang),
		Summary: prepready.Describe(req.Config, lang),
		Errors:  validationMessages(prepready.Validate(req.Config)),
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// validationMessages flattens a joined validation error.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		messages := []string{}
		for _, e := range joined.Unwrap() {
			messages = append(messages, e.Error())
		}
		return messages
	}

	return []string{err.Error()}
}
