package main

import (
	"net/http"
)

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Import offers from Google Sheets
//	@Description	Queues a bulk offer import for the calling cook. Columns A-N, first row is the header.
//	@Tags			import
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateImportTaskRequest	true	"Import request"
//	@Success		202		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		503		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/offers/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	task, err := app.importService.CreateImportTask(r.Context(), getSession(r).UserID, req.SpreadsheetID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	response := map[string]string{
		"task_id": task.ID.Hex(),
		"status":  string(task.Status),
	}

	if err := app.jsonRespone(w, http.StatusAccepted, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Tags			import
//	@Produce		json
//	@Param			task_id	path		string	true	"Task ID"
//	@Success		200		{object}	domain.OfferImportTask
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		403		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/offers/import/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := objectIDParam(r, "task_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	task, err := app.importService.GetTaskStatus(r.Context(), taskID, getSession(r).UserID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
