package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"worldinsight/pkg/document"
)

// DocumentHandler serves one collection. Every method performs a single
// store call and returns the store's result as is.
type DocumentHandler struct {
	Service    document.ServiceDocument
	Logger     *slog.Logger
	Collection string
}

func NewDocumentHandler(service document.ServiceDocument, logger *slog.Logger, collection string) *DocumentHandler {
	return &DocumentHandler{
		Service:    service,
		Logger:     logger.With("collection", collection),
		Collection: collection,
	}
}

func (h *DocumentHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Service.GetAll(r.Context())
	if err != nil {
		h.fail(w, "get all", err)
		return
	}
	writeJSON(w, h.Logger, docs)
}

// GetByID writes null when nothing matches.
func (h *DocumentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Service.GetByID(r.Context(), mux.Vars(r)[muxVarID])
	if err != nil {
		h.fail(w, "get by id", err)
		return
	}
	writeJSON(w, h.Logger, doc)
}

// GetByField lists documents whose field equals the muxVar path parameter.
func (h *DocumentHandler) GetByField(field, muxVar string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, ok := mux.Vars(r)[muxVar]
		if !ok {
			writeError(w, http.StatusBadRequest, typeMessage, "invalid "+muxVar)
			return
		}

		docs, err := h.Service.GetByField(r.Context(), field, value)
		if err != nil {
			h.fail(w, "get by "+field, err)
			return
		}
		writeJSON(w, h.Logger, docs)
	}
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	doc, err := document.Decode(r.Body)
	if err != nil {
		h.fail(w, "create", err)
		return
	}

	res, err := h.Service.Create(r.Context(), doc)
	if err != nil {
		h.fail(w, "create", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("document created", "id", res.InsertedID)
	}
}

func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id := mux.Vars(r)[muxVarID]
	if _, err := document.ParseID(id); err != nil {
		h.fail(w, "update", err)
		return
	}

	fields, err := document.Decode(r.Body)
	if err == nil && len(fields) == 0 {
		err = document.ErrInvalidBody
	}
	if err != nil {
		h.fail(w, "update", err)
		return
	}

	res, err := h.Service.Update(r.Context(), id, fields)
	if err != nil {
		h.fail(w, "update", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("document updated", "id", id, "upserted", res.UpsertedCount)
	}
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)[muxVarID]

	res, err := h.Service.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, "delete", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("document deleted", "id", id, "count", res.DeletedCount)
	}
}

// fail maps client mistakes to 400 and everything else to a generic 500.
func (h *DocumentHandler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, document.ErrInvalidID):
		writeError(w, http.StatusBadRequest, typeMessage, "invalid id")
	case errors.Is(err, document.ErrInvalidBody):
		writeError(w, http.StatusBadRequest, typeMessage, "invalid JSON payload")
	default:
		h.Logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, typeMessage, "internal server error")
	}
}
