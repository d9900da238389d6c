package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessengerService.ListMessages(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listMessages", err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMessage").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgCouldNotAddMessage, http.StatusBadRequest)
		return
	}

	msg, err := h.services.MessengerService.SendMessage(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.sendMessage", err)
		return
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) listInbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(w, r, app.MsgInvalidUserID)
	if !ok {
		return
	}

	messages, err := h.services.MessengerService.ListInbox(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "*Handler.listInbox", err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := idParam(w, r, app.MsgInvalidMessageID)
	if !ok {
		return
	}

	var req models.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateMessage").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgCouldNotUpdateMessage, http.StatusBadRequest)
		return
	}
	req.ID = messageID

	msg, err := h.services.MessengerService.UpdateMessage(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.updateMessage", err)
		return
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) markRead(w http.ResponseWriter, r *http.Request) {
	messageID, ok := idParam(w, r, app.MsgInvalidMessageID)
	if !ok {
		return
	}

	msg, err := h.services.MessengerService.MarkRead(r.Context(), messageID)
	if err != nil {
		writeServiceError(w, r, "*Handler.markRead", err)
		return
	}

	utils.WriteJSON(w, msg, http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := idParam(w, r, app.MsgInvalidMessageID)
	if !ok {
		return
	}

	if err := h.services.MessengerService.DeleteMessage(r.Context(), messageID); err != nil {
		writeServiceError(w, r, "*Handler.deleteMessage", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// idParam parses the {id} URL parameter. On failure it writes a 400 with
// message and reports false.
func idParam(w http.ResponseWriter, r *http.Request, message string) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.FromRequest(r).Debug().Str("id", raw).Msg(message)
		utils.WriteError(w, message, http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
