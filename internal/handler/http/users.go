package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/utils"
	"github.com/MKhiriev/go-messenger/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgCouldNotAddUser, http.StatusBadRequest)
		return
	}

	user, err := h.services.MessengerService.CreateUser(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "*Handler.createUser", err)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user created")
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.MessengerService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.listUsers", err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
