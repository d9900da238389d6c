package http

import (
	"net/http"

	"github.com/MKhiriev/go-messenger/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	health, err := h.services.MessengerService.Health(r.Context())
	if err != nil {
		writeServiceError(w, r, "*Handler.health", err)
		return
	}

	utils.WriteJSON(w, health, http.StatusOK)
}
