package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-messenger/internal/app"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/internal/service"
	"github.com/MKhiriev/go-messenger/internal/store"
	"github.com/MKhiriev/go-messenger/internal/utils"
)

type errorReply struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorReply{
	service.ErrEmptyName:                {http.StatusBadRequest, app.MsgCouldNotAddUser},
	service.ErrEmptyText:                {http.StatusBadRequest, app.MsgCouldNotAddMessage},
	service.ErrSenderOrReceiverNotFound: {http.StatusBadRequest, app.MsgSenderOrReceiverNotFound},
	service.ErrInvalidDataProvided:      {http.StatusBadRequest, app.MsgCouldNotUpdateMessage},

	store.ErrUserNotFound:    {http.StatusBadRequest, app.MsgSenderOrReceiverNotFound},
	store.ErrMessageNotFound: {http.StatusNotFound, app.MsgMessageNotFound},
}

func replyFromError(err error) errorReply {
	for target, reply := range errorStatusMap {
		if errors.Is(err, target) {
			return reply
		}
	}
	return errorReply{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeServiceError logs err at a level matching its status and writes the
// mapped error body.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	reply := replyFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if reply.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", reply.status).Msg(reply.message)

	utils.WriteError(w, reply.message, reply.status)
}
