package rest

import (
	"errors"
	"net/http"

	"github.com/AayushiWani/TY-Miniproject/util/values"
)

// HandleWebSocket authenticates the handshake and hands the connection
// to the WebSocket manager. A connection that fails authentication is
// rejected before it can subscribe to anything.
func (api *API) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := requestToken(r)
	if token == "" {
		writeErrorResponse(w, errors.New(values.NotAuthorised), values.NotAuthorised, "not-authorized")
		return
	}

	claims, err := api.verifyToken(token)
	if err != nil {
		writeErrorResponse(w, err, values.NotAuthorised, "invalid-token")
		return
	}

	api.Deps.WebSocket.HandleConnections(w, r, claims.UserID)
}
