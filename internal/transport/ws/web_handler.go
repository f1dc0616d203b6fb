package ws

import (
	"fmt"
	"net/http"
	"slices"

	"herald/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WebHandler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	log      logger.Logger

	secret string
}

// NewWebHandler accepts any client when secret is empty. Otherwise a token
// has to be presented in the access_token cookie or the token query
// parameter, and its sub claim becomes the client ID.
func NewWebHandler(hub *Hub, log logger.Logger, secret string, allowedOrigins []string) *WebHandler {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			if !slices.Contains(allowedOrigins, origin) {
				log.Warn("ws auth: origin rejected", "origin", origin)
				return false
			}

			return true
		},
	}

	return &WebHandler{
		hub:      hub,
		upgrader: upgrader,
		log:      log,

		secret: secret,
	}
}

func (h *WebHandler) Serve(w http.ResponseWriter, r *http.Request) {
	clientID, err := h.authenticate(r)
	if err != nil {
		h.log.Warn("ws auth: no valid credentials", "error", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("ws auth: upgrade failed", "error", err)
		return
	}

	c := NewClient(h.hub, conn, h.log, clientID)
	if !h.hub.enqueueRegister(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (h *WebHandler) authenticate(r *http.Request) (string, error) {
	if h.secret == "" {
		return uuid.NewString(), nil
	}

	tokenString := r.URL.Query().Get("token")
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		tokenString = cookie.Value
	}
	if tokenString == "" {
		return "", ErrMissingToken
	}

	claims, err := ValidateToken(tokenString, h.secret)
	if err != nil {
		return "", err
	}

	sub, ok := claims["sub"]
	if !ok || sub == nil {
		return "", fmt.Errorf("%w: missing sub claim", ErrUnauthorized)
	}

	return fmt.Sprintf("%v", sub), nil
}
