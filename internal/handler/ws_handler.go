package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/medikit/dispenser-backend/internal/ws"
	"github.com/rs/zerolog"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams newly ingested transactions to dashboard clients.
type WSHandler struct {
	feed     *ws.Feed
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(feed *ws.Feed, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		feed:     feed,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// TransacaoStream godoc
// WS /ws/v1/transacoes/stream
// Upgrades to WebSocket and forwards each transaction published on the
// Redis feed channel, in the same shape as the GET /transacao items.
// Public like the rest of the kiosk surface.
func (h *WSHandler) TransacaoStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	pubsub := h.feed.Subscribe(c.Request.Context())
	defer pubsub.Close()

	h.log.Info().Str("remote", c.ClientIP()).Msg("Feed client connected")

	// Reader goroutine: drains client frames and signals close. The feed
	// is one-way, so anything received beyond close/ping is ignored.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ch := pubsub.Channel()
	for {
		select {
		case <-done:
			h.log.Debug().Msg("Feed client disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				ws.WriteError(conn, "feed encerrado")
				return
			}
			if err := ws.WriteMessage(conn, []byte(msg.Payload)); err != nil {
				h.log.Debug().Err(err).Msg("Feed write failed, dropping client")
				return
			}
		}
	}
}
