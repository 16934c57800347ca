package comment

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"LinkUp/internal/realtime"
)

const (
	writeTimeout = 10 * time.Second

	// pingInterval keeps intermediaries from dropping idle connections
	// while a post has no new comments
	pingInterval = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The mobile client connects from a different origin
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SubscribeHandler upgrades post-detail viewers to a websocket that
// streams newly created comments on that post.
type SubscribeHandler struct {
	broker realtime.Broker
}

// NewSubscribeHandler creates a new comment subscription handler
func NewSubscribeHandler(broker realtime.Broker) *SubscribeHandler {
	return &SubscribeHandler{broker: broker}
}

// HandleSubscribe streams each new comment on the post as one JSON
// message. The subscription lives until the client disconnects; a
// client may receive a comment it already fetched in the initial post
// read and must de-duplicate by id.
// GET /posts/{postId}/comments/subscribe
func (h *SubscribeHandler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")

	sub, err := h.broker.Subscribe(postID)
	if err != nil {
		log.Printf("comment subscribe failed: post=%s err=%v", postID, err)
		http.Error(w, "Could not subscribe", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		sub.Close()
		return
	}

	go h.stream(conn, sub, postID)

	// Drain client frames so close/ping-pong control messages are
	// processed; any read error means the client went away
	go func() {
		defer sub.Close()
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// stream writes broker payloads and keepalive pings until the
// subscription closes
func (h *SubscribeHandler) stream(conn *websocket.Conn, sub realtime.Subscription, postID string) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case payload, ok := <-sub.C():
			if !ok {
				// Subscription torn down: say goodbye and stop
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeTimeout))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Printf("comment push write failed: post=%s err=%v", postID, err)
				sub.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				sub.Close()
				return
			}
		}
	}
}
