package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/example/storefront-state/internal/domain"
	"github.com/example/storefront-state/internal/logging"
	"github.com/example/storefront-state/internal/store"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// actionFrame описывает действие в том виде, в каком оно уходит в сокет.
type actionFrame struct {
	ID           string     `json:"id"`
	Type         store.Kind `json:"type"`
	Payload      any        `json:"payload,omitempty"`
	DispatchedAt time.Time  `json:"dispatchedAt"`
}

func (s *Server) handleUserErrors(w http.ResponseWriter, r *http.Request) {
	pump(w, r, s.deps.Account.UserError(), func(e *domain.HttpError) any { return e })
}

func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	pump(w, r, s.deps.Actions, func(env store.Envelope) any {
		return actionFrame{ID: env.ID.String(), Type: env.Action.Kind(), Payload: env.Action, DispatchedAt: env.DispatchedAt}
	})
}

// pump пересылает значения потока в сокет, пока клиент не отключится.
func pump[V any](w http.ResponseWriter, r *http.Request, src store.Stream[V], frame func(V) any) {
	log := logging.NewLogger("httpapi")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// входящие сообщения не нужны; чтение нужно только чтобы заметить закрытие
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for v := range src.Subscribe(ctx) {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(frame(v)); err != nil {
			log.WithError(err).Debug("websocket write failed")
			return
		}
	}
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
}
