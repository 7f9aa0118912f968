package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"

	"github.com/parcelops/dispatch/pkg/broadcast"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// WatchAssignmentsHandler upgrades the connection and streams every
// assignment event as a JSON text frame until the client goes away.
func (a *API) WatchAssignmentsHandler(w http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		level.Error(a.logger).Log("msg", "websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	level.Info(a.logger).Log("msg", "websocket client connected", "remote", conn.RemoteAddr())

	ctx, cancel := context.WithCancel(req.Context())
	defer cancel()

	// drain incoming frames, the read error on disconnect ends the stream
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sub := a.reg.Subscribe()
	for {
		assignment, err := sub.Recv(ctx)
		if err != nil {
			var lag broadcast.ErrLagged
			if errors.As(err, &lag) {
				level.Warn(a.logger).Log("msg", "websocket subscriber lagged, events dropped", "count", lag.Count)
				continue
			}
			break
		}

		if err := conn.WriteJSON(assignment); err != nil {
			break
		}
	}

	level.Info(a.logger).Log("msg", "websocket client disconnected", "remote", conn.RemoteAddr())
}
