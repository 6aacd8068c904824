package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/identity"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/notify"
)

const (
	changeWriteWait    = 10 * time.Second
	changePingInterval = 30 * time.Second
)

// changeMessage is one change notification on the wire. It carries no
// entity payload; clients re-fetch the named collection.
type changeMessage struct {
	Collection string `json:"collection"`
}

// ChangeHub streams per-user collection change events over a websocket at
// /v1/changes. Every open tab holds one connection; a write from any of
// them reaches all the others through the bus.
type ChangeHub struct {
	logger   *logrus.Logger
	bus      *notify.Bus
	upgrader websocket.Upgrader
}

func NewChangeHub(logger *logrus.Logger, bus *notify.Bus) *ChangeHub {
	return &ChangeHub{
		logger: logger,
		bus:    bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Handler upgrades the request and relays the user's change events until
// the client disconnects.
func (h *ChangeHub) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	uid := identity.UserID(req.Header.Get(userHeader))
	if uid == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return errors.New("changes: no user identity")
	}
	if logData != nil {
		logData.AddData("userID", uid.String())
	}

	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	events, cancel := h.bus.Subscribe()
	defer cancel()

	// Drain client frames so pongs and close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(changePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.User != uid {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(changeWriteWait))
			if err := conn.WriteJSON(changeMessage{Collection: string(event.Collection)}); err != nil {
				h.logger.WithError(err).Debug("ChangeHub.Handler.write failed, dropping connection")
				return nil
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(changeWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}
