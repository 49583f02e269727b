package httpx

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chorebank/chorebank/internal/domain/changefeed"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsPingPeriod   = 30 * time.Second
)

// ChangeHandlers exposes table change notifications over long-poll and
// websocket so clients know when to refetch.
type ChangeHandlers struct {
	Notifier changefeed.Notifier
	// WaitSeconds caps how long a single long-poll request blocks.
	WaitSeconds int
	Logger      *slog.Logger
}

func (h *ChangeHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// LongPoll handles GET /api/changes/{table}?wait=<seconds>. It blocks until
// the table changes or the wait window passes, answering 200 or 204.
func (h *ChangeHandlers) LongPoll(w http.ResponseWriter, r *http.Request) {
	table := changefeed.Table(r.PathValue("table"))
	if !table.Valid() {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("unknown table")})
		return
	}

	wait := parseIntQuery(r, "wait", h.WaitSeconds)
	if wait < 1 {
		wait = 1
	}
	if wait > h.WaitSeconds {
		wait = h.WaitSeconds
	}

	unsub, ch := h.Notifier.Subscribe(table)
	defer unsub()

	timer := time.NewTimer(time.Duration(wait) * time.Second)
	defer timer.Stop()

	select {
	case <-r.Context().Done():
		w.WriteHeader(http.StatusNoContent)
	case <-timer.C:
		w.WriteHeader(http.StatusNoContent)
	case _, ok := <-ch:
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]any{"table": table, "changed": true})
	}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Session auth already gates this endpoint and cookies are SameSite
	// Lax, so cross-origin upgrades carry no session.
	CheckOrigin: func(*http.Request) bool { return true },
}

type changeEvent struct {
	Type  string           `json:"type"`
	Table changefeed.Table `json:"table"`
}

// Realtime handles GET /api/realtime. It upgrades to a websocket and pushes
// one message per changed table until the client goes away.
func (h *ChangeHandlers) Realtime(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the error response.
		return
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	events := make(chan changefeed.Table, 8)
	done := make(chan struct{})

	for _, table := range changefeed.Tables() {
		unsub, ch := h.Notifier.Subscribe(table)
		defer unsub()
		go func(t changefeed.Table, signals <-chan struct{}) {
			for {
				select {
				case <-done:
					return
				case _, ok := <-signals:
					if !ok {
						return
					}
					select {
					case events <- t:
					case <-done:
						return
					}
				}
			}
		}(table, ch)
	}

	// Reader loop: we never expect client messages, but reading is what
	// surfaces close frames and connection loss.
	go func() {
		defer close(done)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case table := <-events:
			if writeErr := h.writeEvent(conn, table); writeErr != nil {
				h.logger().Debug("realtime write failed", "error", writeErr)
				return
			}
		case <-ping.C:
			if pingErr := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteTimeout)); pingErr != nil {
				return
			}
		}
	}
}

func (h *ChangeHandlers) writeEvent(conn *websocket.Conn, table changefeed.Table) error {
	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(changeEvent{Type: "change", Table: table})
}
