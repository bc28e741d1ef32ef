// File: server/handlers.go
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/render"
	"github.com/lguibr/duelpong/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
)

const (
	readTimeout  = 90 * time.Second
	writeTimeout = 2 * time.Second

	defaultASCIICols = 80
	defaultASCIIRows = 24
	maxASCIISize     = 400
)

// wsSubscriber adapts a websocket connection to game.Subscriber.
type wsSubscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *wsSubscriber) Send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return websocket.JSON.Send(s.conn, v)
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// HandleGetState returns the current match snapshot by asking the GameActor.
func (s *Server) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, status, err := s.askSnapshot()
		if err != nil {
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

// HandleReset restarts play from the initial positions. It also clears a
// halted match.
func (s *Server) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.engine == nil || s.gameActorPID == nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "game actor unavailable"})
			return
		}
		s.engine.Send(s.gameActorPID, game.ResetMatch{}, nil)
		writeJSON(w, http.StatusAccepted, map[string]bool{"ok": true})
	}
}

// HandleGetASCII renders the current match as text. The grid size comes from
// the cols and rows query parameters.
func (s *Server) HandleGetASCII() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cols, err := sizeParam(r, "cols", defaultASCIICols)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rows, err := sizeParam(r, "rows", defaultASCIIRows)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		snap, status, err := s.askSnapshot()
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, render.RenderASCII(snap, cols, rows))
	}
}

// HandleSubscribe registers the websocket connection with the GameActor and
// forwards client input until the connection closes.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		clientID := uuid.NewString()
		logger := log.With().Str("client", clientID).Str("remote", ws.Request().RemoteAddr).Logger()
		defer func() {
			_ = ws.Close()
			logger.Info().Msg("subscriber disconnected")
		}()

		if s.engine == nil || s.gameActorPID == nil {
			logger.Error().Msg("no game actor, closing connection")
			return
		}

		logger.Info().Msg("subscriber connected")
		s.engine.Send(s.gameActorPID, game.Subscribe{ID: clientID, Subscriber: &wsSubscriber{conn: ws}}, nil)
		defer s.engine.Send(s.gameActorPID, game.Unsubscribe{ID: clientID}, nil)

		s.readLoop(clientID, ws)
	}
}

// readLoop decodes client messages and forwards them to the GameActor.
func (s *Server) readLoop(clientID string, conn *websocket.Conn) {
	for {
		var msg game.ClientMessage
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		if err := websocket.JSON.Receive(conn, &msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Debug().Err(err).Str("client", clientID).Msg("ignoring malformed client message")
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Str("client", clientID).Msg("read loop ending")
			}
			return
		}

		for _, out := range clientMessageToActor(clientID, msg) {
			s.engine.Send(s.gameActorPID, out, nil)
		}
	}
}

// clientMessageToActor translates one wire message into GameActor messages.
// A message may carry any mix of key event, resize and reset, or nothing usable.
func clientMessageToActor(clientID string, msg game.ClientMessage) []interface{} {
	var out []interface{}

	code := msg.Key
	if code == 0 && msg.Code != "" {
		code = utils.KeyCodeFromString(msg.Code)
	}
	if code != 0 {
		out = append(out, game.KeyEvent{ClientID: clientID, Key: game.Key(code), Down: msg.Down})
	}
	if msg.Width > 0 && msg.Height > 0 {
		out = append(out, game.ResizeScreen{Width: msg.Width, Height: msg.Height})
	}
	if msg.Reset {
		out = append(out, game.ResetMatch{})
	}
	return out
}

func (s *Server) askSnapshot() (game.Snapshot, int, error) {
	if s.engine == nil || s.gameActorPID == nil {
		return game.Snapshot{}, http.StatusServiceUnavailable, errors.New("game actor unavailable")
	}
	reply, err := s.engine.Ask(s.gameActorPID, game.GetSnapshotRequest{}, s.cfg.AskTimeout)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, bollywood.ErrAskTimeout) {
			status = http.StatusGatewayTimeout
		}
		log.Warn().Err(err).Msg("snapshot request failed")
		return game.Snapshot{}, status, err
	}
	snap, ok := reply.(game.Snapshot)
	if !ok {
		return game.Snapshot{}, http.StatusInternalServerError, errors.New("unexpected snapshot reply")
	}
	return snap, http.StatusOK, nil
}

func sizeParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxASCIISize {
		return 0, errors.New("invalid " + name + ": want 1.." + strconv.Itoa(maxASCIISize))
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("writing JSON response")
	}
}
