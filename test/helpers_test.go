// File: test/helpers_test.go
package test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/lguibr/duelpong/game"
	"golang.org/x/net/websocket"
)

// ReadWsJSONMessage reads a JSON message from the WebSocket with a timeout.
func ReadWsJSONMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration, v interface{}) error {
	t.Helper()
	if ws == nil {
		return errors.New("websocket connection is nil")
	}

	readDone := make(chan error, 1)
	go func() {
		if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			if errors.Is(err, net.ErrClosed) {
				readDone <- io.EOF
				return
			}
			readDone <- fmt.Errorf("failed to set read deadline: %w", err)
			return
		}
		err := websocket.JSON.Receive(ws, v)
		_ = ws.SetReadDeadline(time.Time{})
		readDone <- err
	}()

	select {
	case err := <-readDone:
		return err
	case <-time.After(timeout + 500*time.Millisecond):
		_ = ws.Close()
		return fmt.Errorf("websocket read timeout after %v (Receive call blocked)", timeout)
	}
}

// WaitForState reads messages until a state message satisfies cond or the
// timeout expires. Welcome messages are skipped.
func WaitForState(t *testing.T, ws *websocket.Conn, timeout time.Duration, cond func(game.Snapshot) bool) (game.Snapshot, error) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		var raw json.RawMessage
		if err := ReadWsJSONMessage(t, ws, time.Until(deadline), &raw); err != nil {
			return game.Snapshot{}, err
		}
		var header game.MessageHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return game.Snapshot{}, err
		}
		if header.MessageType != "state" {
			continue
		}
		var msg game.StateMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			return game.Snapshot{}, err
		}
		if cond(msg.Snapshot) {
			return msg.Snapshot, nil
		}
	}
	return game.Snapshot{}, fmt.Errorf("no matching state within %v", timeout)
}
