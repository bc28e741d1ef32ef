// Command pongclient is a terminal client for the pong server. Keys w/s move
// the left paddle and i/k the right one; r restarts a halted or finished
// round; q quits.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/render"
	"github.com/lguibr/duelpong/utils"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
	"golang.org/x/sys/unix"
)

const (
	defaultServerURL = "ws://localhost:3001/subscribe"
	releaseAfter     = 150 * time.Millisecond
)

// keyForByte maps a terminal byte to the key code it stands for.
func keyForByte(b byte) (int, bool) {
	switch b {
	case 'w', 'W':
		return utils.KeyCodeW, true
	case 's', 'S':
		return utils.KeyCodeS, true
	case 'i', 'I':
		return utils.KeyCodeUp, true
	case 'k', 'K':
		return utils.KeyCodeDown, true
	}
	return 0, false
}

// isResetByte reports whether b asks the server to restart the match.
func isResetByte(b byte) bool {
	return b == 'r' || b == 'R'
}

// keyHolder turns repeated terminal key presses into held-key events. A
// terminal reports no key release, so each key is released once no press
// has arrived for the release delay.
type keyHolder struct {
	mu     sync.Mutex
	timers map[int]*time.Timer
	delay  time.Duration
	send   func(game.ClientMessage)
}

func newKeyHolder(delay time.Duration, send func(game.ClientMessage)) *keyHolder {
	return &keyHolder{timers: make(map[int]*time.Timer), delay: delay, send: send}
}

func (h *keyHolder) Press(key int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, held := h.timers[key]; held {
		t.Reset(h.delay)
		return
	}
	h.send(game.ClientMessage{Key: key, Down: true})
	h.timers[key] = time.AfterFunc(h.delay, func() { h.release(key) })
}

func (h *keyHolder) release(key int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, held := h.timers[key]; !held {
		return
	}
	delete(h.timers, key)
	h.send(game.ClientMessage{Key: key, Down: false})
}

// ReleaseAll stops every pending timer and releases all held keys.
func (h *keyHolder) ReleaseAll() {
	h.mu.Lock()
	keys := make([]int, 0, len(h.timers))
	for key, t := range h.timers {
		t.Stop()
		keys = append(keys, key)
	}
	h.mu.Unlock()
	for _, key := range keys {
		h.release(key)
	}
}

func setRawMode(fileDescriptor uintptr) (*unix.Termios, error) {
	terminalSettings, err := unix.IoctlGetTermios(int(fileDescriptor), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	savedTerminalSettings := *terminalSettings
	terminalSettings.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	terminalSettings.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	terminalSettings.Cflag &^= unix.CSIZE | unix.PARENB
	terminalSettings.Cflag |= unix.CS8
	terminalSettings.Oflag |= unix.OPOST | unix.ONLCR

	if err := unix.IoctlSetTermios(int(fileDescriptor), unix.TCSETS, terminalSettings); err != nil {
		return nil, err
	}
	return &savedTerminalSettings, nil
}

// frameSize returns the grid size for rendering, leaving room for the
// score line.
func frameSize(fd int) (cols, rows int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row < 3 {
		return 80, 22
	}
	return int(ws.Col), int(ws.Row) - 2
}

func receiveLoop(conn *websocket.Conn, fd int) {
	for {
		var raw json.RawMessage
		if err := websocket.JSON.Receive(conn, &raw); err != nil {
			log.Error().Err(err).Msg("reading from server")
			return
		}
		var header game.MessageHeader
		if err := json.Unmarshal(raw, &header); err != nil || header.MessageType != "state" {
			continue
		}
		var msg game.StateMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Warn().Err(err).Msg("decoding state")
			continue
		}
		cols, rows := frameSize(fd)
		helpers.ClearScreen()
		fmt.Print(render.RenderANSI(msg.Snapshot, cols, rows))
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	serverURL := os.Getenv("PONG_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	conn, err := websocket.Dial(serverURL, "", "http://localhost/")
	if err != nil {
		log.Fatal().Err(err).Str("url", serverURL).Msg("connecting to server")
	}
	defer conn.Close()

	stdin := int(os.Stdin.Fd())
	savedTerminalSettings, err := setRawMode(os.Stdin.Fd())
	if err != nil {
		log.Fatal().Err(err).Msg("setting raw mode")
	}
	restore := func() { _ = unix.IoctlSetTermios(stdin, unix.TCSETS, savedTerminalSettings) }
	defer restore()

	var sendMu sync.Mutex
	keys := newKeyHolder(releaseAfter, func(m game.ClientMessage) {
		sendMu.Lock()
		defer sendMu.Unlock()
		if err := websocket.JSON.Send(conn, m); err != nil {
			log.Warn().Err(err).Int("key", m.Key).Msg("sending key event")
		}
	})

	go receiveLoop(conn, int(os.Stdout.Fd()))

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		keys.ReleaseAll()
		restore()
		os.Exit(0)
	}()

	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			log.Error().Err(err).Msg("reading stdin")
			return
		}
		switch buf[0] {
		case 'q', 'Q', 3: // 3 is Ctrl-C with ISIG disabled
			keys.ReleaseAll()
			return
		}
		if isResetByte(buf[0]) {
			sendMu.Lock()
			if err := websocket.JSON.Send(conn, game.ClientMessage{Reset: true}); err != nil {
				log.Warn().Err(err).Msg("sending reset")
			}
			sendMu.Unlock()
			continue
		}
		if key, ok := keyForByte(buf[0]); ok {
			keys.Press(key)
		}
	}
}
