// File: test/e2e_test.go
package test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestE2E_WelcomeThenState(t *testing.T) {
	setup := SetupE2ETest(t, utils.DefaultConfig())
	defer TeardownE2ETest(t, setup, 2*time.Second)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer ws.Close()

	var welcome game.WelcomeMessage
	require.NoError(t, ReadWsJSONMessage(t, ws, 2*time.Second, &welcome))
	assert.Equal(t, "welcome", welcome.MessageType)
	assert.NotEmpty(t, welcome.ClientID)

	var state game.StateMessage
	require.NoError(t, ReadWsJSONMessage(t, ws, 2*time.Second, &state))
	assert.Equal(t, "state", state.MessageType)
	assert.Equal(t, game.Stopped(), state.Snapshot.State)
	assert.Equal(t, 640.0, state.Snapshot.Ball.X)
	assert.Equal(t, game.Score{}, state.Snapshot.Score)
}

func TestE2E_KeyPressStartsPlayForAllSubscribers(t *testing.T) {
	setup := SetupE2ETest(t, utils.DefaultConfig())
	defer TeardownE2ETest(t, setup, 2*time.Second)

	player, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer player.Close()
	watcher, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, websocket.JSON.Send(player, game.ClientMessage{Code: "KeyW", Down: true}))

	running := func(s game.Snapshot) bool { return s.State.IsRunning() }
	snap, err := WaitForState(t, watcher, 3*time.Second, running)
	require.NoError(t, err)
	assert.Less(t, snap.Paddles[game.LeftSide].Y, 355.0, "left paddle moved up")
	assert.Equal(t, 355.0, snap.Paddles[game.RightSide].Y)

	require.NoError(t, websocket.JSON.Send(player, game.ClientMessage{Code: "KeyW", Down: false}))
}

func TestE2E_DisconnectReleasesKeys(t *testing.T) {
	setup := SetupE2ETest(t, utils.DefaultConfig())
	defer TeardownE2ETest(t, setup, 2*time.Second)

	player, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	watcher, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, websocket.JSON.Send(player, game.ClientMessage{Key: utils.KeyCodeDown, Down: true}))
	_, err = WaitForState(t, watcher, 3*time.Second, func(s game.Snapshot) bool {
		return s.Paddles[game.RightSide].Y > 355
	})
	require.NoError(t, err)
	require.NoError(t, player.Close())

	// Once the release lands the paddle stops moving.
	var last float64
	stable := 0
	_, err = WaitForState(t, watcher, 3*time.Second, func(s game.Snapshot) bool {
		y := s.Paddles[game.RightSide].Y
		if y == last {
			stable++
		} else {
			stable = 0
		}
		last = y
		return stable >= 5
	})
	require.NoError(t, err)
}

func TestE2E_ResizeOverWebsocket(t *testing.T) {
	setup := SetupE2ETest(t, utils.DefaultConfig())
	defer TeardownE2ETest(t, setup, 2*time.Second)

	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, websocket.JSON.Send(ws, game.ClientMessage{Width: 1920, Height: 1080}))
	snap, err := WaitForState(t, ws, 3*time.Second, func(s game.Snapshot) bool { return s.Screen.Width == 1920 })
	require.NoError(t, err)
	assert.Equal(t, 1080, snap.Screen.Height)
	assert.Equal(t, 1280, snap.Screen.BaseWidth)
}

func TestE2E_StateEndpointMatchesBroadcast(t *testing.T) {
	setup := SetupE2ETest(t, utils.DefaultConfig())
	defer TeardownE2ETest(t, setup, 2*time.Second)

	resp, err := http.Get(setup.Server.URL + "/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var snap game.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, game.Stopped(), snap.State)
	assert.Equal(t, [2]game.Paddle{
		{X: 10, Y: 355, Width: 5, Height: 50},
		{X: 1270, Y: 355, Width: 5, Height: 50},
	}, snap.Paddles)
}
