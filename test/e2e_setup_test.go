// File: test/e2e_setup_test.go
package test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/server"
	"github.com/lguibr/duelpong/utils"
	"github.com/stretchr/testify/require"
)

// E2ESetupResult holds the results of the setup function.
type E2ESetupResult struct {
	Engine       *bollywood.Engine
	GameActorPID *bollywood.PID
	Server       *httptest.Server
	WsURL        string
	Origin       string
	Cfg          utils.Config
}

// SetupE2ETest starts an engine with a ticking GameActor behind a test server.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	engine := bollywood.NewEngine()
	gameActorPID := engine.Spawn(bollywood.NewProps(game.NewGameActorProducer(engine, cfg)))
	require.NotNil(t, gameActorPID, "GameActor PID should not be nil")

	s := httptest.NewServer(server.New(engine, gameActorPID, cfg))

	return E2ESetupResult{
		Engine:       engine,
		GameActorPID: gameActorPID,
		Server:       s,
		WsURL:        "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		Origin:       "http://localhost/",
		Cfg:          cfg,
	}
}

// TeardownE2ETest shuts down the engine and closes the server.
func TeardownE2ETest(t *testing.T, setupResult E2ESetupResult, shutdownTimeout time.Duration) {
	t.Helper()
	if setupResult.Server != nil {
		setupResult.Server.Close()
	}
	if setupResult.Engine != nil {
		setupResult.Engine.Shutdown(shutdownTimeout)
	}
}
