// File: game/game_actor.go
package game

import (
	"errors"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/utils"
	"github.com/rs/zerolog/log"
)

// GameActor owns the single Match. Every mutation of the match happens inside
// Receive; the ticker goroutine only posts GameTick and BroadcastTick.
type GameActor struct {
	cfg            utils.Config
	match          *Match
	gate           *TickGate
	keys           ClientKeys
	halted         error
	engine         *bollywood.Engine
	selfPID        *bollywood.PID
	broadcasterPID *bollywood.PID
	now            func() time.Time
	ticker         *time.Ticker
	broadcastTick  *time.Ticker
	stopTickerCh   chan struct{}
	autoTick       bool
}

// GameActorOption customises a GameActor at construction.
type GameActorOption func(*GameActor)

// WithClock replaces time.Now as the tick gate's clock.
func WithClock(now func() time.Time) GameActorOption {
	return func(a *GameActor) { a.now = now }
}

// WithoutTicker disables the internal ticker loop; GameTick and BroadcastTick
// must then be sent explicitly.
func WithoutTicker() GameActorOption {
	return func(a *GameActor) { a.autoTick = false }
}

// NewGameActorProducer creates a producer for the GameActor.
func NewGameActorProducer(engine *bollywood.Engine, cfg utils.Config, opts ...GameActorOption) bollywood.Producer {
	return func() bollywood.Actor {
		return newGameActor(engine, cfg, opts...)
	}
}

func newGameActor(engine *bollywood.Engine, cfg utils.Config, opts ...GameActorOption) *GameActor {
	a := &GameActor{
		cfg:          cfg,
		match:        NewMatch(cfg),
		keys:         ClientKeys{},
		engine:       engine,
		now:          time.Now,
		stopTickerCh: make(chan struct{}),
		autoTick:     true,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.gate = NewTickGate(cfg.MinTickInterval, a.now)
	return a
}

// Receive is the main message handler for the GameActor.
func (a *GameActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.broadcasterPID = a.engine.Spawn(bollywood.NewProps(NewBroadcasterProducer()))
		a.gate.Reset()
		if a.autoTick {
			a.ticker = time.NewTicker(a.cfg.GameTickPeriod)
			a.broadcastTick = time.NewTicker(a.cfg.BroadcastPeriod)
			go a.runTickerLoop(a.selfPID)
		}
		log.Info().Str("actor", a.selfPID.String()).Stringer("state", a.match.State).Msg("game actor started")

	case GameTick:
		a.handleGameTick()

	case BroadcastTick:
		a.broadcast("")

	case KeyEvent:
		if !Known(m.Key) {
			return
		}
		a.keys.Set(m.ClientID, m.Key, m.Down)

	case ResizeScreen:
		if a.match.Resize(m.Width, m.Height) {
			log.Debug().Int("width", m.Width).Int("height", m.Height).Msg("screen resized")
		}

	case Subscribe:
		if a.broadcasterPID == nil {
			return
		}
		a.engine.Send(a.broadcasterPID, AddSubscriber{ID: m.ID, Subscriber: m.Subscriber}, a.selfPID)
		a.engine.Send(a.broadcasterPID, BroadcastMessage{Target: m.ID, Payload: WelcomeMessage{MessageType: "welcome", ClientID: m.ID}}, a.selfPID)
		a.broadcast(m.ID)

	case Unsubscribe:
		a.keys.Release(m.ID)
		if a.broadcasterPID != nil {
			a.engine.Send(a.broadcasterPID, RemoveSubscriber{ID: m.ID}, a.selfPID)
		}

	case ResetMatch:
		a.resetMatch()

	case GetSnapshotRequest:
		ctx.Reply(a.snapshot())

	case bollywood.Stopping:
		a.stopTickers()
		if a.broadcasterPID != nil {
			a.engine.Stop(a.broadcasterPID)
		}
		log.Info().Str("actor", a.selfPID.String()).Uint64("blue", a.match.Score.Blue).Uint64("red", a.match.Score.Red).Msg("game actor stopping")

	case bollywood.Stopped:

	default:
		log.Warn().Str("actor", a.selfPID.String()).Type("message", m).Msg("game actor received unknown message")
	}
}

// handleGameTick runs the resolver when the tick gate opens. A direction
// invariant violation halts the match: later ticks are ignored.
func (a *GameActor) handleGameTick() {
	if a.halted != nil {
		return
	}
	multiplier, ok := a.gate.Poll()
	if !ok {
		return
	}

	ev, err := a.match.Tick(multiplier, a.keys)
	if err != nil {
		a.halted = err
		var invErr *InvariantError
		if errors.As(err, &invErr) {
			log.Error().Err(err).Str("side", invErr.Side.String()).Float64("multiplier", multiplier).Msg("match halted")
		} else {
			log.Error().Err(err).Msg("match halted")
		}
		a.broadcast("")
		return
	}

	if ev.Started {
		log.Info().Msg("round started")
	}
	if ev.Scorer != NoTeam {
		log.Info().
			Stringer("scorer", ev.Scorer).
			Uint64("blue", a.match.Score.Blue).
			Uint64("red", a.match.Score.Red).
			Msg("point scored")
	}
}

// resetMatch restarts play from the initial positions and lifts a halt.
func (a *GameActor) resetMatch() {
	wasHalted := a.halted != nil
	a.match.Reset()
	a.halted = nil
	a.gate.Reset()
	log.Info().Bool("wasHalted", wasHalted).Msg("match reset")
	a.broadcast("")
}

func (a *GameActor) snapshot() Snapshot {
	s := a.match.Snapshot()
	if a.halted != nil {
		s.Halted = a.halted.Error()
	}
	return s
}

// broadcast pushes the current state to one subscriber, or all when target is empty.
func (a *GameActor) broadcast(target string) {
	if a.broadcasterPID == nil {
		return
	}
	a.engine.Send(a.broadcasterPID, BroadcastMessage{Target: target, Payload: NewStateMessage(a.snapshot())}, a.selfPID)
}

// runTickerLoop sends GameTick and BroadcastTick messages to the actor's own
// mailbox until stopTickerCh is closed.
func (a *GameActor) runTickerLoop(self *bollywood.PID) {
	tickMsg := GameTick{}
	broadcastMsg := BroadcastTick{}
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-a.ticker.C:
			a.engine.Send(self, tickMsg, nil)
		case <-a.broadcastTick.C:
			a.engine.Send(self, broadcastMsg, nil)
		}
	}
}

func (a *GameActor) stopTickers() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	if a.broadcastTick != nil {
		a.broadcastTick.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}
