package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	props   *Props
	mailbox chan *messageEnvelope
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues a message without blocking. A full mailbox drops it.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}

	select {
	case p.mailbox <- envelope:
		return true
	default:
		log.Warn().Str("actor", p.pid.ID).Str("message", fmt.Sprintf("%T", envelope.Message)).Msg("mailbox full, dropping message")
		return false
	}
}

// signalStop closes stopCh once.
func (p *process) signalStop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

func (p *process) run() {
	stoppingInvoked := false

	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			if !stoppingInvoked {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("actor", p.pid.ID).Interface("panic", r).Str("stack", string(debug.Stack())).Msg("actor crashed")
			p.signalStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("bollywood: producer for %s returned nil actor", p.pid.ID))
	}
	p.invokeReceive(&messageEnvelope{Message: Started{}})

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) && !stoppingInvoked {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
				stoppingInvoked = true
			}
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Started, Stopped:
				// Delivered by the run loop itself, never through the mailbox.
				continue
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
					stoppingInvoked = true
				}
				p.signalStop()
				continue
			}

			if p.stopped.Load() {
				continue
			}
			p.invokeReceive(envelope)
		}
	}
}

// invokeReceive calls the actor's Receive, recovering from panics inside it
// so a single bad message does not kill the actor.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		replyTo: envelope.replyTo,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("actor", p.pid.ID).
				Str("message", fmt.Sprintf("%T", envelope.Message)).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("actor panicked during Receive")
		}
	}()
	p.actor.Receive(ctx)
}
