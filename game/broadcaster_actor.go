// File: game/broadcaster_actor.go
package game

import (
	"github.com/lguibr/duelpong/bollywood"
	"github.com/rs/zerolog/log"
)

// BroadcasterActor owns the subscriber set and performs the writes, so a slow
// subscriber never stalls the GameActor's tick loop.
type BroadcasterActor struct {
	subscribers map[string]Subscriber
	selfPID     *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{
			subscribers: make(map[string]Subscriber),
		}
	}
}

// Receive handles messages for the BroadcasterActor.
func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:

	case AddSubscriber:
		if msg.Subscriber == nil || msg.ID == "" {
			return
		}
		a.subscribers[msg.ID] = msg.Subscriber
		log.Debug().Str("actor", a.selfPID.String()).Str("client", msg.ID).Int("subscribers", len(a.subscribers)).Msg("subscriber added")

	case RemoveSubscriber:
		if _, ok := a.subscribers[msg.ID]; ok {
			delete(a.subscribers, msg.ID)
			log.Debug().Str("actor", a.selfPID.String()).Str("client", msg.ID).Int("subscribers", len(a.subscribers)).Msg("subscriber removed")
		}

	case BroadcastMessage:
		if msg.Target != "" {
			if sub, ok := a.subscribers[msg.Target]; ok {
				a.send(msg.Target, sub, msg.Payload)
			}
			return
		}
		for id, sub := range a.subscribers {
			a.send(id, sub, msg.Payload)
		}

	case GetSubscriberCountRequest:
		ctx.Reply(len(a.subscribers))

	case bollywood.Stopping:
		a.subscribers = make(map[string]Subscriber)

	case bollywood.Stopped:

	default:
		log.Warn().Str("actor", a.selfPID.String()).Type("message", msg).Msg("broadcaster received unknown message")
	}
}

// send writes to one subscriber and drops it on failure.
func (a *BroadcasterActor) send(id string, sub Subscriber, payload interface{}) {
	if err := sub.Send(payload); err != nil {
		log.Warn().Err(err).Str("client", id).Msg("dropping subscriber after failed send")
		delete(a.subscribers, id)
	}
}
