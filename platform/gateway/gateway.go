// Package gateway routes a participant's intent to the authority. A
// sink is picked once at session start: the authoritative one on the
// host, the forwarding one on a remote participant.
package gateway

import (
	"encoding/json"

	"github.com/jfeng32/polypop-backend/app/models"
)

// Host is the authoritative intent sink capability, implemented by
// session.Session.
type Host interface {
	HandleAction(playerId string, msg models.ActionMsg)
}

// Sender is the outbound half of the channel to the host.
type Sender interface {
	Emit(event string, args ...interface{})
}

type Sink interface {
	Submit(playerId string, msg models.ActionMsg)
}

// Local executes intents directly against the host session.
type Local struct {
	Host Host
}

func (l Local) Submit(playerId string, msg models.ActionMsg) {
	l.Host.HandleAction(playerId, msg)
}

// Remote serializes each intent once over the single channel to the
// host. It never mutates local state; the mirror only ever reacts to
// inbound snapshots.
type Remote struct {
	Conn Sender
	Room string
}

type ActionEnvelope struct {
	Room   string           `json:"room"`
	UserId string           `json:"user_id"`
	Action models.ActionMsg `json:"action"`
}

func (r Remote) Submit(playerId string, msg models.ActionMsg) {
	b, err := json.Marshal(ActionEnvelope{Room: r.Room, UserId: playerId, Action: msg})
	if err != nil {
		return
	}
	r.Conn.Emit(models.EventAction, string(b))
}
