// Package session owns the live rooms on the host process. A Session
// wraps one engine aggregate, the channels of the connected remote
// participants, and the cosmetic pacing timers. All intent processing
// is serialized; no two intents run concurrently.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/board"
	"github.com/jfeng32/polypop-backend/platform/engine"
	"github.com/sirupsen/logrus"
)

// Channel is the reliable ordered message channel to one remote
// participant. socket.io connections satisfy it directly.
type Channel interface {
	Emit(event string, args ...interface{})
	Close() error
}

type Session struct {
	mu       sync.Mutex
	Code     string
	Owner    string // player id of the room creator
	game     *engine.Game
	channels map[string]Channel
	started  bool
	closed   bool
	log      *logrus.Entry

	// Cosmetic pacing. Zero values run the step synchronously, which
	// the tests rely on.
	RollWindow    time.Duration
	AutoRollDelay time.Duration
}

// New creates an empty multiplayer room.
func New(code string, seed int64) *Session {
	return &Session{
		Code:          code,
		game:          engine.New(nil, seed),
		channels:      map[string]Channel{},
		log:           logrus.WithField("room", code),
		RollWindow:    600 * time.Millisecond,
		AutoRollDelay: 1 * time.Second,
	}
}

// NewSolo creates a room with one human and aiCount scripted
// opponents, already in progress.
func NewSolo(human *models.Player, aiCount int, seed int64, autoPlay bool) *Session {
	s := New("solo-"+human.Id, seed)
	s.Owner = human.Id
	players := []*models.Player{human}
	players = append(players, MakeBots(aiCount, s.game.Rand())...)
	s.game.Players = players
	s.game.AutoPlay = autoPlay
	s.game.Start()
	s.started = true
	return s
}

// Join adds a participant to the lobby, or re-attaches the channel of
// one that already joined. The first joiner owns the room.
func (s *Session) Join(playerId, name, avatar string, ch Channel) (*models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("room closed")
	}
	if p := s.game.PlayerById(playerId); p != nil {
		s.channels[playerId] = ch
		if s.started {
			s.broadcastLocked()
		} else {
			s.lobbySyncLocked()
		}
		return p, nil
	}
	if s.started {
		return nil, errors.New("game already started")
	}
	idx := len(s.game.Players)
	cfg := PlayerConfigs[idx%len(PlayerConfigs)]
	if name == "" {
		name = fmt.Sprintf("Player %d", idx+1)
	}
	if avatar == "" {
		avatar = cfg.Avatar
	}
	p := &models.Player{
		Id:         playerId,
		Name:       name,
		Color:      cfg.Color,
		Avatar:     avatar,
		Money:      board.InitialMoney,
		Properties: []int{},
		Buffs:      []models.Buff{},
	}
	s.game.Players = append(s.game.Players, p)
	s.channels[playerId] = ch
	if s.Owner == "" {
		s.Owner = playerId
	}
	s.log.WithField("player", playerId).Info("player joined")
	s.lobbySyncLocked()
	return p, nil
}

// Leave tears down the participant's channel. Before the game starts
// the roster entry is dropped; afterwards the player record is kept
// and the disconnect is surfaced in the game log.
func (s *Session) Leave(playerId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.channels, playerId)
	if !s.started {
		s.game.RemovePlayer(playerId)
		s.lobbySyncLocked()
		return
	}
	if p := s.game.PlayerById(playerId); p != nil {
		s.game.AddLog(fmt.Sprintf("%s lost connection", p.Name), "warning")
		s.log.WithField("player", playerId).Warn("player disconnected")
	}
	s.broadcastLocked()
}

// Start begins the multiplayer game. Only the owner may start, and at
// least two players must be present.
func (s *Session) Start(playerId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if playerId != s.Owner {
		return errors.New("only the room owner can start the game")
	}
	if s.started {
		return errors.New("already started")
	}
	if len(s.game.Players) < 2 {
		return errors.New("at least 2 players are needed")
	}
	s.game.StartAutoAssign()
	s.started = true
	for _, ch := range s.channels {
		if ch != nil {
			ch.Emit(models.EventStart)
		}
	}
	s.broadcastLocked()
	s.scheduleAutoLocked()
	return nil
}

// HandleAction processes one participant intent. An intent whose
// sender is not the current mover is silently dropped.
func (s *Session) HandleAction(playerId string, msg models.ActionMsg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.started {
		return
	}
	if s.game.Mover().Id != playerId {
		s.log.WithFields(logrus.Fields{"player": playerId, "kind": msg.Kind}).Debug("stale intent dropped")
		return
	}
	switch msg.Kind {
	case models.ActionRoll:
		s.rollLocked()
	case models.ActionBuy, models.ActionBuild:
		if p := s.game.Pending; p != nil && p.Type == msg.Kind {
			s.game.ConfirmPending()
		}
	case models.ActionSkip:
		s.game.SkipPending()
	case models.ActionPickBuff:
		s.game.PickBuff(msg.Data.BuffId)
	default:
		return
	}
	s.broadcastLocked()
	s.scheduleAutoLocked()
}

// rollLocked asserts the cosmetic rolling window, then resolves the
// actual roll. The window gates nothing but the display.
func (s *Session) rollLocked() {
	if s.game.Rolling {
		return
	}
	if s.game.Status != models.StatusPlaying || s.game.Pending != nil || s.game.Offer != nil {
		return
	}
	s.game.Rolling = true
	s.broadcastLocked()
	s.schedule(s.RollWindow, func() {
		s.game.Rolling = false
		s.game.Roll()
		s.broadcastLocked()
		s.scheduleAutoLocked()
	})
}

func (s *Session) scheduleAutoLocked() {
	if !s.game.NeedsAutoRoll() {
		return
	}
	s.schedule(s.AutoRollDelay, func() {
		if s.game.NeedsAutoRoll() {
			s.rollLocked()
		}
	})
}

// schedule runs fn after d. With d == 0 it runs inline under the lock
// already held by the caller; otherwise fn re-acquires it.
func (s *Session) schedule(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		fn()
	})
}

func (s *Session) broadcastLocked() {
	b, err := json.Marshal(s.game.Snapshot())
	if err != nil {
		s.log.WithError(err).Error("failed marshalling sync payload")
		return
	}
	for _, ch := range s.channels {
		if ch != nil {
			ch.Emit(models.EventSync, string(b))
		}
	}
}

// lobbySyncLocked pushes the lighter pre-game roster snapshot:
// players and tiles only, no logs, no pending state.
func (s *Session) lobbySyncLocked() {
	snap := s.game.Snapshot()
	snap.Logs = nil
	snap.DiceValue = nil
	snap.Pending = nil
	snap.Offer = nil
	b, err := json.Marshal(snap)
	if err != nil {
		s.log.WithError(err).Error("failed marshalling lobby payload")
		return
	}
	for _, ch := range s.channels {
		if ch != nil {
			ch.Emit(models.EventSync, string(b))
		}
	}
}

// Resume rebroadcasts and restarts auto-pacing. Used after attaching
// a channel to an in-progress session.
func (s *Session) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started || s.closed {
		return
	}
	s.broadcastLocked()
	s.scheduleAutoLocked()
}

// Snapshot returns the current full snapshot.
func (s *Session) Snapshot() models.SyncPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Game exposes the aggregate for the host-local gateway and tests.
func (s *Session) Game() *engine.Game {
	return s.game
}

func (s *Session) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// Close tears down all channels immediately. Pending cosmetic timers
// become no-ops; nothing is drained.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.channels {
		if ch != nil {
			ch.Close()
		}
		delete(s.channels, id)
	}
}
