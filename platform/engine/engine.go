// Package engine implements the turn state machine. Every transition
// is synchronous and timer-free; cosmetic pacing (dice animation, AI
// roll delay) lives in the session layer on top of it.
package engine

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/board"
	"github.com/jfeng32/polypop-backend/platform/catalog"
)

const (
	lowMoneyMark = 1000
	stealAmount  = 200
	aiRiskBase   = 2000
	logCap       = 16
)

// Game is the authoritative session aggregate. Only the host process
// mutates it; remote participants mirror snapshots of it.
type Game struct {
	Players   []*models.Player
	Tiles     []*models.Tile
	Current   int
	Dice      *int // nil until the mover has rolled this turn
	Rolling   bool // cosmetic, toggled by the session layer
	Status    string
	WinnerId  string
	TurnCount int
	Logs      []models.LogEntry
	Pending   *models.PendingAction
	Offer     *models.BuffOffer
	AutoPlay  bool // local human is piloted; decisions follow the auto accept rules

	chance []models.ChanceCard
	rng    *rand.Rand
	seq    int
}

func New(players []*models.Player, seed int64) *Game {
	return &Game{
		Players:   players,
		Tiles:     board.LoadTiles(),
		Status:    models.StatusSetup,
		TurnCount: 1,
		chance:    board.LoadChanceCards(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Start begins a solo game. AI players draw their opening buff right
// away; the human mover gets the blocking opening offer unless piloted.
func (g *Game) Start() {
	g.begin()
	for _, p := range g.Players {
		if p.IsAI {
			p.Triggers.Start = true
			p.Buffs = append(p.Buffs, catalog.Draw(g.rng, 3)[0])
		}
	}
	g.checkTriggers(g.Current, models.ResumeRoll)
}

// StartAutoAssign begins a multiplayer game. Every player's opening
// buff is applied automatically so the first turn is never blocked.
func (g *Game) StartAutoAssign() {
	g.begin()
	for _, p := range g.Players {
		p.Triggers.Start = true
		p.Buffs = append(p.Buffs, catalog.Draw(g.rng, 3)[0])
	}
}

func (g *Game) begin() {
	g.Status = models.StatusPlaying
	g.Current = 0
	g.TurnCount = 1
	g.Dice = nil
	g.WinnerId = ""
	g.Pending = nil
	g.Offer = nil
	g.Logs = nil
	g.addLog(fmt.Sprintf("Game started with %d players.", len(g.Players)), "info")
}

// Roll resolves the mover's dice roll and the resulting movement.
// Returns false when rolling is not currently legal.
func (g *Game) Roll() bool {
	if g.Status != models.StatusPlaying || g.Pending != nil || g.Offer != nil {
		return false
	}
	p := g.Players[g.Current]
	if p.Jailed && p.JailTurns > 0 {
		g.addLog(fmt.Sprintf("%s sits in jail... (%d)", p.Name, p.JailTurns), "warning")
		p.JailTurns--
		if p.JailTurns == 0 {
			p.Jailed = false
		}
		g.Advance()
		return true
	}
	v := g.rng.Intn(6) + 1
	if p.HasBuff(models.EffectDiceBoost) {
		v++
	}
	g.Dice = &v
	g.move(g.Current, v)
	return true
}

// move advances one step at a time around the track. A trigger fired
// on passing Start halts stepping immediately, preserving the
// in-progress position.
func (g *Game) move(idx, steps int) {
	p := g.Players[idx]
	for s := 0; s < steps; s++ {
		p.Pos = (p.Pos + 1) % board.Size
		if p.Pos == 0 {
			p.Laps++
			salary := board.Salary
			if p.HasBuff(models.EffectSalaryBoost) {
				salary *= 2
			}
			if p.HasBuff(models.EffectBankInterest) {
				// interest accrues on the balance before the salary lands
				p.Money += p.Money / 10
			}
			p.Money += salary
			g.addLog(fmt.Sprintf("%s passed Start and collected a %d salary", p.Name, salary), "success")
			if g.checkTriggers(idx, models.ResumeNext) {
				return
			}
		}
	}
	if g.checkTriggers(idx, models.ResumeNext) {
		return
	}
	g.resolveLanding(idx, p.Pos)
}

// Advance hands the turn to the next living player, or ends the game
// when at most one remains.
func (g *Game) Advance() {
	if g.Status != models.StatusPlaying {
		return
	}
	g.Dice = nil
	alive := 0
	var last *models.Player
	for _, p := range g.Players {
		if !p.Eliminated() {
			alive++
			last = p
		}
	}
	if alive <= 1 {
		if last != nil {
			g.WinnerId = last.Id
			g.addLog(fmt.Sprintf("%s wins the game!", last.Name), "success")
		}
		g.Status = models.StatusGameOver
		return
	}
	next := (g.Current + 1) % len(g.Players)
	for g.Players[next].Eliminated() {
		next = (next + 1) % len(g.Players)
	}
	g.Current = next
	if next == 0 {
		g.TurnCount++
	}
	g.checkTriggers(next, models.ResumeRoll)
}

// NeedsAutoRoll reports whether the current mover should be rolled
// without user input. The caller supplies any pacing delay.
func (g *Game) NeedsAutoRoll() bool {
	if g.Status != models.StatusPlaying || g.Pending != nil || g.Offer != nil {
		return false
	}
	p := g.Players[g.Current]
	return p.IsAI || g.AutoPlay
}

func (g *Game) Mover() *models.Player {
	return g.Players[g.Current]
}

func (g *Game) playerById(id string) *models.Player {
	for _, p := range g.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (g *Game) PlayerById(id string) *models.Player {
	return g.playerById(id)
}

// RemovePlayer drops a roster entry. Only legal before the game
// starts; in-game records are retained for display.
func (g *Game) RemovePlayer(id string) {
	if g.Status != models.StatusSetup {
		return
	}
	for i, p := range g.Players {
		if p.Id == id {
			g.Players = append(g.Players[:i], g.Players[i+1:]...)
			return
		}
	}
}

// AddLog appends to the bounded in-game event log.
func (g *Game) AddLog(message string, typ string) {
	g.addLog(message, typ)
}

// Rand exposes the seeded source so roster setup shares the one
// deterministic stream.
func (g *Game) Rand() *rand.Rand {
	return g.rng
}

func (g *Game) addLog(message string, typ string) {
	g.seq++
	g.Logs = append(g.Logs, models.LogEntry{Id: strconv.Itoa(g.seq), Message: message, Type: typ})
	if len(g.Logs) > logCap {
		g.Logs = g.Logs[len(g.Logs)-logCap:]
	}
}

// Snapshot builds an immutable full copy of the session state for
// broadcast.
func (g *Game) Snapshot() models.SyncPayload {
	players := make([]*models.Player, len(g.Players))
	for i, p := range g.Players {
		cp := *p
		cp.Properties = append([]int(nil), p.Properties...)
		cp.Buffs = append([]models.Buff(nil), p.Buffs...)
		players[i] = &cp
	}
	tiles := make([]*models.Tile, len(g.Tiles))
	for i, t := range g.Tiles {
		cp := *t
		tiles[i] = &cp
	}
	var dice *int
	if g.Dice != nil {
		v := *g.Dice
		dice = &v
	}
	var pending *models.PendingAction
	if g.Pending != nil {
		cp := *g.Pending
		pending = &cp
	}
	var offer *models.BuffOffer
	if g.Offer != nil {
		cp := *g.Offer
		cp.Options = append([]models.Buff(nil), g.Offer.Options...)
		offer = &cp
	}
	return models.SyncPayload{
		Players:   players,
		Tiles:     tiles,
		Current:   g.Current,
		DiceValue: dice,
		IsRolling: g.Rolling,
		Logs:      append([]models.LogEntry(nil), g.Logs...),
		TurnCount: g.TurnCount,
		Status:    g.Status,
		WinnerId:  g.WinnerId,
		Pending:   pending,
		Offer:     offer,
	}
}
