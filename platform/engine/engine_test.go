package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/board"
)

func testPlayer(id string, ai bool) *models.Player {
	return &models.Player{
		Id:            id,
		Name:          id,
		Money:         board.InitialMoney,
		IsAI:          ai,
		RiskTolerance: 0.5,
		Properties:    []int{},
		Buffs:         []models.Buff{},
	}
}

// quiet marks all milestone flags as fired so crafted scenarios are
// not interrupted by buff offers.
func quiet(players ...*models.Player) {
	for _, p := range players {
		p.Triggers = models.Triggers{Start: true, FirstLap: true, LowMoney: true}
	}
}

// playing builds a game already in the PLAYING state without running
// the opening trigger pass.
func playing(seed int64, players ...*models.Player) *Game {
	g := New(players, seed)
	g.Status = models.StatusPlaying
	return g
}

func TestStartInitializesPlayers(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	g := New([]*models.Player{a, b}, 1)
	g.StartAutoAssign()

	require.Equal(t, models.StatusPlaying, g.Status)
	assert.Equal(t, 1, g.TurnCount)
	assert.Equal(t, 0, g.Current)
	for _, p := range g.Players {
		assert.Equal(t, board.InitialMoney, p.Money)
		assert.Equal(t, 0, p.Pos)
		assert.True(t, p.Triggers.Start)
		assert.Len(t, p.Buffs, 1)
	}
}

func TestRentOnLevelThreeProperty(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	tile := g.Tiles[9] // base rent 400
	require.Equal(t, 400, tile.Rent)
	tile.OwnerId = "b"
	tile.Level = 3
	a.Pos = 9

	g.resolveLanding(0, 9)

	assert.Equal(t, board.InitialMoney-1000, a.Money)
	assert.Equal(t, board.InitialMoney+1000, b.Money)
}

func TestRentModifierInteractions(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Buffs = []models.Buff{
		{Id: "h6", Effect: models.EffectAbsorbRent},
		{Id: "h9", Effect: models.EffectRobbery},
	}
	b.Buffs = []models.Buff{{Id: "h2", Effect: models.EffectRentBoost}}
	g := playing(1, a, b)

	tile := g.Tiles[9] // base rent 400
	tile.OwnerId = "b"
	a.Pos = 9

	g.resolveLanding(0, 9)

	// rent 400 -> 520 boosted; mover refunds 104 and steals 200
	assert.Equal(t, board.InitialMoney-520+104+200, a.Money)
	assert.Equal(t, board.InitialMoney+520-200, b.Money)
}

func TestRentSkippedWhenOwnerEliminated(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	b.Money = -1
	g := playing(1, a, b)

	g.Tiles[9].OwnerId = "b"
	a.Pos = 9
	g.resolveLanding(0, 9)

	assert.Equal(t, board.InitialMoney, a.Money)
}

func TestTaxExemptPaysNothing(t *testing.T) {
	for _, pos := range []int{19, 31} {
		t.Run(fmt.Sprintf("tile_%d", pos), func(t *testing.T) {
			a := testPlayer("a", false)
			b := testPlayer("b", false)
			quiet(a, b)
			a.Buffs = []models.Buff{{Id: "h3", Effect: models.EffectTaxExempt}}
			g := playing(1, a, b)

			a.Pos = pos
			g.resolveLanding(0, pos)
			assert.Equal(t, board.InitialMoney, a.Money)
		})
	}
}

func TestTaxDebitsLevy(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	a.Pos = 31
	g.resolveLanding(0, 31)
	assert.Equal(t, board.InitialMoney-2000, a.Money)
}

func TestBuildLevelNeverExceedsCap(t *testing.T) {
	a := testPlayer("a", true)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Buffs = []models.Buff{{Id: "h10", Effect: models.EffectDoubleBuild}}
	g := playing(1, a, b)

	tile := g.Tiles[1]
	tile.OwnerId = "a"
	a.Pos = 1

	for i := 0; i < 10; i++ {
		g.Current = 0
		g.resolveLanding(0, 1)
		require.LessOrEqual(t, tile.Level, board.MaxLevel)
		require.GreaterOrEqual(t, tile.Level, 0)
	}
	assert.Equal(t, board.MaxLevel, tile.Level)
}

func TestHumanBuyRaisesPendingAndConfirmResolves(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	a.Pos = 1 // price 1000, unowned
	g.resolveLanding(0, 1)

	require.NotNil(t, g.Pending)
	assert.Equal(t, models.PendingBuy, g.Pending.Type)
	assert.Equal(t, 1000, g.Pending.Price)
	assert.Equal(t, board.InitialMoney, a.Money, "money untouched while pending")
	assert.Equal(t, 0, g.Current, "turn suspended while pending")

	require.True(t, g.ConfirmPending())
	assert.Equal(t, board.InitialMoney-1000, a.Money)
	assert.Equal(t, "a", g.Tiles[1].OwnerId)
	assert.Contains(t, a.Properties, 1)
	assert.Nil(t, g.Pending)
	assert.Equal(t, 1, g.Current, "turn advanced after confirm")
}

func TestSkipPendingAdvancesWithoutPurchase(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	a.Pos = 1
	g.resolveLanding(0, 1)
	require.NotNil(t, g.Pending)

	require.True(t, g.SkipPending())
	assert.Equal(t, board.InitialMoney, a.Money)
	assert.Equal(t, "", g.Tiles[1].OwnerId)
	assert.Equal(t, 1, g.Current)
}

func TestBuildDiscountFloorsCost(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Buffs = []models.Buff{{Id: "h4", Effect: models.EffectBuildDiscount}}
	g := playing(1, a, b)

	a.Pos = 2 // price 1200
	g.resolveLanding(0, 2)
	require.NotNil(t, g.Pending)
	assert.Equal(t, 840, g.Pending.Price)
}

func TestInsufficientFundsSkipsPurchase(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Money = 500
	g := playing(1, a, b)

	a.Pos = 1 // price 1000
	g.resolveLanding(0, 1)

	assert.Nil(t, g.Pending)
	assert.Equal(t, 500, a.Money)
	assert.Equal(t, 1, g.Current, "turn advanced past the unaffordable tile")
}

func TestAIBuyRespectsRiskThreshold(t *testing.T) {
	a := testPlayer("a", true)
	b := testPlayer("b", false)
	quiet(a, b)
	a.RiskTolerance = 0.5 // threshold 1000
	a.Money = 1900
	g := playing(1, a, b)

	a.Pos = 1 // price 1000, remaining 900 <= 1000
	g.resolveLanding(0, 1)
	assert.Equal(t, "", g.Tiles[1].OwnerId)
	assert.Equal(t, 1900, a.Money)

	a.Money = 2100 // remaining 1100 > 1000
	g.Current = 0
	g.resolveLanding(0, 1)
	assert.Equal(t, "a", g.Tiles[1].OwnerId)
	assert.Equal(t, 1100, a.Money)
}

func TestJailEntrySendsToCell(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	a.Pos = board.JailEntryPos
	g.resolveLanding(0, board.JailEntryPos)

	assert.Equal(t, board.JailCellPos, a.Pos)
	assert.True(t, a.Jailed)
	assert.Equal(t, 3, a.JailTurns)
}

func TestJailBreakAvoidsJail(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Buffs = []models.Buff{{Id: "h8", Effect: models.EffectJailBreak}}
	g := playing(1, a, b)

	a.Pos = board.JailEntryPos
	g.resolveLanding(0, board.JailEntryPos)

	assert.Equal(t, board.JailEntryPos, a.Pos)
	assert.False(t, a.Jailed)
}

func TestJailedRollDecrementsAndAdvances(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Jailed = true
	a.JailTurns = 2
	g := playing(1, a, b)

	require.True(t, g.Roll())
	assert.Equal(t, 1, a.JailTurns)
	assert.True(t, a.Jailed)
	assert.Equal(t, 0, a.Pos, "no movement while jailed")
	assert.Equal(t, 1, g.Current)

	g.Current = 0
	require.True(t, g.Roll())
	assert.Equal(t, 0, a.JailTurns)
	assert.False(t, a.Jailed)
}

func TestDiceBoostAddsOne(t *testing.T) {
	plain := testPlayer("a", false)
	boosted := testPlayer("a", false)
	other1 := testPlayer("b", false)
	other2 := testPlayer("b", false)
	quiet(plain, boosted, other1, other2)
	boosted.Buffs = []models.Buff{{Id: "h7", Effect: models.EffectDiceBoost}}

	// identical seeds produce the same raw die, so the boosted player
	// settles exactly one tile further
	g1 := playing(42, plain, other1)
	g2 := playing(42, boosted, other2)
	require.True(t, g1.Roll())
	require.True(t, g2.Roll())

	assert.Equal(t, g1.Players[0].Pos+1, g2.Players[0].Pos)
}

func TestBankruptcyReleasesTilesAndSkipsMover(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	c := testPlayer("c", false)
	quiet(a, b, c)
	a.Money = 500
	a.Properties = []int{1, 2}
	g := playing(1, a, b, c)
	g.Tiles[1].OwnerId = "a"
	g.Tiles[1].Level = 4
	g.Tiles[2].OwnerId = "a"

	a.Pos = 31 // levy 2000
	g.resolveLanding(0, 31)

	require.True(t, a.Eliminated())
	assert.Equal(t, "", g.Tiles[1].OwnerId)
	assert.Equal(t, 0, g.Tiles[1].Level)
	assert.Equal(t, "", g.Tiles[2].OwnerId)

	// mover selection must never come back to the bankrupt player
	for i := 0; i < 10; i++ {
		require.NotEqual(t, 0, g.Current)
		g.Advance()
	}
}

func TestLastSurvivorWinsGame(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Money = 500
	g := playing(1, a, b)

	a.Pos = 31
	g.resolveLanding(0, 31)

	assert.Equal(t, models.StatusGameOver, g.Status)
	assert.Equal(t, "b", g.WinnerId)
	assert.False(t, g.Roll(), "no rolls after game over")
}

func TestTriggerOrderFirstMatchWinsOncePer(t *testing.T) {
	a := testPlayer("a", true)
	b := testPlayer("b", false)
	quiet(b)
	a.Laps = 1
	a.Money = 500
	g := playing(1, a, b)

	// priority: start -> first lap -> low money, one per invocation
	require.False(t, g.checkTriggers(0, models.ResumeNext))
	assert.True(t, a.Triggers.Start)
	assert.False(t, a.Triggers.FirstLap)
	assert.Len(t, a.Buffs, 1)

	require.False(t, g.checkTriggers(0, models.ResumeNext))
	assert.True(t, a.Triggers.FirstLap)
	assert.Len(t, a.Buffs, 2)

	require.False(t, g.checkTriggers(0, models.ResumeNext))
	assert.True(t, a.Triggers.LowMoney)
	assert.Len(t, a.Buffs, 3)

	// all fired; nothing further for the rest of the game
	require.False(t, g.checkTriggers(0, models.ResumeNext))
	assert.Len(t, a.Buffs, 3)
}

func TestLowMoneyTriggerNotForEliminated(t *testing.T) {
	a := testPlayer("a", true)
	b := testPlayer("b", false)
	quiet(b)
	a.Triggers.Start = true
	a.Money = -200
	g := playing(1, a, b)

	require.False(t, g.checkTriggers(0, models.ResumeNext))
	assert.False(t, a.Triggers.LowMoney)
	assert.Empty(t, a.Buffs)
}

func TestHumanTriggerBlocksUntilPick(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(b)
	g := playing(1, a, b)

	require.True(t, g.checkTriggers(0, models.ResumeRoll))
	require.NotNil(t, g.Offer)
	assert.Len(t, g.Offer.Options, 3)
	seen := map[string]bool{}
	for _, o := range g.Offer.Options {
		assert.False(t, seen[o.Id], "draw must be without replacement")
		seen[o.Id] = true
	}

	assert.False(t, g.Roll(), "rolling is suspended while an offer is open")
	assert.False(t, g.PickBuff("not-offered"), "picks outside the offer are ignored")

	require.True(t, g.PickBuff(g.Offer.Options[1].Id))
	assert.Nil(t, g.Offer)
	assert.Len(t, a.Buffs, 1)
	assert.Equal(t, 0, g.Current, "opening pick keeps the mover's turn")
}

func TestPostMovePickAdvancesTurn(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(b)
	a.Triggers.Start = true
	a.Triggers.FirstLap = true
	a.Money = 900 // below the low-money mark
	g := playing(1, a, b)

	require.True(t, g.checkTriggers(0, models.ResumeNext))
	require.NotNil(t, g.Offer)
	require.True(t, g.PickBuff(g.Offer.Options[0].Id))
	assert.Equal(t, 1, g.Current)
}

func TestPassingStartPaysSalaryAndInterest(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	a.Buffs = []models.Buff{
		{Id: "h5", Effect: models.EffectSalaryBoost},
		{Id: "h1", Effect: models.EffectBankInterest},
	}
	a.Money = 10000
	a.Pos = 30 // two steps to pass Start
	g := playing(1, a, b)

	g.move(0, 2)

	// interest on the pre-salary balance, then doubled salary; the
	// Start tile itself charges nothing
	assert.Equal(t, 1, a.Laps)
	assert.Equal(t, 10000+1000+2*board.Salary, a.Money)
}

func TestChanceAppliesDeckDelta(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(7, a, b)

	a.Pos = 3
	g.resolveLanding(0, 3)

	deltas := map[int]bool{2000: true, -1000: true, 500: true, -500: true, 200: true, -800: true, 1500: true, -1200: true}
	assert.True(t, deltas[a.Money-board.InitialMoney], "delta %d not in deck", a.Money-board.InitialMoney)
}

func TestEventLogIsBounded(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	for i := 0; i < 100; i++ {
		g.addLog("entry", "info")
	}
	assert.Len(t, g.Logs, logCap)
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	run := func() *Game {
		var players []*models.Player
		for i := 0; i < 4; i++ {
			p := testPlayer(fmt.Sprintf("cpu_%d", i), true)
			p.RiskTolerance = 0.3 + 0.15*float64(i)
			players = append(players, p)
		}
		g := New(players, 99)
		g.Start()
		for i := 0; i < 20000 && g.Status == models.StatusPlaying; i++ {
			require.True(t, g.Roll())
		}
		return g
	}

	g1 := run()
	g2 := run()
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, g1.Status, g2.Status)
	assert.Equal(t, g1.WinnerId, g2.WinnerId)
}

func TestSnapshotIsDetached(t *testing.T) {
	a := testPlayer("a", false)
	b := testPlayer("b", false)
	quiet(a, b)
	g := playing(1, a, b)

	snap := g.Snapshot()
	snap.Players[0].Money = 0
	snap.Tiles[1].OwnerId = "x"

	assert.Equal(t, board.InitialMoney, a.Money)
	assert.Equal(t, "", g.Tiles[1].OwnerId)
}
