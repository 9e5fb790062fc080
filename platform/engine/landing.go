package engine

import (
	"fmt"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/board"
)

// resolveLanding applies the effect of the tile the player settled on.
// A player already bankrupt is skipped, not further penalized.
func (g *Game) resolveLanding(idx, pos int) {
	p := g.Players[idx]
	tile := g.Tiles[pos]

	if p.Money < 0 {
		g.Advance()
		return
	}

	paused := false
	auto := p.IsAI || g.AutoPlay

	switch tile.Type {
	case models.TileProperty:
		switch {
		case tile.OwnerId == "":
			cost := tile.Price
			if p.HasBuff(models.EffectBuildDiscount) {
				cost = cost * 7 / 10
			}
			if auto {
				shouldBuy := p.Money >= cost
				if p.IsAI {
					threshold := float64(aiRiskBase) * (1 - p.RiskTolerance)
					shouldBuy = shouldBuy && float64(p.Money-cost) > threshold
				}
				if shouldBuy {
					p.Money -= cost
					p.Properties = append(p.Properties, tile.Id)
					tile.OwnerId = p.Id
					g.addLog(fmt.Sprintf("%s bought %s (%d)", p.Name, tile.Name, cost), "success")
				}
			} else if p.Money >= cost {
				g.Pending = &models.PendingAction{Type: models.PendingBuy, TileId: tile.Id, Price: cost}
				paused = true
			} else {
				g.addLog(fmt.Sprintf("%s cannot afford %s", p.Name, tile.Name), "warning")
			}

		case tile.OwnerId == p.Id:
			if tile.Level >= board.MaxLevel {
				break // landmark, nothing left to build
			}
			cost := tile.Price / 2
			if p.HasBuff(models.EffectBuildDiscount) {
				cost = cost * 7 / 10
			}
			levels := 1
			if p.HasBuff(models.EffectDoubleBuild) {
				levels = 2
			}
			if tile.Level+levels > board.MaxLevel {
				levels = board.MaxLevel - tile.Level
			}
			if auto {
				shouldBuild := p.Money > cost
				if p.IsAI {
					shouldBuild = p.Money > cost*2
				}
				if shouldBuild {
					p.Money -= cost
					tile.Level += levels
					g.addLog(fmt.Sprintf("%s upgraded %s to Lv.%d", p.Name, tile.Name, tile.Level), "success")
				}
			} else if p.Money >= cost {
				g.Pending = &models.PendingAction{Type: models.PendingBuild, TileId: tile.Id, Price: cost, Level: tile.Level}
				paused = true
			}

		default:
			owner := g.playerById(tile.OwnerId)
			if owner != nil && owner.Money >= 0 {
				rent := tile.Rent * (2 + tile.Level) / 2
				if owner.HasBuff(models.EffectRentBoost) {
					rent = rent * 13 / 10
				}
				if p.HasBuff(models.EffectAbsorbRent) {
					p.Money += rent / 5
				}
				if p.HasBuff(models.EffectRobbery) && owner.Money >= stealAmount {
					p.Money += stealAmount
					owner.Money -= stealAmount
					g.addLog(fmt.Sprintf("%s picked %s's pocket for %d!", p.Name, owner.Name, stealAmount), "warning")
				}
				p.Money -= rent
				owner.Money += rent
				g.addLog(fmt.Sprintf("%s paid %d rent to %s", p.Name, rent, owner.Name), "danger")
			}
		}

	case models.TileChance, models.TileCasino:
		card := g.chance[g.rng.Intn(len(g.chance))]
		p.Money += card.Money
		typ := "success"
		if card.Money < 0 {
			typ = "danger"
		}
		g.addLog(fmt.Sprintf("%s: %s", tile.Name, card.Text), typ)

	case models.TileJail:
		if tile.Id == board.JailEntryPos {
			if p.HasBuff(models.EffectJailBreak) {
				g.addLog(fmt.Sprintf("%s slipped away from the police!", p.Name), "success")
			} else {
				p.Pos = board.JailCellPos
				p.Jailed = true
				p.JailTurns = 3
				g.addLog(fmt.Sprintf("%s was arrested and jailed!", p.Name), "danger")
			}
		}

	case models.TileTax:
		tax := tile.Rent
		if p.HasBuff(models.EffectTaxExempt) {
			g.addLog(fmt.Sprintf("%s is tax exempt!", p.Name), "success")
			tax = 0
		}
		p.Money -= tax
		if tax > 0 {
			g.addLog(fmt.Sprintf("%s paid %d in taxes", p.Name, tax), "danger")
		}
	}

	if p.Money < 0 {
		g.eliminate(p)
	}

	blocked := g.checkTriggers(idx, models.ResumeNext)
	if !paused && !blocked {
		g.Advance()
	}
}

// eliminate releases everything the bankrupt player owned. The player
// record itself is kept for display.
func (g *Game) eliminate(p *models.Player) {
	g.addLog(fmt.Sprintf("%s went bankrupt!", p.Name), "danger")
	for _, t := range g.Tiles {
		if t.OwnerId == p.Id {
			t.OwnerId = ""
			t.Level = 0
		}
	}
}

// ConfirmPending executes the blocking purchase/build decision and
// resumes turn advancement.
func (g *Game) ConfirmPending() bool {
	if g.Pending == nil {
		return false
	}
	p := g.Players[g.Current]
	tile, err := board.GetByPos(g.Pending.TileId, g.Tiles)
	if err != nil {
		g.Pending = nil
		return false
	}
	p.Money -= g.Pending.Price
	switch g.Pending.Type {
	case models.PendingBuy:
		p.Properties = append(p.Properties, tile.Id)
		tile.OwnerId = p.Id
		tile.Level = 0
		g.addLog(fmt.Sprintf("%s bought %s", p.Name, tile.Name), "success")
	case models.PendingBuild:
		levels := 1
		if p.HasBuff(models.EffectDoubleBuild) {
			levels = 2
		}
		if tile.Level+levels > board.MaxLevel {
			levels = board.MaxLevel - tile.Level
		}
		tile.Level += levels
		g.addLog(fmt.Sprintf("%s upgraded %s (Lv.%d)", p.Name, tile.Name, tile.Level), "success")
	}
	g.Pending = nil
	if !g.checkTriggers(g.Current, models.ResumeNext) {
		g.Advance()
	}
	return true
}

// SkipPending declines the blocking decision and ends the turn.
func (g *Game) SkipPending() bool {
	if g.Pending == nil {
		return false
	}
	g.Pending = nil
	g.Advance()
	return true
}
