package engine

import (
	"fmt"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/catalog"
)

// checkTriggers examines the milestone rewards in strict priority
// order. First match wins and each flag fires at most once per game.
// Returns true when a blocking pick was raised.
func (g *Game) checkTriggers(idx int, resume string) bool {
	p := g.Players[idx]
	var reason string
	switch {
	case !p.Triggers.Start:
		p.Triggers.Start = true
		reason = "Opening bonus"
	case p.Laps >= 1 && !p.Triggers.FirstLap:
		p.Triggers.FirstLap = true
		reason = "First lap bonus"
	case p.Money < lowMoneyMark && p.Money >= 0 && !p.Triggers.LowMoney:
		p.Triggers.LowMoney = true
		reason = "Hardship relief"
	default:
		return false
	}

	options := catalog.Draw(g.rng, 3)
	if p.IsAI || g.AutoPlay {
		p.Buffs = append(p.Buffs, options[0])
		g.addLog(fmt.Sprintf("%s triggered [%s] and gained %s", p.Name, reason, options[0].Name), "info")
		return false
	}
	g.Offer = &models.BuffOffer{Options: options, Reason: reason, Resume: resume}
	return true
}

// PickBuff resolves the blocking offer with one of the offered
// options. A buff id outside the offer is ignored.
func (g *Game) PickBuff(buffId string) bool {
	if g.Offer == nil {
		return false
	}
	var chosen *models.Buff
	for i := range g.Offer.Options {
		if g.Offer.Options[i].Id == buffId {
			chosen = &g.Offer.Options[i]
			break
		}
	}
	if chosen == nil {
		return false
	}
	p := g.Players[g.Current]
	p.Buffs = append(p.Buffs, *chosen)
	g.addLog(fmt.Sprintf("%s picked a buff: %s", p.Name, chosen.Name), "success")
	resume := g.Offer.Resume
	g.Offer = nil
	if resume == models.ResumeNext {
		g.Advance()
	}
	return true
}
