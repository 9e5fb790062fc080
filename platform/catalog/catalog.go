// Package catalog holds the fixed buff catalog. Entries are immutable;
// the engine only ever reads them.
package catalog

import (
	"errors"
	"math/rand"

	"github.com/jfeng32/polypop-backend/app/models"
)

var Buffs = []models.Buff{
	{Id: "h1", Name: "Compound Interest", Description: "Gain 10% interest on your balance every time you pass Start", Icon: "💰", Rarity: models.RarityPrismatic, Effect: models.EffectBankInterest},
	{Id: "h2", Name: "Landlord", Description: "Rent you collect is increased by 30%", Icon: "🔑", Rarity: models.RarityGold, Effect: models.EffectRentBoost},
	{Id: "h3", Name: "Tax Haven", Description: "Immune to all taxes and fines", Icon: "🛡️", Rarity: models.RarityGold, Effect: models.EffectTaxExempt},
	{Id: "h4", Name: "Construction Deal", Description: "30% off buying land and building", Icon: "🏗️", Rarity: models.RaritySilver, Effect: models.EffectBuildDiscount},
	{Id: "h5", Name: "Four-Leaf Clover", Description: "Base salary for passing Start is doubled", Icon: "🍀", Rarity: models.RaritySilver, Effect: models.EffectSalaryBoost},
	{Id: "h6", Name: "Vampire", Description: "Recover 20% of any rent you pay", Icon: "🧛", Rarity: models.RarityPrismatic, Effect: models.EffectAbsorbRent},
	{Id: "h7", Name: "Rocket Boots", Description: "Dice roll +1", Icon: "🚀", Rarity: models.RaritySilver, Effect: models.EffectDiceBoost},
	{Id: "h8", Name: "Escape Artist", Description: "Walk free instead of going to jail", Icon: "🔓", Rarity: models.RaritySilver, Effect: models.EffectJailBreak},
	{Id: "h9", Name: "Sticky Fingers", Description: "Steal 200 from the owner whenever you land on their property", Icon: "🖐️", Rarity: models.RarityGold, Effect: models.EffectRobbery},
	{Id: "h10", Name: "Twin Towers", Description: "Each build raises the property 2 levels", Icon: "🏢", Rarity: models.RarityPrismatic, Effect: models.EffectDoubleBuild},
}

// Draw picks n distinct buffs uniformly without replacement.
func Draw(rng *rand.Rand, n int) []models.Buff {
	if n > len(Buffs) {
		n = len(Buffs)
	}
	perm := rng.Perm(len(Buffs))
	picked := make([]models.Buff, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, Buffs[idx])
	}
	return picked
}

func ById(id string) (models.Buff, error) {
	for _, b := range Buffs {
		if b.Id == id {
			return b, nil
		}
	}
	return models.Buff{}, errors.New("not found")
}
