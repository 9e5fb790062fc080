package models

type BuffRarity string

const (
	RaritySilver    BuffRarity = "SILVER"
	RarityGold      BuffRarity = "GOLD"
	RarityPrismatic BuffRarity = "PRISMATIC"
)

type BuffEffect string

const (
	EffectRentBoost     BuffEffect = "RENT_BOOST"
	EffectTaxExempt     BuffEffect = "TAX_EXEMPT"
	EffectBuildDiscount BuffEffect = "BUILD_DISCOUNT"
	EffectDiceBoost     BuffEffect = "DICE_BOOST"
	EffectSalaryBoost   BuffEffect = "SALARY_BOOST"
	EffectAbsorbRent    BuffEffect = "ABSORB_RENT"
	EffectBankInterest  BuffEffect = "BANK_INTEREST"
	EffectJailBreak     BuffEffect = "JAIL_BREAK"
	EffectRobbery       BuffEffect = "ROBBERY"
	EffectDoubleBuild   BuffEffect = "DOUBLE_BUILD"
)

type Buff struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Rarity      BuffRarity `json:"rarity"`
	Effect      BuffEffect `json:"effect"`
}
