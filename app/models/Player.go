package models

// Triggers tracks the one-shot buff rewards. Flags only ever flip
// false -> true for the lifetime of a game.
type Triggers struct {
	Start    bool `json:"start"`
	FirstLap bool `json:"first_lap"`
	LowMoney bool `json:"low_money"`
}

type Player struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Color         string   `json:"color"`
	Avatar        string   `json:"avatar"`
	Money         int      `json:"money"` // negative means eliminated
	Pos           int      `json:"pos"`
	Jailed        bool     `json:"jailed"`
	JailTurns     int      `json:"jail_turns"`
	IsAI          bool     `json:"is_ai"`
	RiskTolerance float64  `json:"risk_tolerance,omitempty"`
	Properties    []int    `json:"properties"`
	Buffs         []Buff   `json:"buffs"`
	Laps          int      `json:"laps"`
	Triggers      Triggers `json:"triggers"`
}

// HasBuff reports whether any acquired buff carries the effect.
// Duplicate copies do not compound; ownership is a boolean check.
func (p *Player) HasBuff(effect BuffEffect) bool {
	for _, b := range p.Buffs {
		if b.Effect == effect {
			return true
		}
	}
	return false
}

func (p *Player) Eliminated() bool {
	return p.Money < 0
}
