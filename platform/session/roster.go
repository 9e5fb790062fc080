package session

import (
	"fmt"
	"math/rand"

	"github.com/jfeng32/polypop-backend/app/models"
	"github.com/jfeng32/polypop-backend/platform/board"
)

type PlayerConfig struct {
	Color  string
	Avatar string
}

var PlayerConfigs = []PlayerConfig{
	{"red", "👹"},
	{"blue", "🤖"},
	{"green", "👽"},
	{"yellow", "😺"},
	{"purple", "👾"},
	{"orange", "🦊"},
	{"pink", "🦄"},
	{"teal", "🐙"},
}

var botNames = []string{"Ah Qiang", "Cuihua", "Jianguo", "Xiulian", "Ergou", "Tiedan", "Jack", "Rose", "David", "Lisa"}

// NewHuman builds a fresh human roster entry with the given seat.
func NewHuman(id, name, avatar string, seat int) *models.Player {
	cfg := PlayerConfigs[seat%len(PlayerConfigs)]
	if avatar == "" {
		avatar = cfg.Avatar
	}
	return &models.Player{
		Id:         id,
		Name:       name,
		Color:      cfg.Color,
		Avatar:     avatar,
		Money:      board.InitialMoney,
		Properties: []int{},
		Buffs:      []models.Buff{},
	}
}

// MakeBots builds n scripted opponents. Risk tolerance lands in
// [0.3, 0.8): no bot is fully reckless or fully timid.
func MakeBots(n int, rng *rand.Rand) []*models.Player {
	bots := make([]*models.Player, 0, n)
	for i := 1; i <= n; i++ {
		cfg := PlayerConfigs[i%len(PlayerConfigs)]
		name := fmt.Sprintf("Bot %d", i)
		if i-1 < len(botNames) {
			name = botNames[i-1]
		}
		bots = append(bots, &models.Player{
			Id:            fmt.Sprintf("cpu_%d", i),
			Name:          name,
			Color:         cfg.Color,
			Avatar:        cfg.Avatar,
			Money:         board.InitialMoney,
			IsAI:          true,
			RiskTolerance: rng.Float64()*0.5 + 0.3,
			Properties:    []int{},
			Buffs:         []models.Buff{},
		})
	}
	return bots
}
