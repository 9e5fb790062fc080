package board

import (
	_ "embed"
	"encoding/json"
	"errors"

	"github.com/jfeng32/polypop-backend/app/models"
)

const (
	Size         = 32
	InitialMoney = 15000
	Salary       = 2000
	MaxLevel     = 5

	// Landing on the arrest corner sends the player to the jail cell.
	JailEntryPos = 24
	JailCellPos  = 8
)

//go:embed tiles.json
var tilesJSON []byte

//go:embed chance.json
var chanceJSON []byte

// LoadTiles returns a fresh mutable copy of the track. Ownership and
// building level always start at ("", 0).
func LoadTiles() []*models.Tile {
	var tiles []*models.Tile
	if err := json.Unmarshal(tilesJSON, &tiles); err != nil {
		panic(err)
	}
	return tiles
}

func LoadChanceCards() []models.ChanceCard {
	var cards []models.ChanceCard
	if err := json.Unmarshal(chanceJSON, &cards); err != nil {
		panic(err)
	}
	return cards
}

func GetByPos(pos int, tiles []*models.Tile) (*models.Tile, error) { // O(N) time complexity
	for _, tile := range tiles {
		if tile.Id == pos {
			return tile, nil
		}
	}
	return nil, errors.New("not found")
}
