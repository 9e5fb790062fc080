package models

type TileType string

const (
	TileStart    TileType = "START"
	TileProperty TileType = "PROPERTY"
	TileChance   TileType = "CHANCE"
	TileCasino   TileType = "CASINO"
	TileJail     TileType = "JAIL"
	TileParking  TileType = "PARKING"
	TileTax      TileType = "TAX"
)

type Tile struct {
	Id      int      `json:"id"`
	Name    string   `json:"name"`
	Type    TileType `json:"type"`
	Price   int      `json:"price,omitempty"`
	Rent    int      `json:"rent,omitempty"` // base rent, or the levy for TAX tiles
	OwnerId string   `json:"owner_id"`       // "" means unowned
	Color   string   `json:"color,omitempty"`
	Level   int      `json:"level"` // 0 = land only, 5 = landmark
}

type ChanceCard struct {
	Text  string `json:"text"`
	Money int    `json:"money"`
}
