package models

// Socket event names shared by host and remote participants.
const (
	EventSync   = "sync"
	EventStart  = "game-start"
	EventAction = "action"
	EventError  = "error-message"
)

// Action kinds a participant may submit.
const (
	ActionRoll     = "ROLL"
	ActionBuy      = "BUY"
	ActionBuild    = "BUILD"
	ActionSkip     = "SKIP"
	ActionPickBuff = "PICK_MODIFIER"
)

type ActionData struct {
	TileId int    `json:"tile_id,omitempty"`
	Price  int    `json:"price,omitempty"`
	Level  int    `json:"level,omitempty"`
	BuffId string `json:"buff_id,omitempty"`
}

type ActionMsg struct {
	Kind string     `json:"kind"`
	Data ActionData `json:"data"`
}

// SyncPayload is the full host-authoritative snapshot. Clients replace
// their state wholesale with every payload received; the last one wins.
type SyncPayload struct {
	Players   []*Player      `json:"players"`
	Tiles     []*Tile        `json:"tiles"`
	Current   int            `json:"current_player_index"`
	DiceValue *int           `json:"dice_value"`
	IsRolling bool           `json:"is_rolling"`
	Logs      []LogEntry     `json:"logs"`
	TurnCount int            `json:"turn_count"`
	Status    string         `json:"status"`
	WinnerId  string         `json:"winner_id,omitempty"`
	Pending   *PendingAction `json:"pending_action,omitempty"`
	Offer     *BuffOffer     `json:"buff_offer,omitempty"`
}
