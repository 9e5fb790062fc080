package models

const (
	StatusSetup    = "SETUP"
	StatusPlaying  = "PLAYING"
	StatusGameOver = "GAME_OVER"
)

const (
	PendingBuy   = "BUY"
	PendingBuild = "BUILD"
)

// Resume markers for a buff offer: what the engine does once the
// pick resolves.
const (
	ResumeRoll = "ROLL" // offer raised before the mover rolled; mover keeps the turn
	ResumeNext = "NEXT" // offer raised during/after movement; turn advances after the pick
)

type LogEntry struct {
	Id      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"` // info | success | warning | danger
}

// PendingAction is the single blocking purchase/build decision. At
// most one is pending; turn advancement is suspended while it is.
type PendingAction struct {
	Type   string `json:"type"` // BUY | BUILD
	TileId int    `json:"tile_id"`
	Price  int    `json:"price"`
	Level  int    `json:"level,omitempty"`
}

// BuffOffer is the blocking pick-one-of-three state.
type BuffOffer struct {
	Options []Buff `json:"options"`
	Reason  string `json:"reason"`
	Resume  string `json:"resume"`
}
