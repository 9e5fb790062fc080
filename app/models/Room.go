package models

type Room struct {
	Id           string `json:"id"` // the shareable join code
	Name         string `json:"name"`
	Status       string `json:"status"` // "open" | "in progress"
	PasscodeHash string `json:"-"`
}

type RoomCreateDto struct {
	Name     string `json:"name"`
	Passcode string `json:"passcode"`
}

type VerifyRoomDto struct {
	Code     string `json:"code"`
	Passcode string `json:"passcode"`
}
