package entity

// BotPlayerID is the O player of every match against the computer.
const BotPlayerID = "bot"

type Player struct {
	ID       string `json:"id"`
	MatchKey string `json:"match_key,omitempty"`
}

func (that *Player) InMatch() bool {
	return that.MatchKey != ""
}
