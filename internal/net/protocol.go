package net

import "github.com/peterkuimelis/kingdom/internal/game"

// Message types for the JSON protocol over TCP.

const (
	MsgNotify   = "notify"
	MsgAsk      = "ask"
	MsgGameOver = "game_over"
	MsgJoin     = "join"
	MsgAnswer   = "answer"
)

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "ask"
	Kind    string     `json:"kind,omitempty"`
	Prompt  string     `json:"prompt,omitempty"`
	Options []string   `json:"options,omitempty"`
	State   *StateView `json:"state,omitempty"`

	// For "game_over"
	Result string `json:"result,omitempty"`
	Scores []int  `json:"scores,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// StateView is the game state from one seat's perspective.
type StateView struct {
	Turn       int          `json:"turn"`
	Phase      string       `json:"phase"`
	Current    int          `json:"current"`
	Seat       int          `json:"seat"`
	IsYourTurn bool         `json:"is_your_turn"`
	Players    []PlayerView `json:"players"`
	Supply     []PileView   `json:"supply"`
	TrashCount int          `json:"trash_count"`
}

// PlayerView shows one seat's public zones. Hand names are only filled in for
// the viewing seat.
type PlayerView struct {
	Name         string   `json:"name"`
	HandCount    int      `json:"hand_count"`
	Hand         []string `json:"hand,omitempty"`
	DrawCount    int      `json:"draw_count"`
	DiscardCount int      `json:"discard_count"`
	DiscardTop   string   `json:"discard_top,omitempty"`
	InPlay       []string `json:"in_play,omitempty"`
	Actions      int      `json:"actions"`
	Buys         int      `json:"buys"`
	Money        int      `json:"money"`
}

// PileView is one supply pile.
type PileView struct {
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
	Types string `json:"types"`
	Count int    `json:"count"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "join" (initial handshake)
	Name string `json:"name,omitempty"`

	// For "answer"; "" passes.
	Text string `json:"text"`
}

// BuildStateView creates a StateView from the perspective of the given seat.
func BuildStateView(g *game.Game, seat int) *StateView {
	sv := &StateView{
		Turn:       g.Turn,
		Phase:      g.Phase.String(),
		Current:    g.Current,
		Seat:       seat,
		IsYourTurn: g.Current == seat,
		TrashCount: g.Trash.Len(),
	}
	for _, p := range g.Players {
		pv := PlayerView{
			Name:         p.Name,
			HandCount:    p.Hand.Len(),
			DrawCount:    p.Draw.Len(),
			DiscardCount: p.Discard.Len(),
			InPlay:       p.InPlay.Names(),
			Actions:      p.Actions,
			Buys:         p.Buys,
			Money:        p.Money,
		}
		if n := p.Discard.Len(); n > 0 {
			pv.DiscardTop = p.Discard.Get(n - 1).Name()
		}
		if p.Index == seat {
			pv.Hand = p.Hand.Names()
		}
		sv.Players = append(sv.Players, pv)
	}
	for _, name := range g.Supply.Names() {
		pile := g.Supply.Pile(name)
		sv.Supply = append(sv.Supply, PileView{
			Name:  name,
			Cost:  pile.Card.Cost,
			Types: pile.Card.Types.String(),
			Count: pile.Count(),
		})
	}
	return sv
}
