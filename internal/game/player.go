package game

import (
	"context"

	"github.com/peterkuimelis/kingdom/internal/log"
)

const (
	HandSize        = 5
	StartingCoppers = 7
	StartingEstates = 3
	StartingActions = 1
	StartingBuys    = 1
)

// Player represents one seat's entire state.
type Player struct {
	Index int
	Name  string

	Draw    *Zone // top of the draw pile is index 0
	Hand    *Zone
	Discard *Zone // newest additions at the end
	InPlay  *Zone

	// Turn-scoped counters, reset at the start of each of this player's turns.
	Actions int
	Buys    int
	Money   int

	triggers []*Trigger
	game     *Game
}

func newPlayer(g *Game, index int, name string) *Player {
	return &Player{
		Index:   index,
		Name:    name,
		Draw:    NewZone(ZoneDraw),
		Hand:    NewZone(ZoneHand),
		Discard: NewZone(ZoneDiscard),
		InPlay:  NewZone(ZoneInPlay),
		Actions: StartingActions,
		Buys:    StartingBuys,
		game:    g,
	}
}

// PlayCard plays the first card in hand with the given name.
func (p *Player) PlayCard(ctx context.Context, name string) error {
	return p.game.PlayCard(ctx, p.Index, name)
}

// Buy buys one card from the supply.
func (p *Player) Buy(ctx context.Context, name string) error {
	return p.game.Buy(ctx, p.Index, name)
}

// DrawCards draws up to n cards into hand, reshuffling the discard pile when
// the draw pile runs out. Returns the cards drawn.
func (p *Player) DrawCards(n int) []*CardInstance {
	var drawn []*CardInstance
	for i := 0; i < n; i++ {
		c := p.drawOne()
		if c == nil {
			break
		}
		drawn = append(drawn, c)
	}
	return drawn
}

// drawOne moves the top draw card into hand, or returns nil when both the
// draw and discard piles are empty.
func (p *Player) drawOne() *CardInstance {
	c := p.topOfDeck()
	if c == nil {
		return nil
	}
	moveCard(c, p.Draw, p.Hand)
	p.game.log(log.NewDrawEvent(p.game.Turn, p.game.Phase.String(), p.Index, c.Card.Name))
	return c
}

// topOfDeck returns the top card of the draw pile without moving it,
// reshuffling the discard pile first if the draw pile is empty.
func (p *Player) topOfDeck() *CardInstance {
	if p.Draw.Len() == 0 && !p.reshuffle() {
		return nil
	}
	return p.Draw.Top()
}

// reshuffle turns the discard pile into a new shuffled draw pile. Returns
// false if there was nothing to shuffle.
func (p *Player) reshuffle() bool {
	if p.Discard.Len() == 0 {
		return false
	}
	for _, c := range p.Discard.TakeAll() {
		p.Draw.Add(c)
	}
	p.game.shuffleZone(p.Draw)
	p.game.log(log.NewShuffleEvent(p.game.Turn, p.game.Phase.String(), p.Index, p.Draw.Len()))
	return true
}

// ensureDraw makes sure at least n cards are in the draw pile when possible by
// shuffling the discard pile under the remaining draw cards.
func (p *Player) ensureDraw(n int) {
	if p.Draw.Len() >= n || p.Discard.Len() == 0 {
		return
	}
	p.game.shuffleZone(p.Discard)
	p.game.log(log.NewShuffleEvent(p.game.Turn, p.game.Phase.String(), p.Index, p.Discard.Len()))
	for _, c := range p.Discard.TakeAll() {
		p.Draw.Add(c)
	}
}

// ShuffleDeck randomizes the draw pile order.
func (p *Player) ShuffleDeck() {
	p.game.shuffleZone(p.Draw)
}

// AllCards returns every card this player currently owns across all zones.
func (p *Player) AllCards() []*CardInstance {
	var all []*CardInstance
	all = append(all, p.Draw.cards...)
	all = append(all, p.Hand.cards...)
	all = append(all, p.Discard.cards...)
	all = append(all, p.InPlay.cards...)
	return all
}

// CardCount returns the number of cards across all four zones.
func (p *Player) CardCount() int {
	return p.Draw.Len() + p.Hand.Len() + p.Discard.Len() + p.InPlay.Len()
}

// VictoryPoints totals the victory points of every card the player owns.
func (p *Player) VictoryPoints() int {
	owned := p.AllCards()
	vp := 0
	for _, c := range owned {
		if c.Card.Points != nil {
			vp += c.Card.Points(owned)
			continue
		}
		vp += c.Card.VP
	}
	return vp
}

// HasInHand reports whether the hand holds any card matching the predicate.
func (p *Player) HasInHand(match func(*Card) bool) bool {
	for _, c := range p.Hand.cards {
		if match(c.Card) {
			return true
		}
	}
	return false
}

// HandNamesMatching returns the distinct names of hand cards matching the predicate,
// in hand order.
func (p *Player) HandNamesMatching(match func(*Card) bool) []string {
	return distinctNames(p.Hand.cards, match)
}

// Triggers returns the pending one-turn triggers installed this turn.
func (p *Player) Triggers() []*Trigger {
	return p.triggers
}

// resetTurn resets the turn-scoped counters and clears pending triggers.
func (p *Player) resetTurn() {
	p.Actions = StartingActions
	p.Buys = StartingBuys
	p.Money = 0
	p.triggers = nil
}

func distinctNames(cards []*CardInstance, match func(*Card) bool) []string {
	var names []string
	seen := make(map[string]bool)
	for _, c := range cards {
		if match != nil && !match(c.Card) {
			continue
		}
		if !seen[c.Card.Name] {
			seen[c.Card.Name] = true
			names = append(names, c.Card.Name)
		}
	}
	return names
}
