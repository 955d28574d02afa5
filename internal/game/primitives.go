package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// --- Counters ---

func (g *Game) addActions(player, n int) {
	p := g.Players[player]
	p.Actions += n
	g.log(log.NewCounterEvent(g.Turn, g.Phase.String(), player, log.EventActions, n, p.Actions))
}

func (g *Game) addBuys(player, n int) {
	p := g.Players[player]
	p.Buys += n
	g.log(log.NewCounterEvent(g.Turn, g.Phase.String(), player, log.EventBuys, n, p.Buys))
}

func (g *Game) addMoney(player, n int) {
	p := g.Players[player]
	p.Money += n
	g.log(log.NewCounterEvent(g.Turn, g.Phase.String(), player, log.EventMoney, n, p.Money))
}

func (g *Game) drawCards(player, n int) []*CardInstance {
	return g.Players[player].DrawCards(n)
}

// --- Zone transfers ---
//
// Each transfer removes the exact instance from its source and inserts it into
// the destination. A card missing from the source is never inserted.

// moveCard moves card from one zone to another, appending at the end.
func moveCard(card *CardInstance, from, to *Zone) bool {
	if !from.Remove(card) {
		return false
	}
	to.Add(card)
	return true
}

// trash moves a card from the given zone to the trash.
func (g *Game) trash(player int, card *CardInstance, from *Zone) bool {
	if !moveCard(card, from, g.Trash) {
		return false
	}
	g.log(log.NewTrashEvent(g.Turn, g.Phase.String(), player, card.Card.Name, from.Type.String()))
	return true
}

// discard moves a card from the given zone to the player's discard pile.
func (g *Game) discard(player int, card *CardInstance, from *Zone) bool {
	if !moveCard(card, from, g.Players[player].Discard) {
		return false
	}
	g.log(log.NewDiscardEvent(g.Turn, g.Phase.String(), player, card.Card.Name))
	return true
}

// topDeck moves a card from the given zone onto the player's draw pile.
func (g *Game) topDeck(player int, card *CardInstance, from *Zone) bool {
	if !from.Remove(card) {
		return false
	}
	g.Players[player].Draw.AddAtTop(card)
	g.log(log.NewTopDeckEvent(g.Turn, g.Phase.String(), player, card.Card.Name, from.Type.String()))
	return true
}

// toHand moves a card from the given zone into the player's hand.
func (g *Game) toHand(player int, card *CardInstance, from *Zone, reason string) bool {
	if !moveCard(card, from, g.Players[player].Hand) {
		return false
	}
	g.log(log.NewAddToHandEvent(g.Turn, g.Phase.String(), player, card.Card.Name, reason))
	return true
}

// gain takes one card from the supply and puts it into the player's zone of
// type dest (discard pile, hand, or top of the draw pile). An empty pile is a
// no-op that returns nil without error.
func (g *Game) gain(player int, name string, dest ZoneType) (*CardInstance, error) {
	card, err := g.Supply.Take(name)
	if err != nil {
		if errors.Is(err, ErrSupplyEmpty) {
			g.log(log.NewSupplyEmptyEvent(g.Turn, g.Phase.String(), player, name))
			return nil, nil
		}
		return nil, err
	}
	p := g.Players[player]
	card.Owner = player
	switch dest {
	case ZoneHand:
		p.Hand.Add(card)
	case ZoneDraw:
		p.Draw.AddAtTop(card)
	default:
		p.Discard.Add(card)
	}
	g.log(log.NewGainEvent(g.Turn, g.Phase.String(), player, name, card.Zone.String()))
	return card, nil
}

// reveal logs each card as revealed by the player.
func (g *Game) reveal(player int, cards ...*CardInstance) {
	for _, c := range cards {
		g.log(log.NewRevealEvent(g.Turn, g.Phase.String(), player, c.Card.Name))
	}
}

// --- Decisions ---

// askYesNo asks the player a yes/no question.
func (g *Game) askYesNo(ctx context.Context, player int, text string) (bool, error) {
	answer, err := g.ask(ctx, Prompt{
		Kind:    PromptYesNo,
		Player:  player,
		Text:    text,
		Options: []string{"y", "n"},
	})
	if err != nil {
		return false, err
	}
	return IsYes(answer), nil
}

// choose asks the player to name one of options. An answer outside options
// is an invalid selection and the question is asked again. When allowPass is
// set, "" is accepted and returned as is. With no options it returns "" without
// asking.
func (g *Game) choose(ctx context.Context, kind PromptKind, player int, text string, options []string, allowPass bool) (string, error) {
	if len(options) == 0 {
		return "", nil
	}
	for {
		answer, err := g.ask(ctx, Prompt{
			Kind:    kind,
			Player:  player,
			Text:    text,
			Options: options,
		})
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" && allowPass {
			return "", nil
		}
		if name, ok := matchOption(options, answer); ok {
			return name, nil
		}
	}
}

// chooseName asks the player to name a card among options.
func (g *Game) chooseName(ctx context.Context, player int, text string, options []string, allowPass bool) (string, error) {
	return g.choose(ctx, PromptCard, player, text, options, allowPass)
}

// chooseFromZone asks the player to name a card in zone among those matching
// the predicate and returns that instance, or nil on a pass.
func (g *Game) chooseFromZone(ctx context.Context, player int, text string, zone *Zone, match func(*Card) bool, allowPass bool) (*CardInstance, error) {
	name, err := g.chooseName(ctx, player, text, distinctNames(zone.cards, match), allowPass)
	if err != nil || name == "" {
		return nil, err
	}
	return zone.Find(name), nil
}

// chooseGain asks the player to name a supply pile whose card satisfies match
// and gains it to dest. Returns nil when nothing qualifies.
func (g *Game) chooseGain(ctx context.Context, player int, text string, match func(*Card) bool, dest ZoneType) (*CardInstance, error) {
	name, err := g.chooseName(ctx, player, text, g.Supply.Gainable(match), false)
	if err != nil || name == "" {
		return nil, err
	}
	return g.gain(player, name, dest)
}

// costUpTo matches cards costing at most n.
func costUpTo(n int) func(*Card) bool {
	return func(c *Card) bool { return c.Cost <= n }
}

func isType(t CardType) func(*Card) bool {
	return func(c *Card) bool { return c.Is(t) }
}

// matchOption returns the option equal to answer, ignoring case.
func matchOption(options []string, answer string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, answer) {
			return o, true
		}
	}
	return "", false
}

func cardList(cards []*CardInstance) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Card.Name
	}
	return fmt.Sprintf("[%s]", strings.Join(names, ", "))
}
