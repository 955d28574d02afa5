package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// --- Basic cards ---

func treasureEffect(name string) *CardEffect {
	return &CardEffect{
		Name: name,
		Tag:  TypeTreasure,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.addMoney(player, card.Card.Value)
			return nil
		},
	}
}

// Copper: Treasure worth 1.
func Copper() *Card {
	return &Card{
		Name:        "Copper",
		Description: "$1",
		Cost:        0,
		Types:       TypeTreasure,
		Value:       1,
		Effects:     []*CardEffect{treasureEffect("Copper")},
	}
}

// Silver: Treasure worth 2.
func Silver() *Card {
	return &Card{
		Name:        "Silver",
		Description: "$2",
		Cost:        3,
		Types:       TypeTreasure,
		Value:       2,
		Effects:     []*CardEffect{treasureEffect("Silver")},
	}
}

// Gold: Treasure worth 3.
func Gold() *Card {
	return &Card{
		Name:        "Gold",
		Description: "$3",
		Cost:        6,
		Types:       TypeTreasure,
		Value:       3,
		Effects:     []*CardEffect{treasureEffect("Gold")},
	}
}

func Estate() *Card {
	return &Card{Name: "Estate", Description: "1 VP", Cost: 2, Types: TypeVictory, VP: 1}
}

func Duchy() *Card {
	return &Card{Name: "Duchy", Description: "3 VP", Cost: 5, Types: TypeVictory, VP: 3}
}

func Province() *Card {
	return &Card{Name: "Province", Description: "6 VP", Cost: 8, Types: TypeVictory, VP: 6}
}

func Curse() *Card {
	return &Card{Name: "Curse", Description: "-1 VP", Cost: 0, Types: TypeCurse, VP: -1}
}

// Gardens: Victory. Worth 1 VP per 10 cards you own (round down).
func Gardens() *Card {
	return &Card{
		Name:        "Gardens",
		Description: "Worth 1 VP per 10 cards you have (round down).",
		Cost:        4,
		Types:       TypeVictory,
		Points: func(owned []*CardInstance) int {
			return len(owned) / 10
		},
	}
}

// --- Cost 2 ---

// Cellar: +1 Action. Discard any number of cards, then draw that many.
func Cellar() *Card {
	eff := &CardEffect{
		Name: "Cellar",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			g.addActions(player, 1)
			discarded := 0
			for p.Hand.Len() > 0 {
				c, err := g.chooseFromZone(ctx, player, "Discard a card to draw one later (or pass)", p.Hand, nil, true)
				if err != nil {
					return err
				}
				if c == nil {
					break
				}
				g.discard(player, c, p.Hand)
				discarded++
			}
			g.drawCards(player, discarded)
			return nil
		},
	}
	return &Card{
		Name:        "Cellar",
		Description: "+1 Action. Discard any number of cards, then draw that many.",
		Cost:        2,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Chapel: Trash up to 4 cards from your hand.
func Chapel() *Card {
	eff := &CardEffect{
		Name: "Chapel",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			for i := 0; i < 4 && p.Hand.Len() > 0; i++ {
				c, err := g.chooseFromZone(ctx, player,
					fmt.Sprintf("Trash a card from your hand (%d left, or pass)", 4-i), p.Hand, nil, true)
				if err != nil {
					return err
				}
				if c == nil {
					break
				}
				g.trash(player, c, p.Hand)
			}
			return nil
		},
	}
	return &Card{
		Name:        "Chapel",
		Description: "Trash up to 4 cards from your hand.",
		Cost:        2,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Moat: +2 Cards. Reaction: reveal it from hand when another player plays an
// Attack to be unaffected by it.
func Moat() *Card {
	action := &CardEffect{
		Name: "Moat",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 2)
			return nil
		},
	}
	reaction := &CardEffect{
		Name: "Moat",
		Tag:  TypeReaction,
		Blocks: func(attack *Card) bool {
			return attack.Is(TypeAttack)
		},
	}
	return &Card{
		Name:        "Moat",
		Description: "+2 Cards. When another player plays an Attack card, you may first reveal this from your hand, to be unaffected by it.",
		Cost:        2,
		Types:       TypeAction | TypeReaction,
		Effects:     []*CardEffect{action, reaction},
	}
}

// --- Cost 3 ---

// Harbinger: +1 Card, +1 Action. You may put a card from your discard pile
// onto your deck.
func Harbinger() *Card {
	eff := &CardEffect{
		Name: "Harbinger",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			g.drawCards(player, 1)
			g.addActions(player, 1)
			c, err := g.chooseFromZone(ctx, player, "Put a card from your discard pile onto your deck (or pass)", p.Discard, nil, true)
			if err != nil || c == nil {
				return err
			}
			g.topDeck(player, c, p.Discard)
			return nil
		},
	}
	return &Card{
		Name:        "Harbinger",
		Description: "+1 Card, +1 Action. Look through your discard pile. You may put a card from it onto your deck.",
		Cost:        3,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Merchant: +1 Card, +1 Action. The first time you play a Silver this turn, +$1.
func Merchant() *Card {
	eff := &CardEffect{
		Name: "Merchant",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 1)
			g.addActions(player, 1)
			g.installTrigger(player, &Trigger{
				Source: card,
				Match: func(played *CardInstance) bool {
					return played.Card.Name == "Silver"
				},
				Fire: func(ctx context.Context, g *Game, played *CardInstance) error {
					g.addMoney(player, 1)
					return nil
				},
			})
			return nil
		},
	}
	return &Card{
		Name:        "Merchant",
		Description: "+1 Card, +1 Action. The first time you play a Silver this turn, +$1.",
		Cost:        3,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Vassal: +$2. Discard the top card of your deck. If it's an Action card,
// you may play it.
func Vassal() *Card {
	eff := &CardEffect{
		Name: "Vassal",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			g.addMoney(player, 2)
			top := p.topOfDeck()
			if top == nil {
				return nil
			}
			g.discard(player, top, p.Draw)
			if !top.Card.Is(TypeAction) {
				return nil
			}
			yes, err := g.askYesNo(ctx, player, fmt.Sprintf("Play the discarded %s?", top.Card.Name))
			if err != nil || !yes {
				return err
			}
			return g.playFromZone(ctx, top, player, p.Discard, "Vassal")
		},
	}
	return &Card{
		Name:        "Vassal",
		Description: "+$2. Discard the top card of your deck. If it's an Action card, you may play it.",
		Cost:        3,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Village: +1 Card, +2 Actions.
func Village() *Card {
	eff := &CardEffect{
		Name: "Village",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 1)
			g.addActions(player, 2)
			return nil
		},
	}
	return &Card{
		Name:        "Village",
		Description: "+1 Card, +2 Actions.",
		Cost:        3,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Workshop: Gain a card costing up to $4.
func Workshop() *Card {
	eff := &CardEffect{
		Name: "Workshop",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			_, err := g.chooseGain(ctx, player, "Gain a card costing up to $4", costUpTo(4), ZoneDiscard)
			return err
		},
	}
	return &Card{
		Name:        "Workshop",
		Description: "Gain a card costing up to $4.",
		Cost:        3,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// --- Cost 4 ---

// Bureaucrat: Attack. Gain a Silver onto your deck. Each other player reveals
// a Victory card from their hand and puts it onto their deck (or reveals a
// hand with no Victory cards).
func Bureaucrat() *Card {
	eff := &CardEffect{
		Name: "Bureaucrat",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			if _, err := g.gain(player, "Silver", ZoneDraw); err != nil {
				return err
			}
			return g.attack(ctx, card, player, func(victim *Player) error {
				victories := victim.HandNamesMatching(isType(TypeVictory))
				if len(victories) == 0 {
					g.reveal(victim.Index, victim.Hand.Cards()...)
					return nil
				}
				name := victories[0]
				if len(victories) > 1 {
					var err error
					name, err = g.chooseName(ctx, victim.Index, "Put a Victory card from your hand onto your deck", victories, false)
					if err != nil {
						return err
					}
				}
				c := victim.Hand.Find(name)
				g.reveal(victim.Index, c)
				g.topDeck(victim.Index, c, victim.Hand)
				return nil
			})
		},
	}
	return &Card{
		Name:        "Bureaucrat",
		Description: "Gain a Silver onto your deck. Each other player reveals a Victory card from their hand and puts it onto their deck (or reveals a hand with no Victory cards).",
		Cost:        4,
		Types:       TypeAction | TypeAttack,
		Effects:     []*CardEffect{eff},
	}
}

// Militia: Attack. +$2. Each other player discards down to 3 cards in hand.
func Militia() *Card {
	eff := &CardEffect{
		Name: "Militia",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.addMoney(player, 2)
			return g.attack(ctx, card, player, func(victim *Player) error {
				for victim.Hand.Len() > 3 {
					c, err := g.chooseFromZone(ctx, victim.Index,
						fmt.Sprintf("Discard down to 3 cards (%d in hand)", victim.Hand.Len()), victim.Hand, nil, false)
					if err != nil {
						return err
					}
					g.discard(victim.Index, c, victim.Hand)
				}
				return nil
			})
		},
	}
	return &Card{
		Name:        "Militia",
		Description: "+$2. Each other player discards down to 3 cards in hand.",
		Cost:        4,
		Types:       TypeAction | TypeAttack,
		Effects:     []*CardEffect{eff},
	}
}

// Moneylender: You may trash a Copper from your hand for +$3.
func Moneylender() *Card {
	eff := &CardEffect{
		Name: "Moneylender",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			copper := p.Hand.Find("Copper")
			if copper == nil {
				return nil
			}
			yes, err := g.askYesNo(ctx, player, "Trash a Copper for +$3?")
			if err != nil || !yes {
				return err
			}
			g.trash(player, copper, p.Hand)
			g.addMoney(player, 3)
			return nil
		},
	}
	return &Card{
		Name:        "Moneylender",
		Description: "You may trash a Copper from your hand for +$3.",
		Cost:        4,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Poacher: +1 Card, +1 Action, +$1. Discard a card per empty Supply pile.
func Poacher() *Card {
	eff := &CardEffect{
		Name: "Poacher",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			g.drawCards(player, 1)
			g.addActions(player, 1)
			g.addMoney(player, 1)
			for i := g.Supply.EmptyPiles(); i > 0 && p.Hand.Len() > 0; i-- {
				c, err := g.chooseFromZone(ctx, player,
					fmt.Sprintf("Discard a card (%d more)", i), p.Hand, nil, false)
				if err != nil {
					return err
				}
				g.discard(player, c, p.Hand)
			}
			return nil
		},
	}
	return &Card{
		Name:        "Poacher",
		Description: "+1 Card, +1 Action, +$1. Discard a card per empty Supply pile.",
		Cost:        4,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Remodel: Trash a card from your hand. Gain a card costing up to $2 more than it.
func Remodel() *Card {
	eff := &CardEffect{
		Name: "Remodel",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			c, err := g.chooseFromZone(ctx, player, "Trash a card from your hand", p.Hand, nil, false)
			if err != nil || c == nil {
				return err
			}
			g.trash(player, c, p.Hand)
			limit := c.Card.Cost + 2
			_, err = g.chooseGain(ctx, player, fmt.Sprintf("Gain a card costing up to $%d", limit), costUpTo(limit), ZoneDiscard)
			return err
		},
	}
	return &Card{
		Name:        "Remodel",
		Description: "Trash a card from your hand. Gain a card costing up to $2 more than it.",
		Cost:        4,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Smithy: +3 Cards.
func Smithy() *Card {
	eff := &CardEffect{
		Name: "Smithy",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 3)
			return nil
		},
	}
	return &Card{
		Name:        "Smithy",
		Description: "+3 Cards.",
		Cost:        4,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// ThroneRoom: You may play an Action card from your hand twice.
func ThroneRoom() *Card {
	eff := &CardEffect{
		Name: "Throne Room",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			target, err := g.chooseFromZone(ctx, player, "Choose an Action card to play twice (or pass)", p.Hand, isType(TypeAction), true)
			if err != nil || target == nil {
				return err
			}
			moveCard(target, p.Hand, p.InPlay)
			g.log(log.NewPlayEvent(g.Turn, g.Phase.String(), player, target.Card.Name))
			for i := 0; i < 2; i++ {
				if err := g.replay(ctx, target, player, "Throne Room"); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return &Card{
		Name:        "Throne Room",
		Description: "You may play an Action card from your hand twice.",
		Cost:        4,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// --- Cost 5 ---

// Bandit: Attack. Gain a Gold. Each other player reveals the top 2 cards of
// their deck, trashes a revealed Treasure other than Copper, and discards the rest.
func Bandit() *Card {
	eff := &CardEffect{
		Name: "Bandit",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			if _, err := g.gain(player, "Gold", ZoneDiscard); err != nil {
				return err
			}
			return g.attack(ctx, card, player, func(victim *Player) error {
				victim.ensureDraw(2)
				var revealed []*CardInstance
				for i := 0; i < 2 && i < victim.Draw.Len(); i++ {
					revealed = append(revealed, victim.Draw.Get(i))
				}
				g.reveal(victim.Index, revealed...)

				valuable := distinctNames(revealed, func(c *Card) bool {
					return c.Is(TypeTreasure) && c.Name != "Copper"
				})
				var trashed *CardInstance
				if len(valuable) > 0 {
					name := valuable[0]
					if len(valuable) > 1 {
						var err error
						name, err = g.chooseName(ctx, victim.Index, "Trash one of your revealed Treasures", valuable, false)
						if err != nil {
							return err
						}
					}
					trashed = findByName(revealed, name)
					g.trash(victim.Index, trashed, victim.Draw)
				}
				for _, c := range revealed {
					if c != trashed {
						g.discard(victim.Index, c, victim.Draw)
					}
				}
				return nil
			})
		},
	}
	return &Card{
		Name:        "Bandit",
		Description: "Gain a Gold. Each other player reveals the top 2 cards of their deck, trashes a revealed Treasure other than Copper, and discards the rest.",
		Cost:        5,
		Types:       TypeAction | TypeAttack,
		Effects:     []*CardEffect{eff},
	}
}

// CouncilRoom: +4 Cards, +1 Buy. Each other player draws a card.
func CouncilRoom() *Card {
	eff := &CardEffect{
		Name: "Council Room",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 4)
			g.addBuys(player, 1)
			for _, other := range g.Others(player) {
				other.DrawCards(1)
			}
			return nil
		},
	}
	return &Card{
		Name:        "Council Room",
		Description: "+4 Cards, +1 Buy. Each other player draws a card.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Festival: +2 Actions, +1 Buy, +$2.
func Festival() *Card {
	eff := &CardEffect{
		Name: "Festival",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.addActions(player, 2)
			g.addBuys(player, 1)
			g.addMoney(player, 2)
			return nil
		},
	}
	return &Card{
		Name:        "Festival",
		Description: "+2 Actions, +1 Buy, +$2.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Laboratory: +2 Cards, +1 Action.
func Laboratory() *Card {
	eff := &CardEffect{
		Name: "Laboratory",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 2)
			g.addActions(player, 1)
			return nil
		},
	}
	return &Card{
		Name:        "Laboratory",
		Description: "+2 Cards, +1 Action.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Library: Draw until you have 7 cards in hand, skipping any Action cards you
// choose to; set those aside, discarding them afterwards.
func Library() *Card {
	eff := &CardEffect{
		Name: "Library",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			aside := NewZone(ZoneSetAside)
			for p.Hand.Len() < 7 {
				top := p.topOfDeck()
				if top == nil {
					break
				}
				if top.Card.Is(TypeAction) {
					skip, err := g.askYesNo(ctx, player, fmt.Sprintf("Set aside %s?", top.Card.Name))
					if err != nil {
						return err
					}
					if skip {
						moveCard(top, p.Draw, aside)
						g.log(log.NewSetAsideEvent(g.Turn, g.Phase.String(), player, top.Card.Name))
						continue
					}
				}
				p.drawOne()
			}
			for _, c := range aside.Cards() {
				g.discard(player, c, aside)
			}
			return nil
		},
	}
	return &Card{
		Name:        "Library",
		Description: "Draw until you have 7 cards in hand, skipping any Action cards you choose to; set those aside, discarding them afterwards.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Market: +1 Card, +1 Action, +1 Buy, +$1.
func Market() *Card {
	eff := &CardEffect{
		Name: "Market",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 1)
			g.addActions(player, 1)
			g.addBuys(player, 1)
			g.addMoney(player, 1)
			return nil
		},
	}
	return &Card{
		Name:        "Market",
		Description: "+1 Card, +1 Action, +1 Buy, +$1.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Mine: You may trash a Treasure from your hand. Gain a Treasure to your hand
// costing up to $3 more than it.
func Mine() *Card {
	eff := &CardEffect{
		Name: "Mine",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			c, err := g.chooseFromZone(ctx, player, "Trash a Treasure from your hand (or pass)", p.Hand, isType(TypeTreasure), true)
			if err != nil || c == nil {
				return err
			}
			g.trash(player, c, p.Hand)
			limit := c.Card.Cost + 3
			_, err = g.chooseGain(ctx, player, fmt.Sprintf("Gain a Treasure costing up to $%d to your hand", limit),
				func(cd *Card) bool { return cd.Is(TypeTreasure) && cd.Cost <= limit }, ZoneHand)
			return err
		},
	}
	return &Card{
		Name:        "Mine",
		Description: "You may trash a Treasure from your hand. Gain a Treasure to your hand costing up to $3 more than it.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Sentry: +1 Card, +1 Action. Look at the top 2 cards of your deck. Trash
// and/or discard any number of them. Put the rest back on top in any order.
func Sentry() *Card {
	eff := &CardEffect{
		Name: "Sentry",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			g.drawCards(player, 1)
			g.addActions(player, 1)

			p.ensureDraw(2)
			var looked []*CardInstance
			for i := 0; i < 2 && i < p.Draw.Len(); i++ {
				looked = append(looked, p.Draw.Get(i))
			}

			// Looked-at cards stay in the draw pile until each is moved.
			pick := func(text string) (*CardInstance, error) {
				name, err := g.chooseName(ctx, player, text, distinctNames(looked, nil), true)
				if err != nil || name == "" {
					return nil, err
				}
				c := findByName(looked, name)
				looked = removeInstance(looked, c)
				return c, nil
			}

			for len(looked) > 0 {
				c, err := pick(fmt.Sprintf("Trash one of %s (or pass)", cardList(looked)))
				if err != nil {
					return err
				}
				if c == nil {
					break
				}
				g.trash(player, c, p.Draw)
			}
			for len(looked) > 0 {
				c, err := pick(fmt.Sprintf("Discard one of %s (or pass)", cardList(looked)))
				if err != nil {
					return err
				}
				if c == nil {
					break
				}
				g.discard(player, c, p.Draw)
			}

			// Cards go back one at a time, each onto the top: the last one
			// placed is drawn first. A pass keeps the rest in their current
			// relative order, above the named ones.
			var order []*CardInstance
			for len(looked) > 1 {
				c, err := pick(fmt.Sprintf("Put back next, under the ones after it: %s (or pass to keep their order)", cardList(looked)))
				if err != nil {
					return err
				}
				if c == nil {
					break
				}
				order = append(order, c)
			}
			for i := len(looked) - 1; i >= 0; i-- {
				order = append(order, looked[i])
			}
			for _, c := range order {
				p.Draw.Remove(c)
				p.Draw.AddAtTop(c)
			}
			return nil
		},
	}
	return &Card{
		Name:        "Sentry",
		Description: "+1 Card, +1 Action. Look at the top 2 cards of your deck. Trash and/or discard any number of them. Put the rest back on top in any order.",
		Cost:        5,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// Witch: Attack. +2 Cards. Each other player gains a Curse.
func Witch() *Card {
	eff := &CardEffect{
		Name: "Witch",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			g.drawCards(player, 2)
			return g.attack(ctx, card, player, func(victim *Player) error {
				_, err := g.gain(victim.Index, "Curse", ZoneDiscard)
				return err
			})
		},
	}
	return &Card{
		Name:        "Witch",
		Description: "+2 Cards. Each other player gains a Curse.",
		Cost:        5,
		Types:       TypeAction | TypeAttack,
		Effects:     []*CardEffect{eff},
	}
}

// --- Cost 6 ---

// Artisan: Gain a card to your hand costing up to $5. Put a card from your
// hand onto your deck.
func Artisan() *Card {
	eff := &CardEffect{
		Name: "Artisan",
		Tag:  TypeAction,
		Resolve: func(ctx context.Context, g *Game, card *CardInstance, player int) error {
			p := g.Players[player]
			if _, err := g.chooseGain(ctx, player, "Gain a card costing up to $5 to your hand", costUpTo(5), ZoneHand); err != nil {
				return err
			}
			c, err := g.chooseFromZone(ctx, player, "Put a card from your hand onto your deck", p.Hand, nil, false)
			if err != nil || c == nil {
				return err
			}
			g.topDeck(player, c, p.Hand)
			return nil
		},
	}
	return &Card{
		Name:        "Artisan",
		Description: "Gain a card to your hand costing up to $5. Put a card from your hand onto your deck.",
		Cost:        6,
		Types:       TypeAction,
		Effects:     []*CardEffect{eff},
	}
}

// --- helpers ---

func findByName(cards []*CardInstance, name string) *CardInstance {
	for _, c := range cards {
		if c.Card.Name == name {
			return c
		}
	}
	return nil
}

func removeInstance(cards []*CardInstance, card *CardInstance) []*CardInstance {
	out := cards[:0:0]
	for _, c := range cards {
		if c != card {
			out = append(out, c)
		}
	}
	return out
}
