package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// attack applies hit to every other player in seating order, starting after
// the attacker. A victim holding a Reaction that blocks this attack is asked
// whether to reveal it; revealing skips the hit for that victim only.
func (g *Game) attack(ctx context.Context, card *CardInstance, attacker int, hit func(victim *Player) error) error {
	for _, victim := range g.Others(attacker) {
		blocked, err := g.offerReactions(ctx, card.Card, victim)
		if err != nil {
			return err
		}
		if blocked {
			g.log(log.NewAttackBlockedEvent(g.Turn, g.Phase.String(), victim.Index, card.Card.Name))
			continue
		}
		if err := hit(victim); err != nil {
			return err
		}
	}
	return nil
}

// offerReactions asks the victim about each distinct blocking Reaction in
// hand until one is revealed. Returns true if the attack is blocked.
func (g *Game) offerReactions(ctx context.Context, attack *Card, victim *Player) (bool, error) {
	blocks := func(c *Card) bool {
		eff := c.Effect(TypeReaction)
		return c.Is(TypeReaction) && eff != nil && eff.Blocks != nil && eff.Blocks(attack)
	}
	for _, name := range victim.HandNamesMatching(blocks) {
		yes, err := g.askYesNo(ctx, victim.Index,
			fmt.Sprintf("%s is attacked by %s. Reveal %s?", victim.Name, attack.Name, name))
		if err != nil {
			return false, err
		}
		if yes {
			g.log(log.NewReactionEvent(g.Turn, g.Phase.String(), victim.Index, name, attack.Name))
			return true, nil
		}
	}
	return false, nil
}
