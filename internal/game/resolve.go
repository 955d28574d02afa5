package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// resolve runs the card's effect procedure for the given tag on behalf of the
// player. It is reentrant: effects that duplicate or replay other cards call
// back into it, bounded by MaxResolveDepth.
func (g *Game) resolve(ctx context.Context, card *CardInstance, player int, tag CardType) error {
	eff := card.Card.Effect(tag)
	if eff == nil || eff.Resolve == nil {
		return nil
	}
	if g.depth >= MaxResolveDepth {
		return fmt.Errorf("%w: resolving %s at depth %d", ErrRecursionLimit, card.Card.Name, g.depth)
	}
	g.depth++
	defer func() { g.depth-- }()

	if err := ctx.Err(); err != nil {
		return err
	}
	return eff.Resolve(ctx, g, card, player)
}

// replay resolves an Action card again as a sub-effect of source, without
// spending an action or moving the card.
func (g *Game) replay(ctx context.Context, card *CardInstance, player int, source string) error {
	g.log(log.NewReplayEvent(g.Turn, g.Phase.String(), player, card.Card.Name, source))
	return g.resolve(ctx, card, player, TypeAction)
}

// playFromZone moves an Action card from the given zone into play and resolves
// it once without spending an action (Vassal-style play).
func (g *Game) playFromZone(ctx context.Context, card *CardInstance, player int, from *Zone, source string) error {
	p := g.Players[player]
	if !from.Remove(card) {
		return fmt.Errorf("%w: %s is not in %s", ErrInvalidSelection, card.Card.Name, from.Type)
	}
	p.InPlay.Add(card)
	return g.replay(ctx, card, player, source)
}
