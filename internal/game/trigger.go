package game

import (
	"context"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// Trigger is a one-turn conditional effect installed by a card. It watches
// the player's later plays this turn and fires at most once.
type Trigger struct {
	Source *CardInstance // card that installed the trigger
	Player int

	// Match reports whether a card played later this turn fires the trigger.
	Match func(played *CardInstance) bool

	// Fire applies the trigger's effect.
	Fire func(ctx context.Context, g *Game, played *CardInstance) error

	fired bool
}

// Fired reports whether the trigger has already fired this turn.
func (t *Trigger) Fired() bool {
	return t.fired
}

// installTrigger attaches a trigger to the player's pending set. The set is
// cleared at cleanup.
func (g *Game) installTrigger(player int, t *Trigger) {
	t.Player = player
	p := g.Players[player]
	p.triggers = append(p.triggers, t)
}

// fireTriggers fires every unfired pending trigger of the player that matches
// the card just played.
func (g *Game) fireTriggers(ctx context.Context, player int, played *CardInstance) error {
	for _, t := range g.Players[player].triggers {
		if t.fired || !t.Match(played) {
			continue
		}
		t.fired = true
		g.log(log.NewTriggerEvent(g.Turn, g.Phase.String(), player, t.Source.Card.Name,
			"triggered by "+played.Card.Name))
		if err := t.Fire(ctx, g, played); err != nil {
			return err
		}
	}
	return nil
}
