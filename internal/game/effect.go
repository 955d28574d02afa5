package game

import "context"

// CardEffect is one effect procedure of a card, keyed by the type tag it
// belongs to (Action, Treasure, Reaction).
type CardEffect struct {
	Name string
	Tag  CardType

	// Resolve applies the effect for the acting player. card is the instance
	// being resolved; it may already have left the in-play zone.
	Resolve func(ctx context.Context, g *Game, card *CardInstance, player int) error

	// Blocks reports whether revealing this Reaction cancels the given attack
	// for its holder. Only meaningful for TypeReaction effects.
	Blocks func(attack *Card) bool
}

// MaxResolveDepth bounds nested effect resolution (duplication of duplication).
const MaxResolveDepth = 16
