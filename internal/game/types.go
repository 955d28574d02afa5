package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseAction
	PhaseBuy
	PhaseCleanup
)

func (p Phase) String() string {
	switch p {
	case PhaseAction:
		return "Action Phase"
	case PhaseBuy:
		return "Buy Phase"
	case PhaseCleanup:
		return "Cleanup"
	default:
		return "None"
	}
}

// CardType is a set of type tags. A card may hold several (e.g. Action|Attack).
type CardType uint8

const (
	TypeTreasure CardType = 1 << iota
	TypeVictory
	TypeCurse
	TypeAction
	TypeAttack
	TypeReaction
)

var typeNames = []struct {
	t    CardType
	name string
}{
	{TypeAction, "Action"},
	{TypeTreasure, "Treasure"},
	{TypeVictory, "Victory"},
	{TypeCurse, "Curse"},
	{TypeAttack, "Attack"},
	{TypeReaction, "Reaction"},
}

func (ct CardType) String() string {
	var parts []string
	for _, tn := range typeNames {
		if ct&tn.t != 0 {
			parts = append(parts, tn.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "-")
}

// Has reports whether every tag in t is present.
func (ct CardType) Has(t CardType) bool {
	return ct&t == t
}

type ZoneType int

const (
	ZoneNone ZoneType = iota
	ZoneDraw
	ZoneHand
	ZoneDiscard
	ZoneInPlay
	ZoneSupply
	ZoneTrash
	ZoneSetAside
)

func (z ZoneType) String() string {
	switch z {
	case ZoneDraw:
		return "Draw Pile"
	case ZoneHand:
		return "Hand"
	case ZoneDiscard:
		return "Discard Pile"
	case ZoneInPlay:
		return "In Play"
	case ZoneSupply:
		return "Supply"
	case ZoneTrash:
		return "Trash"
	case ZoneSetAside:
		return "Set Aside"
	default:
		return "Unknown"
	}
}

// --- Card definition (static, from the registry) ---

type Card struct {
	Name        string
	Description string
	Cost        int
	Types       CardType
	Value       int // money produced when played as a Treasure
	VP          int // printed victory points
	Effects     []*CardEffect

	// Points computes victory points that depend on the owner's deck. When
	// set it replaces VP.
	Points func(owned []*CardInstance) int
}

func (c *Card) String() string {
	return c.Name
}

// Is reports whether the card carries the given type tag.
func (c *Card) Is(t CardType) bool {
	return c.Types.Has(t)
}

// Effect returns the card's effect procedure for the given tag, or nil.
func (c *Card) Effect(tag CardType) *CardEffect {
	for _, eff := range c.Effects {
		if eff.Tag == tag {
			return eff
		}
	}
	return nil
}

// --- CardInstance (runtime card in a zone) ---

type CardInstance struct {
	Card  *Card
	ID    int // unique instance ID within a game
	Owner int // seat index of the owning player, -1 while in the supply
	Zone  ZoneType
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(none)"
	}
	return fmt.Sprintf("%s#%d", ci.Card.Name, ci.ID)
}

// Name returns the card name, tolerating nil.
func (ci *CardInstance) Name() string {
	if ci == nil {
		return ""
	}
	return ci.Card.Name
}
