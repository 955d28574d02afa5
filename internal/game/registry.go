package game

import (
	"fmt"
	"sort"
)

// CardRegistry maps card names to their constructor functions.
var CardRegistry = map[string]func() *Card{
	"Copper":   Copper,
	"Silver":   Silver,
	"Gold":     Gold,
	"Estate":   Estate,
	"Duchy":    Duchy,
	"Province": Province,
	"Curse":    Curse,

	"Artisan":      Artisan,
	"Bandit":       Bandit,
	"Bureaucrat":   Bureaucrat,
	"Cellar":       Cellar,
	"Chapel":       Chapel,
	"Council Room": CouncilRoom,
	"Festival":     Festival,
	"Gardens":      Gardens,
	"Harbinger":    Harbinger,
	"Laboratory":   Laboratory,
	"Library":      Library,
	"Market":       Market,
	"Merchant":     Merchant,
	"Militia":      Militia,
	"Mine":         Mine,
	"Moat":         Moat,
	"Moneylender":  Moneylender,
	"Poacher":      Poacher,
	"Remodel":      Remodel,
	"Sentry":       Sentry,
	"Smithy":       Smithy,
	"Throne Room":  ThroneRoom,
	"Vassal":       Vassal,
	"Village":      Village,
	"Witch":        Witch,
	"Workshop":     Workshop,
}

// BasicCards are in every game's supply, in display order.
var BasicCards = []string{"Copper", "Silver", "Gold", "Estate", "Duchy", "Province", "Curse"}

// FirstGame is the recommended kingdom for a first game.
var FirstGame = []string{
	"Cellar", "Market", "Merchant", "Militia", "Mine",
	"Moat", "Remodel", "Smithy", "Village", "Workshop",
}

// LookupCard returns a new Card for the given name.
func LookupCard(name string) (*Card, error) {
	ctor, ok := CardRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, name)
	}
	return ctor(), nil
}

// MustLookupCard is LookupCard for names known at compile time. It panics if
// the card is not registered.
func MustLookupCard(name string) *Card {
	card, err := LookupCard(name)
	if err != nil {
		panic(err)
	}
	return card
}

// IsBasic reports whether the card is part of every supply.
func IsBasic(name string) bool {
	for _, b := range BasicCards {
		if b == name {
			return true
		}
	}
	return false
}

// KingdomCardNames returns every registered kingdom card name, sorted.
func KingdomCardNames() []string {
	var names []string
	for name := range CardRegistry {
		if !IsBasic(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
