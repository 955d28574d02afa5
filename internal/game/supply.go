package game

import "fmt"

// Pile is one supply pile: a card definition and its remaining instances.
type Pile struct {
	Card  *Card
	cards *Zone
}

// Count returns how many cards remain in the pile.
func (p *Pile) Count() int {
	return p.cards.Len()
}

// Supply is the shared pool of gainable cards, finite per card name.
type Supply struct {
	order []string
	piles map[string]*Pile
}

// NewSupply creates an empty supply.
func NewSupply() *Supply {
	return &Supply{piles: make(map[string]*Pile)}
}

// addPile registers a pile of instances sharing one card definition.
func (s *Supply) addPile(card *Card, cards []*CardInstance) {
	pile := &Pile{Card: card, cards: NewZone(ZoneSupply)}
	for _, c := range cards {
		pile.cards.Add(c)
	}
	if _, ok := s.piles[card.Name]; !ok {
		s.order = append(s.order, card.Name)
	}
	s.piles[card.Name] = pile
}

// Names returns the pile names in setup order (empty piles included).
func (s *Supply) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Pile returns the named pile, or nil if the supply has no such pile.
func (s *Supply) Pile(name string) *Pile {
	return s.piles[name]
}

// Has reports whether the named pile exists and still has cards.
func (s *Supply) Has(name string) bool {
	p := s.piles[name]
	return p != nil && p.Count() > 0
}

// Count returns the number of cards left in the named pile.
func (s *Supply) Count(name string) int {
	if p := s.piles[name]; p != nil {
		return p.Count()
	}
	return 0
}

// Take removes one card from the named pile.
func (s *Supply) Take(name string) (*CardInstance, error) {
	p := s.piles[name]
	if p == nil {
		return nil, fmt.Errorf("%w: %q is not in the supply", ErrUnknownCard, name)
	}
	c := p.cards.TakeTop()
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrSupplyEmpty, name)
	}
	return c, nil
}

// EmptyPiles returns the number of piles with no cards left.
func (s *Supply) EmptyPiles() int {
	n := 0
	for _, name := range s.order {
		if s.piles[name].Count() == 0 {
			n++
		}
	}
	return n
}

// Total returns the number of cards across all piles.
func (s *Supply) Total() int {
	n := 0
	for _, p := range s.piles {
		n += p.Count()
	}
	return n
}

// Gainable returns the names of non-empty piles whose card satisfies match.
func (s *Supply) Gainable(match func(*Card) bool) []string {
	var names []string
	for _, name := range s.order {
		p := s.piles[name]
		if p.Count() == 0 {
			continue
		}
		if match != nil && !match(p.Card) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// supplySize returns the standard pile size for a card at the given player count.
func supplySize(card *Card, players int) int {
	switch card.Name {
	case "Copper":
		return 60 - StartingCoppers*players
	case "Silver":
		return 40
	case "Gold":
		return 30
	case "Curse":
		return 10 * (players - 1)
	}
	if card.Is(TypeVictory) {
		if players <= 2 {
			return 8
		}
		return 12
	}
	return 10
}
