package game

// Zone is an ordered sequence of card instances. For a draw pile index 0 is
// the top card.
type Zone struct {
	Type  ZoneType
	cards []*CardInstance
}

// NewZone creates an empty zone of the given type.
func NewZone(t ZoneType) *Zone {
	return &Zone{Type: t}
}

// Len returns the number of cards in the zone.
func (z *Zone) Len() int {
	return len(z.cards)
}

// Cards returns a copy of the zone contents in order.
func (z *Zone) Cards() []*CardInstance {
	out := make([]*CardInstance, len(z.cards))
	copy(out, z.cards)
	return out
}

// Names returns the card names in order.
func (z *Zone) Names() []string {
	names := make([]string, len(z.cards))
	for i, c := range z.cards {
		names[i] = c.Card.Name
	}
	return names
}

// Add appends a card to the end of the zone.
func (z *Zone) Add(card *CardInstance) {
	card.Zone = z.Type
	z.cards = append(z.cards, card)
}

// AddAtTop inserts a card at index 0 (the top of a draw pile).
func (z *Zone) AddAtTop(card *CardInstance) {
	card.Zone = z.Type
	z.cards = append(z.cards, nil)
	copy(z.cards[1:], z.cards)
	z.cards[0] = card
}

// Insert places a card at position i, clamped to the zone bounds.
func (z *Zone) Insert(i int, card *CardInstance) {
	if i <= 0 {
		z.AddAtTop(card)
		return
	}
	if i >= len(z.cards) {
		z.Add(card)
		return
	}
	card.Zone = z.Type
	z.cards = append(z.cards, nil)
	copy(z.cards[i+1:], z.cards[i:])
	z.cards[i] = card
}

// Get returns the card at index i, or nil if out of range.
func (z *Zone) Get(i int) *CardInstance {
	if i < 0 || i >= len(z.cards) {
		return nil
	}
	return z.cards[i]
}

// Top returns the top card without removing it, or nil.
func (z *Zone) Top() *CardInstance {
	return z.Get(0)
}

// Contains reports whether this exact instance is in the zone.
func (z *Zone) Contains(card *CardInstance) bool {
	return z.indexOf(card) >= 0
}

// ContainsName reports whether any card with the given name is in the zone.
func (z *Zone) ContainsName(name string) bool {
	return z.Find(name) != nil
}

// Find returns the first card with the given name, or nil.
func (z *Zone) Find(name string) *CardInstance {
	for _, c := range z.cards {
		if c.Card.Name == name {
			return c
		}
	}
	return nil
}

// Count returns how many cards match the predicate.
func (z *Zone) Count(match func(*CardInstance) bool) int {
	n := 0
	for _, c := range z.cards {
		if match(c) {
			n++
		}
	}
	return n
}

// Remove removes this exact instance. Returns false if it is not present.
func (z *Zone) Remove(card *CardInstance) bool {
	i := z.indexOf(card)
	if i < 0 {
		return false
	}
	z.removeAt(i)
	return true
}

// RemoveByName removes and returns the first card with the given name.
func (z *Zone) RemoveByName(name string) (*CardInstance, bool) {
	for i, c := range z.cards {
		if c.Card.Name == name {
			z.removeAt(i)
			return c, true
		}
	}
	return nil, false
}

// TakeTop removes and returns the top card, or nil if empty.
func (z *Zone) TakeTop() *CardInstance {
	if len(z.cards) == 0 {
		return nil
	}
	c := z.cards[0]
	z.removeAt(0)
	return c
}

// TakeAll empties the zone and returns its former contents in order.
func (z *Zone) TakeAll() []*CardInstance {
	out := z.cards
	z.cards = nil
	return out
}

// Clear empties the zone.
func (z *Zone) Clear() {
	z.cards = nil
}

func (z *Zone) indexOf(card *CardInstance) int {
	for i, c := range z.cards {
		if c == card {
			return i
		}
	}
	return -1
}

func (z *Zone) removeAt(i int) {
	copy(z.cards[i:], z.cards[i+1:])
	z.cards[len(z.cards)-1] = nil
	z.cards = z.cards[:len(z.cards)-1]
}

// shuffle permutes the zone using the supplied swap-based shuffler.
func (z *Zone) shuffle(shuffle func(n int, swap func(i, j int))) {
	shuffle(len(z.cards), func(i, j int) {
		z.cards[i], z.cards[j] = z.cards[j], z.cards[i]
	})
}
