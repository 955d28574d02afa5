package game

import (
	"testing"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// newTestGame creates an unshuffled game with a scripted decision source.
// Every seat starts with five Coppers in hand and Copper, Copper, Estate,
// Estate, Estate in its draw pile (top first).
func newTestGame(t *testing.T, names ...string) (*Game, *QueueSource, *log.MemoryLogger) {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Toto", "Titi", "Tutu"}
	}
	logger := log.NewMemoryLogger()
	source := NewQueueSource()
	g, err := NewGame(GameConfig{
		PlayerNames: names,
		Logger:      logger,
		Source:      source,
		NoShuffle:   true,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		}
	})
	return g, source, logger
}

// newCards creates fresh instances owned by the given seat.
func newCards(t *testing.T, g *Game, owner int, names ...string) []*CardInstance {
	t.Helper()
	cards := make([]*CardInstance, len(names))
	for i, name := range names {
		c, err := g.NewCard(name, owner)
		if err != nil {
			t.Fatalf("NewCard(%q): %v", name, err)
		}
		cards[i] = c
	}
	return cards
}

// addTo appends fresh cards to the end of a zone.
func addTo(t *testing.T, g *Game, owner int, z *Zone, names ...string) []*CardInstance {
	t.Helper()
	cards := newCards(t, g, owner, names...)
	for _, c := range cards {
		z.Add(c)
	}
	return cards
}

// stackDeck puts fresh cards on top of a player's draw pile so that names[0]
// is drawn first.
func stackDeck(t *testing.T, g *Game, player int, names ...string) []*CardInstance {
	t.Helper()
	cards := newCards(t, g, player, names...)
	for i := len(cards) - 1; i >= 0; i-- {
		g.Players[player].Draw.AddAtTop(cards[i])
	}
	return cards
}

// startTurn hands the turn to the given seat in its Action phase.
func startTurn(g *Game, player int) {
	g.Current = player
	g.Phase = PhaseAction
}

func mustPlay(t *testing.T, g *Game, player int, name string) {
	t.Helper()
	if err := g.PlayCard(g.Context(), player, name); err != nil {
		t.Fatalf("P%d play %s: %v", player+1, name, err)
	}
}

// hasCards reports whether the zone holds exactly the given multiset of names.
func hasCards(z *Zone, names ...string) bool {
	if z.Len() != len(names) {
		return false
	}
	want := make(map[string]int)
	for _, n := range names {
		want[n]++
	}
	for _, n := range z.Names() {
		want[n]--
	}
	for _, v := range want {
		if v != 0 {
			return false
		}
	}
	return true
}

func countName(z *Zone, name string) int {
	return z.Count(func(c *CardInstance) bool { return c.Card.Name == name })
}

// zonesHolding returns every zone holding this instance, across all players,
// the trash and the supply.
func zonesHolding(g *Game, card *CardInstance) []ZoneType {
	var found []ZoneType
	for _, p := range g.Players {
		for _, z := range []*Zone{p.Draw, p.Hand, p.Discard, p.InPlay} {
			if z.Contains(card) {
				found = append(found, z.Type)
			}
		}
	}
	if g.Trash.Contains(card) {
		found = append(found, ZoneTrash)
	}
	for _, name := range g.Supply.Names() {
		if g.Supply.Pile(name).cards.Contains(card) {
			found = append(found, ZoneSupply)
		}
	}
	return found
}
