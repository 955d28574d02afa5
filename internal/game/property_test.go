package game

import (
	"context"
	"testing"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// greedySource answers every prompt with a fixed policy: play everything,
// reveal reactions, buy the most expensive affordable card. At each new turn
// it checks that no card was created, lost, or duplicated.
type greedySource struct {
	t     *testing.T
	g     *Game
	total int
	turns int
}

func (s *greedySource) Ask(ctx context.Context, p Prompt) (string, error) {
	switch p.Kind {
	case PromptYesNo:
		return "y", nil
	case PromptBuy:
		best, bestCost := "", -1
		for _, name := range p.Options {
			if cost := s.g.Supply.Pile(name).Card.Cost; cost > bestCost {
				best, bestCost = name, cost
			}
		}
		return best, nil
	default:
		return p.Options[0], nil
	}
}

func (s *greedySource) Notify(ctx context.Context, event log.GameEvent) error {
	if event.Type != log.EventNewTurn || s.g == nil {
		return nil
	}
	s.turns++
	if got := s.g.TotalCards(); got != s.total {
		s.t.Errorf("turn %d: card count %d, want %d", event.Turn, got, s.total)
	}
	for _, p := range s.g.Players {
		for _, c := range p.AllCards() {
			if zones := zonesHolding(s.g, c); len(zones) != 1 {
				s.t.Errorf("turn %d: %s held by %v", event.Turn, c, zones)
			}
		}
	}
	return nil
}

func TestCardConservationOverFullGames(t *testing.T) {
	kingdoms := [][]string{
		FirstGame,
		{"Artisan", "Bandit", "Bureaucrat", "Chapel", "Festival", "Gardens", "Sentry", "Throne Room", "Witch", "Workshop"},
		{"Council Room", "Harbinger", "Laboratory", "Library", "Moneylender", "Poacher", "Vassal", "Village", "Militia", "Moat"},
	}
	for i, kingdom := range kingdoms {
		for seed := int64(1); seed <= 3; seed++ {
			src := &greedySource{t: t}
			g, err := NewGame(GameConfig{
				PlayerNames: []string{"A", "B", "C"},
				Kingdom:     kingdom,
				Source:      src,
				Seed:        seed,
				MaxTurns:    30,
			})
			if err != nil {
				t.Fatal(err)
			}
			src.g = g
			src.total = g.TotalCards()

			if err := g.Run(context.Background()); err != nil {
				t.Fatalf("kingdom %d seed %d: %v", i, seed, err)
			}
			if !g.Over {
				t.Errorf("kingdom %d seed %d: game did not end", i, seed)
			}
			if got := g.TotalCards(); got != src.total {
				t.Errorf("kingdom %d seed %d: final count %d, want %d", i, seed, got, src.total)
			}
			if src.turns == 0 {
				t.Errorf("kingdom %d seed %d: no turns observed", i, seed)
			}
		}
	}
}
