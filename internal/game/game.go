package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/peterkuimelis/kingdom/internal/log"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	PlayerNames []string // one per seat, in turn order
	Kingdom     []string // kingdom card names (nil for the First Game set)
	Logger      log.EventLogger
	Source      DecisionSource // answers every prompt of every seat
	Seed        int64          // RNG seed (0 for random)
	NoShuffle   bool           // skip shuffles (for deterministic tests)
	MaxTurns    int            // stop Run after this many turns (0 = no limit)
}

// Game owns the players, the supply and the trash, and sequences turns.
type Game struct {
	ID      uuid.UUID
	Players []*Player
	Current int // seat whose turn it is
	Turn    int // 1-based turn counter
	Phase   Phase
	Supply  *Supply
	Trash   *Zone
	Kingdom []string
	Source  DecisionSource
	Logger  log.EventLogger

	ctx       context.Context
	rng       *rand.Rand
	noShuffle bool
	maxTurns  int
	nextID    int
	depth     int // current nested resolve depth

	Over   bool
	Result string
}

// NewGame builds the supply, deals each seat its starting deck and draws the
// opening hands. The first seat is left in its Action phase.
func NewGame(cfg GameConfig) (*Game, error) {
	n := len(cfg.PlayerNames)
	if n < MinPlayers || n > MaxPlayers {
		return nil, fmt.Errorf("game needs %d to %d players, got %d", MinPlayers, MaxPlayers, n)
	}

	kingdom := cfg.Kingdom
	if len(kingdom) == 0 {
		kingdom = FirstGame
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		ID:        uuid.New(),
		Turn:      1,
		Phase:     PhaseAction,
		Supply:    NewSupply(),
		Trash:     NewZone(ZoneTrash),
		Source:    cfg.Source,
		Logger:    logger,
		ctx:       context.Background(),
		rng:       rand.New(rand.NewSource(seed)),
		noShuffle: cfg.NoShuffle,
		maxTurns:  cfg.MaxTurns,
	}

	if err := g.setupSupply(kingdom, n); err != nil {
		return nil, err
	}

	copper := MustLookupCard("Copper")
	estate := MustLookupCard("Estate")
	for i, name := range cfg.PlayerNames {
		p := newPlayer(g, i, name)
		for j := 0; j < StartingCoppers; j++ {
			p.Draw.Add(g.newInstance(copper, i))
		}
		for j := 0; j < StartingEstates; j++ {
			p.Draw.Add(g.newInstance(estate, i))
		}
		g.Players = append(g.Players, p)
	}
	for _, p := range g.Players {
		g.shuffleZone(p.Draw)
		p.DrawCards(HandSize)
	}
	g.log(log.NewTurnEvent(g.Turn, g.Current))

	return g, nil
}

func (g *Game) setupSupply(kingdom []string, players int) error {
	names := append([]string{}, BasicCards...)
	seen := make(map[string]bool)
	for _, name := range kingdom {
		if seen[name] {
			return fmt.Errorf("kingdom lists %s twice", name)
		}
		seen[name] = true
		card, err := LookupCard(name)
		if err != nil {
			return err
		}
		if IsBasic(name) || (!card.Is(TypeAction) && !card.Is(TypeVictory)) {
			return fmt.Errorf("%s is not a kingdom card", name)
		}
		names = append(names, name)
	}
	for _, name := range names {
		card, err := LookupCard(name)
		if err != nil {
			return err
		}
		size := supplySize(card, players)
		cards := make([]*CardInstance, size)
		for i := range cards {
			cards[i] = g.newInstance(card, -1)
		}
		g.Supply.addPile(card, cards)
	}
	g.Kingdom = append([]string{}, kingdom...)
	return nil
}

func (g *Game) newInstance(card *Card, owner int) *CardInstance {
	g.nextID++
	return &CardInstance{Card: card, ID: g.nextID, Owner: owner}
}

// NewCard creates a fresh instance of the named card owned by the given seat.
// The card is in no zone; the caller places it. Intended for setup and tests.
func (g *Game) NewCard(name string, owner int) (*CardInstance, error) {
	card, err := LookupCard(name)
	if err != nil {
		return nil, err
	}
	return g.newInstance(card, owner), nil
}

// Player returns the player at the given seat.
func (g *Game) Player(i int) *Player {
	return g.Players[i]
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Current]
}

// Others returns every other player in seating order, starting after the given seat.
func (g *Game) Others(player int) []*Player {
	n := len(g.Players)
	others := make([]*Player, 0, n-1)
	for i := 1; i < n; i++ {
		others = append(others, g.Players[(player+i)%n])
	}
	return others
}

// TotalCards counts every card instance in the game: all player zones, the
// supply and the trash.
func (g *Game) TotalCards() int {
	n := g.Supply.Total() + g.Trash.Len()
	for _, p := range g.Players {
		n += p.CardCount()
	}
	return n
}

// Context returns the context of the call currently driving the game.
func (g *Game) Context() context.Context {
	return g.ctx
}

func (g *Game) shuffleZone(z *Zone) {
	if g.noShuffle {
		return
	}
	z.shuffle(g.rng.Shuffle)
}

// log emits a game event through the logger and forwards it to the decision
// source when it wants to observe events.
func (g *Game) log(event log.GameEvent) {
	g.Logger.Log(event)
	if n, ok := g.Source.(Notifier); ok {
		_ = n.Notify(g.ctx, event)
	}
}

// ask puts one prompt to the decision source.
func (g *Game) ask(ctx context.Context, p Prompt) (string, error) {
	if g.Source == nil {
		return "", fmt.Errorf("%w: no decision source for P%d", ErrExhaustedInput, p.Player+1)
	}
	return g.Source.Ask(ctx, p)
}
