package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// PlayCard plays the first card in the player's hand with the given name.
//
// Action cards need the Action phase and a remaining action; playing one spends
// the action, moves the card into play and resolves its effect. Treasures may
// be played in the Buy phase; playing one during the Action phase ends that
// phase first. Any other case returns ErrIllegalMove with state unchanged.
func (g *Game) PlayCard(ctx context.Context, player int, name string) error {
	g.ctx = ctx
	if err := g.checkActor(player); err != nil {
		return err
	}
	p := g.Players[player]
	card := p.Hand.Find(name)
	if card == nil {
		return fmt.Errorf("%w: %s is not in P%d's hand", ErrIllegalMove, name, player+1)
	}

	switch {
	case card.Card.Is(TypeAction):
		if g.Phase != PhaseAction {
			return fmt.Errorf("%w: %s is an Action and it is the %s", ErrIllegalMove, name, g.Phase)
		}
		if p.Actions <= 0 {
			return fmt.Errorf("%w: no actions left to play %s", ErrIllegalMove, name)
		}
		p.Actions--
		moveCard(card, p.Hand, p.InPlay)
		g.log(log.NewPlayEvent(g.Turn, g.Phase.String(), player, name))
		return g.resolve(ctx, card, player, TypeAction)

	case card.Card.Is(TypeTreasure):
		g.enterBuyPhase()
		if g.Phase != PhaseBuy {
			return fmt.Errorf("%w: %s is a Treasure and it is the %s", ErrIllegalMove, name, g.Phase)
		}
		moveCard(card, p.Hand, p.InPlay)
		g.log(log.NewPlayEvent(g.Turn, g.Phase.String(), player, name))
		if err := g.resolve(ctx, card, player, TypeTreasure); err != nil {
			return err
		}
		return g.fireTriggers(ctx, player, card)

	default:
		return fmt.Errorf("%w: %s (%s) cannot be played", ErrIllegalMove, name, card.Card.Types)
	}
}

// Buy buys one card from the supply into the player's discard pile. A
// successful buy during the Action phase ends that phase; a rejected one
// leaves the game untouched.
func (g *Game) Buy(ctx context.Context, player int, name string) error {
	g.ctx = ctx
	if err := g.checkActor(player); err != nil {
		return err
	}
	p := g.Players[player]
	if g.Phase != PhaseAction && g.Phase != PhaseBuy {
		return fmt.Errorf("%w: cannot buy during the %s", ErrIllegalMove, g.Phase)
	}
	if p.Buys <= 0 {
		return fmt.Errorf("%w: no buys left", ErrIllegalMove)
	}
	pile := g.Supply.Pile(name)
	if pile == nil {
		return fmt.Errorf("%w: %q is not in the supply", ErrUnknownCard, name)
	}
	if pile.Count() == 0 {
		return fmt.Errorf("%w: %s", ErrSupplyEmpty, name)
	}
	if pile.Card.Cost > p.Money {
		return fmt.Errorf("%w: %s costs %d, P%d has %d", ErrIllegalMove, name, pile.Card.Cost, player+1, p.Money)
	}

	// Only a buy that will succeed ends the Action phase.
	g.enterBuyPhase()
	card, err := g.Supply.Take(name)
	if err != nil {
		return err
	}
	card.Owner = player
	p.Buys--
	p.Money -= pile.Card.Cost
	p.Discard.Add(card)
	g.log(log.NewBuyEvent(g.Turn, g.Phase.String(), player, name, pile.Card.Cost))
	return nil
}

// EndActionPhase moves the current turn into its Buy phase.
func (g *Game) EndActionPhase() {
	g.enterBuyPhase()
}

func (g *Game) enterBuyPhase() {
	if g.Phase != PhaseAction {
		return
	}
	g.Phase = PhaseBuy
	g.log(log.NewPhaseChangeEvent(g.Turn, g.Phase.String(), g.Current))
}

// EndTurn runs cleanup for the current player and passes the turn on: in-play
// and hand cards go to the discard pile, a new hand of five is drawn, counters
// and pending triggers are reset, then the game-end conditions are checked.
func (g *Game) EndTurn(ctx context.Context) error {
	g.ctx = ctx
	if g.Over {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	g.cleanup(g.Current)
	if g.checkGameOver() {
		return nil
	}
	g.Current = (g.Current + 1) % len(g.Players)
	g.Turn++
	g.Phase = PhaseAction
	g.log(log.NewTurnEvent(g.Turn, g.Current))
	return nil
}

func (g *Game) cleanup(player int) {
	p := g.Players[player]
	g.Phase = PhaseCleanup
	g.log(log.NewPhaseChangeEvent(g.Turn, g.Phase.String(), player))
	for _, c := range p.InPlay.TakeAll() {
		p.Discard.Add(c)
	}
	for _, c := range p.Hand.TakeAll() {
		p.Discard.Add(c)
	}
	p.resetTurn()
	p.DrawCards(HandSize)
	g.log(log.NewCleanupEvent(g.Turn, player))
}

func (g *Game) checkActor(player int) error {
	if g.Over {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if player < 0 || player >= len(g.Players) {
		return fmt.Errorf("%w: no seat %d", ErrIllegalMove, player)
	}
	if player != g.Current {
		return fmt.Errorf("%w: it is P%d's turn, not P%d's", ErrIllegalMove, g.Current+1, player+1)
	}
	return nil
}

// checkGameOver ends the game when the Province pile or any three supply
// piles are empty, or the turn limit is reached.
func (g *Game) checkGameOver() bool {
	var reason string
	switch {
	case g.Supply.Pile("Province") != nil && g.Supply.Count("Province") == 0:
		reason = "the Province pile is empty"
	case g.Supply.EmptyPiles() >= 3:
		reason = fmt.Sprintf("%d supply piles are empty", g.Supply.EmptyPiles())
	case g.maxTurns > 0 && g.Turn >= g.maxTurns:
		reason = fmt.Sprintf("turn limit reached (%d turns)", g.maxTurns)
	default:
		return false
	}
	g.Over = true
	g.Result = reason + ". " + g.standings()
	g.log(log.NewGameOverEvent(g.Turn, g.Result))
	return true
}

// Scores returns each seat's victory point total.
func (g *Game) Scores() []int {
	scores := make([]int, len(g.Players))
	for i, p := range g.Players {
		scores[i] = p.VictoryPoints()
	}
	return scores
}

func (g *Game) standings() string {
	scores := g.Scores()
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	parts := make([]string, len(order))
	for i, seat := range order {
		parts[i] = fmt.Sprintf("%s %d VP", g.Players[seat].Name, scores[seat])
	}
	return strings.Join(parts, ", ")
}

// Run drives turns through the decision source until the game ends. Each turn
// the current player is asked which Actions to play, which Treasures to play
// ("all" plays every Treasure in hand), and what to buy; "" ends each step.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx
	for !g.Over {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.runTurn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) runTurn(ctx context.Context) error {
	p := g.CurrentPlayer()

	for g.Phase == PhaseAction && p.Actions > 0 {
		actions := p.HandNamesMatching(isType(TypeAction))
		if len(actions) == 0 {
			break
		}
		text := fmt.Sprintf("%s: play an Action (%d left) or pass", p.Name, p.Actions)
		name, err := g.choose(ctx, PromptPlay, p.Index, text, actions, true)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		if err := g.PlayCard(ctx, p.Index, name); err != nil && !errors.Is(err, ErrIllegalMove) {
			return err
		}
	}
	g.enterBuyPhase()

	for {
		treasures := p.HandNamesMatching(isType(TypeTreasure))
		if len(treasures) == 0 {
			break
		}
		text := fmt.Sprintf("%s: play a Treasure, all, or pass (money %d)", p.Name, p.Money)
		name, err := g.choose(ctx, PromptPlay, p.Index, text, append([]string{"all"}, treasures...), true)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		if name == "all" {
			if err := g.playAllTreasures(ctx, p); err != nil {
				return err
			}
			break
		}
		if err := g.PlayCard(ctx, p.Index, name); err != nil && !errors.Is(err, ErrIllegalMove) {
			return err
		}
	}

	for p.Buys > 0 {
		affordable := g.Supply.Gainable(costUpTo(p.Money))
		text := fmt.Sprintf("%s: buy a card (money %d, buys %d) or pass", p.Name, p.Money, p.Buys)
		name, err := g.choose(ctx, PromptBuy, p.Index, text, affordable, true)
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		err = g.Buy(ctx, p.Index, name)
		switch {
		case err == nil, errors.Is(err, ErrIllegalMove), errors.Is(err, ErrSupplyEmpty):
		default:
			return err
		}
	}

	return g.EndTurn(ctx)
}

func (g *Game) playAllTreasures(ctx context.Context, p *Player) error {
	for _, c := range p.Hand.Cards() {
		if !c.Card.Is(TypeTreasure) {
			continue
		}
		if err := g.PlayCard(ctx, p.Index, c.Card.Name); err != nil {
			return err
		}
	}
	return nil
}
