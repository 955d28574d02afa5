package game

import "testing"

// Three-seat scenarios: P2 ("Titi") is the acting player unless noted.

func TestMoatReaction(t *testing.T) {
	g, src, _ := newTestGame(t)
	p0, p1, p2 := g.Players[0], g.Players[1], g.Players[2]
	addTo(t, g, 0, p0.Hand, "Moat")
	addTo(t, g, 1, p1.Hand, "Witch")
	addTo(t, g, 2, p2.Hand, "Moat")
	startTurn(g, 1)

	// P3 is asked first (seat order after the attacker) and reveals; P1 declines.
	src.Set("y", "n")
	mustPlay(t, g, 1, "Witch")

	if p2.Discard.ContainsName("Curse") {
		t.Error("P3 revealed Moat but still gained a Curse")
	}
	if !p0.Discard.ContainsName("Curse") {
		t.Error("P1 declined Moat and should have gained a Curse")
	}
	if src.Remaining() != 0 {
		t.Errorf("expected all answers consumed, %d left", src.Remaining())
	}
	asked := src.Asked()
	if len(asked) != 2 || asked[0].Player != 2 || asked[1].Player != 0 {
		t.Errorf("expected reaction prompts to P3 then P1, got %+v", asked)
	}
}

func TestThroneRoom(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Throne Room", "Village")
	startTurn(g, 1)

	c1 := p1.Draw.Get(0)
	c2 := p1.Draw.Get(1)

	src.Set("Village")
	mustPlay(t, g, 1, "Throne Room")

	if p1.Actions != 4 {
		t.Errorf("expected 4 actions, got %d", p1.Actions)
	}
	if !p1.Hand.Contains(c1) || !p1.Hand.Contains(c2) {
		t.Error("expected both top draw cards in hand")
	}
	if p1.Hand.Len() != 7 {
		t.Errorf("expected 7 cards in hand, got %d", p1.Hand.Len())
	}
	if !hasCards(p1.InPlay, "Throne Room", "Village") {
		t.Errorf("expected Throne Room and Village in play, got %v", p1.InPlay.Names())
	}
}

func TestLibrary(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	p1.Draw.Clear()
	p1.Hand.Clear()
	addTo(t, g, 1, p1.Hand, "Library", "Duchy", "Duchy", "Duchy", "Duchy")
	addTo(t, g, 1, p1.Draw, "Gold", "Village", "Festival", "Silver", "Silver")
	startTurn(g, 1)

	// Set aside the Village, keep the Festival.
	src.Set("y", "n")
	mustPlay(t, g, 1, "Library")

	if !hasCards(p1.Hand, "Duchy", "Duchy", "Duchy", "Duchy", "Festival", "Gold", "Silver") {
		t.Errorf("unexpected hand %v", p1.Hand.Names())
	}
	if !hasCards(p1.Discard, "Village") {
		t.Errorf("expected only the Village in discard, got %v", p1.Discard.Names())
	}
	if !hasCards(p1.Draw, "Silver") {
		t.Errorf("expected one Silver left to draw, got %v", p1.Draw.Names())
	}
}

func TestBandit(t *testing.T) {
	g, src, _ := newTestGame(t)
	p0, p1, p2 := g.Players[0], g.Players[1], g.Players[2]
	addTo(t, g, 1, p1.Hand, "Bandit")
	silver1 := newCards(t, g, 2, "Silver")[0]
	silver2 := newCards(t, g, 0, "Silver")[0]
	gold := newCards(t, g, 0, "Gold")[0]
	copper := newCards(t, g, 2, "Copper")[0]
	p2.Draw.AddAtTop(silver1)
	p2.Draw.AddAtTop(copper)
	p0.Draw.AddAtTop(gold)
	p0.Draw.AddAtTop(silver2)
	startTurn(g, 1)

	// "Copper" is not a valid pick for P1 and is asked again.
	src.Set("Copper", "Silver")
	mustPlay(t, g, 1, "Bandit")

	if !p1.Discard.ContainsName("Gold") {
		t.Error("attacker should have gained a Gold")
	}
	if p2.Draw.Contains(silver1) || p2.Discard.Contains(silver1) {
		t.Error("P3's Silver should have been trashed automatically")
	}
	if !p2.Discard.Contains(copper) {
		t.Error("P3's Copper should have been discarded")
	}
	if p0.Draw.Contains(silver2) || p0.Discard.Contains(silver2) {
		t.Error("P1's chosen Silver should have been trashed")
	}
	if !p0.Discard.Contains(gold) {
		t.Error("P1's Gold should have been discarded")
	}
	if !g.Trash.Contains(silver1) || !g.Trash.Contains(silver2) {
		t.Errorf("expected both Silvers in trash, got %v", g.Trash.Names())
	}
}

func TestHarbinger(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Harbinger")
	gold := addTo(t, g, 1, p1.Discard, "Gold")[0]
	addTo(t, g, 1, p1.Discard, "Copper", "Copper", "Copper")
	c0 := p1.Draw.Get(0)
	startTurn(g, 1)

	// Silver is not in the discard pile, so the question is asked again.
	src.Set("Silver", "Gold")
	mustPlay(t, g, 1, "Harbinger")

	if !p1.Hand.Contains(c0) {
		t.Error("expected the top draw card in hand")
	}
	if p1.Actions != 1 {
		t.Errorf("expected 1 action, got %d", p1.Actions)
	}
	if p1.Draw.Get(0) != gold {
		t.Errorf("expected Gold on top of the draw pile, got %v", p1.Draw.Top())
	}
	if p1.Discard.Contains(gold) {
		t.Error("Gold should have left the discard pile")
	}

	// Order preservation: the placed card is the next one drawn.
	drawn := p1.DrawCards(1)
	if len(drawn) != 1 || drawn[0] != gold {
		t.Errorf("expected to draw the Gold next, got %v", drawn)
	}
}

func TestHarbingerEmptyDiscard(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Harbinger")
	startTurn(g, 1)

	mustPlay(t, g, 1, "Harbinger")
	if len(src.Asked()) != 0 {
		t.Errorf("expected no prompt with an empty discard pile, got %+v", src.Asked())
	}
}

func TestMerchant(t *testing.T) {
	g, _, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Merchant", "Silver", "Silver")
	startTurn(g, 1)

	mustPlay(t, g, 1, "Merchant")
	if p1.Money != 0 {
		t.Errorf("expected 0 money, got %d", p1.Money)
	}
	if p1.Hand.Len() != 8 {
		t.Errorf("expected 8 cards in hand, got %d", p1.Hand.Len())
	}
	if p1.Actions != 1 {
		t.Errorf("expected 1 action, got %d", p1.Actions)
	}

	mustPlay(t, g, 1, "Silver")
	if p1.Money != 3 {
		t.Errorf("expected 3 money after first Silver, got %d", p1.Money)
	}
	mustPlay(t, g, 1, "Silver")
	if p1.Money != 5 {
		t.Errorf("expected 5 money after second Silver, got %d", p1.Money)
	}
}

func TestMerchantTriggerClearedAtCleanup(t *testing.T) {
	g, _, _ := newTestGame(t)
	p0 := g.Players[0]
	addTo(t, g, 0, p0.Hand, "Merchant")
	mustPlay(t, g, 0, "Merchant")
	if len(p0.Triggers()) != 1 {
		t.Fatalf("expected 1 pending trigger, got %d", len(p0.Triggers()))
	}
	if err := g.EndTurn(g.Context()); err != nil {
		t.Fatal(err)
	}
	if len(p0.Triggers()) != 0 {
		t.Errorf("expected triggers cleared at cleanup, got %d", len(p0.Triggers()))
	}
}

func TestSentryTrash1Discard1(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Sentry")
	cards := stackDeck(t, g, 1, "Gold", "Silver", "Duchy")
	gold, silver, duchy := cards[0], cards[1], cards[2]
	startTurn(g, 1)

	// Trash Duchy, pass, discard Silver.
	src.Set("Duchy", "", "Silver")
	mustPlay(t, g, 1, "Sentry")

	if p1.Actions != 1 {
		t.Errorf("expected 1 action, got %d", p1.Actions)
	}
	if !p1.Hand.Contains(gold) {
		t.Error("expected Gold in hand")
	}
	for _, c := range p1.AllCards() {
		if c == duchy {
			t.Error("Duchy should have left the player's cards")
		}
	}
	if !g.Trash.Contains(duchy) {
		t.Error("expected Duchy in trash")
	}
	if p1.Draw.Contains(silver) || !p1.Discard.Contains(silver) {
		t.Error("expected Silver moved from draw pile to discard pile")
	}
	if src.Remaining() != 0 {
		t.Errorf("expected all answers consumed, %d left", src.Remaining())
	}
}

func TestSentryPassTwice(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Sentry")
	cards := stackDeck(t, g, 1, "Gold", "Silver", "Duchy")
	gold, silver, duchy := cards[0], cards[1], cards[2]
	startTurn(g, 1)

	// Pass on trashing and discarding, then put Silver back first so that
	// Duchy lands on top of it.
	src.Set("", "", "Silver")
	mustPlay(t, g, 1, "Sentry")

	if p1.Actions != 1 {
		t.Errorf("expected 1 action, got %d", p1.Actions)
	}
	if !p1.Hand.Contains(gold) {
		t.Error("expected Gold in hand")
	}
	if p1.Discard.Contains(duchy) || p1.Discard.Contains(silver) {
		t.Error("nothing should have been discarded")
	}
	if p1.Draw.Get(0) != duchy {
		t.Errorf("expected Duchy on top, got %v", p1.Draw.Get(0))
	}
	if p1.Draw.Get(1) != silver {
		t.Errorf("expected Silver second, got %v", p1.Draw.Get(1))
	}
	if src.Remaining() != 0 {
		t.Errorf("expected all answers consumed, %d left", src.Remaining())
	}
}

func TestSentryPassKeepsOrder(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Sentry")
	cards := stackDeck(t, g, 1, "Gold", "Silver", "Duchy")
	silver, duchy := cards[1], cards[2]
	startTurn(g, 1)

	src.Set("", "", "")
	mustPlay(t, g, 1, "Sentry")

	if p1.Draw.Get(0) != silver || p1.Draw.Get(1) != duchy {
		t.Errorf("expected [Silver Duchy] on top, got %v", p1.Draw.Names()[:2])
	}
	if src.Remaining() != 0 {
		t.Errorf("expected all answers consumed, %d left", src.Remaining())
	}
	if len(src.Asked()) != 3 {
		t.Errorf("expected 3 questions, got %d", len(src.Asked()))
	}
}

func TestSentryChosenOrder(t *testing.T) {
	g, src, _ := newTestGame(t)
	p1 := g.Players[1]
	addTo(t, g, 1, p1.Hand, "Sentry")
	cards := stackDeck(t, g, 1, "Gold", "Silver", "Duchy")
	silver, duchy := cards[1], cards[2]
	startTurn(g, 1)

	// Duchy goes back first, so Silver ends on top.
	src.Set("", "", "Duchy")
	mustPlay(t, g, 1, "Sentry")

	if p1.Draw.Get(0) != silver || p1.Draw.Get(1) != duchy {
		t.Errorf("expected [Silver Duchy] on top, got %v", p1.Draw.Names()[:2])
	}
}
