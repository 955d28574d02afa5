package game

import (
	"context"
	"errors"
	"testing"

	"github.com/peterkuimelis/kingdom/internal/log"
)

func TestQueueSourceFIFO(t *testing.T) {
	ctx := context.Background()
	q := NewQueueSource("a", "")
	q.Push("b")

	for _, want := range []string{"a", "", "b"} {
		got, err := q.Ask(ctx, Prompt{Kind: PromptCard})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	if q.Remaining() != 0 {
		t.Errorf("expected empty queue, %d left", q.Remaining())
	}

	_, err := q.Ask(ctx, Prompt{Kind: PromptYesNo, Player: 1, Text: "again?"})
	if !errors.Is(err, ErrExhaustedInput) {
		t.Fatalf("expected ErrExhaustedInput, got %v", err)
	}
	if len(q.Asked()) != 4 {
		t.Errorf("expected 4 recorded prompts, got %d", len(q.Asked()))
	}
}

func TestExhaustedInputSurfacesFromEffect(t *testing.T) {
	g, _, _ := newTestGame(t)
	addTo(t, g, 0, g.Players[0].Hand, "Chapel")
	err := g.PlayCard(g.Context(), 0, "Chapel")
	if !errors.Is(err, ErrExhaustedInput) {
		t.Fatalf("expected ErrExhaustedInput, got %v", err)
	}
}

func TestIsYes(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " yes ", "true"} {
		if !IsYes(s) {
			t.Errorf("IsYes(%q) = false", s)
		}
	}
	for _, s := range []string{"", "n", "no", "o", "oui", "Moat", "maybe"} {
		if IsYes(s) {
			t.Errorf("IsYes(%q) = true", s)
		}
	}
}

type recordingSeat struct {
	QueueSource
	events []log.GameEvent
}

func (r *recordingSeat) Notify(ctx context.Context, event log.GameEvent) error {
	r.events = append(r.events, event)
	return nil
}

func TestSeatedSourceRoutesBySeat(t *testing.T) {
	ctx := context.Background()
	seat0 := &recordingSeat{QueueSource: *NewQueueSource("zero")}
	fallback := NewQueueSource("default")
	s := &SeatedSource{Seats: []DecisionSource{seat0, nil}, Default: fallback}

	got, err := s.Ask(ctx, Prompt{Player: 0})
	if err != nil || got != "zero" {
		t.Fatalf("seat 0: got %q, %v", got, err)
	}
	got, err = s.Ask(ctx, Prompt{Player: 1})
	if err != nil || got != "default" {
		t.Fatalf("seat 1: got %q, %v", got, err)
	}

	_ = s.Notify(ctx, log.GameEvent{Type: log.EventDraw})
	if len(seat0.events) != 1 {
		t.Errorf("expected the event forwarded to seat 0, got %d", len(seat0.events))
	}
}

func TestGameForwardsEventsToNotifier(t *testing.T) {
	seat := &recordingSeat{}
	g, err := NewGame(GameConfig{
		PlayerNames: []string{"A", "B"},
		Source:      &SeatedSource{Seats: []DecisionSource{seat, seat}},
		NoShuffle:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	addTo(t, g, 0, g.Players[0].Hand, "Smithy")
	before := len(seat.events)
	mustPlay(t, g, 0, "Smithy")
	if len(seat.events) <= before {
		t.Error("expected play and draw events to reach the seat")
	}
}
