package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/peterkuimelis/kingdom/internal/log"
)

// PromptKind distinguishes the questions a decision source can be asked.
type PromptKind int

const (
	// PromptYesNo expects "y" or "n".
	PromptYesNo PromptKind = iota
	// PromptCard expects a card name, or "" to pass.
	PromptCard
	// PromptPlay asks the turn player which card to play next ("" ends the step).
	PromptPlay
	// PromptBuy asks the turn player which supply pile to buy from ("" ends the turn).
	PromptBuy
)

func (k PromptKind) String() string {
	switch k {
	case PromptYesNo:
		return "yes_no"
	case PromptCard:
		return "card"
	case PromptPlay:
		return "play"
	case PromptBuy:
		return "buy"
	default:
		return "unknown"
	}
}

// Prompt is a single question put to a decision source.
type Prompt struct {
	Kind    PromptKind
	Player  int      // seat that must answer
	Text    string   // human-readable question
	Options []string // valid answers, informational only
}

// DecisionSource supplies answers to the choice points of card effects and of
// the turn loop. Each Ask consumes exactly one answer. An empty string is a
// valid answer meaning "pass".
//
// Interactive sources block until their user answers; scripted sources pop a
// queue. The engine never branches on which kind it has.
type DecisionSource interface {
	Ask(ctx context.Context, p Prompt) (string, error)
}

// Notifier is implemented by decision sources that want to observe every game
// event (e.g. to render it on a remote terminal).
type Notifier interface {
	Notify(ctx context.Context, event log.GameEvent) error
}

// IsYes interprets a yes/no answer.
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "true":
		return true
	}
	return false
}

// --- QueueSource: a pre-recorded FIFO of answers ---

// QueueSource answers prompts from a fixed queue, in call order, regardless of
// which seat is asked. It never validates answers against the options.
type QueueSource struct {
	answers []string
	pos     int
	asked   []Prompt
}

// NewQueueSource creates a source that will return the given answers in order.
func NewQueueSource(answers ...string) *QueueSource {
	return &QueueSource{answers: answers}
}

// Push appends answers to the end of the queue.
func (q *QueueSource) Push(answers ...string) {
	q.answers = append(q.answers, answers...)
}

// Set replaces the queue with the given answers.
func (q *QueueSource) Set(answers ...string) {
	q.answers = answers
	q.pos = 0
}

// Remaining returns how many answers have not been consumed.
func (q *QueueSource) Remaining() int {
	return len(q.answers) - q.pos
}

// Asked returns every prompt this source has answered or refused.
func (q *QueueSource) Asked() []Prompt {
	return q.asked
}

func (q *QueueSource) Ask(ctx context.Context, p Prompt) (string, error) {
	q.asked = append(q.asked, p)
	if q.pos >= len(q.answers) {
		return "", fmt.Errorf("%w: P%d asked %q", ErrExhaustedInput, p.Player+1, p.Text)
	}
	a := q.answers[q.pos]
	q.pos++
	return a, nil
}

// --- SeatedSource: routes each prompt to the answering seat's own source ---

// SeatedSource dispatches prompts by Prompt.Player. Seats without a source
// fall back to Default.
type SeatedSource struct {
	Seats   []DecisionSource
	Default DecisionSource
}

func (s *SeatedSource) Ask(ctx context.Context, p Prompt) (string, error) {
	if p.Player >= 0 && p.Player < len(s.Seats) && s.Seats[p.Player] != nil {
		return s.Seats[p.Player].Ask(ctx, p)
	}
	if s.Default == nil {
		return "", fmt.Errorf("no decision source for seat %d", p.Player)
	}
	return s.Default.Ask(ctx, p)
}

// Notify forwards the event to every seat that implements Notifier.
func (s *SeatedSource) Notify(ctx context.Context, event log.GameEvent) error {
	for _, seat := range s.Seats {
		if n, ok := seat.(Notifier); ok {
			_ = n.Notify(ctx, event)
		}
	}
	return nil
}
