package mcp

import (
	"context"

	"github.com/peterkuimelis/kingdom/internal/game"
	"github.com/peterkuimelis/kingdom/internal/log"
	"github.com/peterkuimelis/kingdom/internal/net"
)

// AgentController implements game.DecisionSource by sending questions to the
// MCP session's pending channel and blocking on a response channel.
type AgentController struct {
	seat       int
	session    *GameSession
	responseCh chan string
}

// NewAgentController creates a controller for the given seat.
func NewAgentController(seat int, session *GameSession) *AgentController {
	return &AgentController{
		seat:       seat,
		session:    session,
		responseCh: make(chan string),
	}
}

// Ask implements game.DecisionSource.
func (c *AgentController) Ask(ctx context.Context, p game.Prompt) (string, error) {
	pending := &PendingDecision{
		Kind:    p.Kind.String(),
		Player:  c.seat,
		Prompt:  p.Text,
		Options: p.Options,
	}
	if g := c.session.game; g != nil {
		pending.State = net.BuildStateView(g, c.seat)
	}

	select {
	case c.session.pendingCh <- pending:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case answer := <-c.responseCh:
		return answer, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Notify implements game.Notifier.
func (c *AgentController) Notify(ctx context.Context, event log.GameEvent) error {
	c.session.appendEvent(net.NewEventView(event))
	return nil
}
