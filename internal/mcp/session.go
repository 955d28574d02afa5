package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	stdnet "net"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/kingdom/internal/game"
	"github.com/peterkuimelis/kingdom/internal/net"
)

// DecisionGameOver marks the final pending entry of a session.
const DecisionGameOver = "game_over"

// PendingDecision represents a question the game engine is waiting on.
type PendingDecision struct {
	Kind    string         `json:"kind"`
	Player  int            `json:"player"`
	Prompt  string         `json:"prompt,omitempty"`
	Options []string       `json:"options,omitempty"`
	State   *net.StateView `json:"state,omitempty"`
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	SessionID string           `json:"session_id,omitempty"`
	Events    []net.EventView  `json:"events"`
	State     *net.StateView   `json:"state,omitempty"`
	Pending   *PendingDecision `json:"pending,omitempty"`
	GameOver  bool             `json:"game_over"`
	Result    string           `json:"result,omitempty"`
	Scores    []int            `json:"scores,omitempty"`
	Port      string           `json:"port,omitempty"`
}

// SessionConfig describes the game an MCP session hosts.
type SessionConfig struct {
	Kingdom   []string
	AgentSeat int // 0 goes first
	AgentName string
	HumanName string
	Seed      int64
	MaxTurns  int
	NoShuffle bool
}

// GameSession holds the state of a single MCP game: one seat answered through
// tool calls, the other by a human over TCP.
type GameSession struct {
	ID        uuid.UUID
	game      *game.Game
	agent     *AgentController
	human     *net.NetworkController
	agentSeat int

	humanConn stdnet.Conn
	cancel    context.CancelFunc
	done      chan struct{}

	pendingCh chan *PendingDecision

	mu             sync.Mutex
	currentPending *PendingDecision
	events         []net.EventView
	gameOver       bool
	result         string
	scores         []int
	final          *PendingDecision
}

// NewGameSession deals a two-seat game and starts it in the background. The
// human seat is played over humanConn, which the session closes when the game
// ends.
func NewGameSession(cfg SessionConfig, humanConn stdnet.Conn) (*GameSession, error) {
	if cfg.AgentSeat != 0 && cfg.AgentSeat != 1 {
		return nil, fmt.Errorf("agent seat must be 0 or 1, got %d", cfg.AgentSeat)
	}
	if cfg.AgentName == "" {
		cfg.AgentName = "Agent"
	}
	if cfg.HumanName == "" {
		cfg.HumanName = "Human"
	}

	sess := &GameSession{
		ID:        uuid.New(),
		agentSeat: cfg.AgentSeat,
		humanConn: humanConn,
		pendingCh: make(chan *PendingDecision, 1),
		done:      make(chan struct{}),
	}
	humanSeat := 1 - cfg.AgentSeat
	sess.agent = NewAgentController(cfg.AgentSeat, sess)
	sess.human = net.NewNetworkController(humanConn, humanSeat)

	seats := make([]game.DecisionSource, 2)
	names := make([]string, 2)
	seats[cfg.AgentSeat], names[cfg.AgentSeat] = sess.agent, cfg.AgentName
	seats[humanSeat], names[humanSeat] = sess.human, cfg.HumanName

	g, err := game.NewGame(game.GameConfig{
		PlayerNames: names,
		Kingdom:     cfg.Kingdom,
		Source:      &game.SeatedSource{Seats: seats},
		Seed:        cfg.Seed,
		NoShuffle:   cfg.NoShuffle,
		MaxTurns:    cfg.MaxTurns,
	})
	if err != nil {
		return nil, err
	}
	sess.game = g
	sess.human.Attach(g)

	ctx, cancel := context.WithCancel(context.Background())
	sess.cancel = cancel
	go sess.run(ctx)

	return sess, nil
}

func (s *GameSession) run(ctx context.Context) {
	defer close(s.done)

	result, scores := "", []int(nil)
	if err := s.game.Run(ctx); err != nil {
		result = fmt.Sprintf("error: %v", err)
	} else {
		result = s.game.Result
		scores = s.game.Scores()
	}

	_ = s.human.SendGameOver(result, scores)
	s.humanConn.Close()

	s.mu.Lock()
	s.gameOver = true
	s.result = result
	s.scores = scores
	s.final = &PendingDecision{
		Kind:   DecisionGameOver,
		Player: s.agentSeat,
		State:  net.BuildStateView(s.game, s.agentSeat),
	}
	s.mu.Unlock()
}

// Close stops the game goroutine and waits for it to exit.
func (s *GameSession) Close() {
	s.cancel()
	<-s.done
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev net.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []net.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []net.EventView{}
	}
	return events
}

// waitForPending blocks until the next question for the agent arrives or the
// game ends, then builds a ToolResponse with accumulated events and the
// pending decision.
func (s *GameSession) waitForPending(ctx context.Context) (*ToolResponse, error) {
	var pending *PendingDecision
	select {
	case pending = <-s.pendingCh:
	case <-s.done:
		s.mu.Lock()
		pending = s.final
		s.mu.Unlock()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	s.currentPending = pending
	s.mu.Unlock()

	resp := &ToolResponse{
		SessionID: s.ID.String(),
		Events:    s.drainEvents(),
		State:     pending.State,
	}
	if pending.Kind == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Result = s.result
		resp.Scores = s.scores
		s.mu.Unlock()
		return resp, nil
	}
	resp.Pending = pending
	return resp, nil
}

// pending returns the question the agent must answer next, or nil.
func (s *GameSession) pending() *PendingDecision {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentPending == nil || s.currentPending.Kind == DecisionGameOver {
		return nil
	}
	return s.currentPending
}

// answer hands text to the waiting engine and returns the next decision.
func (s *GameSession) answer(ctx context.Context, text string) (*ToolResponse, error) {
	pending := s.pending()
	if pending == nil {
		return nil, fmt.Errorf("no pending decision")
	}
	if err := checkAnswer(pending, text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.currentPending = nil
	s.mu.Unlock()

	select {
	case s.agent.responseCh <- text:
	case <-s.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.waitForPending(ctx)
}

// snapshot reports the session without consuming a decision.
func (s *GameSession) snapshot() *ToolResponse {
	events := s.drainEvents()

	s.mu.Lock()
	defer s.mu.Unlock()
	resp := &ToolResponse{
		SessionID: s.ID.String(),
		Events:    events,
		GameOver:  s.gameOver,
		Result:    s.result,
		Scores:    s.scores,
	}
	if s.currentPending != nil {
		resp.State = s.currentPending.State
		if s.currentPending.Kind != DecisionGameOver {
			resp.Pending = s.currentPending
		}
	}
	return resp
}

// checkAnswer rejects answers the engine would only ask again for.
func checkAnswer(p *PendingDecision, text string) error {
	if text == "" || len(p.Options) == 0 || p.Kind == game.PromptYesNo.String() {
		return nil
	}
	for _, o := range p.Options {
		if strings.EqualFold(o, strings.TrimSpace(text)) {
			return nil
		}
	}
	return fmt.Errorf("%q is not one of %s", text, strings.Join(p.Options, ", "))
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
