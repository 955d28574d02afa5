package mcp

import (
	"context"
	"fmt"
	stdnet "net"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/kingdom/internal/game"
	"github.com/peterkuimelis/kingdom/internal/net"
)

// Toolbox serves the game tools. Only one game runs at a time.
type Toolbox struct {
	KingdomFile string
	Port        string // TCP port the human joins on
	Seed        int64
	MaxTurns    int

	// Listener, when set, is used instead of listening on Port.
	Listener stdnet.Listener

	mu     sync.Mutex
	active *GameSession
}

// RegisterTools adds all game tools to the MCP server.
func (tb *Toolbox) RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), tb.handleStartGame)
	s.AddTool(answerTool(), tb.handleAnswer)
	s.AddTool(getGameStateTool(), tb.handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new two-player deck-building game. Returns the initial game state and first pending decision. "+
			"The human player connects via `kingdom-cli join --addr localhost:<port>` in a separate terminal. "+
			"This call blocks until the human connects."),
		mcp.WithNumber("agent_seat", mcp.Required(), mcp.Description("Which seat the agent plays: 0 = goes first, 1 = goes second")),
		mcp.WithNumber("kingdom", mcp.Description("Kingdom preset number (1-indexed from kingdoms.yaml); 0 or omitted for First Game")),
	)
}

func answerTool() mcp.Tool {
	return mcp.NewTool("answer",
		mcp.WithDescription("Answer the pending decision. Use one of the listed options, \"y\"/\"n\" for yes/no questions, "+
			"or an empty string to pass. Returns the events since the last call and the next pending decision."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The answer: a card name, an option such as \"all\", y/n, or \"\" to pass")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func (tb *Toolbox) session() *GameSession {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.active
}

func (tb *Toolbox) handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tb.mu.Lock()
	if tb.active != nil {
		tb.mu.Unlock()
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}
	tb.mu.Unlock()

	agentSeat := request.GetInt("agent_seat", -1)
	if agentSeat != 0 && agentSeat != 1 {
		return mcp.NewToolResultError("agent_seat must be 0 or 1"), nil
	}
	kingdom, err := tb.kingdom(request.GetInt("kingdom", 0))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load kingdom: %v", err), nil
	}

	ln := tb.Listener
	if ln == nil {
		ln, err = stdnet.Listen("tcp", ":"+tb.Port)
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to listen on port %s: %v", tb.Port, err), nil
		}
		defer ln.Close()
	}

	// Blocks until the human runs `kingdom-cli join`.
	conns, names, err := net.AcceptPlayers(ln, 1)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	sess, err := NewGameSession(SessionConfig{
		Kingdom:   kingdom,
		AgentSeat: agentSeat,
		HumanName: names[0],
		Seed:      tb.Seed,
		MaxTurns:  tb.MaxTurns,
	}, conns[0])
	if err != nil {
		conns[0].Close()
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	tb.mu.Lock()
	tb.active = sess
	tb.mu.Unlock()

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	resp.Port = tb.Port
	tb.finish(resp)

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (tb *Toolbox) kingdom(n int) ([]string, error) {
	if n <= 0 {
		return game.FirstGame, nil
	}
	_, cards, err := game.KingdomByNumber(tb.KingdomFile, n)
	return cards, err
}

func (tb *Toolbox) handleAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := tb.session()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	if sess.pending() == nil {
		return mcp.NewToolResultError("No pending decision."), nil
	}

	text := request.GetString("text", "")
	resp, err := sess.answer(ctx, text)
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid answer: %v", err), nil
	}
	tb.finish(resp)

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func (tb *Toolbox) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := tb.session()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}

// finish frees the toolbox for a new game once resp reports the end.
func (tb *Toolbox) finish(resp *ToolResponse) {
	if !resp.GameOver {
		return
	}
	tb.mu.Lock()
	tb.active = nil
	tb.mu.Unlock()
}

// Shutdown stops a running game, if any.
func (tb *Toolbox) Shutdown() {
	if sess := tb.session(); sess != nil {
		sess.Close()
	}
}

// String describes the toolbox for startup logs.
func (tb *Toolbox) String() string {
	return fmt.Sprintf("kingdom tools (kingdoms %s, human port %s)", tb.KingdomFile, tb.Port)
}
