package mcp

import (
	"context"
	"encoding/json"
	stdnet "net"
	"slices"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/peterkuimelis/kingdom/internal/net"
)

// playHuman answers the human seat over conn: play all Treasures, buy nothing.
func playHuman(conn stdnet.Conn) <-chan string {
	result := make(chan string, 1)
	go func() {
		defer close(result)
		dec := json.NewDecoder(conn)
		enc := json.NewEncoder(conn)
		for {
			var msg net.ServerMessage
			if err := dec.Decode(&msg); err != nil {
				return
			}
			switch msg.Type {
			case net.MsgAsk:
				answer := ""
				if slices.Contains(msg.Options, "all") {
					answer = "all"
				}
				if err := enc.Encode(net.ClientMessage{Type: net.MsgAnswer, Text: answer}); err != nil {
					return
				}
			case net.MsgGameOver:
				result <- msg.Result
				return
			}
		}
	}()
	return result
}

func TestCheckAnswer(t *testing.T) {
	p := &PendingDecision{Kind: "card", Options: []string{"Copper", "Estate"}}
	for _, ok := range []string{"", "Copper", "estate", " Estate "} {
		if err := checkAnswer(p, ok); err != nil {
			t.Errorf("%q: unexpected error %v", ok, err)
		}
	}
	if err := checkAnswer(p, "Gold"); err == nil {
		t.Error("expected Gold to be rejected")
	}
	if err := checkAnswer(&PendingDecision{Kind: "yes_no"}, "y"); err != nil {
		t.Errorf("yes/no answers are free-form: %v", err)
	}
}

func TestSessionPlaysToTheEnd(t *testing.T) {
	server, client := stdnet.Pipe()
	defer client.Close()
	human := playHuman(client)

	sess, err := NewGameSession(SessionConfig{AgentSeat: 0, MaxTurns: 2, NoShuffle: true}, server)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Pending == nil || !slices.Contains(resp.Pending.Options, "all") {
		t.Fatalf("expected a Treasure prompt first, got %+v", resp.Pending)
	}
	if len(resp.Events) == 0 || resp.SessionID != sess.ID.String() {
		t.Errorf("expected setup events and the session id, got %d events, id %q", len(resp.Events), resp.SessionID)
	}

	if _, err := sess.answer(ctx, "Province"); err == nil {
		t.Error("expected an answer outside the options to be refused")
	}

	resp, err = sess.answer(ctx, "all")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Pending == nil || resp.Pending.Kind != "buy" {
		t.Fatalf("expected a buy prompt, got %+v", resp.Pending)
	}
	if snap := sess.snapshot(); snap.Pending == nil || snap.Pending.Kind != "buy" || snap.GameOver {
		t.Errorf("snapshot should show the buy prompt, got %+v", snap)
	}

	resp, err = sess.answer(ctx, "Silver")
	if err != nil {
		t.Fatal(err)
	}
	if !resp.GameOver || resp.Pending != nil {
		t.Fatalf("expected the game to end after the human's turn, got %+v", resp)
	}
	if !strings.Contains(resp.Result, "turn limit") || len(resp.Scores) != 2 {
		t.Errorf("unexpected result %q %v", resp.Result, resp.Scores)
	}
	if got := <-human; got != resp.Result {
		t.Errorf("human saw %q, agent saw %q", got, resp.Result)
	}
	if !sess.game.Players[0].Discard.ContainsName("Silver") {
		t.Error("the agent's Silver should be in its discard pile")
	}
}

func TestSessionRejectsBadSeat(t *testing.T) {
	server, client := stdnet.Pipe()
	defer server.Close()
	defer client.Close()
	if _, err := NewGameSession(SessionConfig{AgentSeat: 2}, server); err == nil {
		t.Fatal("expected an error for seat 2")
	}
}

func TestSessionClose(t *testing.T) {
	server, client := stdnet.Pipe()
	defer client.Close()
	playHuman(client)

	sess, err := NewGameSession(SessionConfig{AgentSeat: 0, NoShuffle: true}, server)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sess.waitForPending(context.Background()); err != nil {
		t.Fatal(err)
	}
	sess.Close()

	resp, err := sess.waitForPending(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !resp.GameOver || !strings.HasPrefix(resp.Result, "error:") {
		t.Errorf("expected an aborted game, got %+v", resp)
	}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content %T", res.Content[0])
	}
	return text.Text
}

func decodeResponse(t *testing.T, res *mcp.CallToolResult) ToolResponse {
	t.Helper()
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var resp ToolResponse
	if err := json.Unmarshal([]byte(resultText(t, res)), &resp); err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestToolsWithoutGame(t *testing.T) {
	tb := &Toolbox{}
	ctx := context.Background()
	for name, handler := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"answer":         tb.handleAnswer,
		"get_game_state": tb.handleGetGameState,
	} {
		res, err := handler(ctx, callRequest(map[string]any{"text": "y"}))
		if err != nil {
			t.Fatal(err)
		}
		if !res.IsError {
			t.Errorf("%s: expected a tool error without a running game", name)
		}
	}

	res, err := tb.handleStartGame(ctx, callRequest(map[string]any{"agent_seat": 3}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected agent_seat 3 to be refused")
	}
}

func TestToolsPlayAGame(t *testing.T) {
	ln, err := stdnet.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	tb := &Toolbox{Listener: ln, Port: "test", MaxTurns: 2}

	humanDone := make(chan string, 1)
	go func() {
		conn, err := stdnet.Dial("tcp", ln.Addr().String())
		if err != nil {
			close(humanDone)
			return
		}
		defer conn.Close()
		if err := json.NewEncoder(conn).Encode(net.ClientMessage{Type: net.MsgJoin, Name: "Hal"}); err != nil {
			close(humanDone)
			return
		}
		humanDone <- <-playHuman(conn)
	}()

	ctx := context.Background()
	res, err := tb.handleStartGame(ctx, callRequest(map[string]any{"agent_seat": 1}))
	if err != nil {
		t.Fatal(err)
	}
	resp := decodeResponse(t, res)
	if resp.Pending == nil || resp.Pending.Player != 1 || resp.Port != "test" {
		t.Fatalf("expected the agent's first decision on seat 1, got %+v", resp)
	}
	if resp.State == nil || resp.State.Players[0].Name != "Hal" {
		t.Errorf("expected the human to be seated first, got %+v", resp.State)
	}

	res, err = tb.handleStartGame(ctx, callRequest(map[string]any{"agent_seat": 0}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected a second start_game to be refused")
	}

	res, err = tb.handleAnswer(ctx, callRequest(map[string]any{"text": "Teleporter"}))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("expected an unknown option to be refused")
	}

	for resp.Pending != nil {
		answer := ""
		if slices.Contains(resp.Pending.Options, "all") {
			answer = "all"
		}
		res, err = tb.handleAnswer(ctx, callRequest(map[string]any{"text": answer}))
		if err != nil {
			t.Fatal(err)
		}
		resp = decodeResponse(t, res)
	}
	if !resp.GameOver {
		t.Fatalf("expected the game to end, got %+v", resp)
	}
	if got := <-humanDone; got != resp.Result {
		t.Errorf("human saw %q, agent saw %q", got, resp.Result)
	}

	res, err = tb.handleGetGameState(ctx, callRequest(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsError {
		t.Error("a finished game should free the toolbox")
	}
}
