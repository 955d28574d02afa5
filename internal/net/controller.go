package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/peterkuimelis/kingdom/internal/game"
	"github.com/peterkuimelis/kingdom/internal/log"
)

// NetworkController implements game.DecisionSource and game.Notifier over a
// TCP connection for one seat.
type NetworkController struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	seat int
	game *game.Game
	mu   sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
func NewNetworkController(conn net.Conn, seat int) *NetworkController {
	return &NetworkController{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
		seat: seat,
	}
}

// Attach lets the controller include a state view with every question.
func (nc *NetworkController) Attach(g *game.Game) {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	nc.game = g
}

// Seat returns the seat this controller answers for.
func (nc *NetworkController) Seat() int {
	return nc.seat
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// Ask implements game.DecisionSource. It blocks until the client answers or
// ctx is cancelled.
func (nc *NetworkController) Ask(ctx context.Context, p game.Prompt) (string, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	stop := context.AfterFunc(ctx, func() {
		_ = nc.conn.SetDeadline(time.Now())
	})
	defer func() {
		if stop() {
			return
		}
		_ = nc.conn.SetDeadline(time.Time{})
	}()

	msg := ServerMessage{
		Type:    MsgAsk,
		Kind:    p.Kind.String(),
		Prompt:  p.Text,
		Options: p.Options,
	}
	if nc.game != nil {
		msg.State = BuildStateView(nc.game, nc.seat)
	}
	if err := nc.send(msg); err != nil {
		return "", nc.ioError(ctx, "send ask", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return "", nc.ioError(ctx, "recv answer", err)
	}
	if resp.Type != MsgAnswer {
		return "", fmt.Errorf("recv answer: unexpected %q message", resp.Type)
	}
	return resp.Text, nil
}

// ioError prefers the context's error when cancellation caused the failure.
func (nc *NetworkController) ioError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Notify implements game.Notifier.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	ev := NewEventView(event)
	return nc.send(ServerMessage{Type: MsgNotify, Event: &ev})
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(result string, scores []int) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: MsgGameOver, Result: result, Scores: scores})
}

// NewEventView converts a logged event for the wire.
func NewEventView(event log.GameEvent) EventView {
	return EventView{
		Turn:    event.Turn,
		Phase:   event.Phase,
		Player:  event.Player,
		Type:    event.Type.String(),
		Card:    event.Card,
		Details: event.Details,
	}
}
