package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn net.Conn
	name string
	in   *bufio.Reader
	out  io.Writer
}

// NewClient wraps an established connection. Answers are read from in and
// everything the server sends is rendered to out.
func NewClient(conn net.Conn, name string, in io.Reader, out io.Writer) *Client {
	return &Client{conn: conn, name: name, in: bufio.NewReader(in), out: out}
}

// Connect connects to a server, sends the join message, and runs the REPL.
func Connect(ctx context.Context, addr, name string, in io.Reader, out io.Writer) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: MsgJoin, Name: name}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Fprintln(out, "Connected! Waiting for game to start...")

	return NewClient(conn, name, in, out).RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively. It returns
// nil once the game is over.
func (c *Client) RunREPL(ctx context.Context) error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case MsgNotify:
			c.renderEvent(msg.Event)

		case MsgAsk:
			c.renderState(msg.State)
			answer, err := c.readAnswer(msg.Kind, msg.Prompt, msg.Options)
			if err != nil {
				return err
			}
			if err := enc.Encode(ClientMessage{Type: MsgAnswer, Text: answer}); err != nil {
				return fmt.Errorf("send answer: %w", err)
			}

		case MsgGameOver:
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, "          GAME OVER")
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, msg.Result)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	phase := ev.Phase
	for len(phase) < 14 {
		phase += " "
	}
	fmt.Fprintf(c.out, "T%-2d %s| %s\n", ev.Turn, phase, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "╔══════════════════════════════════════════════════════╗")

	var piles []string
	for _, p := range sv.Supply {
		piles = append(piles, fmt.Sprintf("%s $%d (%d)", p.Name, p.Cost, p.Count))
	}
	fmt.Fprintf(c.out, "║  Supply: %s\n", strings.Join(piles, ", "))
	fmt.Fprintf(c.out, "║  Trash: %d\n", sv.TrashCount)
	fmt.Fprintln(c.out, "║──────────────────────────────────────────────────────")

	for i, p := range sv.Players {
		marker := " "
		if i == sv.Current {
			marker = ">"
		}
		label := p.Name
		if i == sv.Seat {
			label += " (you)"
		}
		fmt.Fprintf(c.out, "║ %s %-16s Hand: %d  Deck: %d  Discard: %d", marker, label, p.HandCount, p.DrawCount, p.DiscardCount)
		if p.DiscardTop != "" {
			fmt.Fprintf(c.out, " [%s]", p.DiscardTop)
		}
		fmt.Fprintln(c.out)
		if len(p.InPlay) > 0 {
			fmt.Fprintf(c.out, "║      In play: %s\n", strings.Join(p.InPlay, ", "))
		}
	}
	fmt.Fprintln(c.out, "╚══════════════════════════════════════════════════════╝")

	turnInfo := fmt.Sprintf("Turn %d | %s", sv.Turn, sv.Phase)
	if sv.IsYourTurn {
		me := sv.Players[sv.Seat]
		turnInfo += fmt.Sprintf(" | Your turn | Actions %d  Buys %d  $%d", me.Actions, me.Buys, me.Money)
	} else {
		turnInfo += fmt.Sprintf(" | %s's turn", sv.Players[sv.Current].Name)
	}
	fmt.Fprintln(c.out, turnInfo)

	if sv.Seat < len(sv.Players) && len(sv.Players[sv.Seat].Hand) > 0 {
		fmt.Fprintf(c.out, "Hand: %s\n", strings.Join(sv.Players[sv.Seat].Hand, ", "))
	}
}

// readAnswer prints the question and reads one line. A number picks an
// option, an empty line passes, anything else is sent as typed.
func (c *Client) readAnswer(kind, prompt string, options []string) (string, error) {
	fmt.Fprintf(c.out, "\n%s\n", prompt)
	if kind == "yes_no" {
		fmt.Fprint(c.out, "(y/n) ")
	}
	for i, o := range options {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprint(c.out, "> ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return line, nil
}
