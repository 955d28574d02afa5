package net

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/peterkuimelis/kingdom/internal/game"
	"github.com/peterkuimelis/kingdom/internal/log"
)

// Server hosts a game between the local player and TCP clients.
type Server struct {
	KingdomFile string
	Kingdom     int // preset number in KingdomFile (1-indexed, 0 for First Game)
	Port        string
	Players     int // total seats, host included
	HostName    string
	Seed        int64
	MaxTurns    int
	Transcript  io.Writer // optional text log of every event
}

// Run starts the server, waits for every client to join, then runs the game
// with the host playing seat 0 from this terminal.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for %d opponent(s) on port %s...\n", s.seats()-1, s.Port)

	joiners, names, err := AcceptPlayers(ln, s.seats()-1)
	if err != nil {
		return err
	}
	defer func() {
		for _, c := range joiners {
			c.Close()
		}
	}()

	kingdom, err := s.loadKingdom()
	if err != nil {
		return err
	}

	// Seat 0 plays through an in-process pipe.
	hostConn, hostServerConn := net.Pipe()
	defer hostServerConn.Close()

	hostName := s.HostName
	if hostName == "" {
		hostName = "Host"
	}
	seats := []*NetworkController{NewNetworkController(hostServerConn, 0)}
	for i, c := range joiners {
		seats = append(seats, NewNetworkController(c, i+1))
	}

	cfg := game.GameConfig{
		PlayerNames: append([]string{hostName}, names...),
		Kingdom:     kingdom,
		Seed:        s.Seed,
		MaxTurns:    s.MaxTurns,
	}
	if s.Transcript != nil {
		cfg.Logger = log.NewTextLogger(s.Transcript)
	}

	errCh := make(chan error, 2)
	go func() {
		client := NewClient(hostConn, hostName, os.Stdin, os.Stdout)
		errCh <- client.RunREPL(ctx)
	}()
	go func() {
		_, err := PlayMatch(ctx, cfg, seats)
		errCh <- err
	}()

	// Wait for either the game or the REPL to finish
	return <-errCh
}

func (s *Server) seats() int {
	if s.Players < game.MinPlayers {
		return game.MinPlayers
	}
	return s.Players
}

func (s *Server) loadKingdom() ([]string, error) {
	if s.Kingdom == 0 {
		return game.FirstGame, nil
	}
	name, cards, err := game.KingdomByNumber(s.KingdomFile, s.Kingdom)
	if err != nil {
		return nil, fmt.Errorf("load kingdom: %w", err)
	}
	fmt.Printf("Kingdom: %s\n", name)
	return cards, nil
}

// AcceptPlayers accepts n connections and reads each one's join message.
// Joiners that send no name are called P2, P3, ...
func AcceptPlayers(ln net.Listener, n int) ([]net.Conn, []string, error) {
	var conns []net.Conn
	var names []string
	for len(conns) < n {
		conn, err := ln.Accept()
		if err != nil {
			closeAll(conns)
			return nil, nil, fmt.Errorf("accept: %w", err)
		}
		name, err := ReadJoin(conn)
		if err != nil {
			conn.Close()
			closeAll(conns)
			return nil, nil, err
		}
		if name == "" {
			name = fmt.Sprintf("P%d", len(conns)+2)
		}
		fmt.Printf("%s connected from %s\n", name, conn.RemoteAddr())
		conns = append(conns, conn)
		names = append(names, name)
	}
	return conns, names, nil
}

// ReadJoin reads the join handshake from a freshly accepted connection.
func ReadJoin(conn net.Conn) (string, error) {
	var msg ClientMessage
	if err := json.NewDecoder(conn).Decode(&msg); err != nil {
		return "", fmt.Errorf("read join message: %w", err)
	}
	if msg.Type != MsgJoin {
		return "", fmt.Errorf("read join message: expected %q, got %q", MsgJoin, msg.Type)
	}
	return msg.Name, nil
}

func closeAll(conns []net.Conn) {
	for _, c := range conns {
		c.Close()
	}
}

// PlayMatch runs a game whose every seat is a network controller and sends
// the result to all of them.
func PlayMatch(ctx context.Context, cfg game.GameConfig, seats []*NetworkController) (*game.Game, error) {
	sources := make([]game.DecisionSource, len(seats))
	for i, s := range seats {
		sources[i] = s
	}
	cfg.Source = &game.SeatedSource{Seats: sources}

	g, err := game.NewGame(cfg)
	if err != nil {
		return nil, err
	}
	for _, s := range seats {
		s.Attach(g)
	}

	if err := g.Run(ctx); err != nil {
		return g, fmt.Errorf("game error: %w", err)
	}

	scores := g.Scores()
	for _, s := range seats {
		_ = s.SendGameOver(g.Result, scores)
	}
	return g, nil
}
