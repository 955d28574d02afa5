package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/peterkuimelis/kingdom/internal/config"
	"github.com/peterkuimelis/kingdom/internal/game"
	kingdomnet "github.com/peterkuimelis/kingdom/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(ctx, cfg, os.Args[2:])
	case "join":
		runJoin(ctx, cfg, os.Args[2:])
	case "kingdoms":
		runKingdoms(cfg, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  kingdom-cli host [--kingdom N] [--players P] [--port PORT] [--name NAME] [--kingdoms FILE] [--transcript FILE]")
	fmt.Println("  kingdom-cli join [--addr ADDR] [--name NAME]")
	fmt.Println("  kingdom-cli kingdoms [--kingdoms FILE]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host      Start a game server and play the first seat")
	fmt.Println("  join      Connect to a game server and play the next free seat")
	fmt.Println("  kingdoms  List the kingdom presets")
	fmt.Println()
	fmt.Println("Defaults come from KINGDOM_FILE, KINGDOM_PORT, KINGDOM_SEED and KINGDOM_MAX_TURNS.")
}

func runHost(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	kingdom := fs.Int("kingdom", 0, "kingdom preset number (0 for First Game)")
	players := fs.Int("players", 2, "number of seats, host included (2-4)")
	port := fs.String("port", cfg.Port, "TCP port to listen on")
	name := fs.String("name", "Host", "your player name")
	kingdomFile := fs.String("kingdoms", cfg.KingdomFile, "path to kingdoms file")
	transcript := fs.String("transcript", "", "write a text log of every event to this file")
	fs.Parse(args)

	if *players < game.MinPlayers || *players > game.MaxPlayers {
		config.Exitf("--players must be between %d and %d", game.MinPlayers, game.MaxPlayers)
	}

	srv := &kingdomnet.Server{
		KingdomFile: *kingdomFile,
		Kingdom:     *kingdom,
		Port:        *port,
		Players:     *players,
		HostName:    *name,
		Seed:        cfg.Seed,
		MaxTurns:    cfg.MaxTurns,
	}
	if *transcript != "" {
		f, err := os.Create(*transcript)
		if err != nil {
			config.Exitf("%v", err)
		}
		defer f.Close()
		srv.Transcript = f
	}

	if err := srv.Run(ctx); err != nil {
		config.Exitf("%v", err)
	}
}

func runJoin(ctx context.Context, cfg config.Config, args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	addr := fs.String("addr", "localhost:"+cfg.Port, "server address to connect to")
	name := fs.String("name", "", "your player name")
	fs.Parse(args)

	if err := kingdomnet.Connect(ctx, *addr, *name, os.Stdin, os.Stdout); err != nil {
		config.Exitf("%v", err)
	}
}

func runKingdoms(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("kingdoms", flag.ExitOnError)
	kingdomFile := fs.String("kingdoms", cfg.KingdomFile, "path to kingdoms file")
	fs.Parse(args)

	for n := 1; ; n++ {
		name, cards, err := game.KingdomByNumber(*kingdomFile, n)
		if err != nil {
			if n == 1 {
				config.Exitf("%v", err)
			}
			return
		}
		fmt.Printf("%2d. %-18s %v\n", n, name, cards)
	}
}
