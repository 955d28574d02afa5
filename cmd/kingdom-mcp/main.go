package main

import (
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/kingdom/internal/config"
	kingdommcp "github.com/peterkuimelis/kingdom/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	kingdoms := flag.String("kingdoms", cfg.KingdomFile, "path to kingdoms YAML file")
	port := flag.String("port", cfg.Port, "TCP port for human player connection")
	flag.Parse()

	tools := &kingdommcp.Toolbox{
		KingdomFile: *kingdoms,
		Port:        *port,
		Seed:        cfg.Seed,
		MaxTurns:    cfg.MaxTurns,
	}
	defer tools.Shutdown()

	s := server.NewMCPServer("kingdom", "1.0.0")
	tools.RegisterTools(s)

	// Stdout carries the protocol; diagnostics go to stderr.
	log.Printf("serving %s over stdio", tools)
	if err := server.ServeStdio(s); err != nil {
		config.Exitf("%v", err)
	}
}
