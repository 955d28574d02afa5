package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/peterkuimelis/kingdom/internal/config"
	"github.com/peterkuimelis/kingdom/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	port := flag.Int("port", cfg.WebPort, "HTTP port to listen on")
	kingdomFile := flag.String("kingdoms", cfg.KingdomFile, "path to kingdoms YAML file")
	flag.Parse()

	srv := web.NewServer(*kingdomFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("kingdom web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		config.Exitf("%v", err)
	}
}
