package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sandgarden/internal/app"
	"sandgarden/internal/sims/sand"
	"sandgarden/internal/stream"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	tps := flag.Int("tps", 30, "simulation passes per second")
	width := flag.Int("w", 160, "grid columns")
	height := flag.Int("h", 120, "grid rows")
	seed := flag.Int64("seed", 1337, "seed for the world's random source")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	opts := overrides.Map()
	cfg := sand.FromMap(opts)
	if _, ok := opts["w"]; !ok {
		cfg.Width = *width
	}
	if _, ok := opts["h"]; !ok {
		cfg.Height = *height
	}
	if _, ok := opts["seed"]; !ok {
		cfg.Seed = *seed
	}

	world := sand.NewWithConfig(cfg)
	world.Reset(cfg.Seed)
	hub := stream.NewHub(world, *tps)

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{Addr: *addr, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := hub.Run(ctx); err != nil {
			log.Println("hub stopped:", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Println("shutdown error:", err)
		}
	}()

	log.Printf("streaming %dx%d sand world on %s/ws at %d tps", cfg.Width, cfg.Height, *addr, *tps)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
