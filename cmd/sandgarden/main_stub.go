//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"os"

	"sandgarden/internal/app"
	"sandgarden/internal/core"
	_ "sandgarden/internal/sims/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.List {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}

	fmt.Fprintln(os.Stderr, "The GUI build of sandgarden requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/sandgarden`, or use ./cmd/sandserver for a headless websocket stream.")
	os.Exit(2)
}
