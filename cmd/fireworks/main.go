package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/fireworks/internal/config"
	"github.com/tomz197/fireworks/internal/loop"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	var opts loop.Options
	if chance, ok := config.LookupEnvFloat("FIREWORKS_SPAWN_CHANCE"); ok {
		opts.SpawnChance = &chance
	}
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks error: %v\n", err)
		os.Exit(1)
	}
}
